package domain

import (
	"fmt"
	"net/url"
	"strings"
)

type SortOrder string

const (
	SortRecommended SortOrder = "Recommended"
	SortRating      SortOrder = "Rating"
	SortPrice       SortOrder = "Price"
)

// ParseSortOrder is case-insensitive; "" means Recommended.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recommended":
		return SortRecommended, nil
	case "rating":
		return SortRating, nil
	case "price":
		return SortPrice, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Filter narrows a candidate set. Every field is optional; set fields combine with AND.
type Filter struct {
	Search    string
	Cuisine   *string
	PriceTier *PriceTier
	SortBy    SortOrder
}

// Fingerprint is a stable textual form of f, used in cache keys. Free-text
// parts are query-escaped, so the result never contains ':' or '|' from input.
func (f Filter) Fingerprint() string {
	cuisine, price := "", ""
	if f.Cuisine != nil {
		cuisine = *f.Cuisine
	}
	if f.PriceTier != nil {
		price = string(*f.PriceTier)
	}
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortRecommended
	}
	return fmt.Sprintf("q=%s|c=%s|p=%s|s=%s",
		url.QueryEscape(strings.ToLower(strings.TrimSpace(f.Search))), url.QueryEscape(cuisine), url.QueryEscape(price), sortBy)
}

// Location is a distinct (county, city) pair present in the catalog.
type Location struct {
	County     string `json:"county"`
	City       string `json:"city"`
	CountySlug string `json:"countySlug"`
	CitySlug   string `json:"citySlug"`
}

// Listing is the result view for one county/city page.
type Listing struct {
	County     string    `json:"county"`
	City       string    `json:"city"`
	CountySlug string    `json:"countySlug"`
	CitySlug   string    `json:"citySlug"`
	Total      int       `json:"total"`
	Caterers   []Caterer `json:"caterers"`
}

// Region is one county in the two-step location picker.
type Region struct {
	Name   string       `json:"name"`
	Slug   string       `json:"slug"`
	Cities []RegionCity `json:"cities"`
}

type RegionCity struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Boundary is a named map region taken from a boundary document.
type Boundary struct {
	Name   string `json:"name"`   // "Orange County"
	County string `json:"county"` // "Orange"
	Slug   string `json:"slug"`   // "orange"
}
