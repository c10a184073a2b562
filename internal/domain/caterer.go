package domain

import "fmt"

type PriceTier string

const (
	PriceBudget   PriceTier = "$"
	PriceModerate PriceTier = "$$"
	PricePremium  PriceTier = "$$$"
)

// Rank is the ordinal used for price sorting; unknown tiers rank 0.
func (p PriceTier) Rank() int {
	switch p {
	case PriceBudget:
		return 1
	case PriceModerate:
		return 2
	case PricePremium:
		return 3
	}
	return 0
}

func (p PriceTier) Valid() bool { return p.Rank() > 0 }

// ParsePriceTier accepts the symbol form ("$$") or the rank ("2").
func ParsePriceTier(s string) (PriceTier, error) {
	switch s {
	case "$", "1":
		return PriceBudget, nil
	case "$$", "2":
		return PriceModerate, nil
	case "$$$", "3":
		return PricePremium, nil
	}
	return "", fmt.Errorf("unknown price tier %q", s)
}

type MenuSection struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

type Caterer struct {
	Slug        string    `json:"slug" yaml:"slug"`
	Name        string    `json:"name" yaml:"name"`
	City        string    `json:"city" yaml:"city"`
	County      string    `json:"county" yaml:"county"`
	Cuisines    []string  `json:"cuisines" yaml:"cuisines"`
	PriceTier   PriceTier `json:"priceTier" yaml:"priceTier"`
	Rating      float64   `json:"rating" yaml:"rating"`
	ReviewCount int       `json:"reviewCount" yaml:"reviewCount"`

	// display payload, never inspected by queries
	HeroImage  string        `json:"heroImage,omitempty" yaml:"heroImage"`
	Tagline    string        `json:"tagline,omitempty" yaml:"tagline"`
	About      string        `json:"about,omitempty" yaml:"about"`
	Services   []string      `json:"services,omitempty" yaml:"services"`
	SampleMenu []MenuSection `json:"sampleMenu,omitempty" yaml:"sampleMenu"`
	Gallery    []string      `json:"gallery,omitempty" yaml:"gallery"`
}

// HasCuisine reports whether c lists cuisine verbatim.
func (c Caterer) HasCuisine(cuisine string) bool {
	for _, cu := range c.Cuisines {
		if cu == cuisine {
			return true
		}
	}
	return false
}

// Clone returns a copy of c that shares no slices with it.
func (c Caterer) Clone() Caterer {
	c.Cuisines = append([]string(nil), c.Cuisines...)
	c.Services = append([]string(nil), c.Services...)
	c.Gallery = append([]string(nil), c.Gallery...)
	if c.SampleMenu != nil {
		menu := make([]MenuSection, len(c.SampleMenu))
		for i, s := range c.SampleMenu {
			menu[i] = MenuSection{Title: s.Title, Items: append([]string(nil), s.Items...)}
		}
		c.SampleMenu = menu
	}
	return c
}
