// Package catalog holds the immutable set of caterer records the directory serves.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/slug"
)

var (
	ErrDuplicateSlug = errors.New("catalog: duplicate slug")
	ErrInvalidRecord = errors.New("catalog: invalid record")
)

// Catalog is read-only after New. Accessors hand out copies.
type Catalog struct {
	records  []domain.Caterer
	counties []string
	cities   []string
}

// New validates records and freezes them. Records keep their given order.
func New(records []domain.Caterer) (*Catalog, error) {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.Caterer, 0, len(records))
	for i, r := range records {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Slug, err)
		}
		if _, dup := seen[r.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, r.Slug)
		}
		seen[r.Slug] = struct{}{}
		out = append(out, r.Clone())
	}
	return &Catalog{
		records:  out,
		counties: distinct(out, func(c domain.Caterer) string { return c.County }),
		cities:   distinct(out, func(c domain.Caterer) string { return c.City }),
	}, nil
}

// MustNew is New for tables known to be valid at compile time.
func MustNew(records []domain.Caterer) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.records) }

// All returns every record in catalog order.
func (c *Catalog) All() []domain.Caterer {
	out := make([]domain.Caterer, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// At returns the i-th record.
func (c *Catalog) At(i int) domain.Caterer { return c.records[i].Clone() }

// Counties lists distinct county names in first-seen order.
func (c *Catalog) Counties() []string { return append([]string(nil), c.counties...) }

// Cities lists distinct city names in first-seen order.
func (c *Catalog) Cities() []string { return append([]string(nil), c.cities...) }

func validate(r domain.Caterer) error {
	switch {
	case strings.TrimSpace(r.Slug) == "":
		return fmt.Errorf("%w: empty slug", ErrInvalidRecord)
	case slug.Slugify(r.Slug) == "":
		return fmt.Errorf("%w: slug %q has no URL form", ErrInvalidRecord, r.Slug)
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	case slug.Slugify(r.County) == "":
		return fmt.Errorf("%w: county %q has no URL form", ErrInvalidRecord, r.County)
	case slug.Slugify(r.City) == "":
		return fmt.Errorf("%w: city %q has no URL form", ErrInvalidRecord, r.City)
	case !r.PriceTier.Valid():
		return fmt.Errorf("%w: price tier %q", ErrInvalidRecord, r.PriceTier)
	case r.Rating < 0 || r.Rating > 5:
		return fmt.Errorf("%w: rating %.2f outside 0-5", ErrInvalidRecord, r.Rating)
	case r.ReviewCount < 0:
		return fmt.Errorf("%w: negative review count", ErrInvalidRecord)
	}
	return nil
}

func distinct(rs []domain.Caterer, key func(domain.Caterer) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rs {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
