package app

import (
	"cmp"
	"slices"
	"strings"

	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/slug"
)

// indexed caches the slugs of one record; they are derived once at construction.
type indexed struct {
	rec        domain.Caterer
	countySlug string
	citySlug   string
	slug       string
}

// Directory answers location, profile, filter and sort queries over a frozen catalog.
// It holds no mutable state and is safe for concurrent use.
type Directory struct {
	entries  []indexed
	counties []string
	cities   []string
}

func NewDirectory(c *catalog.Catalog) *Directory {
	all := c.All()
	d := &Directory{
		entries:  make([]indexed, len(all)),
		counties: c.Counties(),
		cities:   c.Cities(),
	}
	for i, r := range all {
		d.entries[i] = indexed{
			rec:        r,
			countySlug: slug.Slugify(r.County),
			citySlug:   slug.Slugify(r.City),
			slug:       slug.Slugify(r.Slug),
		}
	}
	return d
}

// FindByLocation returns the records in the given county and city, in catalog order.
func (d *Directory) FindByLocation(countySlug, citySlug string) []domain.Caterer {
	out := []domain.Caterer{}
	if countySlug == "" || citySlug == "" {
		return out
	}
	for _, e := range d.entries {
		if e.countySlug == countySlug && e.citySlug == citySlug {
			out = append(out, e.rec.Clone())
		}
	}
	return out
}

// FindProfile returns the first record matching all three slugs.
func (d *Directory) FindProfile(countySlug, citySlug, businessSlug string) (domain.Caterer, bool) {
	for _, e := range d.entries {
		if e.slug == businessSlug && e.countySlug == countySlug && e.citySlug == citySlug {
			return e.rec.Clone(), true
		}
	}
	return domain.Caterer{}, false
}

// ApplyFilters keeps the candidates that pass every set filter. Sorting is not applied.
func ApplyFilters(candidates []domain.Caterer, f domain.Filter) []domain.Caterer {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Caterer, 0, len(candidates))
	for _, c := range candidates {
		if query != "" && !matchesText(c, query) {
			continue
		}
		if f.Cuisine != nil && !c.HasCuisine(*f.Cuisine) {
			continue
		}
		if f.PriceTier != nil && c.PriceTier != *f.PriceTier {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesText(c domain.Caterer, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	for _, cu := range c.Cuisines {
		if strings.Contains(strings.ToLower(cu), query) {
			return true
		}
	}
	return false
}

// ApplySort returns a sorted copy. Ties keep their input order.
func ApplySort(candidates []domain.Caterer, by domain.SortOrder) []domain.Caterer {
	out := slices.Clone(candidates)
	if out == nil {
		out = []domain.Caterer{}
	}
	switch by {
	case domain.SortRating:
		slices.SortStableFunc(out, func(a, b domain.Caterer) int { return cmp.Compare(b.Rating, a.Rating) })
	case domain.SortPrice:
		slices.SortStableFunc(out, func(a, b domain.Caterer) int { return cmp.Compare(a.PriceTier.Rank(), b.PriceTier.Rank()) })
	}
	return out
}

// Labels resolves display names for a county and city segment, falling back to a
// title-cased form of the segment when the catalog has no such place.
func (d *Directory) Labels(countySlug, citySlug string) (county, city string) {
	return slug.ResolveOrLabel(countySlug, d.counties), slug.ResolveOrLabel(citySlug, d.cities)
}

// Search runs the full results-page pipeline: location, filters, then sort.
func (d *Directory) Search(countySlug, citySlug string, f domain.Filter) domain.Listing {
	county, city := d.Labels(countySlug, citySlug)
	list := ApplySort(ApplyFilters(d.FindByLocation(countySlug, citySlug), f), f.SortBy)
	return domain.Listing{
		County:     county,
		City:       city,
		CountySlug: countySlug,
		CitySlug:   citySlug,
		Total:      len(list),
		Caterers:   list,
	}
}

// Locations lists the distinct county/city pairs that have at least one caterer.
func (d *Directory) Locations() []domain.Location {
	seen := map[[2]string]struct{}{}
	var out []domain.Location
	for _, e := range d.entries {
		k := [2]string{e.countySlug, e.citySlug}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, domain.Location{
			County:     e.rec.County,
			City:       e.rec.City,
			CountySlug: e.countySlug,
			CitySlug:   e.citySlug,
		})
	}
	return out
}

// Len reports the catalog size.
func (d *Directory) Len() int { return len(d.entries) }
