package catalog

import (
	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/slug"
)

// pickerCounties is the county -> cities table offered by the two-step location picker.
// It is independent of the catalog: most cities have no caterers yet.
var pickerCounties = []struct {
	name   string
	cities []string
}{
	{"Los Angeles", []string{"Los Angeles", "Long Beach", "Santa Monica", "Pasadena", "Glendale", "Burbank", "Torrance", "Inglewood"}},
	{"Orange", []string{"Irvine", "Anaheim", "Santa Ana", "Huntington Beach", "Costa Mesa", "Newport Beach", "Fullerton", "Laguna Beach"}},
	{"San Diego", []string{"San Diego", "La Jolla", "Encinitas", "Chula Vista", "Carlsbad", "Oceanside", "Escondido", "Coronado"}},
	{"Santa Clara", []string{"San Jose", "Palo Alto", "Mountain View", "Sunnyvale", "Cupertino", "Santa Clara", "Los Altos", "Milpitas"}},
	{"San Francisco", []string{"San Francisco", "Daly City", "South San Francisco", "Pacifica", "Treasure Island", "Bayview", "Sunset", "Richmond"}},
	{"Alameda", []string{"Oakland", "Berkeley", "Fremont", "Hayward", "Alameda", "Livermore", "Pleasanton", "Dublin"}},
	{"Sacramento", []string{"Sacramento", "Elk Grove", "Citrus Heights", "Folsom", "Rancho Cordova", "Roseville", "Davis", "West Sacramento"}},
	{"Riverside", []string{"Riverside", "Palm Springs", "Temecula", "Murrieta", "Corona", "Moreno Valley", "Indio", "La Quinta"}},
	{"San Bernardino", []string{"San Bernardino", "Ontario", "Rancho Cucamonga", "Redlands", "Fontana", "Victorville", "Chino", "Big Bear Lake"}},
	{"Ventura", []string{"Ventura", "Oxnard", "Thousand Oaks", "Camarillo", "Simi Valley", "Carpinteria", "Santa Paula", "Ojai"}},
}

// Regions returns the picker table with slugs filled in.
func Regions() []domain.Region {
	out := make([]domain.Region, 0, len(pickerCounties))
	for _, c := range pickerCounties {
		r := domain.Region{Name: c.name, Slug: slug.Slugify(c.name), Cities: make([]domain.RegionCity, 0, len(c.cities))}
		for _, city := range c.cities {
			r.Cities = append(r.Cities, domain.RegionCity{Name: city, Slug: slug.Slugify(city)})
		}
		out = append(out, r)
	}
	return out
}

// CuisineOptions are the cuisine chips shown on the results page.
func CuisineOptions() []string {
	return []string{"Italian", "Mediterranean", "Mexican", "BBQ", "Vegan", "Dessert"}
}

func PriceOptions() []domain.PriceTier {
	return []domain.PriceTier{domain.PriceBudget, domain.PriceModerate, domain.PricePremium}
}

func SortOptions() []domain.SortOrder {
	return []domain.SortOrder{domain.SortRecommended, domain.SortRating, domain.SortPrice}
}
