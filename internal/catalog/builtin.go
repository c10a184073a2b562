package catalog

import "kitchen_cali/internal/domain"

const assets = "/assets/kitchen-cali/"

// Builtin returns the sample catalog bundled with the site.
func Builtin() *Catalog { return MustNew(builtinCaterers()) }

func builtinCaterers() []domain.Caterer {
	return []domain.Caterer{
		{
			Slug:        "villa-rosa-catering",
			Name:        "Villa Rosa Catering",
			City:        "Irvine",
			County:      "Orange",
			Cuisines:    []string{"Italian", "Mediterranean"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.8,
			ReviewCount: 124,
			HeroImage:   assets + "pizza.svg",
			Tagline:     "Garden-inspired Italian feasts for warm, elegant celebrations.",
			Services:    []string{"Weddings", "Corporate catering", "Drop-off trays", "Staffed events"},
			SampleMenu: []domain.MenuSection{
				{Title: "Signature Bites", Items: []string{"Truffle arancini", "Burrata crostini", "Rosemary focaccia"}},
				{Title: "Pasta & Mains", Items: []string{"Wild mushroom ravioli", "Braised short rib ragu", "Lemon herb salmon"}},
			},
			Gallery: []string{assets + "pizza.svg", assets + "basil.svg", assets + "tomato.svg"},
			About:   "Villa Rosa blends rustic Italian flavors with a refined, modern presentation. Expect seasonal menus, warm service, and elegant plating.",
		},
		{
			Slug:        "costa-verde-kitchen",
			Name:        "Costa Verde Kitchen",
			City:        "Newport Beach",
			County:      "Orange",
			Cuisines:    []string{"Mediterranean", "Vegan"},
			PriceTier:   domain.PricePremium,
			Rating:      4.9,
			ReviewCount: 88,
			HeroImage:   assets + "basil.svg",
			Tagline:     "Coastal Mediterranean spreads with bright, seasonal produce.",
			Services:    []string{"Private dinners", "Luxury drop-off", "Corporate retreats"},
			SampleMenu: []domain.MenuSection{
				{Title: "Mezze Table", Items: []string{"Saffron hummus", "Charred eggplant dip", "Herbed olives"}},
				{Title: "Sea & Field", Items: []string{"Citrus harissa shrimp", "Za'atar roasted chicken", "Cauliflower shawarma"}},
			},
			Gallery: []string{assets + "basil.svg", assets + "pizza.svg", assets + "texture-linen-light.png"},
			About:   "Costa Verde is known for lush mezze tables, modern plating, and wellness-forward menus that still feel celebratory.",
		},
		{
			Slug:        "sunset-salsa-catering",
			Name:        "Sunset Salsa Catering",
			City:        "Santa Ana",
			County:      "Orange",
			Cuisines:    []string{"Mexican"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.7,
			ReviewCount: 140,
			HeroImage:   assets + "tomato.svg",
			Tagline:     "Vibrant taqueria-style menus with polished event service.",
			Services:    []string{"Weddings", "Taco stations", "Family-style platters"},
			SampleMenu: []domain.MenuSection{
				{Title: "Street Favorites", Items: []string{"Adobo chicken tacos", "Citrus carne asada", "Nopal salad"}},
				{Title: "Sweet Finish", Items: []string{"Cinnamon churros", "Cajeta flan", "Hibiscus agua fresca"}},
			},
			Gallery: []string{assets + "tomato.svg", assets + "basil.svg", assets + "texture-linen-light.png"},
			About:   "Sunset Salsa brings modern Mexican flavors with bold colors, made-from-scratch salsas, and festive presentation.",
		},
		{
			Slug:        "harbor-collective",
			Name:        "Harbor Collective",
			City:        "Huntington Beach",
			County:      "Orange",
			Cuisines:    []string{"Seafood", "California"},
			PriceTier:   domain.PricePremium,
			Rating:      4.6,
			ReviewCount: 73,
			HeroImage:   assets + "texture-linen-light.png",
			Tagline:     "Coastal California menus with refined seafood highlights.",
			Services:    []string{"Cocktail receptions", "Seated dinners", "Luxury events"},
			SampleMenu: []domain.MenuSection{
				{Title: "Coastal Starters", Items: []string{"Citrus crudo", "Smoked trout rillette", "Mini poke cones"}},
				{Title: "Main Course", Items: []string{"Miso-glazed cod", "Herb roasted chicken", "Summer market risotto"}},
			},
			Gallery: []string{assets + "chef.svg", assets + "pizza.svg", assets + "tomato.svg"},
			About:   "Harbor Collective curates ocean-forward menus with a minimal, elevated aesthetic and an emphasis on California freshness.",
		},
		{
			Slug:        "laurel-and-fork",
			Name:        "Laurel & Fork",
			City:        "Los Angeles",
			County:      "Los Angeles",
			Cuisines:    []string{"California", "Vegan"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.8,
			ReviewCount: 210,
			HeroImage:   assets + "basil.svg",
			Tagline:     "Plant-forward feasts crafted for stylish LA gatherings.",
			Services:    []string{"Private events", "Film sets", "Wellness retreats"},
			SampleMenu: []domain.MenuSection{
				{Title: "Seasonal Table", Items: []string{"Charred broccoli with chili oil", "Citrus quinoa salad", "Herb flatbread"}},
				{Title: "Comfort Classics", Items: []string{"Miso glazed tofu", "Crispy potato pavé", "Roasted carrots"}},
			},
			Gallery: []string{assets + "basil.svg", assets + "texture-linen-light.png", assets + "pizza.svg"},
			About:   "Laurel & Fork focuses on vibrant seasonal produce, modern plating, and a soft, elevated feel for gatherings of any size.",
		},
		{
			Slug:        "golden-coast-smokehouse",
			Name:        "Golden Coast Smokehouse",
			City:        "Pasadena",
			County:      "Los Angeles",
			Cuisines:    []string{"BBQ"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.5,
			ReviewCount: 95,
			HeroImage:   assets + "pizza.svg",
			Tagline:     "Slow-smoked classics with a California twist.",
			Services:    []string{"Backyard events", "Corporate lunches", "Festival-style service"},
			SampleMenu: []domain.MenuSection{
				{Title: "Smokehouse Favorites", Items: []string{"Oak-smoked brisket", "Citrus pulled pork", "Honey cornbread"}},
				{Title: "Sides", Items: []string{"Charred corn salad", "Smoky baked beans", "Pickled slaw"}},
			},
			Gallery: []string{assets + "pizza.svg", assets + "tomato.svg", assets + "texture-linen-light.png"},
			About:   "Golden Coast Smokehouse delivers bold, slow-cooked flavors with refined service and a warm, laid-back style.",
		},
		{
			Slug:        "marigold-banquet",
			Name:        "Marigold Banquet",
			City:        "Santa Monica",
			County:      "Los Angeles",
			Cuisines:    []string{"Mediterranean", "California"},
			PriceTier:   domain.PricePremium,
			Rating:      4.9,
			ReviewCount: 132,
			HeroImage:   assets + "tomato.svg",
			Tagline:     "Golden hour menus designed for coastal celebrations.",
			Services:    []string{"Weddings", "Brand events", "Chef-driven tastings"},
			SampleMenu: []domain.MenuSection{
				{Title: "Bright Plates", Items: []string{"Grilled halloumi", "Cucumber herb salad", "Lemon olive oil cake"}},
				{Title: "Mains", Items: []string{"Harissa chicken", "Seared salmon", "Wild mushroom pilaf"}},
			},
			Gallery: []string{assets + "tomato.svg", assets + "basil.svg", assets + "chef.svg"},
			About:   "Marigold Banquet pairs Mediterranean flavors with a refined coastal sensibility for memorable event dining.",
		},
		{
			Slug:        "rosewood-feast",
			Name:        "Rosewood Feast Co.",
			City:        "Glendale",
			County:      "Los Angeles",
			Cuisines:    []string{"Middle Eastern", "Mediterranean"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.7,
			ReviewCount: 76,
			HeroImage:   assets + "basil.svg",
			Tagline:     "Lush mezze spreads with modern presentation.",
			Services:    []string{"Private dinners", "Corporate catering", "Family-style feasts"},
			SampleMenu: []domain.MenuSection{
				{Title: "Shared Bites", Items: []string{"Pomegranate labneh", "Sumac roasted carrots", "Warm pita"}},
				{Title: "Mains", Items: []string{"Lamb kofta", "Herbed chicken skewers", "Saffron rice"}},
			},
			Gallery: []string{assets + "basil.svg", assets + "texture-linen-light.png", assets + "pizza.svg"},
			About:   "Rosewood Feast creates abundant tablescapes inspired by Levantine flavors, designed for sharing.",
		},
		{
			Slug:        "bayside-gatherings",
			Name:        "Bayside Gatherings",
			City:        "San Diego",
			County:      "San Diego",
			Cuisines:    []string{"California", "Seafood"},
			PriceTier:   domain.PricePremium,
			Rating:      4.8,
			ReviewCount: 111,
			HeroImage:   assets + "texture-linen-light.png",
			Tagline:     "Elevated coastal dining for intimate celebrations.",
			Services:    []string{"Weddings", "Oceanfront events", "Private chefs"},
			SampleMenu: []domain.MenuSection{
				{Title: "Coastal First Course", Items: []string{"Citrus shrimp cocktail", "Avocado crudo", "Sea salt focaccia"}},
				{Title: "Main Plates", Items: []string{"Seared seabass", "Herb roasted chicken", "Truffle gnocchi"}},
			},
			Gallery: []string{assets + "chef.svg", assets + "tomato.svg", assets + "basil.svg"},
			About:   "Bayside Gatherings mixes fresh ocean flavors with a luxe, minimal aesthetic for elevated events.",
		},
		{
			Slug:        "salt-and-fig",
			Name:        "Salt & Fig",
			City:        "La Jolla",
			County:      "San Diego",
			Cuisines:    []string{"Mediterranean", "Dessert"},
			PriceTier:   domain.PricePremium,
			Rating:      4.9,
			ReviewCount: 67,
			HeroImage:   assets + "basil.svg",
			Tagline:     "Mediterranean spreads finished with a dessert bar.",
			Services:    []string{"Private dinners", "Dessert stations", "Chef tables"},
			SampleMenu: []domain.MenuSection{
				{Title: "Sweet + Savory", Items: []string{"Fig & honey crostini", "Olive oil cake", "Citrus panna cotta"}},
				{Title: "Dinner", Items: []string{"Saffron risotto", "Grilled lamb chops", "Seasonal vegetables"}},
			},
			Gallery: []string{assets + "basil.svg", assets + "tomato.svg", assets + "texture-linen-light.png"},
			About:   "Salt & Fig brings a chef-driven Mediterranean table with a signature dessert experience.",
		},
		{
			Slug:        "mesa-roja-events",
			Name:        "Mesa Roja Events",
			City:        "Chula Vista",
			County:      "San Diego",
			Cuisines:    []string{"Mexican", "BBQ"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.6,
			ReviewCount: 59,
			HeroImage:   assets + "tomato.svg",
			Tagline:     "Fire-grilled menus with vibrant SoCal energy.",
			Services:    []string{"Outdoor events", "Taco bars", "Corporate lunches"},
			SampleMenu: []domain.MenuSection{
				{Title: "Grill Station", Items: []string{"Adobo chicken", "Carne asada", "Grilled pineapple"}},
				{Title: "Sides", Items: []string{"Street corn", "Cilantro rice", "Black bean salad"}},
			},
			Gallery: []string{assets + "tomato.svg", assets + "pizza.svg", assets + "basil.svg"},
			About:   "Mesa Roja pairs smoke and spice with warm hospitality, perfect for energetic gatherings.",
		},
		{
			Slug:        "greenline-catering",
			Name:        "Greenline Catering",
			City:        "Encinitas",
			County:      "San Diego",
			Cuisines:    []string{"Vegan", "California"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.7,
			ReviewCount: 52,
			HeroImage:   assets + "basil.svg",
			Tagline:     "Fresh, plant-based menus for coastal celebrations.",
			Services:    []string{"Wellness events", "Private dinners", "Corporate catering"},
			SampleMenu: []domain.MenuSection{
				{Title: "Garden Table", Items: []string{"Citrus fennel salad", "Herb quinoa bowls", "Sesame tofu"}},
				{Title: "Sweet Finish", Items: []string{"Lemon tart", "Seasonal fruit board", "Almond cookies"}},
			},
			Gallery: []string{assets + "basil.svg", assets + "tomato.svg", assets + "texture-linen-light.png"},
			About:   "Greenline delivers vibrant, plant-forward menus with an easygoing coastal vibe.",
		},
		{
			Slug:        "harborlight-social",
			Name:        "Harborlight Social",
			City:        "Long Beach",
			County:      "Los Angeles",
			Cuisines:    []string{"California", "Dessert"},
			PriceTier:   domain.PriceModerate,
			Rating:      4.6,
			ReviewCount: 84,
			HeroImage:   assets + "texture-linen-light.png",
			Tagline:     "Modern California menus with a polished dessert finale.",
			Services:    []string{"Brand activations", "Seated dinners", "Dessert bars"},
			SampleMenu: []domain.MenuSection{
				{Title: "Light Plates", Items: []string{"Citrus shrimp cups", "Market veg skewers", "Herb focaccia"}},
				{Title: "Dessert", Items: []string{"Vanilla bean panna cotta", "Berry tarts", "Salted caramel bites"}},
			},
			Gallery: []string{assets + "texture-linen-light.png", assets + "basil.svg", assets + "tomato.svg"},
			About:   "Harborlight Social crafts airy, modern menus with a signature dessert moment for celebrations.",
		},
	}
}
