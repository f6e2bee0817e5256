package catalog

import "tripatlas/models"

// Embedded catalog for the Meghalaya destination brand. The Mongo repository
// seeds its collections from these tables when they are empty; the in-memory
// repository serves them directly. Catalog order matters: the fallback path
// returns the first entries as listed here.

// SeedPlans returns the plan templates in catalog order.
func SeedPlans() []models.PlanTemplate {
	return []models.PlanTemplate{
		{
			ID:               "nature-ultimate",
			CategoryTag:      "nature",
			Flagship:         true,
			Title:            "Ultimate Meghalaya Explorer",
			BaseDurationDays: 7,
			Difficulty:       models.DifficultyModerate,
			Destinations: []models.Destination{
				{Name: "Shillong", Classification: models.DestPrimary, Coordinates: "25.5788,91.8933", Highlights: []string{"Ward's Lake", "Police Bazar", "Cafe culture"}},
				{Name: "Cherrapunji", Classification: models.DestPrimary, Coordinates: "25.2841,91.7210", Highlights: []string{"Nohkalikai Falls", "Mawsmai Cave", "Seven Sisters Falls"}},
				{Name: "Dawki", Classification: models.DestSecondary, Coordinates: "25.1865,92.0240", Highlights: []string{"Umngot river boating", "Crystal clear waters"}},
				{Name: "Mawlynnong", Classification: models.DestSecondary, Coordinates: "25.2031,91.9160", Highlights: []string{"Asia's cleanest village", "Sky view tower"}},
				{Name: "Krang Suri", Classification: models.DestHiddenGem, Coordinates: "25.3466,92.2133", Highlights: []string{"Blue lagoon waterfall", "Swimming"}},
			},
			Highlights: []string{
				"Living root bridge trek at Nongriat",
				"Boating on the transparent Umngot",
				"Sunset at Laitlum canyons",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 40, "transport": 25, "meals": 20, "activities": 10, "guide": 5,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Arrival in Shillong", Activities: []string{"Airport pickup", "Ward's Lake walk", "Police Bazar evening"}},
				{Day: 2, Title: "Shillong to Cherrapunji", Activities: []string{"Laitlum canyons", "Nohkalikai Falls", "Eco-park"}},
				{Day: 3, Title: "Living Root Bridges", Activities: []string{"Nongriat trek", "Double decker bridge", "Natural pools"}},
				{Day: 4, Title: "Caves and Falls", Activities: []string{"Mawsmai Cave", "Seven Sisters Falls", "Garden of Caves"}},
				{Day: 5, Title: "Dawki and Mawlynnong", Activities: []string{"Umngot boating", "Cleanest village walk", "Border viewpoint"}},
				{Day: 6, Title: "Krang Suri", Activities: []string{"Waterfall swim", "Jaintia Hills drive"}},
				{Day: 7, Title: "Departure", Activities: []string{"Local market", "Drop at Guwahati"}},
			},
			Seasonality: "October to May; monsoon for waterfall volume",
			Inclusions:  []string{"Accommodation", "Breakfast and dinner", "All transfers", "Entry tickets"},
			Exclusions:  []string{"Flights", "Lunch", "Personal expenses"},
			BestForTags: []string{"nature", "waterfalls", "photography", "couples"},
		},
		{
			ID:               "heritage-trails",
			CategoryTag:      "heritage",
			Title:            "Khasi & Jaintia Heritage Trails",
			BaseDurationDays: 5,
			Difficulty:       models.DifficultyRelaxed,
			Destinations: []models.Destination{
				{Name: "Shillong", Classification: models.DestPrimary, Coordinates: "25.5788,91.8933", Highlights: []string{"Don Bosco museum", "All Saints' Cathedral"}},
				{Name: "Smit", Classification: models.DestSecondary, Coordinates: "25.4559,91.9247", Highlights: []string{"Khasi royal heritage", "Traditional Iing Sad"}},
				{Name: "Nartiang", Classification: models.DestSecondary, Coordinates: "25.5631,92.2104", Highlights: []string{"Monolith park", "Durga temple"}},
				{Name: "Jowai", Classification: models.DestHiddenGem, Coordinates: "25.4432,92.1926", Highlights: []string{"Thadlaskein lake", "Jaintia ruins"}},
			},
			Highlights: []string{
				"Tallest monoliths of the Khasi-Jaintia hills",
				"Living traditions of the matrilineal clans",
				"Village markets and local weaves",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 45, "transport": 20, "meals": 20, "activities": 8, "guide": 7,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Shillong heritage walk", Activities: []string{"Don Bosco museum", "Cathedral", "Heritage club evening"}},
				{Day: 2, Title: "Smit royal village", Activities: []string{"Iing Sad visit", "Weaving demo"}},
				{Day: 3, Title: "Nartiang monoliths", Activities: []string{"Monolith park", "Durga temple", "Picnic lunch"}},
				{Day: 4, Title: "Jowai and around", Activities: []string{"Thadlaskein lake", "Local market"}},
				{Day: 5, Title: "Departure", Activities: []string{"Souvenir stop", "Drop at Guwahati"}},
			},
			Seasonality: "Year-round; festival season November",
			Inclusions:  []string{"Accommodation", "Breakfast", "Local guide", "All transfers"},
			Exclusions:  []string{"Flights", "Lunch and dinner", "Camera fees"},
			BestForTags: []string{"heritage", "culture", "families", "seniors"},
		},
		{
			ID:               "adventure-extreme",
			CategoryTag:      "adventure",
			Title:            "Caves & Canyons Expedition",
			BaseDurationDays: 6,
			Difficulty:       models.DifficultyExtreme,
			Destinations: []models.Destination{
				{Name: "Cherrapunji", Classification: models.DestPrimary, Coordinates: "25.2841,91.7210", Highlights: []string{"Multi-pitch rappelling", "Canyon trails"}},
				{Name: "Mawsynram", Classification: models.DestSecondary, Coordinates: "25.2975,91.5826", Highlights: []string{"Mawjymbuin cave", "Wettest place on earth"}},
				{Name: "Siju", Classification: models.DestHiddenGem, Coordinates: "25.3520,90.6840", Highlights: []string{"Siju cave system", "Bat cave chambers"}},
				{Name: "Kyllang Rock", Classification: models.DestHiddenGem, Coordinates: "25.6216,91.6566", Highlights: []string{"Granite dome climb"}},
			},
			Highlights: []string{
				"Technical caving in the Siju system",
				"Rappelling beside living root bridges",
				"Canyon swimming and cliff jumps",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 25, "transport": 20, "meals": 15, "activities": 30, "guide": 10,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Base camp Cherrapunji", Activities: []string{"Gear check", "Acclimatization hike"}},
				{Day: 2, Title: "Canyon day", Activities: []string{"Rappelling", "Canyon swim"}},
				{Day: 3, Title: "Mawsynram caves", Activities: []string{"Mawjymbuin cave", "Cave photography"}},
				{Day: 4, Title: "Siju expedition", Activities: []string{"Siju cave traverse", "Camping"}},
				{Day: 5, Title: "Kyllang Rock", Activities: []string{"Granite dome climb", "Summit views"}},
				{Day: 6, Title: "Return", Activities: []string{"Recovery morning", "Drop at Guwahati"}},
			},
			Seasonality: "November to April only; caves flood in monsoon",
			Inclusions:  []string{"Camping gear", "Safety equipment", "Expedition guides", "All meals"},
			Exclusions:  []string{"Flights", "Personal gear", "Insurance"},
			BestForTags: []string{"adventure", "caving", "trekking", "fitness"},
		},
		{
			ID:               "leisure-lakeside",
			CategoryTag:      "leisure",
			Title:            "Umiam Lakeside Retreat",
			BaseDurationDays: 4,
			Difficulty:       models.DifficultyRelaxed,
			Destinations: []models.Destination{
				{Name: "Umiam Lake", Classification: models.DestPrimary, Coordinates: "25.6521,91.8852", Highlights: []string{"Lakeside cottages", "Kayaking", "Sunset deck"}},
				{Name: "Shillong", Classification: models.DestSecondary, Coordinates: "25.5788,91.8933", Highlights: []string{"Cafe hopping", "Golf course"}},
			},
			Highlights: []string{
				"Slow mornings on the water",
				"Spa and bonfire evenings",
				"Optional day trips on request",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 55, "transport": 15, "meals": 20, "activities": 10,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Check-in and unwind", Activities: []string{"Lakeside lunch", "Sunset deck"}},
				{Day: 2, Title: "On the water", Activities: []string{"Kayaking", "Island picnic"}},
				{Day: 3, Title: "Shillong day", Activities: []string{"Cafe trail", "Evening bonfire"}},
				{Day: 4, Title: "Departure", Activities: []string{"Late checkout", "Drop at Guwahati"}},
			},
			Seasonality: "Year-round",
			Inclusions:  []string{"Cottage stay", "All meals", "Kayaking", "Bonfire"},
			Exclusions:  []string{"Flights", "Spa treatments", "Day trips"},
			BestForTags: []string{"relaxation", "couples", "families", "food"},
		},
		{
			ID:               "nature-waterfalls",
			CategoryTag:      "nature",
			Title:            "Waterfall Circuit",
			BaseDurationDays: 5,
			Difficulty:       models.DifficultyModerate,
			Destinations: []models.Destination{
				{Name: "Cherrapunji", Classification: models.DestPrimary, Coordinates: "25.2841,91.7210", Highlights: []string{"Nohkalikai Falls", "Dainthlen Falls"}},
				{Name: "Shillong", Classification: models.DestSecondary, Coordinates: "25.5788,91.8933", Highlights: []string{"Elephant Falls", "Sweet Falls"}},
				{Name: "Krang Suri", Classification: models.DestHiddenGem, Coordinates: "25.3466,92.2133", Highlights: []string{"Blue lagoon waterfall"}},
				{Name: "Phe Phe Falls", Classification: models.DestHiddenGem, Coordinates: "25.3927,92.3413", Highlights: []string{"Tiered falls", "Infinity pool ledge"}},
			},
			Highlights: []string{
				"Five major falls in full monsoon flow",
				"Short treks to hidden plunge pools",
				"Long-exposure photography sessions",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 35, "transport": 30, "meals": 20, "activities": 10, "guide": 5,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Shillong falls", Activities: []string{"Elephant Falls", "Sweet Falls"}},
				{Day: 2, Title: "Cherrapunji circuit", Activities: []string{"Nohkalikai", "Dainthlen", "Wei Sawdong"}},
				{Day: 3, Title: "Krang Suri", Activities: []string{"Waterfall swim", "Jaintia Hills drive"}},
				{Day: 4, Title: "Phe Phe Falls", Activities: []string{"Tiered falls trek", "Pool ledge"}},
				{Day: 5, Title: "Departure", Activities: []string{"Drop at Guwahati"}},
			},
			Seasonality: "June to October for peak flow",
			Inclusions:  []string{"Accommodation", "Breakfast", "All transfers", "Trek guides"},
			Exclusions:  []string{"Flights", "Lunch and dinner"},
			BestForTags: []string{"nature", "waterfalls", "photography", "monsoon"},
		},
		{
			ID:               "heritage-festivals",
			CategoryTag:      "heritage",
			Title:            "Festivals of the Hills",
			BaseDurationDays: 6,
			Difficulty:       models.DifficultyChallenging,
			Destinations: []models.Destination{
				{Name: "Shillong", Classification: models.DestPrimary, Coordinates: "25.5788,91.8933", Highlights: []string{"Shad Suk Mynsiem grounds", "Music scene"}},
				{Name: "Smit", Classification: models.DestSecondary, Coordinates: "25.4559,91.9247", Highlights: []string{"Nongkrem dance festival"}},
				{Name: "Tura", Classification: models.DestSecondary, Coordinates: "25.5140,90.2026", Highlights: []string{"Wangala hundred drums"}},
			},
			Highlights: []string{
				"Nongkrem dance at the royal village",
				"Hundred-drum Wangala in the Garo hills",
				"Home-hosted festival meals",
			},
			PriceBreakdownPct: map[string]int{
				"accommodation": 35, "transport": 30, "meals": 15, "activities": 12, "guide": 8,
			},
			Itinerary: []models.DayPlan{
				{Day: 1, Title: "Shillong arrival", Activities: []string{"Festival briefing", "Music cafe"}},
				{Day: 2, Title: "Smit festival day", Activities: []string{"Nongkrem dance", "Royal compound"}},
				{Day: 3, Title: "To the Garo hills", Activities: []string{"Long drive to Tura", "Village welcome"}},
				{Day: 4, Title: "Wangala", Activities: []string{"Hundred drums", "Festival feast"}},
				{Day: 5, Title: "Garo villages", Activities: []string{"Craft workshop", "Farewell dinner"}},
				{Day: 6, Title: "Departure", Activities: []string{"Drop at Guwahati"}},
			},
			Seasonality: "October to November festival window",
			Inclusions:  []string{"Accommodation", "All meals", "Festival passes", "All transfers"},
			Exclusions:  []string{"Flights", "Personal expenses"},
			BestForTags: []string{"heritage", "culture", "photography", "groups"},
		},
	}
}

// SeedCities returns the preferred-city registry.
func SeedCities() []models.City {
	return []models.City{
		{ID: 1, Name: "Shillong", Description: "The hill capital: lakes, cafes and colonial-era charm"},
		{ID: 2, Name: "Cherrapunji", Description: "Cloud-wrapped canyons and the great waterfalls"},
		{ID: 3, Name: "Dawki", Description: "The transparent Umngot river on the Bangladesh border"},
		{ID: 4, Name: "Mawlynnong", Description: "Asia's cleanest village and its sky walk"},
		{ID: 5, Name: "Jowai", Description: "Heart of the Jaintia hills, lakes and ruins"},
		{ID: 6, Name: "Tura", Description: "Gateway to the Garo hills and Nokrek peak"},
		{ID: 7, Name: "Mawsynram", Description: "The wettest place on earth"},
		{ID: 8, Name: "Nongriat", Description: "Village of the double-decker living root bridge"},
	}
}

// SeedAccommodationTypes returns the stay tiers. The cheapest tier has no
// surcharge; the "standard" upgrade adds 2000 per person.
func SeedAccommodationTypes() []models.AccommodationType {
	return []models.AccommodationType{
		{ID: "homestay", Label: "Traditional Homestay", Description: "Family-run Khasi homestays", Surcharge: 0},
		{ID: "standard", Label: "Standard Hotel", Description: "3-star hotels and lodges", Surcharge: 2000},
		{ID: "deluxe", Label: "Deluxe Resort", Description: "4-star resorts with views", Surcharge: 4000},
		{ID: "luxury", Label: "Luxury Boutique", Description: "Boutique stays and lake villas", Surcharge: 6500},
	}
}

// SeedAddOns returns the optional per-traveler enhancements.
func SeedAddOns() []models.AddOn {
	return []models.AddOn{
		{ID: "guide", Label: "Dedicated Guide", Description: "Private local guide for the full trip", Price: 1500},
		{ID: "photography", Label: "Photography Package", Description: "Professional shoot at two locations", Price: 2500},
		{ID: "transport", Label: "Private SUV", Description: "Upgrade from shared to private vehicle", Price: 2000},
		{ID: "meals", Label: "All Meals", Description: "Full board with local cuisine tastings", Price: 1200},
		{ID: "bonfire", Label: "Bonfire Evening", Description: "Campfire night with local musicians", Price: 800},
	}
}
