package questionbank

// Category identifiers as shown to the customer. Order matters: it is the
// display order on the category selection step.
const (
	CategoryAnts        = "Ants (Carpenter, Argentine, Odorous, etc.)"
	CategorySpiders     = "Spiders"
	CategoryEarwigs     = "Earwigs"
	CategorySilverfish  = "Silverfish"
	CategoryBeetles     = "Beetles (Carpet, Weevils, etc.)"
	CategoryCockroaches = "Cockroaches (German, Oriental, American, Turkish)"
	CategoryFoodPests   = "Stored Food Pests (e.g., Indian Meal Moths)"
	CategoryRodents     = "Rodents (Rats, Mice)"
	CategoryGophers     = "Gophers"
	CategoryMoles       = "Moles"
	CategoryBees        = "Bees"
	CategoryWasps       = "Wasps"
	CategoryYellowJkts  = "Yellow Jackets"
)

var categoryOrder = []string{
	CategoryAnts,
	CategorySpiders,
	CategoryEarwigs,
	CategorySilverfish,
	CategoryBeetles,
	CategoryCockroaches,
	CategoryFoodPests,
	CategoryRodents,
	CategoryGophers,
	CategoryMoles,
	CategoryBees,
	CategoryWasps,
	CategoryYellowJkts,
}

var categoryQuestions = map[string][]Question{
	CategoryAnts: {
		{
			ID:     2,
			Prompt: "Have you observed ants crawling along visible trails (e.g., walls, floors, counters)?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     3,
			Prompt: "Where have you seen ants most frequently?",
			Options: []Option{
				{Value: "kitchen", Label: "Kitchen"},
				{Value: "bathroom", Label: "Bathroom"},
				{Value: "bedroom", Label: "Bedroom"},
				{Value: "living", Label: "Living areas"},
			},
		},
		{
			ID:     4,
			Prompt: "Are you seeing large numbers of ants, or just a few at a time?",
			Options: []Option{
				{Value: "hundreds", Label: "Large numbers (hundreds)"},
				{Value: "few", Label: "A few ants at a time"},
				{Value: "occasional", Label: "Only occasional sightings"},
			},
		},
		{
			ID:     5,
			Prompt: "Have you noticed any damage to wood or structures in your home?",
			Options: []Option{
				{Value: "yes_damage", Label: "Yes, visible holes or damage to wood"},
				{Value: "no_damage", Label: "No, I haven't seen damage"},
			},
		},
		{
			ID:     6,
			Prompt: "Have you noticed any nests or piles of sawdust?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	},
	CategorySpiders: {
		{
			ID:     2,
			Prompt: "Have you noticed spider webs in corners or hidden areas of your home?",
			Options: []Option{
				{Value: "often", Label: "Yes, often"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "no_webs", Label: "No webs found"},
			},
		},
		{
			ID:     3,
			Prompt: "How many spiders have you observed?",
			Options: []Option{
				{Value: "several_large", Label: "Several large spiders"},
				{Value: "few_small", Label: "A few small spiders"},
				{Value: "one_two", Label: "Only one or two spiders"},
			},
		},
		{
			ID:     4,
			Prompt: "What areas have you seen spiders the most?",
			Options: []Option{
				{Value: "attic_basement", Label: "Attic / Basement"},
				{Value: "living_areas", Label: "Living areas (e.g., corners, behind furniture)"},
				{Value: "outside", Label: "Outside, near doors/windows"},
			},
		},
		{
			ID:     5,
			Prompt: "Are you seeing egg sacs or spiderlings (small spider babies)?",
			Options: []Option{
				{Value: "yes_sacs", Label: "Yes, I've seen sacs or babies"},
				{Value: "no_sacs", Label: "No, I haven't seen egg sacs or spiderlings"},
			},
		},
	},
	CategoryEarwigs: {
		{
			ID:     2,
			Prompt: "Have you noticed earwigs in damp, dark areas (e.g., bathrooms, kitchens, basements)?",
			Options: []Option{
				{Value: "often", Label: "Yes, often"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     3,
			Prompt: "Have you found earwigs in or around potted plants or under debris?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "How many earwigs are you seeing at a time?",
			Options: []Option{
				{Value: "several", Label: "Several"},
				{Value: "one_two", Label: "One or two"},
				{Value: "none", Label: "No visible pests"},
			},
		},
	},
	CategorySilverfish: {
		{
			ID:     2,
			Prompt: "Are you noticing silverfish in bathrooms, kitchens, or basements?",
			Options: []Option{
				{Value: "often", Label: "Yes, often"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     3,
			Prompt: "Have you noticed damage to books, wallpaper, or fabrics?",
			Options: []Option{
				{Value: "yes_damage", Label: "Yes, I've seen holes or damage"},
				{Value: "no_damage", Label: "No damage"},
			},
		},
		{
			ID:     4,
			Prompt: "How often are you seeing silverfish?",
			Options: []Option{
				{Value: "daily", Label: "Daily or multiple times per week"},
				{Value: "occasionally", Label: "Occasionally (once a week or less)"},
				{Value: "rarely", Label: "Rarely or never"},
			},
		},
	},
	CategoryBeetles: {
		{
			ID:     2,
			Prompt: "Have you noticed beetles in carpets, fabrics, or stored food?",
			Options: []Option{
				{Value: "carpets", Label: "Yes, in carpets/fabrics"},
				{Value: "food", Label: "Yes, in stored food"},
				{Value: "both", Label: "Both areas"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     3,
			Prompt: "Have you seen larvae or damage to materials?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "How frequently are you seeing beetles?",
			Options: []Option{
				{Value: "daily", Label: "Daily"},
				{Value: "weekly", Label: "Weekly"},
				{Value: "rarely", Label: "Rarely"},
			},
		},
	},
	CategoryCockroaches: {
		{
			ID:     2,
			Prompt: "How often are you seeing cockroaches?",
			Options: []Option{
				{Value: "daily", Label: "Daily or multiple times per day"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "rarely", Label: "Rarely"},
			},
		},
		{
			ID:     3,
			Prompt: "Have you noticed any cockroach droppings or egg cases?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "Where have you observed the cockroaches?",
			Options: []Option{
				{Value: "kitchen", Label: "Kitchen (food, counters, cabinets)"},
				{Value: "bathroom", Label: "Bathroom"},
				{Value: "appliances", Label: "Behind appliances, under sinks"},
				{Value: "living", Label: "Living areas (e.g., bedrooms)"},
			},
		},
		{
			ID:     5,
			Prompt: "Have you noticed any musty odors in areas where roaches are active?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	},
	CategoryFoodPests: {
		{
			ID:     2,
			Prompt: "Have you noticed moths or larvae in dry food items (e.g., flour, grains, cereal)?",
			Options: []Option{
				{Value: "yes_in_food", Label: "Yes, I've seen them in food"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     3,
			Prompt: "Are you noticing any webbing or damage to food packaging?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "Have you thrown away any infested food recently?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	},
	CategoryRodents: {
		{
			ID:     2,
			Prompt: "How often are you hearing scurrying or scratching noises, especially at night?",
			Options: []Option{
				{Value: "every_night", Label: "Every night or often"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "never", Label: "Never heard anything"},
			},
		},
		{
			ID:     3,
			Prompt: "Have you observed rodent droppings or gnaw marks around your home?",
			Options: []Option{
				{Value: "multiple_places", Label: "Yes, in multiple places"},
				{Value: "one_area", Label: "Only in one area"},
				{Value: "no_signs", Label: "No visible signs"},
			},
		},
		{
			ID:     4,
			Prompt: "Where have you seen rodents the most?",
			Options: []Option{
				{Value: "kitchen", Label: "Kitchen or pantry"},
				{Value: "attic_basement", Label: "Attic, basement, or crawl space"},
				{Value: "living", Label: "Living areas (under furniture, behind walls)"},
			},
		},
		{
			ID:     5,
			Prompt: "Have you noticed any nests or burrows?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	},
	CategoryGophers: {
		{
			ID:     2,
			Prompt: "Have you noticed mounds or tunnels in your yard, garden, or lawn?",
			Options: []Option{
				{Value: "multiple", Label: "Yes, multiple mounds"},
				{Value: "one_two", Label: "Only one or two"},
				{Value: "no_mounds", Label: "No mounds"},
			},
		},
		{
			ID:     3,
			Prompt: "Do you notice damage to plants, roots, or underground structures?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "Have you seen burrowing activity or noticed gophers?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	},
	CategoryMoles: {
		{
			ID:     2,
			Prompt: "Have you noticed raised tunnels or mounds in your lawn?",
			Options: []Option{
				{Value: "multiple", Label: "Yes, multiple tunnels/mounds"},
				{Value: "few", Label: "Only a few"},
				{Value: "none", Label: "No tunnels or mounds"},
			},
		},
		{
			ID:     3,
			Prompt: "Is there damage to your lawn or garden from tunneling?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
		{
			ID:     4,
			Prompt: "Have you actually seen moles or just the damage?",
			Options: []Option{
				{Value: "seen_moles", Label: "I've seen moles"},
				{Value: "just_damage", Label: "Just the damage"},
			},
		},
	},
	CategoryBees:       stingingInsectQuestions("bees"),
	CategoryWasps:      stingingInsectQuestions("wasps"),
	CategoryYellowJkts: stingingInsectQuestions("yellow jackets"),
}

// Bees, wasps and yellow jackets share the same question shape, differing
// only in the insect name inside each prompt.
func stingingInsectQuestions(insect string) []Question {
	return []Question{
		{
			ID:     2,
			Prompt: "Have you noticed " + insect + " nests near your home or property?",
			Options: []Option{
				{Value: "yes_near", Label: "Yes, near windows, roof, or eaves"},
				{Value: "no_nests", Label: "No, I haven't seen any nests"},
			},
		},
		{
			ID:     3,
			Prompt: "Are you seeing " + insect + " flying around frequently?",
			Options: []Option{
				{Value: "frequently", Label: "Yes, frequently"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "no", Label: "No, not seen any"},
			},
		},
		{
			ID:     4,
			Prompt: "Have you been stung or noticed aggressive behavior from the " + insect + "?",
			Options: []Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	}
}
