package questionbank

// Tier names used as recommendation keys. These mirror the severity tiers
// produced by pkg/severity; the bank stays decoupled from the scorer.
const (
	TierModerate = "Moderate"
	TierHigh     = "High"
	TierSevere   = "Severe"
)

var categoryRecommendations = map[string]map[string][]string{
	CategoryAnts: {
		TierModerate: {
			"Seal Entry Points: Seal cracks, gaps, and crevices around windows, doors, and walls where ants are entering.",
			"Use Ant Baits: Place ant bait or gel in areas where ants are most active (e.g., kitchen, bathroom). The ants will carry the bait back to the nest.",
		},
		TierHigh: {
			"Seal Entry Points: Seal cracks, gaps, and crevices around windows, doors, and walls where ants are entering.",
			"Use Ant Baits: Place ant bait or gel in areas where ants are most active (e.g., kitchen, bathroom). The ants will carry the bait back to the nest.",
			"Professional Treatment: Consider professional ant control for persistent infestations.",
		},
		TierSevere: {
			"Immediate Professional Treatment: Contact a pest control professional immediately for severe ant infestations.",
			"Structural Inspection: Have your property inspected for structural damage, especially with carpenter ants.",
		},
	},
	CategorySpiders: {
		TierModerate: {
			"Vacuum Webs Regularly: Regularly vacuum spider webs, especially in corners, ceilings, and other hidden areas.",
			"Remove Clutter: Clear clutter in dark areas (e.g., closets, basements), as spiders often nest in undisturbed places.",
		},
		TierHigh: {
			"Vacuum Webs Regularly: Regularly vacuum spider webs, especially in corners, ceilings, and other hidden areas.",
			"Remove Clutter: Clear clutter in dark areas (e.g., closets, basements), as spiders often nest in undisturbed places.",
			"Seal Entry Points: Seal cracks and gaps where spiders may enter your home.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe spider infestations.",
			"Species Identification: Have spiders identified to determine if they are dangerous species.",
		},
	},
	CategoryEarwigs: {
		TierModerate: {
			"Reduce Moisture: Earwigs are attracted to moisture, so fix any leaks in bathrooms, kitchens, or basements.",
			"Remove Hiding Spots: Clear leaves, mulch, and other debris around the foundation of your home where earwigs may hide.",
		},
		TierHigh: {
			"Reduce Moisture: Earwigs are attracted to moisture, so fix any leaks in bathrooms, kitchens, or basements.",
			"Remove Hiding Spots: Clear leaves, mulch, and other debris around the foundation of your home where earwigs may hide.",
			"Perimeter Treatment: Apply diatomaceous earth around entry points.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe earwig infestations.",
		},
	},
	CategorySilverfish: {
		TierModerate: {
			"Reduce Humidity: Use a dehumidifier in damp areas (bathrooms, basements) to lower humidity, which attracts silverfish.",
			"Store Food Properly: Store dry foods like grains and flour in airtight containers.",
		},
		TierHigh: {
			"Reduce Humidity: Use a dehumidifier in damp areas (bathrooms, basements) to lower humidity, which attracts silverfish.",
			"Store Food Properly: Store dry foods like grains and flour in airtight containers.",
			"Seal Cracks: Seal cracks and crevices where silverfish may hide.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe silverfish infestations.",
		},
	},
	CategoryBeetles: {
		TierModerate: {
			"Vacuum Regularly: Vacuum carpets, floors, furniture, and other places where beetles may be hiding or laying eggs.",
			"Store Dry Goods Properly: If dealing with weevils or other food pests, store dry food in airtight containers.",
			"Wash Fabric Items: Wash blankets, curtains, and rugs in hot water to kill larvae and eggs.",
		},
		TierHigh: {
			"Vacuum Regularly: Vacuum carpets, floors, furniture, and other places where beetles may be hiding or laying eggs.",
			"Store Dry Goods Properly: If dealing with weevils or other food pests, store dry food in airtight containers.",
			"Wash Fabric Items: Wash blankets, curtains, and rugs in hot water to kill larvae and eggs.",
			"Professional Treatment: Consider professional beetle control for persistent infestations.",
		},
		TierSevere: {
			"Immediate Professional Treatment: Contact a pest control professional immediately for severe beetle infestations.",
		},
	},
	CategoryCockroaches: {
		TierModerate: {
			"Clean Regularly: Cockroaches are attracted to food and grease, so clean kitchen counters, floors, and under appliances daily.",
			"Set Traps: Use cockroach traps or gel bait in areas where you've seen activity.",
			"Fix Leaks: Cockroaches are attracted to moisture, so fix any leaks in pipes or faucets.",
		},
		TierHigh: {
			"Clean Regularly: Cockroaches are attracted to food and grease, so clean kitchen counters, floors, and under appliances daily.",
			"Set Traps: Use cockroach traps or gel bait in areas where you've seen activity.",
			"Fix Leaks: Cockroaches are attracted to moisture, so fix any leaks in pipes or faucets.",
			"Professional Baiting: Consider professional-grade baiting systems for persistent problems.",
		},
		TierSevere: {
			"Immediate Professional Treatment: Contact a pest control professional immediately for severe cockroach infestations.",
			"Health Risk Assessment: Cockroaches can spread diseases - immediate action required.",
		},
	},
	CategoryFoodPests: {
		TierModerate: {
			"Inspect and Discard Infested Food: Check all food products in your pantry, especially grains and dried fruits, for signs of infestation. Discard any infested items.",
			"Store Food Properly: Store all dry food products in airtight containers to prevent pests from accessing them.",
			"Vacuum and Clean: Vacuum pantry shelves and surrounding areas to remove larvae, eggs, and webs.",
		},
		TierHigh: {
			"Inspect and Discard Infested Food: Check all food products in your pantry, especially grains and dried fruits, for signs of infestation. Discard any infested items.",
			"Store Food Properly: Store all dry food products in airtight containers to prevent pests from accessing them.",
			"Vacuum and Clean: Vacuum pantry shelves and surrounding areas to remove larvae, eggs, and webs.",
			"Pheromone Traps: Use pheromone traps to monitor and control adult moths.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe stored food pest infestations.",
			"Complete Pantry Overhaul: May require complete cleaning and replacement of all stored food items.",
		},
	},
	CategoryRodents: {
		TierModerate: {
			"Seal Entry Points: Use steel wool or caulk to seal cracks around windows, doors, and foundation, where rodents can enter.",
			"Set Traps: Use snap traps, live traps, or bait stations along walls and pathways where rodents travel.",
			"Remove Food Sources: Store food in sealed containers, and clean up crumbs or spills immediately.",
			"Remove Clutter: Clear clutter in attics, basements, and under furniture where rodents can nest.",
		},
		TierHigh: {
			"Seal Entry Points: Use steel wool or caulk to seal cracks around windows, doors, and foundation, where rodents can enter.",
			"Set Traps: Use snap traps, live traps, or bait stations along walls and pathways where rodents travel.",
			"Remove Food Sources: Store food in sealed containers, and clean up crumbs or spills immediately.",
			"Remove Clutter: Clear clutter in attics, basements, and under furniture where rodents can nest.",
			"Professional Baiting: Consider professional rodent control programs.",
		},
		TierSevere: {
			"Immediate Professional Treatment: Contact a pest control professional immediately for severe rodent infestations.",
			"Health and Safety Assessment: Rodents can spread diseases and cause structural damage - immediate action required.",
		},
	},
	CategoryGophers: {
		TierModerate: {
			"Set Traps: Use gopher traps in active tunnels or burrows.",
			"Create Barriers: Install underground barriers (e.g., wire mesh) to prevent gophers from digging under fences or gardens.",
		},
		TierHigh: {
			"Set Traps: Use gopher traps in active tunnels or burrows.",
			"Create Barriers: Install underground barriers (e.g., wire mesh) to prevent gophers from digging under fences or gardens.",
			"Professional Baiting: Consider professional gopher control programs.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe gopher infestations.",
		},
	},
	CategoryMoles: {
		TierModerate: {
			"Set Traps: Use mole traps in active tunnels or burrows.",
			"Create Barriers: Install underground barriers to prevent moles from accessing certain areas.",
		},
		TierHigh: {
			"Set Traps: Use mole traps in active tunnels or burrows.",
			"Create Barriers: Install underground barriers to prevent moles from accessing certain areas.",
			"Professional Treatment: Consider professional mole control for extensive damage.",
		},
		TierSevere: {
			"Professional Treatment: Contact a pest control professional for severe mole infestations.",
		},
	},
	CategoryBees:       stingingInsectRecommendations("bee", "bee hives or swarms"),
	CategoryWasps:      stingingInsectRecommendations("wasp", "wasp nests"),
	CategoryYellowJkts: stingingInsectRecommendations("yellow jacket", "yellow jacket nests"),
}

func stingingInsectRecommendations(insect, hazard string) map[string][]string {
	return map[string][]string{
		TierModerate: {
			"For your safety and the safety of others, we recommend contacting a professional for " + insect + " removal.",
			"Do not attempt to remove " + hazard + " yourself.",
		},
		TierHigh: {
			"For your safety and the safety of others, we recommend contacting a professional for " + insect + " removal immediately.",
			"Avoid the area where " + insect + "s are active.",
		},
		TierSevere: {
			"IMMEDIATE PROFESSIONAL TREATMENT REQUIRED: Contact a pest control professional immediately for " + insect + " removal.",
			"Do not approach " + hazard + " - serious safety risk.",
		},
	}
}
