// Package category normalizes the many historical spellings of directory
// category keys and matches subcategory paths against business selections.
package category

import "strings"

// aliasEntry groups every known historical spelling of one category under
// its canonical display name. The store has accumulated camelCase ids,
// kebab-case slugs, snake_case keys, and human-readable titles for the
// same categories over several generations of page code; a business
// indexed under any of them belongs to the category.
type aliasEntry struct {
	Canonical string
	Aliases   []string
}

var aliasTable = []aliasEntry{
	{
		Canonical: "Mortuary Services",
		Aliases: []string{
			"mortuaryServices", "mortuary-services", "mortuary_services",
			"funeralServices", "funeral-services", "funeral_services",
			"Funeral Services",
		},
	},
	{
		Canonical: "Home, Lawn, and Manual Labor",
		Aliases: []string{
			"homeServices", "home-services", "home_services", "Home Services",
			"homeLawnLabor", "home-lawn-labor", "home_lawn_labor",
		},
	},
	{
		Canonical: "Automotive Services",
		Aliases: []string{
			"automotiveServices", "automotive-services", "automotive_services",
			"autoServices", "auto-services", "Auto Services",
		},
	},
	{
		Canonical: "Legal Services",
		Aliases: []string{
			"legalServices", "legal-services", "legal_services",
			"lawyers", "attorneys",
		},
	},
	{
		Canonical: "Medical Practitioners",
		Aliases: []string{
			"medicalPractitioners", "medical-practitioners", "medical_practitioners",
			"doctors", "physicians",
		},
	},
	{
		Canonical: "Financial Services",
		Aliases: []string{
			"financialServices", "financial-services", "financial_services",
			"finance",
		},
	},
	{
		Canonical: "Real Estate",
		Aliases: []string{
			"realEstate", "real-estate", "real_estate", "realestate", "realtors",
		},
	},
	{
		Canonical: "Beauty and Wellness",
		Aliases: []string{
			"beautyWellness", "beauty-wellness", "beauty_wellness",
			"beauty-and-wellness", "salons",
		},
	},
	{
		Canonical: "Pet Care",
		Aliases: []string{
			"petCare", "pet-care", "pet_care", "petServices", "pet-services",
		},
	},
	{
		Canonical: "Restaurants and Food Service",
		Aliases: []string{
			"restaurants", "foodService", "food-service", "food_service", "dining",
		},
	},
	{
		Canonical: "Technology and IT Services",
		Aliases: []string{
			"techServices", "tech-services", "tech_services",
			"itServices", "it-services", "technology",
		},
	},
	{
		Canonical: "Child Care and Education",
		Aliases: []string{
			"childCare", "child-care", "child_care", "childcare",
			"tutoring", "education",
		},
	},
}

// aliasIndex maps every lowercased known spelling (canonical names
// included) to its alias table entry.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]*aliasEntry {
	index := make(map[string]*aliasEntry)
	for i := range aliasTable {
		entry := &aliasTable[i]
		index[strings.ToLower(entry.Canonical)] = entry
		for _, alias := range entry.Aliases {
			index[strings.ToLower(alias)] = entry
		}
	}

	return index
}

// lookupAlias finds the alias table entry for a category identifier,
// matching case-insensitively.
func lookupAlias(categoryID string) (*aliasEntry, bool) {
	entry, ok := aliasIndex[strings.ToLower(strings.TrimSpace(categoryID))]

	return entry, ok
}
