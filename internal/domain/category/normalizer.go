package category

import "strings"

// Normalization is the result of resolving a category identifier: the
// canonical display name plus every raw store key that must be checked
// to see the full category membership.
type Normalization struct {
	CanonicalName string
	KeyVariants   []string
}

// Normalize maps a category identifier in any historical spelling to its
// canonical display name and the deduplicated set of raw-key variants.
//
// Known spellings resolve through the alias table (case-insensitively);
// unknown inputs keep their own spelling as the canonical name and derive
// variants mechanically. The store is case-sensitive on keys, so both
// original-case and lowercase forms are always included. Normalize never
// fails: the input itself is always among the variants.
func Normalize(categoryID string) Normalization {
	input := strings.TrimSpace(categoryID)
	if input == "" {
		return Normalization{CanonicalName: "", KeyVariants: []string{""}}
	}

	if entry, ok := lookupAlias(input); ok {
		variants := newVariantSet()
		variants.add(deriveForms(entry.Canonical)...)
		for _, alias := range entry.Aliases {
			variants.add(deriveForms(alias)...)
		}
		variants.add(deriveForms(input)...)

		return Normalization{CanonicalName: entry.Canonical, KeyVariants: variants.list}
	}

	variants := newVariantSet()
	variants.add(deriveForms(input)...)

	return Normalization{CanonicalName: input, KeyVariants: variants.list}
}

// deriveForms produces the mechanical spellings of one identifier: as-is,
// lowercased, spaces stripped, kebab-case, and snake_case, each in both
// original and lowercase.
func deriveForms(s string) []string {
	lower := strings.ToLower(s)

	return []string{
		s,
		lower,
		strings.ReplaceAll(s, " ", ""),
		strings.ReplaceAll(lower, " ", ""),
		strings.ReplaceAll(s, " ", "-"),
		strings.ReplaceAll(lower, " ", "-"),
		strings.ReplaceAll(s, " ", "_"),
		strings.ReplaceAll(lower, " ", "_"),
	}
}

// variantSet deduplicates key variants while preserving first-seen order.
type variantSet struct {
	seen map[string]struct{}
	list []string
}

func newVariantSet() *variantSet {
	return &variantSet{seen: make(map[string]struct{})}
}

func (v *variantSet) add(variants ...string) {
	for _, variant := range variants {
		if variant == "" {
			continue
		}
		if _, ok := v.seen[variant]; ok {
			continue
		}
		v.seen[variant] = struct{}{}
		v.list = append(v.list, variant)
	}
}
