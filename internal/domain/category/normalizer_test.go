package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AliasesShareCanonicalName(t *testing.T) {
	inputs := []string{
		"mortuaryServices",
		"mortuary-services",
		"funeral-services",
		"Funeral Services",
		"FUNERAL SERVICES",
		"Mortuary Services",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			n := Normalize(input)
			assert.Equal(t, "Mortuary Services", n.CanonicalName)
		})
	}
}

func TestNormalize_AliasesShareKeyVariants(t *testing.T) {
	// Every alias of one category must expand to the same variant set so
	// the resolver unions identical index keys regardless of which
	// spelling a page used.
	base := Normalize("funeral-services")
	other := Normalize("Mortuary Services")

	assert.ElementsMatch(t, base.KeyVariants, other.KeyVariants)
}

func TestNormalize_VariantsIncludeEverySpelling(t *testing.T) {
	n := Normalize("funeral-services")

	for _, want := range []string{
		"Mortuary Services",
		"mortuary services",
		"MortuaryServices",
		"mortuary-services",
		"mortuary_services",
		"funeral-services",
		"funeralServices",
		"Funeral Services",
	} {
		assert.Contains(t, n.KeyVariants, want)
	}
}

func TestNormalize_UnknownInputDerivesMechanically(t *testing.T) {
	n := Normalize("Scuba Lessons")

	assert.Equal(t, "Scuba Lessons", n.CanonicalName)
	assert.Equal(t, []string{
		"Scuba Lessons",
		"scuba lessons",
		"ScubaLessons",
		"scubalessons",
		"Scuba-Lessons",
		"scuba-lessons",
		"Scuba_Lessons",
		"scuba_lessons",
	}, n.KeyVariants)
}

func TestNormalize_AlwaysReturnsAtLeastOneVariant(t *testing.T) {
	tests := []string{"", "   ", "x", "already-kebab"}

	for _, input := range tests {
		n := Normalize(input)
		assert.NotEmpty(t, n.KeyVariants, "input %q", input)
	}
}

func TestNormalize_NoDuplicateVariants(t *testing.T) {
	n := Normalize("home-services")

	seen := make(map[string]struct{}, len(n.KeyVariants))
	for _, variant := range n.KeyVariants {
		_, dup := seen[variant]
		assert.False(t, dup, "duplicate variant %q", variant)
		seen[variant] = struct{}{}
	}
}
