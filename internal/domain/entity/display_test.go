package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich_AdDesignOverridesRegistration(t *testing.T) {
	business := &Business{
		ID:           "biz-1",
		BusinessName: "Acme",
		City:         "Canton",
		State:        "OH",
		Phone:        "330-555-0100",
		Zip:          "44718",
	}
	adDesign := &AdDesign{
		BusinessID:   "biz-1",
		BusinessName: "Acme Plumbing Co",
		Phone:        "330-555-0199",
	}

	display := Enrich(business, adDesign)

	assert.Equal(t, "Acme Plumbing Co", display.DisplayName)
	assert.Equal(t, "330-555-0199", display.DisplayPhone)
	// Fields without overrides keep the registration values.
	assert.Equal(t, "Canton", display.DisplayCity)
	assert.Equal(t, "OH", display.DisplayState)
	assert.Equal(t, "Canton, OH", display.DisplayLocation)
}

func TestEnrich_NoAdDesignFallsBackToRegistration(t *testing.T) {
	business := &Business{
		ID:           "biz-1",
		BusinessName: "Acme",
		City:         "Canton",
	}

	display := Enrich(business, nil)

	assert.Equal(t, "Acme", display.DisplayName)
	assert.Equal(t, "Canton", display.DisplayLocation)
}

func TestEnrich_NameFallback(t *testing.T) {
	display := Enrich(&Business{ID: "biz-1"}, nil)

	assert.Equal(t, FallbackBusinessName, display.DisplayName)
}

func TestEnrich_EmptyOverrideDoesNotClearRegistration(t *testing.T) {
	business := &Business{ID: "biz-1", BusinessName: "Acme"}
	adDesign := &AdDesign{BusinessID: "biz-1", BusinessName: ""}

	display := Enrich(business, adDesign)

	assert.Equal(t, "Acme", display.DisplayName)
}

func TestEnrich_DisplayLocationComposition(t *testing.T) {
	tests := []struct {
		name     string
		business Business
		want     string
	}{
		{name: "city and state", business: Business{City: "Canton", State: "OH"}, want: "Canton, OH"},
		{name: "city only", business: Business{City: "Canton"}, want: "Canton"},
		{name: "state only", business: Business{State: "OH"}, want: "OH"},
		{name: "zip only", business: Business{Zip: "44718"}, want: "Zip: 44718"},
		{name: "nothing", business: Business{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := Enrich(&tt.business, nil)
			assert.Equal(t, tt.want, display.DisplayLocation)
		})
	}
}

func TestEnrich_IsPure(t *testing.T) {
	business := &Business{ID: "biz-1", BusinessName: "Acme"}
	adDesign := &AdDesign{BusinessID: "biz-1", BusinessName: "Acme Plumbing Co"}

	Enrich(business, adDesign)

	assert.Equal(t, "Acme", business.BusinessName)
	assert.Equal(t, "Acme Plumbing Co", adDesign.BusinessName)
}
