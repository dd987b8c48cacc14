package entity

import "time"

// AdDesign is the display override record a business edits through its
// ad-design flow. Fields here take precedence over the registration
// record for presentation only; the registration record is never mutated.
type AdDesign struct {
	BusinessID   string         `json:"businessId"`
	BusinessName string         `json:"businessName,omitempty"`
	City         string         `json:"city,omitempty"`
	State        string         `json:"state,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Design       map[string]any `json:"design,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
