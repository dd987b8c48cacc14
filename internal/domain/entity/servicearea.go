package entity

import "time"

// ServiceArea is the stored service-area record for one business.
// At most one representation is authoritative at a time: the nationwide
// flag wins over the explicit ZIP set, and an absent record means the
// business's single registration ZIP is the implicit service area.
type ServiceArea struct {
	BusinessID string    `json:"businessId"`
	Nationwide bool      `json:"nationwide,omitempty"`
	ZipCodes   []string  `json:"zipCodes,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
