// Package entity contains the core business objects of the directory.
package entity

import "time"

// Business is the registration record for one directory listing.
// Every field except ID is optional; historical records frequently
// carry only a name and a ZIP code.
type Business struct {
	ID              string        `json:"id"`
	BusinessName    string        `json:"businessName,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Address         string        `json:"address,omitempty"`
	City            string        `json:"city,omitempty"`
	State           string        `json:"state,omitempty"`
	Zip             string        `json:"zip,omitempty"`
	PrimaryCategory string        `json:"primaryCategory,omitempty"`
	Categories      []CategoryRef `json:"categories,omitempty"`
	IsDemo          bool          `json:"isDemo,omitempty"`
	IsPlaceholder   bool          `json:"isPlaceholder,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// CategoryPaths returns every subcategory path the business has selected,
// whitespace-trimmed, in stored order.
func (b *Business) CategoryPaths() []string {
	paths := make([]string, 0, len(b.Categories))
	for _, ref := range b.Categories {
		if p := ref.Path(); p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}
