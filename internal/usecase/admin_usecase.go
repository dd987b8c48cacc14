package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
)

// BusinessDump is the raw multi-record view of one business for admin
// inspection: the registration record plus whatever related records
// exist. Absent records are nil, not errors.
type BusinessDump struct {
	Business    *entity.Business    `json:"business"`
	AdDesign    *entity.AdDesign    `json:"ad_design,omitempty"`
	ServiceArea *entity.ServiceArea `json:"service_area,omitempty"`
}

// PurgeReport describes what an admin purge actually touched.
type PurgeReport struct {
	BusinessID         string   `json:"business_id"`
	DeletedKeys        []string `json:"deleted_keys"`
	RemovedFromIndexes []string `json:"removed_from_indexes"`
}

// AdminUsecase defines the admin inspection and repair tools for the
// directory store.
type AdminUsecase interface {
	// InspectKeys lists raw store keys matching a glob pattern with
	// their value types.
	InspectKeys(ctx context.Context, pattern string) ([]repository.KeyInfo, error)

	// DumpBusiness returns the raw records for one business.
	DumpBusiness(ctx context.Context, id string) (*BusinessDump, error)

	// PurgeBusiness deletes a business's records and removes it from
	// every category index.
	PurgeBusiness(ctx context.Context, id string) (*PurgeReport, error)

	// StripCategory removes a business from every key variant of one
	// category and returns the keys it was removed from.
	StripCategory(ctx context.Context, businessID, categoryID string) ([]string, error)
}
