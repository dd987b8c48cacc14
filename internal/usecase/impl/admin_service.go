package impl

import (
	"context"
	"log/slog"
	"strings"

	"directory/internal/domain/category"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"
)

type adminService struct {
	businessRepo repository.BusinessRepository
	indexRepo    repository.CategoryIndexRepository
	adDesignRepo repository.AdDesignRepository
	areaRepo     repository.ServiceAreaRepository
	inspector    repository.StoreInspector
	logger       *slog.Logger
}

// NewAdminService creates the store inspection and repair service.
func NewAdminService(
	businessRepo repository.BusinessRepository,
	indexRepo repository.CategoryIndexRepository,
	adDesignRepo repository.AdDesignRepository,
	areaRepo repository.ServiceAreaRepository,
	inspector repository.StoreInspector,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		businessRepo: businessRepo,
		indexRepo:    indexRepo,
		adDesignRepo: adDesignRepo,
		areaRepo:     areaRepo,
		inspector:    inspector,
		logger:       logger,
	}
}

// InspectKeys lists raw store keys matching the pattern with their value
// types. An empty pattern lists everything.
func (s *adminService) InspectKeys(ctx context.Context, pattern string) ([]repository.KeyInfo, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = "*"
	}

	keys, err := s.inspector.ListKeys(ctx, pattern)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	return keys, nil
}

// DumpBusiness returns the raw records for one business. The ad-design
// and service-area records are optional; only the registration record
// must exist.
func (s *adminService) DumpBusiness(ctx context.Context, id string) (*usecase.BusinessDump, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	dump := &usecase.BusinessDump{Business: business}

	adDesign, err := s.adDesignRepo.FindAdDesignByBusiness(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrAdDesignNotFound) {
		return nil, errors.Wrap(err, "failed to find ad design")
	}
	dump.AdDesign = adDesign

	area, err := s.areaRepo.FindServiceAreaByBusiness(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrServiceAreaNotFound) {
		return nil, errors.Wrap(err, "failed to find service area")
	}
	dump.ServiceArea = area

	return dump, nil
}

// PurgeBusiness removes every trace of a business: its document keys
// (found by pattern scan so orphaned records are caught too) and its
// membership in every category index. Purging works even when the
// registration record is already gone; that is exactly the repair case.
func (s *adminService) PurgeBusiness(ctx context.Context, id string) (*usecase.PurgeReport, error) {
	report := &usecase.PurgeReport{BusinessID: id}

	keys, err := s.inspector.ListKeys(ctx, "*"+id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan keys for purge")
	}

	if len(keys) > 0 {
		names := make([]string, 0, len(keys))
		for _, key := range keys {
			names = append(names, key.Key)
		}
		if _, err := s.inspector.DeleteKeys(ctx, names...); err != nil {
			return nil, errors.Wrap(err, "failed to delete business keys")
		}
		report.DeletedKeys = names
	}

	removedFrom, err := s.indexRepo.RemoveMemberEverywhere(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove business from category indexes")
	}
	report.RemovedFromIndexes = removedFrom

	s.logger.Info("purged business",
		slog.String("business_id", id),
		slog.Int("deleted_keys", len(report.DeletedKeys)),
		slog.Int("removed_from_indexes", len(report.RemovedFromIndexes)))

	return report, nil
}

// StripCategory removes a business from every key variant of one
// category and returns the keys it was actually removed from.
func (s *adminService) StripCategory(ctx context.Context, businessID, categoryID string) ([]string, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, domainerrors.ErrCategoryRequired
	}

	normalization := category.Normalize(category.RootSegment(categoryID))

	var removedFrom []string
	for _, variant := range normalization.KeyVariants {
		removed, err := s.indexRepo.RemoveMember(ctx, variant, businessID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to remove business from %q", variant)
		}
		if removed {
			removedFrom = append(removedFrom, variant)
		}
	}

	return removedFrom, nil
}
