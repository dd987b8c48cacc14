// Package impl contains the concrete use-case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"directory/config"
	"directory/internal/domain/category"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/servicearea"
	"directory/internal/errors"
	"directory/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type directoryService struct {
	businessRepo repository.BusinessRepository
	indexRepo    repository.CategoryIndexRepository
	adDesignRepo repository.AdDesignRepository
	areaRepo     repository.ServiceAreaRepository
	matcher      servicearea.Matcher
	workers      int
	logger       *slog.Logger
}

// NewDirectoryService creates the category resolution service.
func NewDirectoryService(
	businessRepo repository.BusinessRepository,
	indexRepo repository.CategoryIndexRepository,
	adDesignRepo repository.AdDesignRepository,
	areaRepo repository.ServiceAreaRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	directoryCfg := cfg.Directory
	if directoryCfg == nil {
		directoryCfg = &config.DirectoryConfig{ResolveWorkers: 8}
	}

	workers := directoryCfg.ResolveWorkers
	if workers <= 0 {
		workers = 8
	}

	return &directoryService{
		businessRepo: businessRepo,
		indexRepo:    indexRepo,
		adDesignRepo: adDesignRepo,
		areaRepo:     areaRepo,
		matcher:      servicearea.NewMatcher(servicearea.MissingDataPolicy(directoryCfg.MissingServiceAreaPolicy)),
		workers:      workers,
		logger:       logger,
	}
}

// ResolveCategory resolves one category page: key variants, index union,
// optional subcategory-path and ZIP filters, and ad-design enrichment.
// Store failures along the way degrade to partial results; the only
// error this returns is for an empty category identifier.
func (s *directoryService) ResolveCategory(ctx context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
	categoryID := strings.TrimSpace(input.CategoryID)
	if categoryID == "" {
		return nil, domainerrors.ErrCategoryRequired
	}

	requestedPath := ""
	indexID := categoryID
	if category.IsPath(categoryID) {
		requestedPath = categoryID
		indexID = category.RootSegment(categoryID)
	}

	normalization := category.Normalize(indexID)
	candidateIDs := s.collectCandidates(ctx, normalization.KeyVariants)

	// Independent read-only fetches; bounded concurrency, result order
	// follows candidate order regardless of completion order.
	results := make([]*entity.DisplayBusiness, len(candidateIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for i, businessID := range candidateIDs {
		group.Go(func() error {
			results[i] = s.resolveBusiness(groupCtx, businessID, requestedPath, input.Zip)

			return nil
		})
	}
	// Workers absorb their own failures, so Wait only reflects context
	// cancellation through the fetches themselves.
	_ = group.Wait()

	businesses := make([]*entity.DisplayBusiness, 0, len(results))
	for _, display := range results {
		if display != nil {
			businesses = append(businesses, display)
		}
	}

	return &usecase.CategoryPage{
		CanonicalName: normalization.CanonicalName,
		Businesses:    businesses,
	}, nil
}

// collectCandidates unions the business-ID sets stored under every key
// variant, deduplicating while preserving first-seen order. A failed
// variant lookup contributes an empty set.
func (s *directoryService) collectCandidates(ctx context.Context, keyVariants []string) []string {
	seen := make(map[string]struct{})
	var candidateIDs []string

	for _, variant := range keyVariants {
		members, err := s.indexRepo.Members(ctx, variant)
		if err != nil {
			s.logger.Warn("category index lookup failed, skipping variant",
				slog.String("key", variant),
				slog.Any("error", err))

			continue
		}
		for _, id := range members {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			candidateIDs = append(candidateIDs, id)
		}
	}

	return candidateIDs
}

// resolveBusiness runs one candidate through the path filter, the
// service-area matcher, and enrichment. It returns nil when the business
// is filtered out or could not be read; no failure here ever fails the
// page.
func (s *directoryService) resolveBusiness(ctx context.Context, businessID, requestedPath, zip string) *entity.DisplayBusiness {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			s.logger.Debug("indexed business has no record",
				slog.String("business_id", businessID))
		} else {
			s.logger.Warn("business fetch failed, skipping",
				slog.String("business_id", businessID),
				slog.Any("error", err))
		}

		return nil
	}

	if requestedPath != "" && !category.MatchesPath(business.CategoryPaths(), requestedPath) {
		return nil
	}

	if zip != "" && !s.matcher.ServesZip(s.serviceAreaFacts(ctx, business), zip) {
		return nil
	}

	return entity.Enrich(business, s.adDesign(ctx, businessID))
}

// serviceAreaFacts assembles the matcher input from the stored record
// plus the registration ZIP fallback. A failed or absent record leaves
// only the fallback.
func (s *directoryService) serviceAreaFacts(ctx context.Context, business *entity.Business) servicearea.Facts {
	facts := servicearea.Facts{PrimaryZip: business.Zip}

	area, err := s.areaRepo.FindServiceAreaByBusiness(ctx, business.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrServiceAreaNotFound) {
			s.logger.Warn("service area fetch failed, using registration ZIP",
				slog.String("business_id", business.ID),
				slog.Any("error", err))
		}

		return facts
	}

	facts.Nationwide = area.Nationwide
	facts.ZipCodes = area.ZipCodes

	return facts
}

// adDesign fetches the override record; failures degrade to
// registration-only enrichment.
func (s *directoryService) adDesign(ctx context.Context, businessID string) *entity.AdDesign {
	adDesign, err := s.adDesignRepo.FindAdDesignByBusiness(ctx, businessID)
	if err != nil {
		if !errors.Is(err, repository.ErrAdDesignNotFound) {
			s.logger.Warn("ad design fetch failed, enriching from registration data",
				slog.String("business_id", businessID),
				slog.Any("error", err))
		}

		return nil
	}

	return adDesign
}
