package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"directory/internal/domain/category"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	indexRepo    repository.CategoryIndexRepository
	areaRepo     repository.ServiceAreaRepository
	logger       *slog.Logger
}

// NewBusinessService creates the registration and maintenance service.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	indexRepo repository.CategoryIndexRepository,
	areaRepo repository.ServiceAreaRepository,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		indexRepo:    indexRepo,
		areaRepo:     areaRepo,
		logger:       logger,
	}
}

// RegisterBusiness assigns an identifier, persists the registration
// record, indexes the business under the canonical key of every selected
// category, and stores the service area when one was provided.
func (s *businessService) RegisterBusiness(ctx context.Context, input *usecase.RegisterBusinessInput) (*entity.Business, error) {
	now := time.Now()
	business := &entity.Business{
		ID:              uuid.NewString(),
		BusinessName:    strings.TrimSpace(input.BusinessName),
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		City:            input.City,
		State:           input.State,
		Zip:             input.Zip,
		PrimaryCategory: strings.TrimSpace(input.PrimaryCategory),
		Categories:      toCategoryRefs(input.Categories),
		IsDemo:          input.IsDemo,
		IsPlaceholder:   input.IsPlaceholder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if business.PrimaryCategory == "" {
		return nil, domainerrors.ErrCategoryRequired
	}

	if err := s.businessRepo.CreateBusiness(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, domainerrors.ErrBusinessAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	if err := s.indexBusiness(ctx, business); err != nil {
		return nil, err
	}

	if input.Nationwide || len(input.ZipCodes) > 0 {
		area := &entity.ServiceArea{
			BusinessID: business.ID,
			Nationwide: input.Nationwide,
			UpdatedAt:  now,
		}
		if !input.Nationwide {
			area.ZipCodes = input.ZipCodes
		}
		if err := s.areaRepo.SaveServiceArea(ctx, area); err != nil {
			return nil, errors.Wrap(err, "failed to save service area")
		}
	}

	return business, nil
}

// GetBusiness retrieves a registration record by identifier.
func (s *businessService) GetBusiness(ctx context.Context, id string) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return business, nil
}

// UpdateBusiness applies the non-nil input fields and reconciles category
// index membership when selections changed: the business is removed from
// every key variant of its previous selections and re-indexed under the
// canonical key of the new ones.
func (s *businessService) UpdateBusiness(ctx context.Context, id string, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	previousSelections := s.selections(business)
	s.applyBusinessUpdates(business, input)

	if input.Categories != nil || input.PrimaryCategory != nil {
		if err := s.deindexSelections(ctx, business.ID, previousSelections); err != nil {
			return nil, err
		}
		if err := s.indexBusiness(ctx, business); err != nil {
			return nil, err
		}
	}

	if err := s.businessRepo.UpdateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// SetServiceArea replaces the stored service area. Nationwide wins over
// the ZIP list; clearing both deletes the record, reverting the business
// to its implicit registration-ZIP service area.
func (s *businessService) SetServiceArea(ctx context.Context, id string, input *usecase.ServiceAreaInput) error {
	if _, err := s.businessRepo.FindBusinessByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business by ID")
	}

	if !input.Nationwide && len(input.ZipCodes) == 0 {
		if err := s.areaRepo.DeleteServiceArea(ctx, id); err != nil {
			return errors.Wrap(err, "failed to clear service area")
		}

		return nil
	}

	area := &entity.ServiceArea{
		BusinessID: id,
		Nationwide: input.Nationwide,
		UpdatedAt:  time.Now(),
	}
	if !input.Nationwide {
		area.ZipCodes = input.ZipCodes
	}

	if err := s.areaRepo.SaveServiceArea(ctx, area); err != nil {
		return errors.Wrap(err, "failed to save service area")
	}

	return nil
}

// applyBusinessUpdates applies the update input to a business record.
func (s *businessService) applyBusinessUpdates(business *entity.Business, input *usecase.UpdateBusinessInput) {
	if input.BusinessName != nil {
		business.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.City != nil {
		business.City = *input.City
	}
	if input.State != nil {
		business.State = *input.State
	}
	if input.Zip != nil {
		business.Zip = *input.Zip
	}
	if input.PrimaryCategory != nil {
		business.PrimaryCategory = strings.TrimSpace(*input.PrimaryCategory)
	}
	if input.Categories != nil {
		business.Categories = toCategoryRefs(*input.Categories)
	}
	business.UpdatedAt = time.Now()
}

// selections returns the primary category plus every subcategory
// selection identifier on a business.
func (s *businessService) selections(business *entity.Business) []string {
	selections := make([]string, 0, len(business.Categories)+1)
	if business.PrimaryCategory != "" {
		selections = append(selections, business.PrimaryCategory)
	}

	return append(selections, business.CategoryPaths()...)
}

// indexBusiness adds the business to the canonical index key of every
// current selection. New writes always target the canonical key; the
// resolver still unions the historical variants on read.
func (s *businessService) indexBusiness(ctx context.Context, business *entity.Business) error {
	for _, selection := range s.selections(business) {
		key := canonicalIndexKey(selection)
		if err := s.indexRepo.AddMember(ctx, key, business.ID); err != nil {
			return errors.Wrapf(err, "failed to index business under %q", key)
		}
	}

	return nil
}

// deindexSelections removes the business from every key variant of the
// given selections.
func (s *businessService) deindexSelections(ctx context.Context, businessID string, selections []string) error {
	for _, selection := range selections {
		normalization := category.Normalize(category.RootSegment(selection))
		for _, variant := range normalization.KeyVariants {
			if _, err := s.indexRepo.RemoveMember(ctx, variant, businessID); err != nil {
				return errors.Wrapf(err, "failed to remove business from %q", variant)
			}
		}
	}

	return nil
}

// canonicalIndexKey is the single key new index writes go to: the
// canonical name of the selection's root category, lowercased.
func canonicalIndexKey(selection string) string {
	normalization := category.Normalize(category.RootSegment(selection))

	return strings.ToLower(normalization.CanonicalName)
}

func toCategoryRefs(selections []string) []entity.CategoryRef {
	if len(selections) == 0 {
		return nil
	}

	refs := make([]entity.CategoryRef, 0, len(selections))
	for _, selection := range selections {
		if strings.TrimSpace(selection) == "" {
			continue
		}
		refs = append(refs, entity.NewCategoryRef(selection))
	}

	return refs
}
