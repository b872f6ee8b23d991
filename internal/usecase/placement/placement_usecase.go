package placement

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

type PlacementUseCase struct {
	placementRepo repository.PlacementRepository
	profileRepo   repository.ProfileRepository
	cardRepo      repository.CardRepository
	log           *logrus.Logger
}

func NewPlacementUseCase(
	placementRepo repository.PlacementRepository,
	profileRepo repository.ProfileRepository,
	cardRepo repository.CardRepository,
	log *logrus.Logger,
) *PlacementUseCase {
	return &PlacementUseCase{
		placementRepo: placementRepo,
		profileRepo:   profileRepo,
		cardRepo:      cardRepo,
		log:           log,
	}
}

// AddPlacementRequest places a card into a profile's grid. Position fields
// default to the top-left cell of the first page.
type AddPlacementRequest struct {
	ProfileID int   `json:"profile_id"`
	CardID    int   `json:"card_id"`
	RowIndex  int   `json:"row_index"`
	ColIndex  int   `json:"col_index"`
	PageIndex int   `json:"page_index"`
	IsVisible *bool `json:"is_visible"`
}

// Add places a card into a profile owned by userID. The exact
// (profile, card, page, row, col) tuple must not already be occupied.
func (uc *PlacementUseCase) Add(ctx context.Context, userID int, req *AddPlacementRequest) (*domain.Placement, error) {
	profile, err := uc.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, err
		}
		uc.log.WithError(err).WithField("profile_id", req.ProfileID).Error("failed to load profile")
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if !profile.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	if _, err := uc.cardRepo.GetByID(ctx, req.CardID); err != nil {
		if err == domain.ErrCardNotFound {
			return nil, err
		}
		uc.log.WithError(err).WithField("card_id", req.CardID).Error("failed to load card")
		return nil, fmt.Errorf("failed to load card: %w", err)
	}

	exists, err := uc.placementRepo.ExistsAt(ctx, req.ProfileID, req.CardID, req.PageIndex, req.RowIndex, req.ColIndex)
	if err != nil {
		uc.log.WithError(err).Error("failed to check placement position")
		return nil, fmt.Errorf("failed to check placement position: %w", err)
	}
	if exists {
		return nil, domain.ErrPlacementExists
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	placement := &domain.Placement{
		ProfileID: req.ProfileID,
		CardID:    req.CardID,
		RowIndex:  req.RowIndex,
		ColIndex:  req.ColIndex,
		PageIndex: req.PageIndex,
		IsVisible: isVisible,
	}

	// The unique index still backstops concurrent identical inserts that
	// slip past the ExistsAt check.
	if err := uc.placementRepo.Create(ctx, placement); err != nil {
		if err == domain.ErrPlacementExists {
			return nil, err
		}
		uc.log.WithError(err).WithFields(logrus.Fields{
			"profile_id": req.ProfileID,
			"card_id":    req.CardID,
		}).Error("failed to create placement")
		return nil, fmt.Errorf("failed to create placement: %w", err)
	}

	return placement, nil
}

// Update applies a partial position/visibility change to a placement owned
// by userID. At least one field must be present.
func (uc *PlacementUseCase) Update(ctx context.Context, userID, id int, patch *domain.PlacementPatch) (*domain.Placement, error) {
	ownerID, err := uc.placementRepo.GetOwner(ctx, id)
	if err != nil {
		if err == domain.ErrPlacementNotFound {
			return nil, err
		}
		uc.log.WithError(err).WithField("placement_id", id).Error("failed to resolve placement owner")
		return nil, fmt.Errorf("failed to resolve placement owner: %w", err)
	}

	if ownerID != userID {
		return nil, domain.ErrForbidden
	}

	if patch.IsEmpty() {
		return nil, domain.ErrNoFields
	}

	placement, err := uc.placementRepo.Update(ctx, id, patch)
	if err != nil {
		switch err {
		case domain.ErrPlacementNotFound, domain.ErrPlacementExists, domain.ErrNoFields:
			return nil, err
		}
		uc.log.WithError(err).WithField("placement_id", id).Error("failed to update placement")
		return nil, fmt.Errorf("failed to update placement: %w", err)
	}

	return placement, nil
}

// Remove deletes a placement owned by userID. Deleting an id that does not
// exist reports not-found rather than success.
func (uc *PlacementUseCase) Remove(ctx context.Context, userID, id int) error {
	ownerID, err := uc.placementRepo.GetOwner(ctx, id)
	if err != nil {
		if err == domain.ErrPlacementNotFound {
			return err
		}
		uc.log.WithError(err).WithField("placement_id", id).Error("failed to resolve placement owner")
		return fmt.Errorf("failed to resolve placement owner: %w", err)
	}

	if ownerID != userID {
		return domain.ErrForbidden
	}

	if err := uc.placementRepo.Delete(ctx, id); err != nil {
		if err == domain.ErrPlacementNotFound {
			return err
		}
		uc.log.WithError(err).WithField("placement_id", id).Error("failed to delete placement")
		return fmt.Errorf("failed to delete placement: %w", err)
	}

	return nil
}

// ListForProfile returns every placement of a profile joined with card
// display fields, in reading order: page, then row, then column. The caller
// must own the profile or the profile must be public.
func (uc *PlacementUseCase) ListForProfile(ctx context.Context, userID, profileID int) ([]*domain.PlacementCard, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, err
		}
		uc.log.WithError(err).WithField("profile_id", profileID).Error("failed to load profile")
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if !profile.Readable(userID) {
		return nil, domain.ErrForbidden
	}

	cards, err := uc.placementRepo.ListByProfile(ctx, profileID)
	if err != nil {
		uc.log.WithError(err).WithField("profile_id", profileID).Error("failed to list placements")
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}

	if cards == nil {
		cards = []*domain.PlacementCard{}
	}
	return cards, nil
}
