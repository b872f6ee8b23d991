package communicator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

// DeprecationNotice accompanies responses of the legacy byemail endpoint.
const DeprecationNotice = "GET /communicator/byemail/{email} is deprecated, use GET /communicator/my instead"

type CommunicatorUseCase struct {
	profileRepo repository.ProfileRepository
	log         *logrus.Logger
}

func NewCommunicatorUseCase(profileRepo repository.ProfileRepository, log *logrus.Logger) *CommunicatorUseCase {
	return &CommunicatorUseCase{
		profileRepo: profileRepo,
		log:         log,
	}
}

// ListResult is one page of a user's communicators.
type ListResult struct {
	Communicators []*domain.Profile `json:"communicators"`
	Total         int               `json:"total"`
	Page          int               `json:"page"`
	Limit         int               `json:"limit"`
}

// CreateCommunicatorRequest creates a new board for the caller.
type CreateCommunicatorRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description *string `json:"description"`
}

// UpdateCommunicatorRequest renames an existing board.
type UpdateCommunicatorRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description *string `json:"description"`
}

// ListMine returns the caller's communicators, newest first.
func (uc *CommunicatorUseCase) ListMine(ctx context.Context, userID, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	profiles, err := uc.profileRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("failed to list communicators")
		return nil, fmt.Errorf("failed to list communicators: %w", err)
	}

	total, err := uc.profileRepo.CountByUserID(ctx, userID)
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("failed to count communicators")
		return nil, fmt.Errorf("failed to count communicators: %w", err)
	}

	if profiles == nil {
		profiles = []*domain.Profile{}
	}

	return &ListResult{
		Communicators: profiles,
		Total:         total,
		Page:          page,
		Limit:         limit,
	}, nil
}

// ListByEmail is the deprecated alias of ListMine. The email reconstructed
// from the request path must belong to the caller; the result is the same
// page ListMine would return.
func (uc *CommunicatorUseCase) ListByEmail(ctx context.Context, user *domain.User, email string, page, limit int) (*ListResult, error) {
	if !strings.EqualFold(email, user.Email) {
		return nil, domain.ErrForbidden
	}

	uc.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   email,
	}).Warn("deprecated communicator byemail endpoint used")

	return uc.ListMine(ctx, user.ID, page, limit)
}

// Create persists a new communicator owned by the caller.
func (uc *CommunicatorUseCase) Create(ctx context.Context, userID int, req *CreateCommunicatorRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:      userID,
		DisplayName: req.Name,
		Description: req.Description,
		LayoutType:  "grid",
		Language:    "en",
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("failed to create communicator")
		return nil, fmt.Errorf("failed to create communicator: %w", err)
	}

	return profile, nil
}

// Update renames a communicator after verifying ownership.
func (uc *CommunicatorUseCase) Update(ctx context.Context, userID, id int, req *UpdateCommunicatorRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, err
		}
		uc.log.WithError(err).WithField("profile_id", id).Error("failed to load communicator")
		return nil, fmt.Errorf("failed to load communicator: %w", err)
	}

	if !profile.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	profile.DisplayName = req.Name
	if req.Description != nil {
		profile.Description = req.Description
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.log.WithError(err).WithField("profile_id", id).Error("failed to update communicator")
		return nil, fmt.Errorf("failed to update communicator: %w", err)
	}

	return profile, nil
}
