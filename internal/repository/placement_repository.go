package repository

import (
	"context"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type PlacementRepository interface {
	Create(ctx context.Context, placement *domain.Placement) error
	GetByID(ctx context.Context, id int) (*domain.Placement, error)
	// GetOwner resolves the placement's owning user via its parent profile.
	GetOwner(ctx context.Context, id int) (int, error)
	ExistsAt(ctx context.Context, profileID, cardID, pageIndex, rowIndex, colIndex int) (bool, error)
	Update(ctx context.Context, id int, patch *domain.PlacementPatch) (*domain.Placement, error)
	Delete(ctx context.Context, id int) error
	ListByProfile(ctx context.Context, profileID int) ([]*domain.PlacementCard, error)
}
