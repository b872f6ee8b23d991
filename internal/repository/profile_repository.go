package repository

import (
	"context"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int, limit, offset int) ([]*domain.Profile, error)
	CountByUserID(ctx context.Context, userID int) (int, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
