package repository

import (
	"context"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type UserRepository interface {
	GetActiveByID(ctx context.Context, id int) (*domain.User, error)
}
