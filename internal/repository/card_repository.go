package repository

import (
	"context"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type CardRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Card, error)
}
