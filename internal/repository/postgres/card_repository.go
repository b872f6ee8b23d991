package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

type cardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) GetByID(ctx context.Context, id int) (*domain.Card, error) {
	var card domain.Card
	query := `
		SELECT id, title, label_text, image_path, audio_path, image_url, sound_url,
		       text_color, background_color, category, card_data, created_at, updated_at
		FROM cards WHERE id = $1
	`
	err := r.db.GetContext(ctx, &card, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}
