package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

// uniqueViolation is the postgres error code raised by the composite
// unique index on (profile_id, card_id, page_index, row_index, col_index).
const uniqueViolation = "23505"

type placementRepository struct {
	db *sqlx.DB
}

func NewPlacementRepository(db *sqlx.DB) repository.PlacementRepository {
	return &placementRepository{db: db}
}

func (r *placementRepository) Create(ctx context.Context, placement *domain.Placement) error {
	query := `
		INSERT INTO profile_cards (profile_id, card_id, row_index, col_index, page_index, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		placement.ProfileID, placement.CardID,
		placement.RowIndex, placement.ColIndex, placement.PageIndex,
		placement.IsVisible,
	).Scan(&placement.ID, &placement.CreatedAt, &placement.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrPlacementExists
		}
		return err
	}
	return nil
}

func (r *placementRepository) GetByID(ctx context.Context, id int) (*domain.Placement, error) {
	var placement domain.Placement
	query := `
		SELECT id, profile_id, card_id, row_index, col_index, page_index, is_visible,
		       created_at, updated_at
		FROM profile_cards WHERE id = $1
	`
	err := r.db.GetContext(ctx, &placement, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlacementNotFound
		}
		return nil, err
	}
	return &placement, nil
}

func (r *placementRepository) GetOwner(ctx context.Context, id int) (int, error) {
	var ownerID int
	query := `
		SELECT p.user_id
		FROM profile_cards pc
		INNER JOIN profiles p ON pc.profile_id = p.id
		WHERE pc.id = $1
	`
	err := r.db.GetContext(ctx, &ownerID, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrPlacementNotFound
		}
		return 0, err
	}
	return ownerID, nil
}

func (r *placementRepository) ExistsAt(ctx context.Context, profileID, cardID, pageIndex, rowIndex, colIndex int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM profile_cards
			WHERE profile_id = $1 AND card_id = $2 AND page_index = $3 AND row_index = $4 AND col_index = $5
		)
	`
	err := r.db.GetContext(ctx, &exists, query, profileID, cardID, pageIndex, rowIndex, colIndex)
	return exists, err
}

func (r *placementRepository) Update(ctx context.Context, id int, patch *domain.PlacementPatch) (*domain.Placement, error) {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if patch.RowIndex != nil {
		updates = append(updates, fmt.Sprintf("row_index = $%d", argCount))
		args = append(args, *patch.RowIndex)
		argCount++
	}
	if patch.ColIndex != nil {
		updates = append(updates, fmt.Sprintf("col_index = $%d", argCount))
		args = append(args, *patch.ColIndex)
		argCount++
	}
	if patch.PageIndex != nil {
		updates = append(updates, fmt.Sprintf("page_index = $%d", argCount))
		args = append(args, *patch.PageIndex)
		argCount++
	}
	if patch.IsVisible != nil {
		updates = append(updates, fmt.Sprintf("is_visible = $%d", argCount))
		args = append(args, *patch.IsVisible)
		argCount++
	}
	if len(updates) == 0 {
		return nil, domain.ErrNoFields
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE profile_cards SET %s WHERE id = $%d
		RETURNING id, profile_id, card_id, row_index, col_index, page_index, is_visible,
		          created_at, updated_at
	`, strings.Join(updates, ", "), argCount)

	var placement domain.Placement
	err := r.db.GetContext(ctx, &placement, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlacementNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrPlacementExists
		}
		return nil, err
	}
	return &placement, nil
}

func (r *placementRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM profile_cards WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPlacementNotFound
	}
	return nil
}

func (r *placementRepository) ListByProfile(ctx context.Context, profileID int) ([]*domain.PlacementCard, error) {
	var cards []*domain.PlacementCard
	query := `
		SELECT pc.id, pc.profile_id, pc.card_id, pc.row_index, pc.col_index, pc.page_index, pc.is_visible,
		       c.title, c.label_text, c.image_path, c.audio_path, c.image_url, c.sound_url,
		       c.text_color, c.background_color, c.category, c.card_data
		FROM profile_cards pc
		INNER JOIN cards c ON pc.card_id = c.id
		WHERE pc.profile_id = $1
		ORDER BY pc.page_index, pc.row_index, pc.col_index
	`
	err := r.db.SelectContext(ctx, &cards, query, profileID)
	return cards, err
}
