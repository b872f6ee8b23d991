package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, description, layout_type, language, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.DisplayName, profile.Description,
		profile.LayoutType, profile.Language, profile.IsPublic,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, user_id, display_name, description, layout_type, language, is_public,
		       created_at, updated_at
		FROM profiles WHERE id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int, limit, offset int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `
		SELECT id, user_id, display_name, description, layout_type, language, is_public,
		       created_at, updated_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &profiles, query, userID, limit, offset)
	return profiles, err
}

func (r *profileRepository) CountByUserID(ctx context.Context, userID int) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &total, query, userID)
	return total, err
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Description, profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}
