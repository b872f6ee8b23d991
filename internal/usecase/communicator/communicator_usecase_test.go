package communicator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type fakeProfileRepo struct {
	profiles   []*domain.Profile
	nextID     int
	lastLimit  int
	lastOffset int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{nextID: 1}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	profile.ID = r.nextID
	r.nextID++
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	stored := *profile
	r.profiles = append(r.profiles, &stored)
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

// GetByUserID returns newest first, as the query orders by created_at DESC.
func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID, limit, offset int) ([]*domain.Profile, error) {
	r.lastLimit = limit
	r.lastOffset = offset

	var mine []*domain.Profile
	for i := len(r.profiles) - 1; i >= 0; i-- {
		if r.profiles[i].UserID == userID {
			mine = append(mine, r.profiles[i])
		}
	}
	if offset >= len(mine) {
		return nil, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, nil
}

func (r *fakeProfileRepo) CountByUserID(ctx context.Context, userID int) (int, error) {
	count := 0
	for _, p := range r.profiles {
		if p.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	for i, p := range r.profiles {
		if p.ID == profile.ID {
			profile.UpdatedAt = time.Now()
			stored := *profile
			r.profiles[i] = &stored
			return nil
		}
	}
	return domain.ErrProfileNotFound
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedProfiles(t *testing.T, uc *CommunicatorUseCase, userID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := uc.Create(context.Background(), userID, &CreateCommunicatorRequest{Name: "Board"})
		require.NoError(t, err)
	}
}

func TestListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("returns caller's boards with total", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())
		seedProfiles(t, uc, 10, 3)
		seedProfiles(t, uc, 20, 2)

		result, err := uc.ListMine(ctx, 10, 1, 10)

		require.NoError(t, err)
		assert.Len(t, result.Communicators, 3)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
	})

	t.Run("offset follows page", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())
		seedProfiles(t, uc, 10, 5)

		result, err := uc.ListMine(ctx, 10, 3, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, repo.lastLimit)
		assert.Equal(t, 4, repo.lastOffset)
		assert.Len(t, result.Communicators, 1)
		assert.Equal(t, 5, result.Total)
	})

	t.Run("empty page is a list, not null", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())

		result, err := uc.ListMine(ctx, 10, 1, 10)

		require.NoError(t, err)
		assert.NotNil(t, result.Communicators)
		assert.Empty(t, result.Communicators)
	})

	t.Run("bad pagination falls back to defaults", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())

		result, err := uc.ListMine(ctx, 10, 0, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
	})
}

func TestListByEmail(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 10, Email: "pat@example.com"}

	t.Run("matches case-insensitively and equals ListMine", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())
		seedProfiles(t, uc, 10, 3)

		mine, err := uc.ListMine(ctx, 10, 1, 10)
		require.NoError(t, err)

		byEmail, err := uc.ListByEmail(ctx, user, "Pat@Example.COM", 1, 10)
		require.NoError(t, err)

		assert.Equal(t, mine, byEmail)
	})

	t.Run("someone else's email is forbidden", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())

		_, err := uc.ListByEmail(ctx, user, "other@example.com", 1, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	repo := newFakeProfileRepo()
	uc := NewCommunicatorUseCase(repo, testLogger())

	profile, err := uc.Create(ctx, 10, &CreateCommunicatorRequest{Name: "Daily needs"})

	require.NoError(t, err)
	assert.NotZero(t, profile.ID)
	assert.Equal(t, 10, profile.UserID)
	assert.Equal(t, "Daily needs", profile.DisplayName)
	assert.Equal(t, "grid", profile.LayoutType)
	assert.False(t, profile.IsPublic)
}

func TestUpdateCommunicator(t *testing.T) {
	ctx := context.Background()

	t.Run("renames owned board", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())
		created, err := uc.Create(ctx, 10, &CreateCommunicatorRequest{Name: "Old"})
		require.NoError(t, err)

		updated, err := uc.Update(ctx, 10, created.ID, &UpdateCommunicatorRequest{Name: "New"})

		require.NoError(t, err)
		assert.Equal(t, "New", updated.DisplayName)
	})

	t.Run("unknown board", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())

		_, err := uc.Update(ctx, 10, 99, &UpdateCommunicatorRequest{Name: "New"})
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("someone else's board", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCommunicatorUseCase(repo, testLogger())
		created, err := uc.Create(ctx, 10, &CreateCommunicatorRequest{Name: "Mine"})
		require.NoError(t, err)

		_, err = uc.Update(ctx, 20, created.ID, &UpdateCommunicatorRequest{Name: "Stolen"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
