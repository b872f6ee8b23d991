package placement

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID, limit, offset int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) CountByUserID(ctx context.Context, userID int) (int, error) {
	return 0, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) error { return nil }

type fakeCardRepo struct {
	cards map[int]*domain.Card
}

func (r *fakeCardRepo) GetByID(ctx context.Context, id int) (*domain.Card, error) {
	if c, ok := r.cards[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCardNotFound
}

type fakePlacementRepo struct {
	placements map[int]*domain.Placement
	owners     map[int]int
	nextID     int
	updated    int
	deleted    int
}

func newFakePlacementRepo() *fakePlacementRepo {
	return &fakePlacementRepo{
		placements: map[int]*domain.Placement{},
		owners:     map[int]int{},
		nextID:     1,
	}
}

func (r *fakePlacementRepo) Create(ctx context.Context, p *domain.Placement) error {
	for _, existing := range r.placements {
		if existing.ProfileID == p.ProfileID && existing.CardID == p.CardID &&
			existing.PageIndex == p.PageIndex && existing.RowIndex == p.RowIndex && existing.ColIndex == p.ColIndex {
			return domain.ErrPlacementExists
		}
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	stored := *p
	r.placements[p.ID] = &stored
	return nil
}

func (r *fakePlacementRepo) GetByID(ctx context.Context, id int) (*domain.Placement, error) {
	if p, ok := r.placements[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPlacementNotFound
}

func (r *fakePlacementRepo) GetOwner(ctx context.Context, id int) (int, error) {
	if _, ok := r.placements[id]; !ok {
		return 0, domain.ErrPlacementNotFound
	}
	return r.owners[id], nil
}

func (r *fakePlacementRepo) ExistsAt(ctx context.Context, profileID, cardID, pageIndex, rowIndex, colIndex int) (bool, error) {
	for _, p := range r.placements {
		if p.ProfileID == profileID && p.CardID == cardID &&
			p.PageIndex == pageIndex && p.RowIndex == rowIndex && p.ColIndex == colIndex {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlacementRepo) Update(ctx context.Context, id int, patch *domain.PlacementPatch) (*domain.Placement, error) {
	p, ok := r.placements[id]
	if !ok {
		return nil, domain.ErrPlacementNotFound
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoFields
	}
	if patch.RowIndex != nil {
		p.RowIndex = *patch.RowIndex
	}
	if patch.ColIndex != nil {
		p.ColIndex = *patch.ColIndex
	}
	if patch.PageIndex != nil {
		p.PageIndex = *patch.PageIndex
	}
	if patch.IsVisible != nil {
		p.IsVisible = *patch.IsVisible
	}
	p.UpdatedAt = time.Now()
	r.updated++
	return p, nil
}

func (r *fakePlacementRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.placements[id]; !ok {
		return domain.ErrPlacementNotFound
	}
	delete(r.placements, id)
	r.deleted++
	return nil
}

// ListByProfile mirrors the query's ORDER BY page_index, row_index, col_index.
func (r *fakePlacementRepo) ListByProfile(ctx context.Context, profileID int) ([]*domain.PlacementCard, error) {
	var cards []*domain.PlacementCard
	for _, p := range r.placements {
		if p.ProfileID != profileID {
			continue
		}
		cards = append(cards, &domain.PlacementCard{
			ID:        p.ID,
			ProfileID: p.ProfileID,
			CardID:    p.CardID,
			RowIndex:  p.RowIndex,
			ColIndex:  p.ColIndex,
			PageIndex: p.PageIndex,
			IsVisible: p.IsVisible,
		})
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].PageIndex != cards[j].PageIndex {
			return cards[i].PageIndex < cards[j].PageIndex
		}
		if cards[i].RowIndex != cards[j].RowIndex {
			return cards[i].RowIndex < cards[j].RowIndex
		}
		return cards[i].ColIndex < cards[j].ColIndex
	})
	return cards, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupUseCase() (*PlacementUseCase, *fakePlacementRepo) {
	profileRepo := &fakeProfileRepo{profiles: map[int]*domain.Profile{
		1: {ID: 1, UserID: 10},
		2: {ID: 2, UserID: 20, IsPublic: true},
		3: {ID: 3, UserID: 20},
	}}
	cardRepo := &fakeCardRepo{cards: map[int]*domain.Card{
		100: {ID: 100, Title: "Hello"},
		101: {ID: 101, Title: "Yes"},
	}}
	placementRepo := newFakePlacementRepo()
	return NewPlacementUseCase(placementRepo, profileRepo, cardRepo, testLogger()), placementRepo
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("creates placement with defaults", func(t *testing.T) {
		uc, _ := setupUseCase()

		p, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100})

		require.NoError(t, err)
		assert.Equal(t, 0, p.RowIndex)
		assert.Equal(t, 0, p.ColIndex)
		assert.Equal(t, 0, p.PageIndex)
		assert.True(t, p.IsVisible)
		assert.NotZero(t, p.ID)
	})

	t.Run("duplicate position conflicts", func(t *testing.T) {
		uc, _ := setupUseCase()
		req := &AddPlacementRequest{ProfileID: 1, CardID: 100, RowIndex: 2, ColIndex: 3, PageIndex: 1}

		_, err := uc.Add(ctx, 10, req)
		require.NoError(t, err)

		_, err = uc.Add(ctx, 10, req)
		assert.ErrorIs(t, err, domain.ErrPlacementExists)
	})

	t.Run("same card at different cell is allowed", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100, RowIndex: 0})
		require.NoError(t, err)

		_, err = uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100, RowIndex: 1})
		assert.NoError(t, err)
	})

	t.Run("unknown profile", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 99, CardID: 100})
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 3, CardID: 100})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown card", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 999})
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})

	t.Run("explicit hidden placement", func(t *testing.T) {
		uc, _ := setupUseCase()
		hidden := false

		p, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100, IsVisible: &hidden})

		require.NoError(t, err)
		assert.False(t, p.IsVisible)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc *PlacementUseCase) *domain.Placement {
		t.Helper()
		p, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100})
		require.NoError(t, err)
		return p
	}

	t.Run("applies only present fields", func(t *testing.T) {
		uc, repo := setupUseCase()
		p := seed(t, uc)
		repo.owners[p.ID] = 10
		row := 4

		updated, err := uc.Update(ctx, 10, p.ID, &domain.PlacementPatch{RowIndex: &row})

		require.NoError(t, err)
		assert.Equal(t, 4, updated.RowIndex)
		assert.Equal(t, 0, updated.ColIndex)
		assert.True(t, updated.IsVisible)
	})

	t.Run("empty patch rejected without mutation", func(t *testing.T) {
		uc, repo := setupUseCase()
		p := seed(t, uc)
		repo.owners[p.ID] = 10

		_, err := uc.Update(ctx, 10, p.ID, &domain.PlacementPatch{})

		assert.ErrorIs(t, err, domain.ErrNoFields)
		assert.Zero(t, repo.updated)
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, repo := setupUseCase()
		p := seed(t, uc)
		repo.owners[p.ID] = 10
		row := 1

		_, err := uc.Update(ctx, 20, p.ID, &domain.PlacementPatch{RowIndex: &row})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown placement", func(t *testing.T) {
		uc, _ := setupUseCase()
		row := 1

		_, err := uc.Update(ctx, 10, 999, &domain.PlacementPatch{RowIndex: &row})
		assert.ErrorIs(t, err, domain.ErrPlacementNotFound)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes owned placement", func(t *testing.T) {
		uc, repo := setupUseCase()
		p, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100})
		require.NoError(t, err)
		repo.owners[p.ID] = 10

		require.NoError(t, uc.Remove(ctx, 10, p.ID))
		assert.Equal(t, 1, repo.deleted)
	})

	t.Run("missing id is not found, not success", func(t *testing.T) {
		uc, _ := setupUseCase()

		err := uc.Remove(ctx, 10, 999)
		assert.ErrorIs(t, err, domain.ErrPlacementNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, repo := setupUseCase()
		p, err := uc.Add(ctx, 10, &AddPlacementRequest{ProfileID: 1, CardID: 100})
		require.NoError(t, err)
		repo.owners[p.ID] = 10

		err = uc.Remove(ctx, 20, p.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Zero(t, repo.deleted)
	})
}

func TestListForProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("reading order is page then row then column", func(t *testing.T) {
		uc, _ := setupUseCase()
		positions := []struct{ page, row, col int }{
			{1, 0, 0}, {0, 2, 1}, {0, 0, 3}, {0, 0, 1}, {1, 1, 0}, {0, 2, 0},
		}
		for _, pos := range positions {
			_, err := uc.Add(ctx, 10, &AddPlacementRequest{
				ProfileID: 1, CardID: 100,
				PageIndex: pos.page, RowIndex: pos.row, ColIndex: pos.col,
			})
			require.NoError(t, err)
		}

		cards, err := uc.ListForProfile(ctx, 10, 1)
		require.NoError(t, err)
		require.Len(t, cards, len(positions))

		for i := 1; i < len(cards); i++ {
			a, b := cards[i-1], cards[i]
			before := a.PageIndex < b.PageIndex ||
				(a.PageIndex == b.PageIndex && a.RowIndex < b.RowIndex) ||
				(a.PageIndex == b.PageIndex && a.RowIndex == b.RowIndex && a.ColIndex <= b.ColIndex)
			assert.True(t, before, "entry %d must not come before entry %d", i, i-1)
		}
	})

	t.Run("public profile readable by anyone", func(t *testing.T) {
		uc, _ := setupUseCase()

		cards, err := uc.ListForProfile(ctx, 10, 2)
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.NotNil(t, cards)
	})

	t.Run("private profile hidden from strangers", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.ListForProfile(ctx, 10, 3)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown profile", func(t *testing.T) {
		uc, _ := setupUseCase()

		_, err := uc.ListForProfile(ctx, 10, 99)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}
