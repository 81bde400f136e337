package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/model"
	repoMocks "tenantconsole/internal/repository/mocks"
)

func ptr[T any](v T) *T { return &v }

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(m *repoMocks.MockProfileRepository)
		wantErr    error
	}{
		{
			name:    "id required",
			id:      "",
			wantErr: ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(m *repoMocks.MockProfileRepository) {
				m.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "found",
			id:   "p-1",
			setupMocks: func(m *repoMocks.MockProfileRepository) {
				m.On("FindByID", ctx, "p-1").Return(&model.Profile{ID: "p-1"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProfileRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := NewProfileService(mRepo, time.UTC, nil, nil)

			p, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, p.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, time.UTC, nil, nil)

		mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Profile) bool {
			return p.ID != "" && p.FullName == "Sari" && p.Email == "sari@example.com" &&
				p.Role == model.RoleStylist && p.IsActive && !p.CreatedAt.IsZero()
		})).Return(&model.Profile{ID: "new"}, nil)

		p, err := svc.Create(ctx, model.ProfileInput{FullName: ptr("Sari"), Email: ptr("sari@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "new", p.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewProfileService(new(repoMocks.MockProfileRepository), time.UTC, nil, nil)

		_, err := svc.Create(ctx, model.ProfileInput{FullName: ptr("Sari")})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := NewProfileService(new(repoMocks.MockProfileRepository), time.UTC, nil, nil)

		_, err := svc.Create(ctx, model.ProfileInput{FullName: ptr("Sari"), Email: ptr("sari@example.com"), Role: ptr("owner")})

		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorContains(t, err, "Role")
	})
}

func TestProfileService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, time.UTC, nil, nil)

	mRepo.On("FindByID", ctx, "p-1").Return(&model.Profile{ID: "p-1", IsActive: true}, nil)
	mRepo.On("Update", ctx, "p-1", model.ProfileInput{IsActive: ptr(false)}).
		Return(&model.Profile{ID: "p-1", IsActive: false}, nil)

	p, err := svc.ToggleStatus(ctx, "p-1")

	require.NoError(t, err)
	assert.False(t, p.IsActive)
	mRepo.AssertExpectations(t)
}

func TestProfileService_ToggleStatus_RefreshesOverview(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	mCounters := new(repoMocks.MockOverviewRepository)
	c := cache.NewMemoryCache()
	profiles := NewProfileService(mRepo, time.UTC, c, zap.NewNop())
	overview := NewOverviewService(mRepo, mCounters, c, time.Minute, zap.NewNop())

	mRepo.On("SalonOwners", ctx).Return([]model.Profile{{ID: "p-1", IsActive: true}}, nil).Once()
	mRepo.On("SalonOwners", ctx).Return([]model.Profile{{ID: "p-1", IsActive: false}}, nil).Once()
	mCounters.On("CountActivePlatformSessions", ctx).Return(0, nil)
	mCounters.On("CountOpenTickets", ctx).Return(0, nil)
	mRepo.On("FindByID", ctx, "p-1").Return(&model.Profile{ID: "p-1", IsActive: true}, nil)
	mRepo.On("Update", ctx, "p-1", model.ProfileInput{IsActive: ptr(false)}).
		Return(&model.Profile{ID: "p-1", IsActive: false}, nil)

	before, err := overview.ClientStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, before.ActiveClients)

	_, err = profiles.ToggleStatus(ctx, "p-1")
	require.NoError(t, err)

	after, err := overview.ClientStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, after.ActiveClients)
	mRepo.AssertExpectations(t)
}

func TestProfileService_MutationsDropOverviewCache(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, c cache.Cache) {
		t.Helper()
		require.NoError(t, c.SetJSON(ctx, cache.KeyClientStats, model.ClientStats{ActiveClients: 3}, time.Minute))
		require.NoError(t, c.SetJSON(ctx, cache.KeyRecentActivity, []model.ClientActivity{}, time.Minute))
	}
	assertDropped := func(t *testing.T, c cache.Cache) {
		t.Helper()
		assert.ErrorIs(t, c.GetJSON(ctx, cache.KeyClientStats, &model.ClientStats{}), cache.ErrMiss)
		var activity []model.ClientActivity
		assert.ErrorIs(t, c.GetJSON(ctx, cache.KeyRecentActivity, &activity), cache.ErrMiss)
	}

	t.Run("create", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		c := cache.NewMemoryCache()
		seed(t, c)
		svc := NewProfileService(mRepo, time.UTC, c, nil)
		mRepo.On("Create", ctx, mock.AnythingOfType("*model.Profile")).Return(&model.Profile{ID: "p-2"}, nil)

		_, err := svc.Create(ctx, model.ProfileInput{FullName: ptr("Dewi"), Email: ptr("dewi@salon.id")})

		require.NoError(t, err)
		assertDropped(t, c)
	})

	t.Run("delete", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		c := cache.NewMemoryCache()
		seed(t, c)
		svc := NewProfileService(mRepo, time.UTC, c, nil)
		mRepo.On("Delete", ctx, "p-1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "p-1"))
		assertDropped(t, c)
	})

	t.Run("failed update keeps cache", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		c := cache.NewMemoryCache()
		seed(t, c)
		svc := NewProfileService(mRepo, time.UTC, c, nil)
		in := model.ProfileInput{FullName: ptr("X")}
		mRepo.On("Update", ctx, "missing", in).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "missing", in)

		assert.ErrorIs(t, err, ErrNotFound)
		var st model.ClientStats
		require.NoError(t, c.GetJSON(ctx, cache.KeyClientStats, &st))
		assert.Equal(t, 3, st.ActiveClients)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, time.UTC, nil, nil)
		in := model.ProfileInput{FullName: ptr("X")}
		mRepo.On("Update", ctx, "missing", in).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "missing", in)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty input reads current profile", func(t *testing.T) {
		mRepo := new(repoMocks.MockProfileRepository)
		svc := NewProfileService(mRepo, time.UTC, nil, nil)
		mRepo.On("FindByID", ctx, "p-1").Return(&model.Profile{ID: "p-1"}, nil)

		p, err := svc.Update(ctx, "p-1", model.ProfileInput{})

		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, time.UTC, nil, nil)

	mRepo.On("Delete", ctx, "p-1").Return(nil)
	mRepo.On("Delete", ctx, "missing").Return(sql.ErrNoRows)
	mRepo.On("Delete", ctx, "broken").Return(errors.New("conn reset"))

	assert.NoError(t, svc.Delete(ctx, "p-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	assert.EqualError(t, svc.Delete(ctx, "broken"), "conn reset")
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrIDRequired)
}

func TestProfileService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, time.UTC, nil, nil)
	start := time.Now()

	mRepo.On("List", ctx, model.ProfileFilter{Status: "active"}).Return([]model.Profile{{ID: "p-1"}}, nil)

	items, err := svc.List(ctx, model.ProfileFilter{Status: "active", DateRange: &model.DateRange{Start: &start}})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.List(ctx, model.ProfileFilter{Status: "sleeping"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeProfileStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	items := []model.ProfileSummary{
		{ID: "1", IsActive: true, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Role: "admin"},
		{ID: "2", IsActive: true, CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Role: "stylist"},
		{ID: "3", IsActive: false, CreatedAt: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), Role: ""},
		{ID: "4", IsActive: true, CreatedAt: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), Role: "stylist"},
		{ID: "5", IsActive: false, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Role: "stylist"},
		{ID: "6", IsActive: true, CreatedAt: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Role: "salon_owner"},
	}

	st := ComputeProfileStats(items, now)

	assert.Equal(t, 6, st.TotalProfiles)
	assert.Equal(t, 4, st.ActiveProfiles)
	assert.Equal(t, 2, st.InactiveProfiles)
	assert.Equal(t, 3, st.NewThisMonth)
	assert.InDelta(t, 50.0, st.GrowthRate, 0.0001)
	assert.Equal(t, map[string]int{"admin": 1, "stylist": 3, "user": 1, "salon_owner": 1}, st.RoleDistribution)
}

func TestComputeProfileStats_NoPreviousMonth(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	st := ComputeProfileStats([]model.ProfileSummary{{CreatedAt: now}}, now)

	assert.Equal(t, 1, st.NewThisMonth)
	assert.Zero(t, st.GrowthRate)
}

func TestProfileService_Stats(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProfileRepository)
	svc := NewProfileService(mRepo, time.UTC, nil, nil).(*profileService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) }

	mRepo.On("Summaries", ctx).Return([]model.ProfileSummary{
		{IsActive: true, CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Role: "admin"},
	}, nil)

	st, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, st.NewThisMonth)
}
