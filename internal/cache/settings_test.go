package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain"
)

type mockSettingsSource struct {
	mock.Mock
}

func (m *mockSettingsSource) GetOrCreate(ctx context.Context) (*domain.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteSettings), args.Error(1)
}

func (m *mockSettingsSource) Update(ctx context.Context, s *domain.SiteSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func newTestStore(t *testing.T, repo SettingsSource) (*SettingsStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	return NewSettingsStore(repo, c, time.Hour, zerolog.Nop()), mr
}

func TestSettingsStore_GetPopulatesCache(t *testing.T) {
	repo := new(mockSettingsSource)
	store, mr := newTestStore(t, repo)

	repo.On("GetOrCreate", mock.Anything).Return(domain.DefaultSiteSettings(), nil).Once()

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BookingMVP", got.SiteName)
	assert.Equal(t, 0.10, got.DefaultTaxRate)
	assert.True(t, mr.Exists("site_settings"))

	// Second read is served from the cache; the source is not hit again.
	got2, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got.SiteName, got2.SiteName)
	repo.AssertExpectations(t)
}

func TestSettingsStore_UpdateInvalidates(t *testing.T) {
	repo := new(mockSettingsSource)
	store, mr := newTestStore(t, repo)

	repo.On("GetOrCreate", mock.Anything).Return(domain.DefaultSiteSettings(), nil).Once()
	_, err := store.Get(context.Background())
	require.NoError(t, err)
	require.True(t, mr.Exists("site_settings"))

	updated := domain.DefaultSiteSettings()
	updated.DefaultTaxRate = 0.12
	repo.On("Update", mock.Anything, updated).Return(nil).Once()

	require.NoError(t, store.Update(context.Background(), updated))
	assert.False(t, mr.Exists("site_settings"))

	repo.On("GetOrCreate", mock.Anything).Return(updated, nil).Once()
	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.12, got.DefaultTaxRate)
	repo.AssertExpectations(t)
}

func TestSettingsStore_CacheDownFallsThrough(t *testing.T) {
	repo := new(mockSettingsSource)
	store, mr := newTestStore(t, repo)
	mr.Close()

	repo.On("GetOrCreate", mock.Anything).Return(domain.DefaultSiteSettings(), nil)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BookingMVP", got.SiteName)
}
