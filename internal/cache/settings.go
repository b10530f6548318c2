package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"hotelbooking/internal/domain"
)

const settingsKey = "site_settings"

// SettingsSource is the database-backed loader behind the cache.
type SettingsSource interface {
	GetOrCreate(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, s *domain.SiteSettings) error
}

// SettingsStore is a cache-aside wrapper around the settings singleton.
// Cache errors degrade to database reads; they never fail the request.
type SettingsStore struct {
	repo  SettingsSource
	cache *Cache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSettingsStore(repo SettingsSource, c *Cache, ttl time.Duration, log zerolog.Logger) *SettingsStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SettingsStore{repo: repo, cache: c, ttl: ttl, log: log}
}

func (s *SettingsStore) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var cached domain.SiteSettings
	hit, err := s.cache.Get(ctx, settingsKey, &cached)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings cache read failed")
	}
	if hit {
		return &cached, nil
	}

	settings, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, settingsKey, settings, s.ttl); err != nil {
		s.log.Warn().Err(err).Msg("settings cache write failed")
	}
	return settings, nil
}

// Update writes through to the database and drops the cached copy so
// the next read repopulates it.
func (s *SettingsStore) Update(ctx context.Context, settings *domain.SiteSettings) error {
	if err := s.repo.Update(ctx, settings); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, settingsKey); err != nil {
		s.log.Warn().Err(err).Msg("settings cache invalidation failed")
	}
	return nil
}
