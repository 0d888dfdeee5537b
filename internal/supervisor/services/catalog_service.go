// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
)

const defaultWatchDebounce = 2 * time.Second

// ModelLoader swaps a new catalog into the recommender.
type ModelLoader interface {
	Load(ctx context.Context, corpus *catalog.Corpus) (*recommend.Model, error)
}

// CatalogServiceConfig controls automatic reloads.
type CatalogServiceConfig struct {
	Path string

	// Watch reloads when the file is written or replaced.
	Watch bool

	// WatchDebounce waits for writes to settle before reloading.
	WatchDebounce time.Duration

	// ReloadInterval forces a reload on a timer. Zero disables it.
	ReloadInterval time.Duration
}

// CatalogService reloads the catalog file into the engine. Reload may be
// called directly (startup, API); Serve adds file watching and periodic
// reloads under suture. A failed reload leaves the active model untouched.
type CatalogService struct {
	loader ModelLoader
	config CatalogServiceConfig
	logger zerolog.Logger
	name   string

	// reloads run one at a time so a watch event and an API call cannot
	// build two models concurrently
	mu sync.Mutex
}

// NewCatalogService creates a catalog service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogService(loader ModelLoader, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = defaultWatchDebounce
	}
	return &CatalogService{
		loader: loader,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Str("path", cfg.Path).Logger(),
		name:   "catalog-service",
	}
}

// Path returns the catalog file path.
func (s *CatalogService) Path() string {
	return s.config.Path
}

// Reload reads the catalog file and builds a new model from it. trigger is
// one of the metrics.Trigger* labels.
func (s *CatalogService) Reload(ctx context.Context, trigger string) (*models.ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	ctx = logging.ContextWithNewCorrelationID(logging.ContextWithLogger(ctx, s.logger))
	logger := logging.Ctx(ctx)

	corpus, err := catalog.Load(ctx, s.config.Path)
	if err == nil {
		var m *recommend.Model
		if m, err = s.loader.Load(ctx, corpus); err == nil {
			metrics.RecordCatalogReload(trigger, nil)
			result := &models.ReloadResult{
				Path:         s.config.Path,
				Movies:       corpus.Len(),
				ModelVersion: m.Version(),
				Fingerprint:  m.Fingerprint(),
				DurationMS:   time.Since(start).Milliseconds(),
			}
			logger.Info().
				Str("trigger", trigger).
				Int("movies", result.Movies).
				Int64("model_version", result.ModelVersion).
				Int64("duration_ms", result.DurationMS).
				Msg("catalog reloaded")
			return result, nil
		}
	}

	metrics.RecordCatalogReload(trigger, err)
	logger.Error().Err(err).Str("trigger", trigger).Msg("catalog reload failed, keeping previous model")
	return nil, fmt.Errorf("reload catalog: %w", err)
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	target := filepath.Clean(s.config.Path)

	if s.config.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create catalog watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors and deploy tools often replace the
		// file via rename, which drops a watch on the file itself.
		if err := watcher.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("watch catalog directory: %w", err)
		}
		events, watchErrs = watcher.Events, watcher.Errors
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.logger.Info().
		Bool("watch", s.config.Watch).
		Dur("debounce", s.config.WatchDebounce).
		Dur("interval", s.config.ReloadInterval).
		Msg("catalog service started")

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("catalog watcher closed")
			}
			// A rename over the file arrives as Create.
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(s.config.WatchDebounce)

		case err, ok := <-watchErrs:
			if !ok {
				return fmt.Errorf("catalog watcher closed")
			}
			s.logger.Warn().Err(err).Msg("catalog watcher error")

		// Reload failures are logged and must not restart the service.
		case <-debounce.C:
			_, _ = s.Reload(ctx, metrics.TriggerWatch)

		case <-tick:
			_, _ = s.Reload(ctx, metrics.TriggerInterval)
		}
	}
}

// String names the service in supervisor logs.
func (s *CatalogService) String() string {
	return s.name
}
