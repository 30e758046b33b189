package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/pwforge/internal/adapters/driven/breach/hibp"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/random"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/wordlist"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/cli"
	"github.com/custodia-labs/pwforge/internal/checkers"
	"github.com/custodia-labs/pwforge/internal/checkers/pattern"
	"github.com/custodia-labs/pwforge/internal/checkers/repetition"
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/services"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// dataDir is the cache directory inside the configuration directory.
const dataDir = "data"

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, func(), error) {
	logger.Section("Bootstrap")

	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, nil, err
		}
		dir = d
	}

	settingsService := services.NewSettingsService(openConfig(dir))
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("%v; using defaults for the breach client", err)
		defaults := domain.DefaultAppSettings()
		settings.Breach = defaults.Breach
	}

	policy := settings.Policy()
	rnd := random.New()
	words := wordlist.LoadOrEmpty(resolvePath(settings.Wordlist.Path, dir))

	cache, closeCache := openRangeCache(filepath.Join(dir, dataDir), settings.Breach.CacheTTL)
	clientOpts := []hibp.Option{
		hibp.WithBaseURL(settings.Breach.APIURL),
		hibp.WithTimeout(settings.Breach.Timeout),
		hibp.WithRate(settings.Breach.RequestsPerSecond),
		hibp.WithUserAgent(hibp.UserAgent + "/" + opts.Version),
	}
	if cache != nil {
		clientOpts = append(clientOpts, hibp.WithCache(cache))
	}
	breach := hibp.New(clientOpts...)

	registry := checkers.NewRegistry()
	checkers.RegisterDefaults(registry)
	checkerConfig := checkers.ConfigFromPolicy(policy)

	patterns, err := registry.Build(pattern.Name, checkerConfig[pattern.Name])
	if err != nil {
		closeCache()
		return nil, nil, err
	}
	repeats, err := registry.Build(repetition.Name, checkerConfig[repetition.Name])
	if err != nil {
		closeCache()
		return nil, nil, err
	}

	strength := services.NewStrengthEstimator()

	return &cli.Services{
		Password:   services.NewPasswordGenerator(policy, rnd),
		Passphrase: services.NewPassphraseGenerator(policy, rnd, words),
		Strength:   strength,
		Report:     services.NewReportService(policy, strength, patterns, repeats, breach),
		Settings:   settingsService,
		Validators: validatorFactory(registry, checkerConfig),
		Random:     rnd,
		Clipboard:  clipboard.NewSystem(),
	}, closeCache, nil
}

// openConfig opens the TOML store, falling back to an in-memory store
// when the directory is unusable.
func openConfig(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, settings will not persist: %v", err)
		return memory.NewConfigStore()
	}
	logger.Debug("config: %s", store.Path())
	return store
}

// openRangeCache opens the SQLite range cache and prunes expired ranges.
// A zero TTL disables caching. When SQLite cannot be opened the cache
// lives in memory for this process only.
func openRangeCache(dir string, ttl time.Duration) (driven.RangeCache, func()) {
	if ttl <= 0 {
		return nil, func() {}
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("breach cache unavailable, using memory: %v", err)
		return memory.NewRangeCache(ttl), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if n, err := store.PruneRanges(ctx, ttl); err != nil {
		logger.Warn("pruning breach cache: %v", err)
	} else if n > 0 {
		logger.Debug("pruned %d expired breach ranges", n)
	}

	return store.RangeCache(ttl), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing breach cache: %v", err)
		}
	}
}

// validatorFactory builds the generation-time pipeline for a set of toggles.
func validatorFactory(registry *checkers.Registry, cfg map[string]map[string]any) cli.ValidatorFactory {
	return func(checks domain.CheckSettings) (driven.Checker, error) {
		pipeline, err := registry.BuildPipeline(checkers.FromSettings(checks), cfg)
		if err != nil {
			return nil, err
		}
		if pipeline.Len() == 0 {
			return nil, nil
		}
		return pipeline, nil
	}
}

// resolvePath finds a relative path in the working directory first, then
// in the configuration directory.
func resolvePath(path, dir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil || !errors.Is(err, os.ErrNotExist) {
		return path
	}
	return filepath.Join(dir, path)
}
