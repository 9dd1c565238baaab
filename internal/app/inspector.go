package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/mginspect/internal/cache"
	"github.com/quantmind-br/mginspect/internal/config"
	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/mustgather"
	"github.com/quantmind-br/mginspect/internal/utils"
)

// Inspector coordinates archive inspection: root discovery, the summary
// cache, and the summary build itself.
type Inspector struct {
	config     *config.Config
	logger     *utils.Logger
	baseLogger *utils.Logger
	cache      domain.Cache
	opts       domain.CommonOptions
}

// InspectorOptions contains options for creating an inspector
type InspectorOptions struct {
	domain.CommonOptions
	Config *config.Config

	// Cache overrides the config-built cache. Mainly for tests.
	Cache domain.Cache

	// Logger overrides the config-built logger. Mainly for tests.
	Logger *utils.Logger
}

// NewInspector creates a new inspector with the given configuration
func NewInspector(opts InspectorOptions) (*Inspector, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	insp := &Inspector{
		config:     cfg,
		logger:     logger.WithComponent("inspector"),
		baseLogger: logger,
		opts:       opts.CommonOptions,
	}

	switch {
	case opts.Cache != nil:
		insp.cache = opts.Cache
	case cfg.Cache.Enabled && !opts.NoCache:
		dir, err := utils.ExpandPath(cfg.Cache.Directory)
		if err != nil {
			insp.logger.Warn().Err(err).Msg("cache directory unresolvable, continuing without cache")
			break
		}
		c, err := cache.NewBadgerCache(cache.Options{Directory: dir})
		if err != nil {
			insp.logger.Warn().Err(err).Msg("cache unavailable, continuing without cache")
			break
		}
		insp.cache = c
	}

	return insp, nil
}

// Inspect builds (or retrieves) the summary for the archive at path.
//
// Root discovery failures propagate unchanged. Cache failures degrade
// to a plain rebuild with a warning, never an error.
func (i *Inspector) Inspect(ctx context.Context, path string) (*mustgather.MustGather, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := mustgather.FindRoot(path)
	if err != nil {
		return nil, err
	}

	key := i.summaryKey(root)

	if key != "" && !i.opts.RefreshCache {
		if mg := i.fromCache(ctx, key); mg != nil {
			i.logger.Debug().Str("root", root).Msg("summary served from cache")
			return mg, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mg, err := mustgather.New(root, mustgather.Options{
		Logger:   i.baseLogger,
		Progress: !i.opts.NoProgress && i.config.Display.Progress,
	})
	if err != nil {
		return nil, err
	}

	if key != "" {
		i.store(ctx, key, mg)
	}

	return mg, nil
}

// summaryKey derives the cache key for a resolved root, or "" when
// caching does not apply.
func (i *Inspector) summaryKey(root string) string {
	if i.cache == nil {
		return ""
	}
	info, err := os.Stat(root)
	if err != nil {
		return ""
	}
	return cache.SummaryKey(root, info.ModTime())
}

func (i *Inspector) fromCache(ctx context.Context, key string) *mustgather.MustGather {
	data, err := i.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			i.logger.Warn().Err(err).Msg("cache read failed, rebuilding")
		}
		return nil
	}

	var mg mustgather.MustGather
	if err := json.Unmarshal(data, &mg); err != nil {
		i.logger.Warn().Err(err).Msg("corrupt cache entry, rebuilding")
		_ = i.cache.Delete(ctx, key)
		return nil
	}

	mg.FromCache = true
	return &mg
}

func (i *Inspector) store(ctx context.Context, key string, mg *mustgather.MustGather) {
	data, err := json.Marshal(mg)
	if err != nil {
		i.logger.Warn().Err(err).Msg("summary not cacheable")
		return
	}
	if err := i.cache.Set(ctx, key, data, i.config.Cache.TTL); err != nil {
		i.logger.Warn().Err(err).Msg("cache write failed")
	}
}

// Close releases all resources held by the inspector
func (i *Inspector) Close() error {
	if i.cache != nil {
		return i.cache.Close()
	}
	return nil
}
