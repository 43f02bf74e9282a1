// Package bootstrap establishes runtime dependencies (database, cache) and
// performs explicit startup seeding for the entrypoints.
package bootstrap

import (
	"fmt"

	"cheznous/internal/cache"
	"cheznous/internal/config"
	"cheznous/internal/database"
	"cheznous/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedCategories installs the fixed forum categories when set. The rows
	// are required for public forum creation, so the server enables it.
	SeedCategories bool
}

// InitRuntime connects to DB and Redis and optionally seeds the fixed
// categories. Redis being unreachable is not fatal; the cache layer
// degrades to direct reads.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedCategories {
		if err := seed.Categories(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	return db, r, nil
}
