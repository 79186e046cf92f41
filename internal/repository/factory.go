// Package repository provides the initialization for repository implementations
package repository

import (
	"github.com/naahedd/luther-spots/internal/config"
	"github.com/naahedd/luther-spots/internal/repository/memory"
	"github.com/naahedd/luther-spots/internal/repository/redis"
)

// Constructors registered by init; kept as variables so tests can substitute them
var (
	newRedisRepository  func(cfg config.RedisConfig) (Repository, error)
	newMemoryRepository func() Repository
)

// init registers the actual repository implementations
func init() {
	// Register the Redis repository constructor
	newRedisRepository = func(cfg config.RedisConfig) (Repository, error) {
		return redis.NewRepository(cfg)
	}

	// Register the memory repository constructor
	newMemoryRepository = func() Repository {
		return memory.NewRepository()
	}
}

// NewRepository creates a repository based on the Redis configuration.
// When Redis is disabled the in-memory implementation is used.
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled {
		return newRedisRepository(cfg)
	}
	return newMemoryRepository(), nil
}
