// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/naahedd/luther-spots/internal/config"
	"github.com/naahedd/luther-spots/internal/models"
	"github.com/redis/go-redis/v9"
)

// catalogState is the internal model for storing the catalog in Redis.
// The whole catalog is one value so a replace is a single atomic SET and
// readers always see a consistent snapshot in file order.
type catalogState struct {
	Buildings []*models.Building `json:"buildings"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		// Parse options from URI string
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		// Use password from config if not in URI or if empty in URI
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		// Create client with options from URI
		client = redis.NewClient(opt)
	} else {
		// Build connection options from individual parameters
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

		// Create client with explicit options
		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.CatalogTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// catalogKey returns the Redis key holding the catalog snapshot
func (r *Repository) catalogKey() string {
	return r.keyPrefix + "catalog"
}

// ReplaceCatalog saves a freshly loaded catalog to Redis
func (r *Repository) ReplaceCatalog(ctx context.Context, buildings []*models.Building) error {
	state := catalogState{
		Buildings: buildings,
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := r.client.Set(ctx, r.catalogKey(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return nil
}

// ListBuildings returns the stored catalog in its original order.
// A missing key (never loaded, or TTL expired) yields an empty catalog.
func (r *Repository) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	state, err := r.getState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return []*models.Building{}, nil
	}
	return state.Buildings, nil
}

// UpdatedAt reports when the catalog was last replaced
func (r *Repository) UpdatedAt(ctx context.Context) (time.Time, error) {
	state, err := r.getState(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if state == nil {
		return time.Time{}, nil
	}
	return state.UpdatedAt, nil
}

func (r *Repository) getState(ctx context.Context) (*catalogState, error) {
	data, err := r.client.Get(ctx, r.catalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	var state catalogState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return &state, nil
}
