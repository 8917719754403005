package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// RedisConfig configures a Redis-backed assembly store.
type RedisConfig struct {
	Addr     string // Redis server address (host:port)
	Password string // Optional password
	DB       int    // Database number
	Prefix   string // Key prefix (default "framegrid")
}

// Redis is a Redis-backed assembly store for multi-instance deployments.
// Documents live under "<prefix>:assembly:<name>" and an index set under
// "<prefix>:assemblies" tracks the stored names.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed assembly store and verifies connectivity.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "framegrid"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Redis{client: client, prefix: cfg.Prefix}, nil
}

func (s *Redis) key(name string) string {
	return s.prefix + ":assembly:" + name
}

func (s *Redis) indexKey() string {
	return s.prefix + ":assemblies"
}

// Save stores an assembly file, keyed by its name.
func (s *Redis) Save(ctx context.Context, f *assembly.File) error {
	data, err := encode(f)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(f.Name), data, 0)
	pipe.SAdd(ctx, s.indexKey(), f.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save assembly: %w", err)
	}
	return nil
}

// Load retrieves an assembly file by name.
func (s *Redis) Load(ctx context.Context, name string) (*assembly.File, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load assembly: %w", err)
	}
	return decode(data)
}

// Delete removes an assembly by name.
func (s *Redis) Delete(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(name))
	pipe.SRem(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete assembly: %w", err)
	}
	return nil
}

// List returns the names of all stored assemblies in sorted order.
func (s *Redis) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying Redis client.
func (s *Redis) Close(ctx context.Context) error {
	return s.client.Close()
}
