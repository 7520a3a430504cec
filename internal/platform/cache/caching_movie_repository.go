// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movies_backend/internal/feature/movie/domain/entity"
	"movies_backend/internal/feature/movie/usecase"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingMovieRepository struct {
	inner     usecase.MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.MovieRepository = (*CachingMovieRepository)(nil)

// List retrieves movies, checking cache first then falling back to the database.
func (c *CachingMovieRepository) List(ctx context.Context, genre string, limit int) ([]entity.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, genre, limit)
	}

	key := c.listKey(genre, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, genre, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves one movie, checking cache first then falling back to the database.
func (c *CachingMovieRepository) FindByID(ctx context.Context, id uint) (*entity.Movie, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.movieKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts a movie and invalidates the cached list entries.
func (c *CachingMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	// First insert to the underlying repository
	if err := c.inner.Create(ctx, movie); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Any cached list may now be stale
	_ = c.deleteByPattern(ctx, c.namespace+":list:*") // Best effort: don't fail if cache deletion fails
	return nil
}

// Exists is not cached: it backs write-path precondition checks that must
// observe the current database state.
func (c *CachingMovieRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return c.inner.Exists(ctx, id)
}

// listKey generates a cache key for a list query.
func (c *CachingMovieRepository) listKey(genre string, limit int) string {
	return fmt.Sprintf("%s:list:%s:%d", c.namespace, safe(genre), limit)
}

// movieKey generates a cache key for a single movie.
func (c *CachingMovieRepository) movieKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMovieRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
