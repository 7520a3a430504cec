// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	movieadapters "movies_backend/internal/feature/movie/adapters"
	"movies_backend/internal/feature/movie/usecase"
	"movies_backend/internal/platform/cache"
)

// NewMovieRepository creates a MovieRepository implementation.
// If Redis is available, reads are served through a caching decorator.
// Otherwise, the plain database-backed repository is returned.
func NewMovieRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.MovieRepository {
	repo := movieadapters.NewMovieGorm(db)
	if rdb != nil {
		return cache.NewCachingMovieRepository(rdb, ttl, repo, "movies")
	}
	return repo
}
