// Package adapters provides repository implementations for the movie feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movies_backend/internal/feature/movie/domain/entity"
	"movies_backend/internal/feature/movie/usecase"
)

// movieGorm is a GORM implementation of the MovieRepository interface.
type movieGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure movieGorm implements MovieRepository.
var _ usecase.MovieRepository = (*movieGorm)(nil)

// NewMovieGorm creates a new instance of movieGorm.
func NewMovieGorm(db *gorm.DB) *movieGorm {
	return &movieGorm{db: db}
}

// List returns movies, newest first, optionally filtered by genre.
func (r *movieGorm) List(ctx context.Context, genre string, limit int) ([]entity.Movie, error) {
	var movies []entity.Movie
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByID retrieves a movie by its ID.
// It returns usecase.ErrMovieNotFound when the movie does not exist.
func (r *movieGorm) FindByID(ctx context.Context, id uint) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create persists a new movie.
func (r *movieGorm) Create(ctx context.Context, movie *entity.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

// Exists reports whether a movie with the given ID exists.
func (r *movieGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Movie{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
