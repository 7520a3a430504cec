// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"
	"fmt"

	movieentity "movies_backend/internal/feature/movie/domain/entity"
)

// WatchlistRepository abstracts the persistence layer for watchlist entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WatchlistRepository interface {
	// ListMovies returns the movies on the user's list, newest entry first.
	ListMovies(ctx context.Context, userID uint) ([]movieentity.Movie, error)
	// Add stores an entry. Adding a movie that is already on the list is a no-op.
	Add(ctx context.Context, userID, movieID uint) error
	// Remove deletes an entry. Removing a movie that is not on the list is a no-op.
	Remove(ctx context.Context, userID, movieID uint) error
}

// MovieChecker reports whether a movie exists. Satisfied by the movie usecase.
type MovieChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// WatchlistUsecase provides business logic for per-user to-watch lists.
type WatchlistUsecase struct {
	repo   WatchlistRepository
	movies MovieChecker
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given dependencies.
func NewWatchlistUsecase(r WatchlistRepository, m MovieChecker) *WatchlistUsecase {
	return &WatchlistUsecase{repo: r, movies: m}
}

// ListMovies returns the movies on the user's to-watch list.
func (u *WatchlistUsecase) ListMovies(ctx context.Context, userID uint) ([]movieentity.Movie, error) {
	return u.repo.ListMovies(ctx, userID)
}

// AddMovie puts a movie on the user's list. The movie must exist; adding a
// movie that is already listed succeeds without effect.
func (u *WatchlistUsecase) AddMovie(ctx context.Context, userID, movieID uint) error {
	ok, err := u.movies.Exists(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to check movie: %w", err)
	}
	if !ok {
		return ErrMovieNotFound
	}
	return u.repo.Add(ctx, userID, movieID)
}

// RemoveMovie takes a movie off the user's list. Removing a movie that is
// not listed succeeds without effect.
func (u *WatchlistUsecase) RemoveMovie(ctx context.Context, userID, movieID uint) error {
	return u.repo.Remove(ctx, userID, movieID)
}
