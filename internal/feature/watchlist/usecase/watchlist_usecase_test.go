package usecase_test

import (
	"context"
	"errors"
	"testing"

	movieentity "movies_backend/internal/feature/movie/domain/entity"
	"movies_backend/internal/feature/watchlist/usecase"
)

var ErrDB = errors.New("database error")

// mockWatchlistRepository はWatchlistRepositoryインターフェースのモック実装です。
type mockWatchlistRepository struct {
	ListMoviesFunc func(ctx context.Context, userID uint) ([]movieentity.Movie, error)
	AddFunc        func(ctx context.Context, userID, movieID uint) error
	RemoveFunc     func(ctx context.Context, userID, movieID uint) error
	AddCalls       int
}

func (m *mockWatchlistRepository) ListMovies(ctx context.Context, userID uint) ([]movieentity.Movie, error) {
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockWatchlistRepository) Add(ctx context.Context, userID, movieID uint) error {
	m.AddCalls++
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, movieID)
	}
	return nil
}

func (m *mockWatchlistRepository) Remove(ctx context.Context, userID, movieID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, movieID)
	}
	return nil
}

// mockMovieChecker はMovieCheckerインターフェースのモック実装です。
type mockMovieChecker struct {
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockMovieChecker) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// TestWatchlistUsecase_ListMovies は一覧取得がリポジトリに委譲されることをテストします。
func TestWatchlistUsecase_ListMovies(t *testing.T) {
	ctx := context.Background()
	expected := []movieentity.Movie{{ID: 1, Title: "Interstellar"}}

	repo := &mockWatchlistRepository{
		ListMoviesFunc: func(ctx context.Context, userID uint) ([]movieentity.Movie, error) {
			if userID != 7 {
				t.Errorf("expected lookup for user 7, got %d", userID)
			}
			return expected, nil
		},
	}

	uc := usecase.NewWatchlistUsecase(repo, &mockMovieChecker{})
	movies, err := uc.ListMovies(ctx, 7)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != 1 {
		t.Errorf("unexpected movies: %v", movies)
	}
}

// TestWatchlistUsecase_AddMovie は存在チェックと登録のフローをテストします。
func TestWatchlistUsecase_AddMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &mockWatchlistRepository{
			AddFunc: func(ctx context.Context, userID, movieID uint) error {
				if userID != 7 || movieID != 3 {
					t.Errorf("expected add(7, 3), got add(%d, %d)", userID, movieID)
				}
				return nil
			},
		}
		movies := &mockMovieChecker{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return true, nil
			},
		}

		uc := usecase.NewWatchlistUsecase(repo, movies)
		if err := uc.AddMovie(ctx, 7, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.AddCalls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.AddCalls)
		}
	})

	t.Run("movie does not exist", func(t *testing.T) {
		repo := &mockWatchlistRepository{}
		movies := &mockMovieChecker{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
		}

		uc := usecase.NewWatchlistUsecase(repo, movies)
		err := uc.AddMovie(ctx, 7, 999)

		if !errors.Is(err, usecase.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
		// 存在しない映画はリポジトリに書き込まれない
		if repo.AddCalls != 0 {
			t.Errorf("expected no repository call, got %d", repo.AddCalls)
		}
	})

	t.Run("existence check fails", func(t *testing.T) {
		repo := &mockWatchlistRepository{}
		movies := &mockMovieChecker{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, ErrDB
			},
		}

		uc := usecase.NewWatchlistUsecase(repo, movies)
		err := uc.AddMovie(ctx, 7, 3)

		if !errors.Is(err, ErrDB) {
			t.Errorf("expected wrapped ErrDB, got %v", err)
		}
		if repo.AddCalls != 0 {
			t.Errorf("expected no repository call, got %d", repo.AddCalls)
		}
	})
}

// TestWatchlistUsecase_RemoveMovie は削除がリポジトリに委譲されることをテストします。
func TestWatchlistUsecase_RemoveMovie(t *testing.T) {
	ctx := context.Background()

	var gotUserID, gotMovieID uint
	repo := &mockWatchlistRepository{
		RemoveFunc: func(ctx context.Context, userID, movieID uint) error {
			gotUserID = userID
			gotMovieID = movieID
			return nil
		},
	}

	uc := usecase.NewWatchlistUsecase(repo, &mockMovieChecker{})
	if err := uc.RemoveMovie(ctx, 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUserID != 7 || gotMovieID != 3 {
		t.Errorf("expected remove(7, 3), got remove(%d, %d)", gotUserID, gotMovieID)
	}
}
