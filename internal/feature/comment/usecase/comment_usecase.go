// Package usecase はコメント操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"movies_backend/internal/feature/comment/domain/entity"
)

// CommentRepository abstracts the persistence layer for comments.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// ListByMovie returns the comments for a movie, newest first.
	ListByMovie(ctx context.Context, movieID uint) ([]entity.Comment, error)
}

// MovieChecker reports whether a movie exists. Satisfied by the movie usecase.
type MovieChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase provides business logic for movie comments.
type CommentUsecase struct {
	repo   CommentRepository
	movies MovieChecker
}

// NewCommentUsecase creates a new CommentUsecase with the given dependencies.
func NewCommentUsecase(r CommentRepository, m MovieChecker) *CommentUsecase {
	return &CommentUsecase{repo: r, movies: m}
}

// CreateComment は映画の存在を確認してからコメントを保存します。
// 存在しない映画へのコメントはErrMovieNotFoundになります。
func (u *CommentUsecase) CreateComment(ctx context.Context, comment *entity.Comment) error {
	ok, err := u.movies.Exists(ctx, comment.MovieID)
	if err != nil {
		return fmt.Errorf("failed to check movie: %w", err)
	}
	if !ok {
		return ErrMovieNotFound
	}
	return u.repo.Create(ctx, comment)
}

// ListByMovie は指定された映画のコメントを新しい順に返します。
// 存在しない映画への問い合わせはErrMovieNotFoundになります。
func (u *CommentUsecase) ListByMovie(ctx context.Context, movieID uint) ([]entity.Comment, error) {
	ok, err := u.movies.Exists(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to check movie: %w", err)
	}
	if !ok {
		return nil, ErrMovieNotFound
	}
	return u.repo.ListByMovie(ctx, movieID)
}
