// Package usecase は映画カタログ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"movies_backend/internal/feature/movie/domain/entity"
)

const (
	// MaxListSize はカタログ一覧の最大返却件数です。
	MaxListSize = 60
)

// MovieRepository は映画データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MovieRepository interface {
	// List はジャンルでフィルタした映画一覧を返します。genreが空の場合は全件が対象です。
	List(ctx context.Context, genre string, limit int) ([]entity.Movie, error)

	// FindByID はIDで映画を取得します。存在しない場合、ErrMovieNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Movie, error)

	// Create は新しい映画を永続化します。
	Create(ctx context.Context, movie *entity.Movie) error

	// Exists は指定されたIDの映画が存在するかを返します。
	Exists(ctx context.Context, id uint) (bool, error)
}

// movieUsecase は映画カタログ操作のユースケースを定義します。
type movieUsecase struct {
	movies MovieRepository
}

// NewMovieUsecase はmovieUsecaseの新しいインスタンスを生成します。
func NewMovieUsecase(movies MovieRepository) *movieUsecase {
	return &movieUsecase{movies: movies}
}

// ListMovies は指定されたジャンルの映画一覧を取得します。
func (mu *movieUsecase) ListMovies(ctx context.Context, genre string, limit int) ([]entity.Movie, error) {
	if limit <= 0 || limit > MaxListSize {
		limit = MaxListSize
	}
	return mu.movies.List(ctx, genre, limit)
}

// GetMovie はIDで映画を取得します。
func (mu *movieUsecase) GetMovie(ctx context.Context, id uint) (*entity.Movie, error) {
	return mu.movies.FindByID(ctx, id)
}

// CreateMovie は新しい映画をカタログに追加します。
func (mu *movieUsecase) CreateMovie(ctx context.Context, movie *entity.Movie) error {
	return mu.movies.Create(ctx, movie)
}

// Exists は映画の存在チェックです。コメント作成とウォッチリスト追加の前提条件として使われます。
func (mu *movieUsecase) Exists(ctx context.Context, id uint) (bool, error) {
	return mu.movies.Exists(ctx, id)
}
