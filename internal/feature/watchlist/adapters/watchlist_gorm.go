// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	movieentity "movies_backend/internal/feature/movie/domain/entity"
	"movies_backend/internal/feature/watchlist/domain/entity"
	"movies_backend/internal/feature/watchlist/usecase"
)

// watchlistGorm はWatchlistRepositoryインターフェースのGORM実装です。
type watchlistGorm struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistGorm)(nil)

// NewWatchlistRepository は指定されたDB接続でwatchlistGormリポジトリの新しいインスタンスを生成します。
func NewWatchlistRepository(db *gorm.DB) *watchlistGorm {
	return &watchlistGorm{db: db}
}

// ListMovies はユーザーのリスト上の映画を登録の新しい順に返します。
func (r *watchlistGorm) ListMovies(ctx context.Context, userID uint) ([]movieentity.Movie, error) {
	var movies []movieentity.Movie
	if err := r.db.WithContext(ctx).
		Model(&movieentity.Movie{}).
		Joins("JOIN watchlist_entries ON watchlist_entries.movie_id = movies.id").
		Where("watchlist_entries.user_id = ?", userID).
		Order("watchlist_entries.created_at DESC").
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// Add はエントリを登録します。既にリストにある場合は何もせず成功します。
func (r *watchlistGorm) Add(ctx context.Context, userID, movieID uint) error {
	entry := entity.Entry{UserID: userID, MovieID: movieID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}

// Remove はエントリを削除します。リストにない場合は何もせず成功します。
func (r *watchlistGorm) Remove(ctx context.Context, userID, movieID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&entity.Entry{}).Error
}
