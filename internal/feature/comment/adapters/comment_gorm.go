// Package adapters はcommentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"movies_backend/internal/feature/comment/domain/entity"
	"movies_backend/internal/feature/comment/usecase"
)

// commentGorm はCommentRepositoryインターフェースのGORM実装です。
type commentGorm struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentRepository は指定されたDB接続でcommentGormリポジトリの新しいインスタンスを生成します。
func NewCommentRepository(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// Create はコメントを保存します。
func (r *commentGorm) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByMovie は指定された映画のコメントを新しい順に返します。
func (r *commentGorm) ListByMovie(ctx context.Context, movieID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
