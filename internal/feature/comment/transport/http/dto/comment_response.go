package dto

import (
	"time"

	"movies_backend/internal/feature/comment/domain/entity"
)

// CommentRes はコメントのレスポンスDTOです。
type CommentRes struct {
	ID        uint   `json:"id"`
	MovieID   uint   `json:"movieId"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"createdAt"`
}

// NewCommentRes はエンティティからレスポンスDTOを生成します。
func NewCommentRes(c *entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		MovieID:   c.MovieID,
		Text:      c.Text,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewCommentListRes は一覧用にエンティティのスライスを変換します。
func NewCommentListRes(comments []entity.Comment) []CommentRes {
	out := make([]CommentRes, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentRes(&comments[i]))
	}
	return out
}
