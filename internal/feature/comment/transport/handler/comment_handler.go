// Package handler はcommentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movies_backend/internal/feature/comment/domain/entity"
	"movies_backend/internal/feature/comment/transport/http/dto"
	"movies_backend/internal/feature/comment/usecase"
	"movies_backend/internal/shared/apierr"
)

const originComment = "comment"

// CommentUsecase はコメント操作のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CommentUsecase interface {
	CreateComment(ctx context.Context, comment *entity.Comment) error
	ListByMovie(ctx context.Context, movieID uint) ([]entity.Comment, error)
}

// CommentHandler は映画コメントのHTTPリクエストを処理します。
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler は新しい CommentHandler を作成します。
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create はコメントを投稿します。対象の映画が存在しない場合は404を返します。
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.JSON(c, http.StatusBadRequest, err.Error(), originComment)
		return
	}

	comment := &entity.Comment{
		MovieID: req.MovieID,
		Text:    req.Text,
		Rating:  req.Rating,
	}

	if err := h.uc.CreateComment(c.Request.Context(), comment); err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			apierr.JSON(c, http.StatusNotFound, fmt.Sprintf("movie with id %d not found", req.MovieID), originComment)
			return
		}
		slog.Error("failed to create comment", "error", err, "movie_id", req.MovieID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to create comment", originComment)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentRes(comment))
}

// ListByMovie は指定された映画のコメント一覧を新しい順に返します。
//
// エンドポイント例:
// GET /movies/:id/comments
func (h *CommentHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierr.JSON(c, http.StatusBadRequest, "invalid movie id", originComment)
		return
	}

	comments, err := h.uc.ListByMovie(c.Request.Context(), uint(movieID))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			apierr.JSON(c, http.StatusNotFound, fmt.Sprintf("movie with id %d not found", movieID), originComment)
			return
		}
		slog.Error("failed to list comments", "error", err, "movie_id", movieID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to list comments", originComment)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentListRes(comments))
}
