// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	movieentity "movies_backend/internal/feature/movie/domain/entity"
	moviedto "movies_backend/internal/feature/movie/transport/http/dto"
	"movies_backend/internal/feature/watchlist/transport/http/dto"
	"movies_backend/internal/feature/watchlist/usecase"
	jwtmw "movies_backend/internal/platform/jwt"
	"movies_backend/internal/shared/apierr"
)

const originWatchlist = "watchlist"

// WatchlistUsecase はto-watchリスト操作のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	ListMovies(ctx context.Context, userID uint) ([]movieentity.Movie, error)
	AddMovie(ctx context.Context, userID, movieID uint) error
	RemoveMovie(ctx context.Context, userID, movieID uint) error
}

// WatchlistHandler は認証済みユーザーのto-watchリストのHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List は認証済みユーザーのリスト上の映画一覧を返します。
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		apierr.JSON(c, http.StatusUnauthorized, "unauthorized", originWatchlist)
		return
	}

	movies, err := h.uc.ListMovies(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list watchlist", "error", err, "user_id", userID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to list watchlist", originWatchlist)
		return
	}

	c.JSON(http.StatusOK, moviedto.NewMovieListRes(movies))
}

// Add は映画をリストに追加します。既に追加済みでも成功を返します。
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		apierr.JSON(c, http.StatusUnauthorized, "unauthorized", originWatchlist)
		return
	}

	var req dto.WatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.JSON(c, http.StatusBadRequest, err.Error(), originWatchlist)
		return
	}

	if err := h.uc.AddMovie(c.Request.Context(), userID, req.MovieID); err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			apierr.JSON(c, http.StatusNotFound, fmt.Sprintf("movie with id %d not found", req.MovieID), originWatchlist)
			return
		}
		slog.Error("failed to add to watchlist", "error", err, "user_id", userID, "movie_id", req.MovieID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to add to watchlist", originWatchlist)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove は映画をリストから削除します。リストにない映画でも成功を返します。
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		apierr.JSON(c, http.StatusUnauthorized, "unauthorized", originWatchlist)
		return
	}

	var req dto.WatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.JSON(c, http.StatusBadRequest, err.Error(), originWatchlist)
		return
	}

	if err := h.uc.RemoveMovie(c.Request.Context(), userID, req.MovieID); err != nil {
		slog.Error("failed to remove from watchlist", "error", err, "user_id", userID, "movie_id", req.MovieID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to remove from watchlist", originWatchlist)
		return
	}

	c.Status(http.StatusNoContent)
}
