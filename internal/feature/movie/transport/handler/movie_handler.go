// Package handler はmovieフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movies_backend/internal/feature/movie/domain/entity"
	"movies_backend/internal/feature/movie/transport/http/dto"
	"movies_backend/internal/feature/movie/usecase"
	"movies_backend/internal/shared/apierr"
)

const originMovie = "movie"

// MovieUsecase は映画操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MovieUsecase interface {
	ListMovies(ctx context.Context, genre string, limit int) ([]entity.Movie, error)
	GetMovie(ctx context.Context, id uint) (*entity.Movie, error)
	CreateMovie(ctx context.Context, movie *entity.Movie) error
}

// MovieHandler は映画カタログのHTTPリクエストを処理します。
type MovieHandler struct {
	uc MovieUsecase
}

// NewMovieHandler は指定されたusecaseでMovieHandlerの新しいインスタンスを生成します。
func NewMovieHandler(uc MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// List は公開の映画一覧を返します。
//
// エンドポイント例:
// GET /movies?genre=scifi&limit=20
func (h *MovieHandler) List(c *gin.Context) {
	genre := c.Query("genre")
	// 未指定・不正値はusecase側でデフォルトに丸められる
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	movies, err := h.uc.ListMovies(c.Request.Context(), genre, limit)
	if err != nil {
		slog.Error("failed to list movies", "error", err, "genre", genre)
		apierr.JSON(c, http.StatusInternalServerError, "failed to list movies", originMovie)
		return
	}

	c.JSON(http.StatusOK, dto.NewMovieListRes(movies))
}

// Get はIDで単一の映画を返します。存在しない場合は404を返します。
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierr.JSON(c, http.StatusBadRequest, "invalid movie id", originMovie)
		return
	}

	movie, err := h.uc.GetMovie(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			apierr.JSON(c, http.StatusNotFound, fmt.Sprintf("movie with id %d not found", id), originMovie)
			return
		}
		slog.Error("failed to get movie", "error", err, "movie_id", id)
		apierr.JSON(c, http.StatusInternalServerError, "failed to get movie", originMovie)
		return
	}

	c.JSON(http.StatusOK, dto.NewMovieRes(movie))
}

// Create は新しい映画を登録します。認証済みユーザーのみ利用できます。
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.JSON(c, http.StatusBadRequest, err.Error(), originMovie)
		return
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Rating:      req.Rating,
		PosterPath:  req.PosterPath,
	}

	if err := h.uc.CreateMovie(c.Request.Context(), movie); err != nil {
		slog.Error("failed to create movie", "error", err, "title", req.Title)
		apierr.JSON(c, http.StatusInternalServerError, "failed to create movie", originMovie)
		return
	}

	slog.Info("movie created", "movie_id", movie.ID, "title", movie.Title)
	c.JSON(http.StatusCreated, dto.NewMovieRes(movie))
}
