package dto

import (
	"time"

	"movies_backend/internal/feature/movie/domain/entity"
)

// MovieRes は映画データのレスポンスDTOです。
type MovieRes struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	PosterPath  string  `json:"posterPath,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// NewMovieRes はエンティティからレスポンスDTOを生成します。
func NewMovieRes(m *entity.Movie) MovieRes {
	return MovieRes{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
		PosterPath:  m.PosterPath,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewMovieListRes は一覧用にエンティティのスライスを変換します。
func NewMovieListRes(movies []entity.Movie) []MovieRes {
	out := make([]MovieRes, 0, len(movies))
	for i := range movies {
		out = append(out, NewMovieRes(&movies[i]))
	}
	return out
}
