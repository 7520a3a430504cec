package dto

// CreateMovieReq は映画登録リクエストのDTOです。
type CreateMovieReq struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1024"`
	Genre       string  `json:"genre" binding:"max=100"`
	ReleaseYear int     `json:"releaseYear" binding:"omitempty,gte=1888"`
	Rating      float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
	PosterPath  string  `json:"posterPath" binding:"max=512"`
}
