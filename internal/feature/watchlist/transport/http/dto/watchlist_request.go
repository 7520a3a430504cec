package dto

// WatchlistReq はリストへの追加・削除リクエストのDTOです。
type WatchlistReq struct {
	MovieID uint `json:"movieId" binding:"required"`
}
