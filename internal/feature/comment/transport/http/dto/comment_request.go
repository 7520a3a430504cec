package dto

// CreateCommentReq はコメント投稿リクエストのDTOです。
type CreateCommentReq struct {
	MovieID uint   `json:"movieId" binding:"required"`
	Text    string `json:"text" binding:"required,max=1024"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}
