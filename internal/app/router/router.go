// Package router はアプリケーションのHTTPルーティングを構築します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "movies_backend/internal/feature/auth/transport/handler"
	commenthandler "movies_backend/internal/feature/comment/transport/handler"
	moviehandler "movies_backend/internal/feature/movie/transport/handler"
	watchlisthandler "movies_backend/internal/feature/watchlist/transport/handler"
	"movies_backend/internal/platform/http/handler"
	jwtmw "movies_backend/internal/platform/jwt"
)

// NewRouter はすべてのハンドラーを配線したginエンジンを返します。
// uploadDir が空でない場合、アップロード済みアバターを /upload 配下で配信します。
func NewRouter(
	auth *authhandler.AuthHandler,
	movies *moviehandler.MovieHandler,
	comments *commenthandler.CommentHandler,
	watchlist *watchlisthandler.WatchlistHandler,
	uploadDir string,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録（multipartでアバターも受け付ける）
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// ログアウトは未実装
	r.DELETE("/login", auth.Logout)

	// 映画カタログの閲覧とコメントは公開
	r.GET("/movies", movies.List)
	r.GET("/movies/:id", movies.Get)
	r.GET("/movies/:id/comments", comments.ListByMovie)
	r.POST("/comments", comments.Create)

	// アップロード済みアバターの配信
	if uploadDir != "" {
		r.Static("/upload", uploadDir)
	}

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	protected := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/profile", auth.Profile)
		protected.POST("/profile/avatar", auth.UploadAvatar)
		protected.POST("/movies", movies.Create)
		protected.GET("/towatch", watchlist.List)
		protected.POST("/towatch", watchlist.Add)
		protected.DELETE("/towatch", watchlist.Remove)
	}

	return r
}
