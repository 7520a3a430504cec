package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"movies_backend/internal/app/di"
	"movies_backend/internal/app/router"
	authadapters "movies_backend/internal/feature/auth/adapters"
	authhandler "movies_backend/internal/feature/auth/transport/handler"
	authusecase "movies_backend/internal/feature/auth/usecase"
	commentadapters "movies_backend/internal/feature/comment/adapters"
	commenthandler "movies_backend/internal/feature/comment/transport/handler"
	commentusecase "movies_backend/internal/feature/comment/usecase"
	moviehandler "movies_backend/internal/feature/movie/transport/handler"
	movieusecase "movies_backend/internal/feature/movie/usecase"
	watchlistadapters "movies_backend/internal/feature/watchlist/adapters"
	watchlisthandler "movies_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "movies_backend/internal/feature/watchlist/usecase"
	"movies_backend/internal/platform/config"
	platformdb "movies_backend/internal/platform/db"
	platformjwt "movies_backend/internal/platform/jwt"
	platformredis "movies_backend/internal/platform/redis"
	"movies_backend/internal/platform/storage"
)

func main() {
	// .envはローカル開発用。存在しなくてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg.DSN())

	// Redis
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr == "" {
		slog.Warn("Redis is not configured. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(addr, cfg.RedisPass); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// アバター保存先
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	commentRepo := commentadapters.NewCommentRepository(db)
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)
	// Redisが使える場合はキャッシュでラップ
	movieRepo := di.NewMovieRepository(rdb, db, cfg.CacheTTL)

	// Usecase
	jwtGen := platformjwt.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	movieUC := movieusecase.NewMovieUsecase(movieRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, movieUC)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, movieUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, store)
	movieH := moviehandler.NewMovieHandler(movieUC)
	commentH := commenthandler.NewCommentHandler(commentUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	// ルータ生成
	r := router.NewRouter(authH, movieH, commentH, watchlistH, store.Dir())

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
