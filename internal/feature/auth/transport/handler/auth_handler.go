// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"movies_backend/internal/feature/auth/domain/entity"
	"movies_backend/internal/feature/auth/transport/http/dto"
	"movies_backend/internal/feature/auth/usecase"
	jwtmw "movies_backend/internal/platform/jwt"
	"movies_backend/internal/shared/apierr"
)

// originAuth identifies this controller in error responses.
const originAuth = "auth"

// maxAvatarSize は受け付けるアバターファイルの上限サイズです。
const maxAvatarSize = 5 << 20 // 5MiB

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, email, password, name string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// Profile は認証済みユーザーの現在のレコードを取得します。
	Profile(ctx context.Context, id uint) (*entity.User, error)
	// SetAvatar はユーザーの存在を確認した上でアバターパスを保存します。
	SetAvatar(ctx context.Context, id uint, path string) error
}

// AvatarStore abstracts the file storage for uploaded avatars.
type AvatarStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth  AuthUsecase
	store AvatarStore
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseとAvatarStoreを注入します。
func NewAuthHandler(auth AuthUsecase, store AvatarStore) *AuthHandler {
	return &AuthHandler{auth: auth, store: store}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエスト（JSONまたはmultipartフォーム）をRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - アバターファイルが添付されている場合はレスポンス前に保存
// - 成功時は201でユーザーの公開フィールドを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		apierr.JSON(c, http.StatusBadRequest, "invalid request", originAuth)
		return
	}

	// Optional avatar attached to the multipart registration form.
	// Validated before the user record is written so an oversized file
	// leaves no partial state.
	avatar, avatarErr := c.FormFile("avatar")
	hasAvatar := avatarErr == nil
	if hasAvatar && avatar.Size > maxAvatarSize {
		slog.Warn("signup avatar too large", "size", avatar.Size, "remote_addr", c.ClientIP())
		apierr.JSON(c, http.StatusBadRequest, "avatar file exceeds the size limit", originAuth)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			apierr.JSON(c, http.StatusConflict,
				fmt.Sprintf("user with email %s already exists", req.Email), originAuth)
			return
		}
		if errors.Is(err, usecase.ErrPasswordTooShort) {
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			apierr.JSON(c, http.StatusBadRequest, "signup failed", originAuth)
			return
		}
		// コラボレーター側の失敗はクライアントの責任ではない
		slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		apierr.JSON(c, http.StatusInternalServerError, "signup failed", originAuth)
		return
	}

	// Stored synchronously so the response already carries the path.
	if hasAvatar {
		path, err := h.store.Save(avatar)
		if err != nil {
			slog.Error("avatar store failed during signup", "error", err, "user_id", user.ID)
			apierr.JSON(c, http.StatusInternalServerError, "failed to store avatar", originAuth)
			return
		}
		if err := h.auth.SetAvatar(c.Request.Context(), user.ID, path); err != nil {
			slog.Error("avatar path update failed during signup", "error", err, "user_id", user.ID)
			apierr.JSON(c, http.StatusInternalServerError, "failed to store avatar", originAuth)
			return
		}
		user.AvatarPath = &path
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（存在しないユーザーとパスワード不一致で同一メッセージ）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		apierr.JSON(c, http.StatusBadRequest, "invalid request", originAuth)
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		apierr.JSON(c, http.StatusUnauthorized, "invalid email or password", originAuth)
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: token})
}

// Profile は認証済みユーザーのプロフィールを返します。
// AuthRequiredミドルウェアが設定したユーザーIDで検索します。
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		apierr.JSON(c, http.StatusUnauthorized, "missing authenticated user", originAuth)
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			apierr.JSON(c, http.StatusNotFound, "user not found", originAuth)
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to load profile", originAuth)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// UploadAvatar は認証済みユーザーのアバターを保存します。
// - multipartの"avatar"フィールドが必須（なければ400）
// - 対象ユーザーの存在確認が保存より先に実行される
// - 成功時は201で保存されたファイルパスを返却
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		apierr.JSON(c, http.StatusUnauthorized, "missing authenticated user", originAuth)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		apierr.JSON(c, http.StatusBadRequest, "avatar file is required", originAuth)
		return
	}
	if file.Size > maxAvatarSize {
		slog.Warn("avatar too large", "size", file.Size, "user_id", userID)
		apierr.JSON(c, http.StatusBadRequest, "avatar file exceeds the size limit", originAuth)
		return
	}

	// Existence check runs before the file is written, so a missing user
	// leaves nothing on disk.
	if _, err := h.auth.Profile(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			apierr.JSON(c, http.StatusNotFound, "user not found", originAuth)
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", userID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to store avatar", originAuth)
		return
	}

	path, err := h.store.Save(file)
	if err != nil {
		slog.Error("avatar store failed", "error", err, "user_id", userID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to store avatar", originAuth)
		return
	}

	if err := h.auth.SetAvatar(c.Request.Context(), userID, path); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			apierr.JSON(c, http.StatusNotFound, "user not found", originAuth)
			return
		}
		slog.Error("avatar path update failed", "error", err, "user_id", userID)
		apierr.JSON(c, http.StatusInternalServerError, "failed to store avatar", originAuth)
		return
	}

	slog.Info("avatar uploaded", "user_id", userID, "path", path)
	c.JSON(http.StatusCreated, dto.AvatarRes{Filepath: path})
}

// Logout is reserved; stateless JWTs have nothing to revoke server-side yet.
func (h *AuthHandler) Logout(c *gin.Context) {
	apierr.JSON(c, http.StatusNotImplemented, "not implemented", originAuth)
}
