package dto

import "movies_backend/internal/feature/auth/domain/entity"

// UserRes is the public projection of a user record.
// The password hash is never part of the response.
type UserRes struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AvatarPath string `json:"avatarPath,omitempty"`
}

// NewUserRes maps a user entity to its public response shape.
func NewUserRes(u *entity.User) UserRes {
	res := UserRes{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
	if u.AvatarPath != nil {
		res.AvatarPath = *u.AvatarPath
	}
	return res
}
