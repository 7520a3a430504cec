package dto

// TokenRes carries the JWT issued by a successful login.
type TokenRes struct {
	Token string `json:"token"`
}

// AvatarRes carries the stored path of an uploaded avatar.
type AvatarRes struct {
	Filepath string `json:"filepath"`
}
