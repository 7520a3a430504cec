// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /signup endpoint.
// It binds from JSON or multipart form, so an avatar file can accompany the
// registration. Gin's binding tags enforce the validation rules.
type RegisterReq struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	Name     string `json:"name" form:"name" binding:"required,max=15"`
}
