// Package apierr defines the structured error body returned by every failing request.
package apierr

import "github.com/gin-gonic/gin"

// ErrorResponse is the JSON body for all error responses.
// Origin names the component the failure came from, so clients and logs can
// tell a gate rejection from a handler precondition failure.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Origin  string `json:"origin"`
}

// New builds an ErrorResponse.
func New(status int, message, origin string) ErrorResponse {
	return ErrorResponse{Status: status, Message: message, Origin: origin}
}

// JSON writes the error response with its status code.
func JSON(c *gin.Context, status int, message, origin string) {
	c.JSON(status, New(status, message, origin))
}
