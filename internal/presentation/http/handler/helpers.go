package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
	"github.com/sangkips/kasir/internal/presentation/http/middleware"
)

// GetCurrentUser extracts the cashier from the Gin context
func GetCurrentUser(c *gin.Context) *entity.CurrentUser {
	return middleware.CurrentUser(c)
}

// requireUser writes 401 and returns nil when the request has no cashier
func requireUser(c *gin.Context) *entity.CurrentUser {
	user := GetCurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil
	}
	return user
}

// bindError answers a malformed body or query
func bindError(c *gin.Context, err error) {
	response.BadRequest(c, "Invalid request: "+err.Error())
}
