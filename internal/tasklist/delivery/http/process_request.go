package http

import (
	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/model"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scopeFrom builds the request scope. Callers may identify themselves with
// the X-User-ID header; anonymous API calls share one list.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "api"
	}
	return model.Scope{UserID: userID}
}
