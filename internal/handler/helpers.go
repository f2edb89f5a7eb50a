package handler

import (
	"net/http"
	"strconv"

	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric ID path parameter. On failure it writes the error
// response and returns false.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}

// actorID returns the authenticated admin's ID from the request context.
func actorID(c *gin.Context) uint {
	id, _ := c.Get("adminID")
	adminID, ok := id.(uint)
	if !ok {
		return 0
	}
	return adminID
}
