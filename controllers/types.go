package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/utils"
)

// respondError writes a service error as JSON with the status the error
// kind maps to. Server-side failures stay opaque to the client.
func respondError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	kind := utils.KindOf(err)

	message := "service unavailable, try again later"
	var appErr *utils.AppError
	if errors.As(err, &appErr) && kind != utils.KindUnavailable {
		message = appErr.Message
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"kind":    string(kind),
			"message": message,
		},
	})
}

// pathID parses a numeric path parameter, returning 0 when it is malformed.
func pathID(c *gin.Context, name string) uint {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(val)
}

// queryInt reads an integer query parameter with a default.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
