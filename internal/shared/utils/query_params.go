package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt parse query param thành int, fallback về default khi
// thiếu hoặc không parse được.
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func QueryInt64(c *gin.Context, key string, defaultValue int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}
