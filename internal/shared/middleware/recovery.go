package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-admin/internal/shared/response"
	"library-admin/pkg/logger"
)

// Recovery bắt panic và trả đúng error envelope của gateway,
// để client không bao giờ thấy body khác format chuẩn.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered",
					fmt.Errorf("%v (request_id=%s)", r, c.GetString("request_id")))

				status := http.StatusInternalServerError
				response.Error(c, status, response.CodeFor(status), "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
