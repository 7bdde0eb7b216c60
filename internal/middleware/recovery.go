package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user/movierank/internal/logger"
	"github.com/user/movierank/internal/utils"
)

// Recovery 兜底异常处理
// 未预期的 panic 统一转成 500，分配事件编号返回给调用方，
// 根因只记录在服务端日志里
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				incidentID := uuid.NewString()
				logger.Get().WithFields(map[string]interface{}{
					"incident_id": incidentID,
					"path":        c.Request.URL.Path,
					"panic":       r,
				}).Error("unexpected failure")
				utils.InternalServerError(c, incidentID)
				c.Abort()
			}
		}()
		c.Next()
	}
}
