package middleware

import (
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// StaffMiddleware 员工权限中间件,置于AuthMiddleware之后
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			utils.Forbidden(c, "需要员工权限")
			c.Abort()
			return
		}
		c.Next()
	}
}
