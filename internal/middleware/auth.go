package middleware

import (
	"strings"

	"recipe-go/internal/models"
	"recipe-go/internal/service"
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 令牌认证中间件
// 在任何业务逻辑之前把令牌解析为用户,失败直接401
func AuthMiddleware(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		// 解析认证头,兼容 Bearer 与 Token 前缀
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
			utils.Unauthorized(c, "无效的认证格式")
			c.Abort()
			return
		}

		key := parts[1]

		// 解析令牌
		user, err := tokenService.ResolveToken(key)
		if err != nil {
			utils.Unauthorized(c, "令牌无效或已过期")
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("token_key", key)
		c.Set("is_staff", user.IsStaff)

		c.Next()
	}
}

// GetUser 从上下文获取当前用户
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	return value.(*models.User), true
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetTokenKey 从上下文获取当前请求使用的令牌值
func GetTokenKey(c *gin.Context) (string, bool) {
	key, exists := c.Get("token_key")
	if !exists {
		return "", false
	}
	return key.(string), true
}

// IsStaff 从上下文判断是否为员工
func IsStaff(c *gin.Context) bool {
	isStaff, exists := c.Get("is_staff")
	if !exists {
		return false
	}
	return isStaff.(bool)
}
