package handler

import (
	"errors"
	"net/http"

	"recipe-go/internal/dto"
	"recipe-go/internal/middleware"
	"recipe-go/internal/service"
	"recipe-go/internal/utils"
	"recipe-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器,负责注册、令牌签发与个人资料
type UserHandler struct {
	userService  *service.UserService
	tokenService *service.TokenService
	loginLimiter *redis_limiter.LoginLimiter // 为nil时限流关闭
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService *service.UserService, tokenService *service.TokenService, loginLimiter *redis_limiter.LoginLimiter) *UserHandler {
	return &UserHandler{
		userService:  userService,
		tokenService: tokenService,
		loginLimiter: loginLimiter,
	}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} utils.Response{data=dto.UserInfo}
// @Router /api/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.Name)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	// 响应中不回显密码
	utils.CreatedResponse(c, "注册成功", dto.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		IsActive: user.IsActive,
		IsStaff:  user.IsStaff,
	})
}

// IssueToken 签发访问令牌
// @Summary 签发访问令牌
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "登录凭证"
// @Success 200 {object} utils.Response{data=dto.TokenResponse}
// @Router /api/users/token [post]
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	limiterKey := req.Email + ":" + c.ClientIP()

	if h.loginLimiter != nil {
		allowed, err := h.loginLimiter.Allowed(c.Request.Context(), limiterKey)
		if err == nil && !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "尝试次数过多,请稍后再试")
			return
		}
	}

	token, err := h.tokenService.IssueToken(req.Email, req.Password)
	if err != nil {
		if h.loginLimiter != nil && errors.Is(err, service.ErrAuthentication) {
			_, _ = h.loginLimiter.RecordFailure(c.Request.Context(), limiterKey)
		}
		// 失败响应不包含token字段,也不区分失败原因
		utils.BadRequest(c, service.ErrAuthentication.Error())
		return
	}

	if h.loginLimiter != nil {
		_ = h.loginLimiter.Reset(c.Request.Context(), limiterKey)
	}

	utils.SuccessWithMessage(c, "登录成功", dto.TokenResponse{Token: token})
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.MeResponse}
// @Router /api/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	utils.SuccessResponse(c, dto.MeResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}

// UpdateMe 更新当前用户信息
// @Summary 更新当前用户信息
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMeRequest true "可修改字段"
// @Success 200 {object} utils.Response{data=dto.MeResponse}
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", dto.MeResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}

// MeNotAllowed /users/me 不支持的方法统一返回405
func (h *UserHandler) MeNotAllowed(c *gin.Context) {
	utils.MethodNotAllowed(c)
}

// Logout 用户登出,作废当前令牌
// @Summary 用户登出
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	key, exists := middleware.GetTokenKey(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	if err := h.tokenService.RevokeToken(key); err != nil {
		utils.InternalError(c, "登出失败")
		return
	}

	utils.SuccessWithMessage(c, "登出成功", nil)
}
