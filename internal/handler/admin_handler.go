package handler

import (
	"strconv"

	"recipe-go/internal/dto"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理接口处理器,仅限员工访问
type AdminHandler struct {
	userRepo *repository.UserRepository
}

// NewAdminHandler 创建管理接口处理器
func NewAdminHandler(userRepo *repository.UserRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

// ListUsers 获取用户列表
// @Summary 获取用户列表
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.AdminUserListResponse}
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	users, total, err := h.userRepo.List((page-1)*perPage, perPage)
	if err != nil {
		utils.InternalError(c, "获取用户列表失败")
		return
	}

	infos := make([]dto.UserInfo, len(users))
	for i, user := range users {
		infos[i] = dto.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			IsActive: user.IsActive,
			IsStaff:  user.IsStaff,
		}
	}

	utils.SuccessResponse(c, dto.AdminUserListResponse{
		Users:   infos,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// UpdateUser 更新用户标记(启用/停用、员工权限)
// @Summary 更新用户标记
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminUpdateUserRequest true "可修改字段"
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userRepo.GetByID(uint(id))
	if err != nil {
		utils.NotFound(c, "用户不存在")
		return
	}

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}

	if err := h.userRepo.Update(user); err != nil {
		utils.InternalError(c, "更新用户失败")
		return
	}

	utils.SuccessWithMessage(c, "更新成功", dto.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		IsActive: user.IsActive,
		IsStaff:  user.IsStaff,
	})
}
