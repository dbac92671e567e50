package handler

import (
	"errors"
	"strconv"

	"recipe-go/internal/dto"
	"recipe-go/internal/middleware"
	"recipe-go/internal/service"
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TagHandler 标签处理器
type TagHandler struct {
	tagService *service.TagService
}

// NewTagHandler 创建标签处理器
func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List 获取当前用户的标签列表
// @Summary 获取标签列表
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.TagResponse}
// @Router /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	tags, err := h.tagService.List(userID)
	if err != nil {
		utils.InternalError(c, "获取标签列表失败")
		return
	}

	utils.SuccessResponse(c, tags)
}

// Create 创建标签
// @Summary 创建标签
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTagRequest true "标签信息"
// @Success 201 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	tag, err := h.tagService.Create(userID, req.Name)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "创建成功", dto.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	})
}

// Get 获取标签详情
// @Summary 获取标签详情
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	tag, err := h.tagService.Get(userID, uint(id))
	if err != nil {
		utils.NotFound(c, "标签不存在")
		return
	}

	utils.SuccessResponse(c, dto.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	})
}

// Update 更新标签
// @Summary 更新标签
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateTagRequest true "可修改字段"
// @Success 200 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags/{id} [patch]
func (h *TagHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	tag, err := h.tagService.Update(userID, uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.NotFound(c, "标签不存在")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", dto.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	})
}

// Delete 删除标签
// @Summary 删除标签
// @Tags 标签
// @Security BearerAuth
// @Success 204
// @Router /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.tagService.Delete(userID, uint(id)); err != nil {
		utils.NotFound(c, "标签不存在")
		return
	}

	utils.NoContentResponse(c)
}
