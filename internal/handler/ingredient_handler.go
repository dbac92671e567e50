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

// IngredientHandler 食材处理器
type IngredientHandler struct {
	ingredientService *service.IngredientService
}

// NewIngredientHandler 创建食材处理器
func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// List 获取当前用户的食材列表
// @Summary 获取食材列表
// @Tags 食材
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.IngredientResponse}
// @Router /api/ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	ingredients, err := h.ingredientService.List(userID)
	if err != nil {
		utils.InternalError(c, "获取食材列表失败")
		return
	}

	utils.SuccessResponse(c, ingredients)
}

// Create 创建食材
// @Summary 创建食材
// @Tags 食材
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIngredientRequest true "食材信息"
// @Success 201 {object} utils.Response{data=dto.IngredientResponse}
// @Router /api/ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.ingredientService.Create(userID, req.Name)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "创建成功", dto.IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	})
}

// Get 获取食材详情
// @Summary 获取食材详情
// @Tags 食材
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.IngredientResponse}
// @Router /api/ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	ingredient, err := h.ingredientService.Get(userID, uint(id))
	if err != nil {
		utils.NotFound(c, "食材不存在")
		return
	}

	utils.SuccessResponse(c, dto.IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	})
}

// Update 更新食材
// @Summary 更新食材
// @Tags 食材
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateIngredientRequest true "可修改字段"
// @Success 200 {object} utils.Response{data=dto.IngredientResponse}
// @Router /api/ingredients/{id} [patch]
func (h *IngredientHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ingredient, err := h.ingredientService.Update(userID, uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.NotFound(c, "食材不存在")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", dto.IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	})
}

// Delete 删除食材
// @Summary 删除食材
// @Tags 食材
// @Security BearerAuth
// @Success 204
// @Router /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.ingredientService.Delete(userID, uint(id)); err != nil {
		utils.NotFound(c, "食材不存在")
		return
	}

	utils.NoContentResponse(c)
}
