package handler

import (
	"errors"
	"strconv"

	"recipe-go/internal/config"
	"recipe-go/internal/dto"
	"recipe-go/internal/middleware"
	"recipe-go/internal/service"
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecipeHandler 菜谱处理器
type RecipeHandler struct {
	recipeService *service.RecipeService
	cfg           *config.Config
}

// NewRecipeHandler 创建菜谱处理器
func NewRecipeHandler(recipeService *service.RecipeService, cfg *config.Config) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		cfg:           cfg,
	}
}

// List 获取当前用户的菜谱列表
// @Summary 获取菜谱列表
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.RecipeResponse}
// @Router /api/recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	recipes, err := h.recipeService.List(userID)
	if err != nil {
		utils.InternalError(c, "获取菜谱列表失败")
		return
	}

	utils.SuccessResponse(c, recipes)
}

// Create 创建菜谱
// @Summary 创建菜谱
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRecipeRequest true "菜谱信息"
// @Success 201 {object} utils.Response{data=dto.RecipeResponse}
// @Router /api/recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.Create(userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "创建成功", dto.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImagePath:   recipe.ImagePath,
		CreatedAt:   recipe.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   recipe.UpdatedAt.Format("2006-01-02 15:04:05"),
	})
}

// Get 获取菜谱详情
// @Summary 获取菜谱详情
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.RecipeResponse}
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	recipe, err := h.recipeService.Get(userID, uint(id))
	if err != nil {
		utils.NotFound(c, "菜谱不存在")
		return
	}

	utils.SuccessResponse(c, dto.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImagePath:   recipe.ImagePath,
		CreatedAt:   recipe.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   recipe.UpdatedAt.Format("2006-01-02 15:04:05"),
	})
}

// Update 更新菜谱
// @Summary 更新菜谱
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRecipeRequest true "可修改字段"
// @Success 200 {object} utils.Response{data=dto.RecipeResponse}
// @Router /api/recipes/{id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.Update(userID, uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.NotFound(c, "菜谱不存在")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", dto.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImagePath:   recipe.ImagePath,
		CreatedAt:   recipe.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   recipe.UpdatedAt.Format("2006-01-02 15:04:05"),
	})
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Tags 菜谱
// @Security BearerAuth
// @Success 204
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.recipeService.Delete(userID, uint(id)); err != nil {
		utils.NotFound(c, "菜谱不存在")
		return
	}

	utils.NoContentResponse(c)
}

// UploadImage 上传菜谱图片
// @Summary 上传菜谱图片
// @Tags 菜谱
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "图片文件"
// @Success 200 {object} utils.Response{data=dto.RecipeImageResponse}
// @Router /api/recipes/{id}/image [post]
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "图片上传失败: "+err.Error())
		return
	}

	if file.Size > int64(h.cfg.Upload.MaxSizeMB)*1024*1024 {
		utils.BadRequest(c, "图片超过大小限制")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.BadRequest(c, "打开文件失败: "+err.Error())
		return
	}
	defer src.Close()

	recipe, err := h.recipeService.AttachImage(userID, uint(id), file.Filename, src)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.NotFound(c, "菜谱不存在")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "图片上传成功", dto.RecipeImageResponse{
		ID:        recipe.ID,
		ImagePath: recipe.ImagePath,
	})
}
