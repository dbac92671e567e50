package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"recipe-go/internal/config"
	"recipe-go/internal/dto"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"

	"gorm.io/gorm"
)

// RecipeService 菜谱服务,所有操作以请求用户为边界
type RecipeService struct {
	recipeRepo *repository.RecipeRepository
	cfg        *config.Config
}

// NewRecipeService 创建菜谱服务
func NewRecipeService(recipeRepo *repository.RecipeRepository, cfg *config.Config) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		cfg:        cfg,
	}
}

// Create 为用户创建菜谱,归属用户由服务端指定
func (s *RecipeService) Create(userID uint, req *dto.CreateRecipeRequest) (*models.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("标题不能为空")
	}

	recipe := &models.Recipe{
		Title:       title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		UserID:      userID,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("创建菜谱失败: %w", err)
	}

	return recipe, nil
}

// List 获取用户的菜谱,按标题倒序
func (s *RecipeService) List(userID uint) ([]dto.RecipeResponse, error) {
	recipes, err := s.recipeRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RecipeResponse, len(recipes))
	for i, recipe := range recipes {
		responses[i] = toRecipeResponse(&recipe)
	}

	return responses, nil
}

// Get 获取用户自己的菜谱
func (s *RecipeService) Get(userID, id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Update 更新用户自己的菜谱
func (s *RecipeService) Update(userID, id uint, req *dto.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errors.New("标题不能为空")
		}
		recipe.Title = title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("更新菜谱失败: %w", err)
	}

	return recipe, nil
}

// Delete 删除用户自己的菜谱,同时清理已上传的图片文件
func (s *RecipeService) Delete(userID, id uint) error {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return err
	}

	deleted, err := s.recipeRepo.DeleteForUser(id, userID)
	if err != nil {
		return fmt.Errorf("删除菜谱失败: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	if recipe.ImagePath != "" {
		// 图片文件清理失败不影响删除结果
		_ = os.Remove(filepath.Join(s.cfg.Upload.Root, recipe.ImagePath))
	}

	return nil
}

// AttachImage 保存菜谱图片并更新image_path
// 文件名为防碰撞随机标识加原始扩展名,位于固定的 uploads/recipe 命名空间下
func (s *RecipeService) AttachImage(userID, id uint, originalName string, src io.Reader) (*models.Recipe, error) {
	if !utils.IsAllowedImage(originalName) {
		return nil, errors.New("不支持的图片格式")
	}

	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	imagePath := utils.RecipeImagePath(utils.NewImageID(), originalName)
	fullPath := filepath.Join(s.cfg.Upload.Root, imagePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("保存图片失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("写入图片失败: %w", err)
	}

	oldPath := recipe.ImagePath
	recipe.ImagePath = imagePath
	if err := s.recipeRepo.Update(recipe); err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("更新菜谱失败: %w", err)
	}

	if oldPath != "" {
		// 替换成功后清理旧图片
		_ = os.Remove(filepath.Join(s.cfg.Upload.Root, oldPath))
	}

	return recipe, nil
}

// toRecipeResponse 模型转响应
func toRecipeResponse(recipe *models.Recipe) dto.RecipeResponse {
	return dto.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImagePath:   recipe.ImagePath,
		CreatedAt:   recipe.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   recipe.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
