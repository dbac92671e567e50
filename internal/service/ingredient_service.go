package service

import (
	"errors"
	"fmt"
	"strings"

	"recipe-go/internal/dto"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"

	"gorm.io/gorm"
)

// IngredientService 食材服务,所有操作以请求用户为边界
type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

// NewIngredientService 创建食材服务
func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// Create 为用户创建食材,归属用户由服务端指定
func (s *IngredientService) Create(userID uint, name string) (*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	input := struct {
		Name string `validate:"required,notblank,max=255"`
	}{Name: name}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	ingredient := &models.Ingredient{
		Name:   name,
		UserID: userID,
	}

	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, fmt.Errorf("创建食材失败: %w", err)
	}

	return ingredient, nil
}

// List 获取用户的食材,按名称倒序
func (s *IngredientService) List(userID uint) ([]dto.IngredientResponse, error) {
	ingredients, err := s.ingredientRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IngredientResponse, len(ingredients))
	for i, ingredient := range ingredients {
		responses[i] = dto.IngredientResponse{
			ID:   ingredient.ID,
			Name: ingredient.Name,
		}
	}

	return responses, nil
}

// Get 获取用户自己的食材
func (s *IngredientService) Get(userID, id uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

// Update 更新用户自己的食材
func (s *IngredientService) Update(userID, id uint, req *dto.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("名称不能为空")
		}
		ingredient.Name = name
	}

	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, fmt.Errorf("更新食材失败: %w", err)
	}

	return ingredient, nil
}

// Delete 删除用户自己的食材
func (s *IngredientService) Delete(userID, id uint) error {
	deleted, err := s.ingredientRepo.DeleteForUser(id, userID)
	if err != nil {
		return fmt.Errorf("删除食材失败: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
