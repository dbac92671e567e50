package repository

import (
	"recipe-go/internal/models"

	"gorm.io/gorm"
)

// IngredientRepository 食材数据访问层,所有查询都按归属用户过滤
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository 创建食材Repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create 创建食材
func (r *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// ListByUserID 获取用户的食材列表,按名称倒序
func (r *IngredientRepository) ListByUserID(userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("user_id = ?", userID).Order("name DESC").Find(&ingredients).Error
	return ingredients, err
}

// GetByIDForUser 获取用户自己的食材,他人的食材视为不存在
func (r *IngredientRepository) GetByIDForUser(id, userID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update 更新食材
func (r *IngredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

// DeleteForUser 删除用户自己的食材,返回是否删除了记录
func (r *IngredientRepository) DeleteForUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Ingredient{})
	return result.RowsAffected > 0, result.Error
}

// ExistsByNameForUser 检查用户是否已有同名食材
func (r *IngredientRepository) ExistsByNameForUser(name string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Ingredient{}).Where("name = ? AND user_id = ?", name, userID).Count(&count).Error
	return count > 0, err
}
