package repository

import (
	"recipe-go/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository 菜谱数据访问层,所有查询都按归属用户过滤
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository 创建菜谱Repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create 创建菜谱
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// ListByUserID 获取用户的菜谱列表,按标题倒序
func (r *RecipeRepository) ListByUserID(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("user_id = ?", userID).Order("title DESC").Find(&recipes).Error
	return recipes, err
}

// GetByIDForUser 获取用户自己的菜谱,他人的菜谱视为不存在
func (r *RecipeRepository) GetByIDForUser(id, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update 更新菜谱
func (r *RecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// DeleteForUser 删除用户自己的菜谱,返回是否删除了记录
func (r *RecipeRepository) DeleteForUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Recipe{})
	return result.RowsAffected > 0, result.Error
}
