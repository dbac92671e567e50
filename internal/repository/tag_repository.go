package repository

import (
	"recipe-go/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问层,所有查询都按归属用户过滤
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签Repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create 创建标签
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// ListByUserID 获取用户的标签列表,按名称倒序
func (r *TagRepository) ListByUserID(userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("user_id = ?", userID).Order("name DESC").Find(&tags).Error
	return tags, err
}

// GetByIDForUser 获取用户自己的标签,他人的标签视为不存在
func (r *TagRepository) GetByIDForUser(id, userID uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update 更新标签
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// DeleteForUser 删除用户自己的标签,返回是否删除了记录
func (r *TagRepository) DeleteForUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{})
	return result.RowsAffected > 0, result.Error
}

// ExistsByNameForUser 检查用户是否已有同名标签
func (r *TagRepository) ExistsByNameForUser(name string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("name = ? AND user_id = ?", name, userID).Count(&count).Error
	return count > 0, err
}
