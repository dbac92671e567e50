package repository

import (
	"time"

	"recipe-go/internal/models"

	"gorm.io/gorm"
)

// TokenRepository 令牌数据访问层
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository 创建令牌Repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Replace 原子替换用户令牌:删除旧令牌并写入新令牌在同一事务内完成,
// 避免出现两个令牌同时有效的窗口
func (r *TokenRepository) Replace(token *models.Token) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&models.Token{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// GetByKey 根据令牌值获取令牌及其用户
func (r *TokenRepository) GetByKey(key string) (*models.Token, error) {
	var token models.Token
	err := r.db.Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByKey 根据令牌值删除令牌
func (r *TokenRepository) DeleteByKey(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.Token{}).Error
}

// DeleteForUser 删除用户的全部令牌
func (r *TokenRepository) DeleteForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Token{}).Error
}

// DeleteCreatedBefore 删除指定时间之前签发的令牌
func (r *TokenRepository) DeleteCreatedBefore(cutoff time.Time) error {
	return r.db.Where("created_at < ?", cutoff).Delete(&models.Token{}).Error
}
