package models

import (
	"time"
)

// Ingredient 食材模型,归属于单个用户
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredients"
}

// String 字符串表示即名称
func (i Ingredient) String() string {
	return i.Name
}
