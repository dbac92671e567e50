package models

import (
	"time"
)

// Recipe 菜谱模型,归属于单个用户
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	TimeMinutes int       `gorm:"not null" json:"time_minutes"`
	Price       float64   `gorm:"not null" json:"price"`
	Link        string    `gorm:"size:255" json:"link"`
	ImagePath   string    `gorm:"size:255" json:"image_path"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}

// String 字符串表示即标题
func (r Recipe) String() string {
	return r.Title
}
