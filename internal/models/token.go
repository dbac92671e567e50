package models

import (
	"time"
)

// Token 不透明访问令牌,每个用户同一时刻至多一个有效令牌
type Token struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:64;not null" json:"key"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Token) TableName() string {
	return "tokens"
}
