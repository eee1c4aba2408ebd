package model

import (
	"time"
)

// Favorite 用户收藏，(user_id, content_id) 唯一
type Favorite struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uq_favorite_user_content"`
	ContentID uint64    `gorm:"not null;uniqueIndex:uq_favorite_user_content;index:idx_favorite_content_id"`
	CreatedAt time.Time `gorm:"index:idx_favorite_created_at"`

	Content ContentItem `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}
