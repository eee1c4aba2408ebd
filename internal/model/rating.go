package model

import (
	"time"
)

const (
	MinScore = 1
	MaxScore = 10
)

// Rating 用户评分，(user_id, content_id) 唯一
type Rating struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uq_rating_user_content"`
	ContentID uint64 `gorm:"not null;uniqueIndex:uq_rating_user_content;index:idx_rating_content_id"`
	Score     uint8  `gorm:"not null;check:chk_rating_score,score >= 1 AND score <= 10"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Content ContentItem `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Rating) TableName() string {
	return "ratings"
}
