package model

import "time"

// Episode 剧集的单集，Number 在同一剧集内唯一
type Episode struct {
	ID        uint64 `gorm:"primaryKey"`
	ContentID uint64 `gorm:"not null;uniqueIndex:uq_episode_content_number"`
	Number    int    `gorm:"not null;uniqueIndex:uq_episode_content_number"`
	Title     string `gorm:"type:varchar(150);not null;default:''"`
	Video     string `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time
}

func (Episode) TableName() string {
	return "episodes"
}
