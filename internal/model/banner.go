package model

import "time"

type Banner struct {
	ID        uint64 `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(150);not null"`
	Image     string `gorm:"type:varchar(512);not null"`
	IsActive  bool   `gorm:"not null;index:idx_banner_active"`
	CreatedAt time.Time
}

func (Banner) TableName() string {
	return "banners"
}
