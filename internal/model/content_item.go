package model

import (
	"time"
)

// ContentItem 影片或剧集，IsFilm 区分两种形态
type ContentItem struct {
	ID             uint64    `gorm:"primaryKey"`
	Title          string    `gorm:"type:varchar(150);not null;index:idx_content_title"`
	Description    string    `gorm:"type:text;not null"`
	ReleaseDate    time.Time `gorm:"type:date;not null"`
	ProductionYear int       `gorm:"not null;default:0;index:idx_content_production_year"`
	Rating         uint8     `gorm:"not null;default:0"` // 作者评分 1-10，与用户平均分无关
	Duration       string    `gorm:"type:varchar(30);not null;default:''"`
	AgeRating      string    `gorm:"type:varchar(10);not null;default:''"`
	Budget         uint64    `gorm:"not null;default:0"`
	Poster         string    `gorm:"type:varchar(512);not null;default:''"`
	Video          string    `gorm:"type:varchar(512);not null;default:''"`
	IsFilm         bool      `gorm:"not null;index:idx_content_film_active,priority:1"`
	IsActive       bool      `gorm:"not null;index:idx_content_film_active,priority:2"`
	CreatedAt      time.Time `gorm:"index:idx_content_created_at"`
	UpdatedAt      time.Time

	// 关联关系
	Genres           []Genre    `gorm:"many2many:content_genres;constraint:OnDelete:CASCADE"`
	Countries        []Country  `gorm:"many2many:content_countries;constraint:OnDelete:CASCADE"`
	Crew             []Crew     `gorm:"many2many:content_crews;constraint:OnDelete:CASCADE"`
	MovieCategories  []Category `gorm:"many2many:content_movie_categories;constraint:OnDelete:CASCADE"`
	SeriesCategories []Category `gorm:"many2many:content_series_categories;constraint:OnDelete:CASCADE"`
	Episodes         []Episode  `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// CategoryIDs 返回两个分类分区的并集，已去重
func (c *ContentItem) CategoryIDs() []uint64 {
	seen := make(map[uint64]struct{}, len(c.MovieCategories)+len(c.SeriesCategories))
	ids := make([]uint64, 0, len(c.MovieCategories)+len(c.SeriesCategories))
	for _, partition := range [][]Category{c.MovieCategories, c.SeriesCategories} {
		for _, category := range partition {
			if _, ok := seen[category.ID]; ok {
				continue
			}
			seen[category.ID] = struct{}{}
			ids = append(ids, category.ID)
		}
	}
	return ids
}
