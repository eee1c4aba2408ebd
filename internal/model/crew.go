package model

import "time"

type Crew struct {
	ID         uint64     `gorm:"primaryKey"`
	Name       string     `gorm:"type:varchar(150);not null"`
	BirthDate  *time.Time `gorm:"type:date"`
	Birthplace string     `gorm:"type:varchar(150);not null;default:''"`
	Image      string     `gorm:"type:varchar(512);not null;default:''"`
	Position   string     `gorm:"type:varchar(100);not null;default:''"`
	Biography  *string    `gorm:"type:text"`
	CreatedAt  time.Time

	Genres []Genre `gorm:"many2many:crew_genres;constraint:OnDelete:CASCADE"`
}

func (Crew) TableName() string {
	return "crews"
}
