package model

// Category 分类，影片与剧集各自使用独立的关联表
type Category struct {
	ID    uint64 `gorm:"primaryKey"`
	Title string `gorm:"type:varchar(100);not null"`
	Image string `gorm:"type:varchar(512);not null;default:''"`
}

func (Category) TableName() string {
	return "categories"
}

type Genre struct {
	ID    uint64 `gorm:"primaryKey"`
	Title string `gorm:"type:varchar(100);not null"`
	Image string `gorm:"type:varchar(512);not null;default:''"`
}

func (Genre) TableName() string {
	return "genres"
}

type Country struct {
	ID    uint64 `gorm:"primaryKey"`
	Title string `gorm:"type:varchar(100);not null"`
	Image string `gorm:"type:varchar(512);not null;default:''"`
}

func (Country) TableName() string {
	return "countries"
}

// CategoryKind 分类所属分区
type CategoryKind string

const (
	CategoryKindFilm   CategoryKind = "movies"
	CategoryKindSeries CategoryKind = "series"
)

// IsFilm 分区对应的判别值
func (k CategoryKind) IsFilm() bool {
	return k == CategoryKindFilm
}

// JoinTable 分区对应的关联表
func (k CategoryKind) JoinTable() string {
	if k == CategoryKindFilm {
		return "content_movie_categories"
	}
	return "content_series_categories"
}

// ParseCategoryKind 非法取值返回 false
func ParseCategoryKind(s string) (CategoryKind, bool) {
	switch CategoryKind(s) {
	case CategoryKindFilm, CategoryKindSeries:
		return CategoryKind(s), true
	}
	return "", false
}
