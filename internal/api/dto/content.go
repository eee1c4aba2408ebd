package dto

import "time"

// ContentSummaryDTO 列表、推荐、收藏中使用的精简影片信息
type ContentSummaryDTO struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
}

type CrewBriefDTO struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type CountryBriefDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// ContentDetailDTO 详情页影片信息，只有与 is_film 对应的分类分区非空
type ContentDetailDTO struct {
	ID               uint64            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	ReleaseDate      string            `json:"release_date" copier:"-"`
	ProductionYear   int               `json:"production_year"`
	Rating           uint8             `json:"rating"`
	Duration         string            `json:"duration"`
	AgeRating        string            `json:"age_rating"`
	Budget           uint64            `json:"budget"`
	Poster           string            `json:"poster" copier:"-"`
	Video            string            `json:"video" copier:"-"`
	IsFilm           bool              `json:"is_film"`
	IsActive         bool              `json:"is_active"`
	Genres           []TaxonomyDTO     `json:"genres" copier:"-"`
	Crew             []CrewBriefDTO    `json:"crew" copier:"-"`
	Countries        []CountryBriefDTO `json:"countries" copier:"-"`
	MovieCategories  []TaxonomyDTO     `json:"movie_categories" copier:"-"`
	SeriesCategories []TaxonomyDTO     `json:"series_categories" copier:"-"`
	AverageRating    float64           `json:"average_rating"`
	WatchURL         string            `json:"watch_url"`
	CreatedAt        time.Time         `json:"created_at"`
}

type ContentDetailResultDTO struct {
	Item            *ContentDetailDTO   `json:"item"`
	Recommendations []ContentSummaryDTO `json:"recommendations"`
}

type BannerDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Image string `json:"image" copier:"-"`
}

type IndexFeedDTO struct {
	Banners []BannerDTO         `json:"banners"`
	Movies  []ContentSummaryDTO `json:"movies"`
	Series  []ContentSummaryDTO `json:"series"`
}

// ContentQuery 分类、类型、国家列表的查询参数
type ContentQuery struct {
	IsFilm    *bool
	Order     string
	Direction string
	Page      int
	PageSize  int
}

type ContentPageDTO struct {
	Items    []ContentSummaryDTO `json:"items"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	HasMore  bool                `json:"has_more"`
}

// ContentCreateDTO 创建影片或剧集
type ContentCreateDTO struct {
	Title             string   `json:"title" validate:"required,max=150"`
	Description       string   `json:"description" validate:"required"`
	ReleaseDate       string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	ProductionYear    int      `json:"production_year" validate:"omitempty,min=1850,max=2200"`
	Rating            uint8    `json:"rating" validate:"omitempty,min=1,max=10"`
	Duration          string   `json:"duration" validate:"max=30"`
	AgeRating         string   `json:"age_rating" validate:"max=10"`
	Budget            uint64   `json:"budget"`
	Poster            string   `json:"poster" validate:"required,max=512"`
	Video             string   `json:"video" validate:"max=512"`
	IsFilm            *bool    `json:"is_film" validate:"required"`
	IsActive          *bool    `json:"is_active,omitempty"`
	GenreIDs          []uint64 `json:"genres"`
	CountryIDs        []uint64 `json:"countries"`
	CrewIDs           []uint64 `json:"crew"`
	MovieCategoryIDs  []uint64 `json:"movie_categories"`
	SeriesCategoryIDs []uint64 `json:"series_categories"`
}

// ContentUpdateDTO 部分更新，nil 字段保持不变，关联数组传入即整体替换
type ContentUpdateDTO struct {
	Title             *string   `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description       *string   `json:"description,omitempty"`
	ReleaseDate       *string   `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProductionYear    *int      `json:"production_year,omitempty" validate:"omitempty,min=1850,max=2200"`
	Rating            *uint8    `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Duration          *string   `json:"duration,omitempty" validate:"omitempty,max=30"`
	AgeRating         *string   `json:"age_rating,omitempty" validate:"omitempty,max=10"`
	Budget            *uint64   `json:"budget,omitempty"`
	Poster            *string   `json:"poster,omitempty" validate:"omitempty,max=512"`
	Video             *string   `json:"video,omitempty" validate:"omitempty,max=512"`
	IsActive          *bool     `json:"is_active,omitempty"`
	GenreIDs          *[]uint64 `json:"genres,omitempty"`
	CountryIDs        *[]uint64 `json:"countries,omitempty"`
	CrewIDs           *[]uint64 `json:"crew,omitempty"`
	MovieCategoryIDs  *[]uint64 `json:"movie_categories,omitempty"`
	SeriesCategoryIDs *[]uint64 `json:"series_categories,omitempty"`
}

type EpisodeCreateDTO struct {
	Number int    `json:"number" validate:"required,min=1"`
	Title  string `json:"title" validate:"max=150"`
	Video  string `json:"video" validate:"required,max=512"`
}

type EpisodeDTO struct {
	ID        uint64    `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Video     string    `json:"video" copier:"-"`
	CreatedAt time.Time `json:"created_at"`
}
