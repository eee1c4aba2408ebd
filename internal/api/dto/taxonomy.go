package dto

// TaxonomyDTO 分类与类型共用
type TaxonomyDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Image string `json:"image" copier:"-"`
}

type TaxonomyCreateDTO struct {
	Title string `json:"title" validate:"required,max=100"`
	Image string `json:"image" validate:"max=512"`
}

type CrewDTO struct {
	ID         uint64        `json:"id"`
	Name       string        `json:"name"`
	BirthDate  *string       `json:"birth_date" copier:"-"`
	Birthplace string        `json:"birthplace"`
	Image      string        `json:"image" copier:"-"`
	Position   string        `json:"position"`
	Biography  *string       `json:"biography"`
	Genres     []TaxonomyDTO `json:"genres" copier:"-"`
}

type CrewCreateDTO struct {
	Name       string   `json:"name" validate:"required,max=150"`
	BirthDate  *string  `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Birthplace string   `json:"birthplace" validate:"max=150"`
	Image      string   `json:"image" validate:"max=512"`
	Position   string   `json:"position" validate:"max=100"`
	Biography  *string  `json:"biography,omitempty"`
	GenreIDs   []uint64 `json:"genres"`
}

type CrewPageDTO struct {
	Items    []CrewDTO `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	HasMore  bool      `json:"has_more"`
}

type BannerCreateDTO struct {
	Title    string `json:"title" validate:"required,max=150"`
	Image    string `json:"image" validate:"required,max=512"`
	IsActive *bool  `json:"is_active,omitempty"`
}
