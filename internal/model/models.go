package model

// All 需要迁移的全部模型，按依赖顺序排列
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Genre{},
		&Country{},
		&Crew{},
		&Banner{},
		&ContentItem{},
		&Episode{},
		&Favorite{},
		&Rating{},
	}
}
