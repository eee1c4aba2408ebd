package dto

import "time"

type FavoriteCreateDTO struct {
	MovieID uint64 `json:"movie_id" validate:"required"`
}

type FavoriteDTO struct {
	ID        uint64            `json:"id"`
	MovieID   uint64            `json:"movie_id"`
	Movie     ContentSummaryDTO `json:"movie"`
	CreatedAt time.Time         `json:"created_at"`
}

// RatingCreateDTO 分数范围由服务层校验，便于返回统一的错误类别
type RatingCreateDTO struct {
	MovieID uint64 `json:"movie_id" validate:"required"`
	Score   int    `json:"score"`
}

type RatingUpdateDTO struct {
	Score int `json:"score"`
}

type RatingDTO struct {
	ID        uint64    `json:"id"`
	MovieID   uint64    `json:"movie_id"`
	Score     uint8     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
