package service

import (
	"context"
	"errors"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/repository"
)

type RatingService interface {
	AddRating(ctx context.Context, userID uint64, req *dto.RatingCreateDTO) (*dto.RatingDTO, error)
	UpdateRating(ctx context.Context, userID, ratingID uint64, req *dto.RatingUpdateDTO) (*dto.RatingDTO, error)
	GetRating(ctx context.Context, userID, ratingID uint64) (*dto.RatingDTO, error)
}

type RatingServiceImpl struct {
	ratingRepo  repository.RatingRepo
	contentRepo repository.ContentRepo
}

func NewRatingService(ratingRepo repository.RatingRepo, contentRepo repository.ContentRepo) RatingService {
	return &RatingServiceImpl{
		ratingRepo:  ratingRepo,
		contentRepo: contentRepo,
	}
}

func checkScore(score int) (uint8, error) {
	if score < model.MinScore || score > model.MaxScore {
		return 0, ErrScoreOutOfRange
	}
	return uint8(score), nil
}

// AddRating 每个用户对同一影片只能评分一次，用户与时间由服务端写入
func (s *RatingServiceImpl) AddRating(ctx context.Context, userID uint64, req *dto.RatingCreateDTO) (*dto.RatingDTO, error) {
	score, err := checkScore(req.Score)
	if err != nil {
		return nil, err
	}

	exists, err := s.contentRepo.ExistsContentItem(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	rating := &model.Rating{
		UserID:    userID,
		ContentID: req.MovieID,
		Score:     score,
	}
	if err = s.ratingRepo.CreateRating(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}
	return toRating(rating), nil
}

// UpdateRating 只能修改自己的评分，其他人的评分视为不存在
func (s *RatingServiceImpl) UpdateRating(ctx context.Context, userID, ratingID uint64, req *dto.RatingUpdateDTO) (*dto.RatingDTO, error) {
	score, err := checkScore(req.Score)
	if err != nil {
		return nil, err
	}

	if err = s.ratingRepo.UpdateRatingScore(ctx, userID, ratingID, score); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return s.GetRating(ctx, userID, ratingID)
}

func (s *RatingServiceImpl) GetRating(ctx context.Context, userID, ratingID uint64) (*dto.RatingDTO, error) {
	rating, err := s.ratingRepo.GetRating(ctx, userID, ratingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return toRating(rating), nil
}

func toRating(r *model.Rating) *dto.RatingDTO {
	return &dto.RatingDTO{
		ID:        r.ID,
		MovieID:   r.ContentID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
