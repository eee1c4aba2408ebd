package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RatingRepo interface {
	CreateRating(ctx context.Context, rating *model.Rating) error
	UpdateRatingScore(ctx context.Context, userID, ratingID uint64, score uint8) error
	GetRating(ctx context.Context, userID, ratingID uint64) (*model.Rating, error)
}

type RatingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) RatingRepo {
	return &RatingRepoImpl{db: db}
}

// CreateRating 依赖唯一索引拦截重复评分，冲突时返回 ErrDuplicate
func (s *RatingRepoImpl) CreateRating(ctx context.Context, rating *model.Rating) error {
	err := s.db.WithContext(ctx).Omit("Content").Create(rating).Error
	if err != nil {
		if isDuplicateError(err) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "create rating")
	}
	return nil
}

// UpdateRatingScore 只能修改自己的评分，user_id 同时重新写入为调用者
func (s *RatingRepoImpl) UpdateRatingScore(ctx context.Context, userID, ratingID uint64, score uint8) error {
	result := s.db.WithContext(ctx).Model(&model.Rating{}).
		Where("id = ? AND user_id = ?", ratingID, userID).
		Updates(map[string]any{"score": score, "user_id": userID})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update rating %d", ratingID)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL 在值未变化时 RowsAffected 为 0，需要区分不存在与未变化
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Rating{}).
		Where("id = ? AND user_id = ?", ratingID, userID).
		Count(&count).Error
	if err != nil {
		return errors.Wrapf(err, "check rating %d", ratingID)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RatingRepoImpl) GetRating(ctx context.Context, userID, ratingID uint64) (*model.Rating, error) {
	rating := &model.Rating{}
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", ratingID, userID).
		First(rating).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get rating %d", ratingID)
	}
	return rating, nil
}
