package repository

import (
	"context"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepo interface {
	AddFavorite(ctx context.Context, userID, contentID uint64) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, contentID uint64) (bool, error)
	ListFavorites(ctx context.Context, userID uint64) ([]*model.Favorite, error)
}

type FavoriteRepoImpl struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) FavoriteRepo {
	return &FavoriteRepoImpl{db: db}
}

// AddFavorite 幂等写入，已存在时返回原记录
func (s *FavoriteRepoImpl) AddFavorite(ctx context.Context, userID, contentID uint64) (*model.Favorite, error) {
	fav := model.Favorite{
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Omit("Content").Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
	if err != nil {
		return nil, errors.Wrap(err, "create favorite")
	}

	existing := &model.Favorite{}
	err = s.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(existing).Error
	if err != nil {
		return nil, errors.Wrap(err, "load favorite")
	}
	return existing, nil
}

// RemoveFavorite 单条 DELETE，返回是否真正删除了记录
func (s *FavoriteRepoImpl) RemoveFavorite(ctx context.Context, userID, contentID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "delete favorite")
	}
	return result.RowsAffected > 0, nil
}

func (s *FavoriteRepoImpl) ListFavorites(ctx context.Context, userID uint64) ([]*model.Favorite, error) {
	favorites := make([]*model.Favorite, 0)
	err := s.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list favorites of user %d", userID)
	}
	return favorites, nil
}
