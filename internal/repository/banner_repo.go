package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type BannerRepo interface {
	ListActiveBanners(ctx context.Context, limit int) ([]*model.Banner, error)
	CreateBanner(ctx context.Context, banner *model.Banner) error
}

type BannerRepoImpl struct {
	db *gorm.DB
}

func NewBannerRepo(db *gorm.DB) BannerRepo {
	return &BannerRepoImpl{db: db}
}

// ListActiveBanners 按创建时间倒序，limit <= 0 表示不限
func (s *BannerRepoImpl) ListActiveBanners(ctx context.Context, limit int) ([]*model.Banner, error) {
	banners := make([]*model.Banner, 0)
	q := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&banners).Error; err != nil {
		return nil, errors.Wrap(err, "list banners")
	}
	return banners, nil
}

func (s *BannerRepoImpl) CreateBanner(ctx context.Context, banner *model.Banner) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(banner).Error, "create banner")
}
