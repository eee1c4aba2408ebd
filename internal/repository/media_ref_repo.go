package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MediaRefRepo 查询对象名是否仍被任一实体引用
type MediaRefRepo interface {
	IsReferenced(ctx context.Context, objectName string) (bool, error)
}

type mediaColumn struct {
	model  any
	column string
}

var mediaColumns = []mediaColumn{
	{&model.ContentItem{}, "poster"},
	{&model.ContentItem{}, "video"},
	{&model.Episode{}, "video"},
	{&model.Banner{}, "image"},
	{&model.Crew{}, "image"},
	{&model.Category{}, "image"},
	{&model.Genre{}, "image"},
	{&model.Country{}, "image"},
	{&model.User{}, "cover"},
}

type MediaRefRepoImpl struct {
	db *gorm.DB
}

func NewMediaRefRepo(db *gorm.DB) MediaRefRepo {
	return &MediaRefRepoImpl{db: db}
}

func (s *MediaRefRepoImpl) IsReferenced(ctx context.Context, objectName string) (bool, error) {
	for _, mc := range mediaColumns {
		var count int64
		err := s.db.WithContext(ctx).Model(mc.model).Where(mc.column+" = ?", objectName).Count(&count).Error
		if err != nil {
			return false, errors.Wrapf(err, "check media reference on %s", mc.column)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
