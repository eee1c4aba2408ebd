package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type EpisodeRepo interface {
	CreateEpisode(ctx context.Context, episode *model.Episode) error
	ListEpisodes(ctx context.Context, contentID uint64) ([]*model.Episode, error)
}

type EpisodeRepoImpl struct {
	db *gorm.DB
}

func NewEpisodeRepo(db *gorm.DB) EpisodeRepo {
	return &EpisodeRepoImpl{db: db}
}

// CreateEpisode 同一剧集内集数重复时返回 ErrDuplicate
func (s *EpisodeRepoImpl) CreateEpisode(ctx context.Context, episode *model.Episode) error {
	err := s.db.WithContext(ctx).Create(episode).Error
	if err != nil {
		if isDuplicateError(err) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "create episode")
	}
	return nil
}

func (s *EpisodeRepoImpl) ListEpisodes(ctx context.Context, contentID uint64) ([]*model.Episode, error) {
	episodes := make([]*model.Episode, 0)
	err := s.db.WithContext(ctx).Where("content_id = ?", contentID).Order("number").Find(&episodes).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list episodes of %d", contentID)
	}
	return episodes, nil
}
