package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CrewRepo interface {
	CreateCrew(ctx context.Context, crew *model.Crew) error
	GetCrew(ctx context.Context, id uint64) (*model.Crew, error)
	ListCrew(ctx context.Context, limit, offset int) ([]*model.Crew, int64, error)
	FindCrewByIDs(ctx context.Context, ids []uint64) ([]model.Crew, error)
}

type CrewRepoImpl struct {
	db *gorm.DB
}

func NewCrewRepo(db *gorm.DB) CrewRepo {
	return &CrewRepoImpl{db: db}
}

func (s *CrewRepoImpl) CreateCrew(ctx context.Context, crew *model.Crew) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(crew).Error, "create crew")
}

func (s *CrewRepoImpl) GetCrew(ctx context.Context, id uint64) (*model.Crew, error) {
	crew := &model.Crew{}
	err := s.db.WithContext(ctx).Preload("Genres").First(crew, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get crew %d", id)
	}
	return crew, nil
}

func (s *CrewRepoImpl) ListCrew(ctx context.Context, limit, offset int) ([]*model.Crew, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Crew{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count crew")
	}

	crew := make([]*model.Crew, 0)
	q := s.db.WithContext(ctx).Preload("Genres").Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&crew).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list crew")
	}
	return crew, total, nil
}

func (s *CrewRepoImpl) FindCrewByIDs(ctx context.Context, ids []uint64) ([]model.Crew, error) {
	crew := make([]model.Crew, 0, len(ids))
	if len(ids) == 0 {
		return crew, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&crew).Error; err != nil {
		return nil, errors.Wrap(err, "find crew")
	}
	return crew, nil
}
