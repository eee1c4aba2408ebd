package repository

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TaxonomyRepo interface {
	ListCategoriesWithContent(ctx context.Context, kind model.CategoryKind) ([]*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	ListGenres(ctx context.Context) ([]*model.Genre, error)
	ListCountries(ctx context.Context) ([]*model.Country, error)
	FindCategoriesByIDs(ctx context.Context, ids []uint64) ([]model.Category, error)
	FindGenresByIDs(ctx context.Context, ids []uint64) ([]model.Genre, error)
	FindCountriesByIDs(ctx context.Context, ids []uint64) ([]model.Country, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	CreateGenre(ctx context.Context, genre *model.Genre) error
	CreateCountry(ctx context.Context, country *model.Country) error
}

type TaxonomyRepoImpl struct {
	db *gorm.DB
}

func NewTaxonomyRepo(db *gorm.DB) TaxonomyRepo {
	return &TaxonomyRepoImpl{db: db}
}

// ListCategoriesWithContent 至少关联了一个对应形态影片的分类
func (s *TaxonomyRepoImpl) ListCategoriesWithContent(ctx context.Context, kind model.CategoryKind) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	err := s.db.WithContext(ctx).
		Where("id IN (SELECT jt.category_id FROM "+kind.JoinTable()+" jt "+
			"JOIN content_items ci ON ci.id = jt.content_item_id WHERE ci.is_film = ?)", kind.IsFilm()).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s categories with content", kind)
	}
	return categories, nil
}

func (s *TaxonomyRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (s *TaxonomyRepoImpl) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	genres := make([]*model.Genre, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, errors.Wrap(err, "list genres")
	}
	return genres, nil
}

func (s *TaxonomyRepoImpl) ListCountries(ctx context.Context) ([]*model.Country, error) {
	countries := make([]*model.Country, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&countries).Error; err != nil {
		return nil, errors.Wrap(err, "list countries")
	}
	return countries, nil
}

func (s *TaxonomyRepoImpl) FindCategoriesByIDs(ctx context.Context, ids []uint64) ([]model.Category, error) {
	categories := make([]model.Category, 0, len(ids))
	if len(ids) == 0 {
		return categories, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "find categories")
	}
	return categories, nil
}

func (s *TaxonomyRepoImpl) FindGenresByIDs(ctx context.Context, ids []uint64) ([]model.Genre, error) {
	genres := make([]model.Genre, 0, len(ids))
	if len(ids) == 0 {
		return genres, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&genres).Error; err != nil {
		return nil, errors.Wrap(err, "find genres")
	}
	return genres, nil
}

func (s *TaxonomyRepoImpl) FindCountriesByIDs(ctx context.Context, ids []uint64) ([]model.Country, error) {
	countries := make([]model.Country, 0, len(ids))
	if len(ids) == 0 {
		return countries, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&countries).Error; err != nil {
		return nil, errors.Wrap(err, "find countries")
	}
	return countries, nil
}

func (s *TaxonomyRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(category).Error, "create category")
}

func (s *TaxonomyRepoImpl) CreateGenre(ctx context.Context, genre *model.Genre) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(genre).Error, "create genre")
}

func (s *TaxonomyRepoImpl) CreateCountry(ctx context.Context, country *model.Country) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(country).Error, "create country")
}
