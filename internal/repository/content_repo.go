package repository

import (
	"context"
	"strings"

	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 可排序字段白名单，键为对外参数名
var orderColumns = map[string]string{
	"created_date":    "created_at",
	"title":           "title",
	"rating":          "rating",
	"production_year": "production_year",
}

const (
	movieCategorySubQuery  = "content_items.id IN (SELECT content_item_id FROM content_movie_categories WHERE category_id = ?) AND content_items.is_film = ?"
	seriesCategorySubQuery = "content_items.id IN (SELECT content_item_id FROM content_series_categories WHERE category_id = ?) AND content_items.is_film = ?"
)

// OrderSpec 排序参数，Field 不在白名单内时使用默认排序
type OrderSpec struct {
	Field string
	Desc  bool
}

// ContentFilter 影片列表过滤条件，nil 字段不参与过滤
type ContentFilter struct {
	IsFilm        *bool
	CategoryID    *uint64
	GenreID       *uint64
	CountryID     *uint64
	TitleContains string
	ActiveOnly    bool
	Order         OrderSpec
}

// ContentAssociations 更新时需要整体替换的关联，nil 表示保持不变
type ContentAssociations struct {
	Genres           *[]model.Genre
	Countries        *[]model.Country
	Crew             *[]model.Crew
	MovieCategories  *[]model.Category
	SeriesCategories *[]model.Category
}

type ContentRepo interface {
	FindContentItem(ctx context.Context, id uint64) (*model.ContentItem, error)
	ListContentItems(ctx context.Context, filter *ContentFilter, limit, offset int) ([]*model.ContentItem, int64, error)
	ListRecommendations(ctx context.Context, item *model.ContentItem, limit int) ([]*model.ContentItem, error)
	AverageRating(ctx context.Context, contentID uint64) (float64, error)
	CreateContentItem(ctx context.Context, item *model.ContentItem) error
	UpdateContentItem(ctx context.Context, id uint64, fields map[string]any, assoc *ContentAssociations) error
	DeleteContentItem(ctx context.Context, id uint64) error
	ExistsContentItem(ctx context.Context, id uint64) (bool, error)
}

type ContentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &ContentRepoImpl{db: db}
}

func (s *ContentRepoImpl) FindContentItem(ctx context.Context, id uint64) (*model.ContentItem, error) {
	byID := func(table string) func(*gorm.DB) *gorm.DB {
		return func(db *gorm.DB) *gorm.DB { return db.Order(table + ".id") }
	}

	item := &model.ContentItem{}
	err := s.db.WithContext(ctx).
		Preload("Genres", byID("genres")).
		Preload("Countries", byID("countries")).
		Preload("Crew", byID("crews")).
		Preload("MovieCategories", byID("categories")).
		Preload("SeriesCategories", byID("categories")).
		First(item, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "find content item %d", id)
	}
	return item, nil
}

func (s *ContentRepoImpl) ListContentItems(ctx context.Context, filter *ContentFilter, limit, offset int) ([]*model.ContentItem, int64, error) {
	if filter == nil {
		filter = &ContentFilter{}
	}

	var total int64
	err := s.filtered(ctx, filter).Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "count content items")
	}

	items := make([]*model.ContentItem, 0)
	if total == 0 {
		return items, 0, nil
	}

	q := s.filtered(ctx, filter).Order(orderClause(filter.Order))
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err = q.Find(&items).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list content items")
	}
	return items, total, nil
}

// filtered 每次返回新的查询链，Count 与 Find 互不影响
func (s *ContentRepoImpl) filtered(ctx context.Context, f *ContentFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.ContentItem{})

	if f.ActiveOnly {
		q = q.Where("content_items.is_active = ?", true)
	}
	if f.IsFilm != nil {
		q = q.Where("content_items.is_film = ?", *f.IsFilm)
	}
	if f.CategoryID != nil {
		id := *f.CategoryID
		// 分类分区必须与 is_film 一同匹配
		switch {
		case f.IsFilm == nil:
			q = q.Where("(("+movieCategorySubQuery+") OR ("+seriesCategorySubQuery+"))", id, true, id, false)
		case *f.IsFilm:
			q = q.Where(movieCategorySubQuery, id, true)
		default:
			q = q.Where(seriesCategorySubQuery, id, false)
		}
	}
	if f.GenreID != nil {
		q = q.Where("content_items.id IN (SELECT content_item_id FROM content_genres WHERE genre_id = ?)", *f.GenreID)
	}
	if f.CountryID != nil {
		q = q.Where("content_items.id IN (SELECT content_item_id FROM content_countries WHERE country_id = ?)", *f.CountryID)
	}
	if title := strings.TrimSpace(f.TitleContains); title != "" {
		q = q.Where("LOWER(content_items.title) LIKE ? ESCAPE '!'", "%"+util.EscapeLike(strings.ToLower(title))+"%")
	}
	return q
}

func orderClause(o OrderSpec) clause.OrderBy {
	column, ok := orderColumns[o.Field]
	if !ok {
		return clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: "content_items", Name: "id"}, Desc: true},
		}}
	}
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: "content_items", Name: column}, Desc: o.Desc},
		{Column: clause.Column{Table: "content_items", Name: "id"}, Desc: o.Desc},
	}}
}

func (s *ContentRepoImpl) ListRecommendations(ctx context.Context, item *model.ContentItem, limit int) ([]*model.ContentItem, error) {
	items := make([]*model.ContentItem, 0)

	// 两个分区的并集，候选项经任一关联表命中即可
	ids := item.CategoryIDs()
	if len(ids) == 0 {
		return items, nil
	}

	q := s.db.WithContext(ctx).
		Where("content_items.is_active = ? AND content_items.id <> ?", true, item.ID).
		Where("(content_items.id IN (SELECT content_item_id FROM content_movie_categories WHERE category_id IN ?) OR "+
			"content_items.id IN (SELECT content_item_id FROM content_series_categories WHERE category_id IN ?))",
			ids, ids).
		Order("content_items.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "list recommendations for %d", item.ID)
	}
	return items, nil
}

func (s *ContentRepoImpl) AverageRating(ctx context.Context, contentID uint64) (float64, error) {
	var avg float64
	err := s.db.WithContext(ctx).Model(&model.Rating{}).
		Select("COALESCE(AVG(score), 0)").
		Where("content_id = ?", contentID).
		Row().Scan(&avg)
	if err != nil {
		return 0, errors.Wrapf(err, "average rating of %d", contentID)
	}
	return avg, nil
}

func (s *ContentRepoImpl) CreateContentItem(ctx context.Context, item *model.ContentItem) error {
	err := s.db.WithContext(ctx).Omit("Episodes").Create(item).Error
	return errors.Wrap(err, "create content item")
}

func (s *ContentRepoImpl) UpdateContentItem(ctx context.Context, id uint64, fields map[string]any, assoc *ContentAssociations) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := &model.ContentItem{}
		if err := tx.Select("id").First(item, id).Error; err != nil {
			if isNotFound(err) {
				return ErrNotFound
			}
			return errors.Wrapf(err, "load content item %d", id)
		}

		if len(fields) > 0 {
			if err := tx.Model(item).Updates(fields).Error; err != nil {
				return errors.Wrapf(err, "update content item %d", id)
			}
		}
		if assoc == nil {
			return nil
		}

		replace := func(name string, values any, empty bool) error {
			association := tx.Model(item).Association(name)
			var err error
			if empty {
				err = association.Clear()
			} else {
				err = association.Replace(values)
			}
			return errors.Wrapf(err, "replace %s of content item %d", name, id)
		}
		if assoc.Genres != nil {
			if err := replace("Genres", *assoc.Genres, len(*assoc.Genres) == 0); err != nil {
				return err
			}
		}
		if assoc.Countries != nil {
			if err := replace("Countries", *assoc.Countries, len(*assoc.Countries) == 0); err != nil {
				return err
			}
		}
		if assoc.Crew != nil {
			if err := replace("Crew", *assoc.Crew, len(*assoc.Crew) == 0); err != nil {
				return err
			}
		}
		if assoc.MovieCategories != nil {
			if err := replace("MovieCategories", *assoc.MovieCategories, len(*assoc.MovieCategories) == 0); err != nil {
				return err
			}
		}
		if assoc.SeriesCategories != nil {
			if err := replace("SeriesCategories", *assoc.SeriesCategories, len(*assoc.SeriesCategories) == 0); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ContentRepoImpl) DeleteContentItem(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{
			"content_genres", "content_countries", "content_crews",
			"content_movie_categories", "content_series_categories",
		} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE content_item_id = ?", id).Error; err != nil {
				return errors.Wrapf(err, "delete %s of content item %d", table, id)
			}
		}
		if err := tx.Where("content_id = ?", id).Delete(&model.Episode{}).Error; err != nil {
			return errors.Wrapf(err, "delete episodes of content item %d", id)
		}
		if err := tx.Where("content_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return errors.Wrapf(err, "delete favorites of content item %d", id)
		}
		if err := tx.Where("content_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return errors.Wrapf(err, "delete ratings of content item %d", id)
		}

		result := tx.Delete(&model.ContentItem{}, id)
		if result.Error != nil {
			return errors.Wrapf(result.Error, "delete content item %d", id)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *ContentRepoImpl) ExistsContentItem(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentItem{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check content item %d", id)
	}
	return count > 0, nil
}
