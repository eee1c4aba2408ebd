package service

import (
	"context"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
	"github.com/Baktyiar1/Netflix144p/internal/repository"

	"github.com/jinzhu/copier"
)

// TaxonomyKind 可创建的分类节点类型
type TaxonomyKind string

const (
	TaxonomyCategory TaxonomyKind = "category"
	TaxonomyGenre    TaxonomyKind = "genre"
	TaxonomyCountry  TaxonomyKind = "country"
)

type TaxonomyService interface {
	ListCategories(ctx context.Context, kind model.CategoryKind) ([]dto.TaxonomyDTO, error)
	ListGenres(ctx context.Context) ([]dto.TaxonomyDTO, error)
	ListCountries(ctx context.Context) ([]dto.TaxonomyDTO, error)
	CreateTaxonomy(ctx context.Context, kind TaxonomyKind, req *dto.TaxonomyCreateDTO) (*dto.TaxonomyDTO, error)
	CreateCrew(ctx context.Context, req *dto.CrewCreateDTO) (*dto.CrewDTO, error)
	ListCrew(ctx context.Context, page, pageSize int) (*dto.CrewPageDTO, error)
	CreateBanner(ctx context.Context, req *dto.BannerCreateDTO) (*dto.BannerDTO, error)
}

type TaxonomyServiceImpl struct {
	taxonomyRepo repository.TaxonomyRepo
	crewRepo     repository.CrewRepo
	bannerRepo   repository.BannerRepo
	media        MediaResolver
	cfg          config.CatalogConfig
}

func NewTaxonomyService(
	taxonomyRepo repository.TaxonomyRepo,
	crewRepo repository.CrewRepo,
	bannerRepo repository.BannerRepo,
	media MediaResolver,
	cfg config.CatalogConfig,
) TaxonomyService {
	return &TaxonomyServiceImpl{
		taxonomyRepo: taxonomyRepo,
		crewRepo:     crewRepo,
		bannerRepo:   bannerRepo,
		media:        media,
		cfg:          cfg,
	}
}

// ListCategories 只返回至少有一个对应形态影片的分类
func (s *TaxonomyServiceImpl) ListCategories(ctx context.Context, kind model.CategoryKind) ([]dto.TaxonomyDTO, error) {
	categories, err := s.taxonomyRepo.ListCategoriesWithContent(ctx, kind)
	if err != nil {
		return nil, err
	}
	res := make([]dto.TaxonomyDTO, 0, len(categories))
	for _, c := range categories {
		res = append(res, s.node(ctx, c.ID, c.Title, c.Image))
	}
	return res, nil
}

func (s *TaxonomyServiceImpl) ListGenres(ctx context.Context) ([]dto.TaxonomyDTO, error) {
	genres, err := s.taxonomyRepo.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.TaxonomyDTO, 0, len(genres))
	for _, g := range genres {
		res = append(res, s.node(ctx, g.ID, g.Title, g.Image))
	}
	return res, nil
}

func (s *TaxonomyServiceImpl) ListCountries(ctx context.Context) ([]dto.TaxonomyDTO, error) {
	countries, err := s.taxonomyRepo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.TaxonomyDTO, 0, len(countries))
	for _, c := range countries {
		res = append(res, s.node(ctx, c.ID, c.Title, c.Image))
	}
	return res, nil
}

func (s *TaxonomyServiceImpl) CreateTaxonomy(ctx context.Context, kind TaxonomyKind, req *dto.TaxonomyCreateDTO) (*dto.TaxonomyDTO, error) {
	var id uint64
	switch kind {
	case TaxonomyCategory:
		category := &model.Category{Title: req.Title, Image: req.Image}
		if err := s.taxonomyRepo.CreateCategory(ctx, category); err != nil {
			return nil, err
		}
		id = category.ID
	case TaxonomyGenre:
		genre := &model.Genre{Title: req.Title, Image: req.Image}
		if err := s.taxonomyRepo.CreateGenre(ctx, genre); err != nil {
			return nil, err
		}
		id = genre.ID
	case TaxonomyCountry:
		country := &model.Country{Title: req.Title, Image: req.Image}
		if err := s.taxonomyRepo.CreateCountry(ctx, country); err != nil {
			return nil, err
		}
		id = country.ID
	default:
		return nil, ErrParamInvalid
	}

	res := s.node(ctx, id, req.Title, req.Image)
	return &res, nil
}

func (s *TaxonomyServiceImpl) CreateCrew(ctx context.Context, req *dto.CrewCreateDTO) (*dto.CrewDTO, error) {
	crew := &model.Crew{
		Name:       req.Name,
		Birthplace: req.Birthplace,
		Image:      req.Image,
		Position:   req.Position,
		Biography:  req.Biography,
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(dateLayout, *req.BirthDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		crew.BirthDate = &birthDate
	}

	ids := uniqueIDs(req.GenreIDs)
	genres, err := s.taxonomyRepo.FindGenresByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, ErrTaxonomyNotFound
	}
	crew.Genres = genres

	if err = s.crewRepo.CreateCrew(ctx, crew); err != nil {
		return nil, err
	}
	return s.toCrew(ctx, crew)
}

func (s *TaxonomyServiceImpl) ListCrew(ctx context.Context, page, pageSize int) (*dto.CrewPageDTO, error) {
	page = util.ClampPage(page)
	if pageSize < 1 {
		pageSize = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	offset := (page - 1) * pageSize
	crew, total, err := s.crewRepo.ListCrew(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	res := &dto.CrewPageDTO{
		Items:    make([]dto.CrewDTO, 0, len(crew)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(offset+len(crew)) < total,
	}
	for _, c := range crew {
		item, err := s.toCrew(ctx, c)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, *item)
	}
	return res, nil
}

func (s *TaxonomyServiceImpl) CreateBanner(ctx context.Context, req *dto.BannerCreateDTO) (*dto.BannerDTO, error) {
	banner := &model.Banner{
		Title:    req.Title,
		Image:    req.Image,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := s.bannerRepo.CreateBanner(ctx, banner); err != nil {
		return nil, err
	}
	return &dto.BannerDTO{
		ID:    banner.ID,
		Title: banner.Title,
		Image: s.media.PublicURL(ctx, banner.Image),
	}, nil
}

func (s *TaxonomyServiceImpl) node(ctx context.Context, id uint64, title, image string) dto.TaxonomyDTO {
	return dto.TaxonomyDTO{ID: id, Title: title, Image: s.media.PublicURL(ctx, image)}
}

func (s *TaxonomyServiceImpl) toCrew(ctx context.Context, crew *model.Crew) (*dto.CrewDTO, error) {
	res := &dto.CrewDTO{}
	if err := copier.Copy(res, crew); err != nil {
		return nil, err
	}
	if crew.BirthDate != nil {
		birthDate := crew.BirthDate.Format(dateLayout)
		res.BirthDate = &birthDate
	}
	res.Image = s.media.PublicURL(ctx, crew.Image)
	res.Genres = make([]dto.TaxonomyDTO, 0, len(crew.Genres))
	for _, g := range crew.Genres {
		res.Genres = append(res.Genres, s.node(ctx, g.ID, g.Title, g.Image))
	}
	return res, nil
}
