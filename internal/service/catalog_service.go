package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/consts"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
	"github.com/Baktyiar1/Netflix144p/internal/repository"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type CatalogService interface {
	GetIndexFeed(ctx context.Context, search string) (*dto.IndexFeedDTO, error)
	GetDetail(ctx context.Context, id uint64) (*dto.ContentDetailResultDTO, error)
	ListByCategory(ctx context.Context, kind model.CategoryKind, categoryID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error)
	ListByGenre(ctx context.Context, genreID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error)
	ListByCountry(ctx context.Context, countryID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error)
	CreateContent(ctx context.Context, req *dto.ContentCreateDTO) (*dto.ContentDetailResultDTO, error)
	UpdateContent(ctx context.Context, id uint64, req *dto.ContentUpdateDTO) (*dto.ContentDetailResultDTO, error)
	DeleteContent(ctx context.Context, id uint64) error
	AddEpisode(ctx context.Context, contentID uint64, req *dto.EpisodeCreateDTO) (*dto.EpisodeDTO, error)
	ListEpisodes(ctx context.Context, contentID uint64) ([]dto.EpisodeDTO, error)
}

type CatalogServiceImpl struct {
	contentRepo  repository.ContentRepo
	taxonomyRepo repository.TaxonomyRepo
	crewRepo     repository.CrewRepo
	bannerRepo   repository.BannerRepo
	episodeRepo  repository.EpisodeRepo
	media        MediaResolver
	cfg          config.CatalogConfig
}

func NewCatalogService(
	contentRepo repository.ContentRepo,
	taxonomyRepo repository.TaxonomyRepo,
	crewRepo repository.CrewRepo,
	bannerRepo repository.BannerRepo,
	episodeRepo repository.EpisodeRepo,
	media MediaResolver,
	cfg config.CatalogConfig,
) CatalogService {
	return &CatalogServiceImpl{
		contentRepo:  contentRepo,
		taxonomyRepo: taxonomyRepo,
		crewRepo:     crewRepo,
		bannerRepo:   bannerRepo,
		episodeRepo:  episodeRepo,
		media:        media,
		cfg:          cfg,
	}
}

// GetIndexFeed 首页：轮播图、影片、剧集，三路并发查询
func (s *CatalogServiceImpl) GetIndexFeed(ctx context.Context, search string) (*dto.IndexFeedDTO, error) {
	var banners []*model.Banner
	var movies, series []*model.ContentItem

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		banners, err = s.bannerRepo.ListActiveBanners(gCtx, s.cfg.IndexBannerLimit)
		return err
	})
	g.Go(func() error {
		var err error
		movies, _, err = s.contentRepo.ListContentItems(gCtx, indexFilter(true, search), 0, 0)
		return err
	})
	g.Go(func() error {
		var err error
		series, _, err = s.contentRepo.ListContentItems(gCtx, indexFilter(false, search), 0, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed := &dto.IndexFeedDTO{
		Banners: make([]dto.BannerDTO, 0, len(banners)),
		Movies:  s.toSummaries(ctx, movies),
		Series:  s.toSummaries(ctx, series),
	}
	for _, b := range banners {
		feed.Banners = append(feed.Banners, dto.BannerDTO{
			ID:    b.ID,
			Title: b.Title,
			Image: s.media.PublicURL(ctx, b.Image),
		})
	}
	return feed, nil
}

func indexFilter(isFilm bool, search string) *repository.ContentFilter {
	return &repository.ContentFilter{
		IsFilm:        &isFilm,
		ActiveOnly:    true,
		TitleContains: search,
	}
}

// GetDetail 详情与同分类推荐，平均分与推荐并发计算
func (s *CatalogServiceImpl) GetDetail(ctx context.Context, id uint64) (*dto.ContentDetailResultDTO, error) {
	item, err := s.contentRepo.FindContentItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	var avg float64
	var recommendations []*model.ContentItem

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		avg, err = s.contentRepo.AverageRating(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		recommendations, err = s.contentRepo.ListRecommendations(gCtx, item, s.cfg.RecommendationLimit)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	detail, err := s.toDetail(ctx, item)
	if err != nil {
		return nil, err
	}
	detail.AverageRating = avg

	return &dto.ContentDetailResultDTO{
		Item:            detail,
		Recommendations: s.toSummaries(ctx, recommendations),
	}, nil
}

// ListByCategory 分区决定 is_film，忽略请求中的 is_film
func (s *CatalogServiceImpl) ListByCategory(ctx context.Context, kind model.CategoryKind, categoryID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error) {
	isFilm := kind.IsFilm()
	filter := s.baseFilter(query)
	filter.IsFilm = &isFilm
	filter.CategoryID = &categoryID
	return s.listPage(ctx, filter, query)
}

func (s *CatalogServiceImpl) ListByGenre(ctx context.Context, genreID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error) {
	filter := s.baseFilter(query)
	filter.GenreID = &genreID
	return s.listPage(ctx, filter, query)
}

func (s *CatalogServiceImpl) ListByCountry(ctx context.Context, countryID uint64, query *dto.ContentQuery) (*dto.ContentPageDTO, error) {
	filter := s.baseFilter(query)
	filter.CountryID = &countryID
	return s.listPage(ctx, filter, query)
}

func (s *CatalogServiceImpl) baseFilter(query *dto.ContentQuery) *repository.ContentFilter {
	filter := &repository.ContentFilter{ActiveOnly: true}
	if query != nil {
		filter.IsFilm = query.IsFilm
		filter.Order = repository.OrderSpec{
			Field: query.Order,
			Desc:  strings.EqualFold(query.Direction, "desc"),
		}
	}
	return filter
}

func (s *CatalogServiceImpl) listPage(ctx context.Context, filter *repository.ContentFilter, query *dto.ContentQuery) (*dto.ContentPageDTO, error) {
	page, pageSize := 1, s.cfg.DefaultPageSize
	if query != nil {
		if query.Page > 0 {
			page = query.Page
		}
		if query.PageSize > 0 {
			pageSize = query.PageSize
		}
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	if s.cfg.MaxPageSize > 0 && pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	page = util.ClampPage(page)
	offset := (page - 1) * pageSize
	items, total, err := s.contentRepo.ListContentItems(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, err
	}

	return &dto.ContentPageDTO{
		Items:    s.toSummaries(ctx, items),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(offset+len(items)) < total,
	}, nil
}

func (s *CatalogServiceImpl) CreateContent(ctx context.Context, req *dto.ContentCreateDTO) (*dto.ContentDetailResultDTO, error) {
	if req.IsFilm == nil {
		return nil, ErrParamInvalid
	}
	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, ErrParamInvalid
	}

	item := &model.ContentItem{
		Title:          req.Title,
		Description:    req.Description,
		ReleaseDate:    releaseDate,
		ProductionYear: req.ProductionYear,
		Rating:         req.Rating,
		Duration:       req.Duration,
		AgeRating:      req.AgeRating,
		Budget:         req.Budget,
		Poster:         req.Poster,
		Video:          req.Video,
		IsFilm:         *req.IsFilm,
		IsActive:       req.IsActive == nil || *req.IsActive,
	}

	assoc, err := s.resolveAssociations(ctx, &req.GenreIDs, &req.CountryIDs, &req.CrewIDs, &req.MovieCategoryIDs, &req.SeriesCategoryIDs)
	if err != nil {
		return nil, err
	}
	item.Genres = *assoc.Genres
	item.Countries = *assoc.Countries
	item.Crew = *assoc.Crew
	item.MovieCategories = *assoc.MovieCategories
	item.SeriesCategories = *assoc.SeriesCategories

	if err = s.contentRepo.CreateContentItem(ctx, item); err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, item.ID)
}

func (s *CatalogServiceImpl) UpdateContent(ctx context.Context, id uint64, req *dto.ContentUpdateDTO) (*dto.ContentDetailResultDTO, error) {
	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse(dateLayout, *req.ReleaseDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		fields["release_date"] = releaseDate
	}
	if req.ProductionYear != nil {
		fields["production_year"] = *req.ProductionYear
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.AgeRating != nil {
		fields["age_rating"] = *req.AgeRating
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.Poster != nil {
		fields["poster"] = *req.Poster
	}
	if req.Video != nil {
		fields["video"] = *req.Video
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	assoc, err := s.resolveAssociations(ctx, req.GenreIDs, req.CountryIDs, req.CrewIDs, req.MovieCategoryIDs, req.SeriesCategoryIDs)
	if err != nil {
		return nil, err
	}

	if err = s.contentRepo.UpdateContentItem(ctx, id, fields, assoc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return s.GetDetail(ctx, id)
}

func (s *CatalogServiceImpl) DeleteContent(ctx context.Context, id uint64) error {
	err := s.contentRepo.DeleteContentItem(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrContentNotFound
	}
	return err
}

func (s *CatalogServiceImpl) AddEpisode(ctx context.Context, contentID uint64, req *dto.EpisodeCreateDTO) (*dto.EpisodeDTO, error) {
	item, err := s.contentRepo.FindContentItem(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	// 影片没有分集
	if item.IsFilm {
		return nil, ErrParamInvalid
	}

	episode := &model.Episode{
		ContentID: contentID,
		Number:    req.Number,
		Title:     req.Title,
		Video:     req.Video,
	}
	if err = s.episodeRepo.CreateEpisode(ctx, episode); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEpisodeExist
		}
		return nil, err
	}

	res := s.toEpisode(ctx, episode)
	return &res, nil
}

func (s *CatalogServiceImpl) ListEpisodes(ctx context.Context, contentID uint64) ([]dto.EpisodeDTO, error) {
	exists, err := s.contentRepo.ExistsContentItem(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	episodes, err := s.episodeRepo.ListEpisodes(ctx, contentID)
	if err != nil {
		return nil, err
	}
	res := make([]dto.EpisodeDTO, 0, len(episodes))
	for _, e := range episodes {
		res = append(res, s.toEpisode(ctx, e))
	}
	return res, nil
}

// resolveAssociations 将 ID 列表解析为实体，任一 ID 不存在即报错，nil 列表保持 nil
func (s *CatalogServiceImpl) resolveAssociations(ctx context.Context, genreIDs, countryIDs, crewIDs, movieCategoryIDs, seriesCategoryIDs *[]uint64) (*repository.ContentAssociations, error) {
	assoc := &repository.ContentAssociations{}

	if genreIDs != nil {
		ids := uniqueIDs(*genreIDs)
		genres, err := s.taxonomyRepo.FindGenresByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(genres) != len(ids) {
			return nil, ErrTaxonomyNotFound
		}
		assoc.Genres = &genres
	}
	if countryIDs != nil {
		ids := uniqueIDs(*countryIDs)
		countries, err := s.taxonomyRepo.FindCountriesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(countries) != len(ids) {
			return nil, ErrTaxonomyNotFound
		}
		assoc.Countries = &countries
	}
	if crewIDs != nil {
		ids := uniqueIDs(*crewIDs)
		crew, err := s.crewRepo.FindCrewByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(crew) != len(ids) {
			return nil, ErrCrewNotFound
		}
		assoc.Crew = &crew
	}
	if movieCategoryIDs != nil {
		categories, err := s.findCategories(ctx, *movieCategoryIDs)
		if err != nil {
			return nil, err
		}
		assoc.MovieCategories = &categories
	}
	if seriesCategoryIDs != nil {
		categories, err := s.findCategories(ctx, *seriesCategoryIDs)
		if err != nil {
			return nil, err
		}
		assoc.SeriesCategories = &categories
	}
	return assoc, nil
}

func (s *CatalogServiceImpl) findCategories(ctx context.Context, rawIDs []uint64) ([]model.Category, error) {
	ids := uniqueIDs(rawIDs)
	categories, err := s.taxonomyRepo.FindCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, ErrTaxonomyNotFound
	}
	return categories, nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	res := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

func (s *CatalogServiceImpl) toDetail(ctx context.Context, item *model.ContentItem) (*dto.ContentDetailDTO, error) {
	detail := &dto.ContentDetailDTO{}
	if err := copier.Copy(detail, item); err != nil {
		return nil, err
	}
	detail.ReleaseDate = item.ReleaseDate.Format(dateLayout)
	detail.Poster = s.media.PublicURL(ctx, item.Poster)
	detail.Video = s.media.PublicURL(ctx, item.Video)

	detail.Genres = make([]dto.TaxonomyDTO, 0, len(item.Genres))
	for _, g := range item.Genres {
		detail.Genres = append(detail.Genres, dto.TaxonomyDTO{ID: g.ID, Title: g.Title, Image: s.media.PublicURL(ctx, g.Image)})
	}
	detail.Crew = make([]dto.CrewBriefDTO, 0, len(item.Crew))
	for _, c := range item.Crew {
		detail.Crew = append(detail.Crew, dto.CrewBriefDTO{Name: c.Name, Position: c.Position})
	}
	detail.Countries = make([]dto.CountryBriefDTO, 0, len(item.Countries))
	for _, c := range item.Countries {
		detail.Countries = append(detail.Countries, dto.CountryBriefDTO{ID: c.ID, Title: c.Title})
	}

	detail.MovieCategories = s.toTaxonomies(ctx, item.MovieCategories)
	detail.SeriesCategories = s.toTaxonomies(ctx, item.SeriesCategories)
	// 只暴露与 is_film 对应的分区
	if item.IsFilm {
		detail.SeriesCategories = []dto.TaxonomyDTO{}
		detail.WatchURL = fmt.Sprintf(consts.WatchURLFilm, item.ID)
	} else {
		detail.MovieCategories = []dto.TaxonomyDTO{}
		detail.WatchURL = fmt.Sprintf(consts.WatchURLSeries, item.ID)
	}
	return detail, nil
}

func (s *CatalogServiceImpl) toTaxonomies(ctx context.Context, categories []model.Category) []dto.TaxonomyDTO {
	res := make([]dto.TaxonomyDTO, 0, len(categories))
	for _, c := range categories {
		res = append(res, dto.TaxonomyDTO{ID: c.ID, Title: c.Title, Image: s.media.PublicURL(ctx, c.Image)})
	}
	return res
}

func (s *CatalogServiceImpl) toSummaries(ctx context.Context, items []*model.ContentItem) []dto.ContentSummaryDTO {
	res := make([]dto.ContentSummaryDTO, 0, len(items))
	for _, item := range items {
		res = append(res, toSummary(ctx, s.media, item))
	}
	return res
}

func toSummary(ctx context.Context, media MediaResolver, item *model.ContentItem) dto.ContentSummaryDTO {
	return dto.ContentSummaryDTO{
		ID:     item.ID,
		Title:  item.Title,
		Poster: media.PublicURL(ctx, item.Poster),
	}
}

func (s *CatalogServiceImpl) toEpisode(ctx context.Context, e *model.Episode) dto.EpisodeDTO {
	return dto.EpisodeDTO{
		ID:        e.ID,
		Number:    e.Number,
		Title:     e.Title,
		Video:     s.media.PublicURL(ctx, e.Video),
		CreatedAt: e.CreatedAt,
	}
}
