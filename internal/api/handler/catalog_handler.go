package handler

import (
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// Index 首页数据，支持 search 标题模糊搜索
func (s *CatalogHandler) Index(c *gin.Context) {
	feed, err := s.catalogSvc.GetIndexFeed(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *CatalogHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := s.catalogSvc.GetDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *CatalogHandler) Create(c *gin.Context) {
	var req dto.ContentCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	detail, err := s.catalogSvc.CreateContent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// Update PUT 与 PATCH 共用，只修改请求中出现的字段
func (s *CatalogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ContentUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	detail, err := s.catalogSvc.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *CatalogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.catalogSvc.DeleteContent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *CatalogHandler) ListEpisodes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	episodes, err := s.catalogSvc.ListEpisodes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, episodes)
}

func (s *CatalogHandler) AddEpisode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EpisodeCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	episode, err := s.catalogSvc.AddEpisode(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, episode)
}

func (s *CatalogHandler) ListByMovieCategory(c *gin.Context) {
	s.listByCategory(c, model.CategoryKindFilm)
}

func (s *CatalogHandler) ListBySeriesCategory(c *gin.Context) {
	s.listByCategory(c, model.CategoryKindSeries)
}

func (s *CatalogHandler) listByCategory(c *gin.Context, kind model.CategoryKind) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	query, ok := contentQuery(c)
	if !ok {
		return
	}
	page, err := s.catalogSvc.ListByCategory(c.Request.Context(), kind, id, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *CatalogHandler) ListByGenre(c *gin.Context) {
	id, ok := pathID(c, "genreId")
	if !ok {
		return
	}
	query, ok := contentQuery(c)
	if !ok {
		return
	}
	page, err := s.catalogSvc.ListByGenre(c.Request.Context(), id, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *CatalogHandler) ListByCountry(c *gin.Context) {
	id, ok := pathID(c, "countryId")
	if !ok {
		return
	}
	query, ok := contentQuery(c)
	if !ok {
		return
	}
	page, err := s.catalogSvc.ListByCountry(c.Request.Context(), id, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
