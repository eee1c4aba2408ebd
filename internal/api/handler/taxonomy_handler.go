package handler

import (
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomySvc service.TaxonomyService
}

func NewTaxonomyHandler(taxonomySvc service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomySvc: taxonomySvc}
}

func (s *TaxonomyHandler) ListMovieCategories(c *gin.Context) {
	s.listCategories(c, model.CategoryKindFilm)
}

func (s *TaxonomyHandler) ListSeriesCategories(c *gin.Context) {
	s.listCategories(c, model.CategoryKindSeries)
}

func (s *TaxonomyHandler) listCategories(c *gin.Context, kind model.CategoryKind) {
	categories, err := s.taxonomySvc.ListCategories(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *TaxonomyHandler) ListGenres(c *gin.Context) {
	genres, err := s.taxonomySvc.ListGenres(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, genres)
}

func (s *TaxonomyHandler) ListCountries(c *gin.Context) {
	countries, err := s.taxonomySvc.ListCountries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, countries)
}

func (s *TaxonomyHandler) ListCrew(c *gin.Context) {
	page, pageSize := util.ParsePage(c.Query("page"), c.Query("page_size"), 0, 0)
	crew, err := s.taxonomySvc.ListCrew(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, crew)
}

func (s *TaxonomyHandler) CreateCategory(c *gin.Context) {
	s.createTaxonomy(c, service.TaxonomyCategory)
}

func (s *TaxonomyHandler) CreateGenre(c *gin.Context) {
	s.createTaxonomy(c, service.TaxonomyGenre)
}

func (s *TaxonomyHandler) CreateCountry(c *gin.Context) {
	s.createTaxonomy(c, service.TaxonomyCountry)
}

func (s *TaxonomyHandler) createTaxonomy(c *gin.Context, kind service.TaxonomyKind) {
	var req dto.TaxonomyCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	node, err := s.taxonomySvc.CreateTaxonomy(c.Request.Context(), kind, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, node)
}

func (s *TaxonomyHandler) CreateCrew(c *gin.Context) {
	var req dto.CrewCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	crew, err := s.taxonomySvc.CreateCrew(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, crew)
}

func (s *TaxonomyHandler) CreateBanner(c *gin.Context) {
	var req dto.BannerCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	banner, err := s.taxonomySvc.CreateBanner(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, banner)
}
