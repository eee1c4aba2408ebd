package handler

import (
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteSvc service.FavoriteService
}

func NewFavoriteHandler(favoriteSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

// Add 收藏影片，重复收藏返回已有记录
func (s *FavoriteHandler) Add(c *gin.Context) {
	var req dto.FavoriteCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	fav, err := s.favoriteSvc.AddFavorite(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fav)
}

func (s *FavoriteHandler) Remove(c *gin.Context) {
	movieID, ok := pathID(c, "movieId")
	if !ok {
		return
	}
	removed, err := s.favoriteSvc.RemoveFavorite(c.Request.Context(), currentUserID(c), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !removed {
		response.Error(c, service.ErrFavoriteNotFound)
		return
	}
	response.NoContent(c)
}

func (s *FavoriteHandler) List(c *gin.Context) {
	favorites, err := s.favoriteSvc.ListFavorites(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, favorites)
}

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

func (s *RatingHandler) Add(c *gin.Context) {
	var req dto.RatingCreateDTO
	if !bindJSON(c, &req) {
		return
	}
	rating, err := s.ratingSvc.AddRating(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rating)
}

func (s *RatingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rating, err := s.ratingSvc.GetRating(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rating)
}

func (s *RatingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RatingUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	rating, err := s.ratingSvc.UpdateRating(c.Request.Context(), currentUserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rating)
}
