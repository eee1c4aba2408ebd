package api

import (
	"github.com/Baktyiar1/Netflix144p/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	Auth            gin.HandlerFunc
	CatalogHandler  *handler.CatalogHandler
	TaxonomyHandler *handler.TaxonomyHandler
	FavoriteHandler *handler.FavoriteHandler
	RatingHandler   *handler.RatingHandler
	UserHandler     *handler.UserHandler
	MediaHandler    *handler.MediaHandler
}
