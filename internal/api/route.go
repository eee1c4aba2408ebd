package api

import (
	"net/http"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/api/middleware"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg config.ServerConfig, group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(cfg.TrustedProxies)

	// TraceId & Logger & CORS & Metrics
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())
	logger.SetupGin(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 管理接口需要 MANAGER 或 ADMIN
	elevated := middleware.CheckRoles(model.RoleManager, model.RoleAdmin)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.Response{Code: http.StatusOK, Message: "pong"})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(group.Auth)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/profile", group.UserHandler.GetProfile)
				authGroup.PATCH("/profile", group.UserHandler.UpdateProfile)
				authGroup.POST("/avatar", group.UserHandler.UploadAvatar)
			}
		}

		catalogGroup := apiGroup.Group("/catalog")
		{
			catalogGroup.GET("", group.CatalogHandler.Index)
			catalogGroup.GET("/:id", group.CatalogHandler.Detail)
			catalogGroup.GET("/:id/episodes", group.CatalogHandler.ListEpisodes)
			catalogGroup.GET("/category/movies/:categoryId", group.CatalogHandler.ListByMovieCategory)
			catalogGroup.GET("/category/series/:categoryId", group.CatalogHandler.ListBySeriesCategory)
			catalogGroup.GET("/genre/:genreId", group.CatalogHandler.ListByGenre)
			catalogGroup.GET("/country/:countryId", group.CatalogHandler.ListByCountry)

			adminGroup := catalogGroup.Group("")
			adminGroup.Use(group.Auth, elevated)
			{
				adminGroup.POST("", group.CatalogHandler.Create)
				adminGroup.PUT("/:id", group.CatalogHandler.Update)
				adminGroup.PATCH("/:id", group.CatalogHandler.Update)
				adminGroup.DELETE("/:id", group.CatalogHandler.Delete)
				adminGroup.POST("/:id/episodes", group.CatalogHandler.AddEpisode)
			}
		}

		apiGroup.GET("/categories/movies", group.TaxonomyHandler.ListMovieCategories)
		apiGroup.GET("/categories/series", group.TaxonomyHandler.ListSeriesCategories)
		apiGroup.GET("/genres", group.TaxonomyHandler.ListGenres)
		apiGroup.GET("/countries", group.TaxonomyHandler.ListCountries)
		apiGroup.GET("/crew", group.TaxonomyHandler.ListCrew)

		taxonomyAdmin := apiGroup.Group("")
		taxonomyAdmin.Use(group.Auth, elevated)
		{
			taxonomyAdmin.POST("/categories", group.TaxonomyHandler.CreateCategory)
			taxonomyAdmin.POST("/genres", group.TaxonomyHandler.CreateGenre)
			taxonomyAdmin.POST("/countries", group.TaxonomyHandler.CreateCountry)
			taxonomyAdmin.POST("/crew", group.TaxonomyHandler.CreateCrew)
			taxonomyAdmin.POST("/banners", group.TaxonomyHandler.CreateBanner)
			taxonomyAdmin.POST("/media/upload", group.MediaHandler.Upload)
		}

		favoriteGroup := apiGroup.Group("/favorites")
		favoriteGroup.Use(group.Auth)
		{
			favoriteGroup.GET("", group.FavoriteHandler.List)
			favoriteGroup.POST("", group.FavoriteHandler.Add)
			favoriteGroup.DELETE("/:movieId", group.FavoriteHandler.Remove)
		}

		ratingGroup := apiGroup.Group("/ratings")
		ratingGroup.Use(group.Auth)
		{
			ratingGroup.POST("", group.RatingHandler.Add)
			ratingGroup.GET("/:id", group.RatingHandler.Get)
			ratingGroup.PATCH("/:id", group.RatingHandler.Update)
		}
	}

	return r
}
