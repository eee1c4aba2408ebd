package wire

import (
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api"
	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/api/handler"
	"github.com/Baktyiar1/Netflix144p/internal/api/middleware"
	"github.com/Baktyiar1/Netflix144p/internal/job"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/cron"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/security"
	"github.com/Baktyiar1/Netflix144p/internal/repository"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	JWT     *security.JWTManager
	CronMgr *cron.Manager
}

// Infra 外部基础设施，生产环境由 Redis 与 MinIO 提供
type Infra struct {
	TokenStore security.TokenStore
	Media      service.MediaStore
	Tracker    MediaLedger
	Storage    job.ObjectRemover
}

// MediaLedger 同时满足上传登记与清理任务的读取
type MediaLedger interface {
	service.MediaTracker
	job.MediaLedger
}

// BuildApplication 构造期完成全部依赖注入，存储与缓存由调用方传入
func BuildApplication(db *gorm.DB, infra Infra, cfg *config.Config) (*ApplicationContainer, error) {
	tokenStore, media := infra.TokenStore, infra.Media

	contentRepo := repository.NewContentRepo(db)
	taxonomyRepo := repository.NewTaxonomyRepo(db)
	crewRepo := repository.NewCrewRepo(db)
	bannerRepo := repository.NewBannerRepo(db)
	episodeRepo := repository.NewEpisodeRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	ratingRepo := repository.NewRatingRepo(db)
	userRepo := repository.NewUserRepo(db)
	mediaRefRepo := repository.NewMediaRefRepo(db)

	jwtManager := security.NewJWTManager(cfg.JWT)

	catalogService := service.NewCatalogService(contentRepo, taxonomyRepo, crewRepo, bannerRepo, episodeRepo, media, cfg.Catalog)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo, crewRepo, bannerRepo, media, cfg.Catalog)
	favoriteService := service.NewFavoriteService(favoriteRepo, contentRepo, media)
	ratingService := service.NewRatingService(ratingRepo, contentRepo)
	userService := service.NewUserService(userRepo, jwtManager, tokenStore, media)
	mediaService := service.NewMediaService(media, infra.Tracker, cfg.MinIO.MaxImageWidth)

	handlers := &api.HandlersGroup{
		Auth:            middleware.AuthMiddleware(jwtManager, tokenStore),
		CatalogHandler:  handler.NewCatalogHandler(catalogService),
		TaxonomyHandler: handler.NewTaxonomyHandler(taxonomyService),
		FavoriteHandler: handler.NewFavoriteHandler(favoriteService),
		RatingHandler:   handler.NewRatingHandler(ratingService),
		UserHandler:     handler.NewUserHandler(userService, mediaService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(cfg.Server, handlers)

	ttl := time.Duration(cfg.Job.MediaTempTTL) * time.Hour
	cleanupJob := job.NewMediaCleanupJob(infra.Tracker, mediaRefRepo, infra.Storage, ttl)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		JWT:     jwtManager,
		CronMgr: cron.NewCronManager(cfg.Job.MediaCleanupSpec, cleanupJob),
	}, nil
}
