package wire

import (
	"ProtectAdmin/internal/api"
	"ProtectAdmin/internal/api/config"
	"ProtectAdmin/internal/api/handler"
	"ProtectAdmin/internal/job"
	"ProtectAdmin/internal/pkg/cron"
	"ProtectAdmin/internal/pkg/events"
	"ProtectAdmin/internal/pkg/kafka"
	"ProtectAdmin/internal/pkg/mail"
	mongorepo "ProtectAdmin/internal/pkg/mongo"
	"ProtectAdmin/internal/repository"
	"ProtectAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, producer *kafka.Producer, cfg *config.Config) (*ApplicationContainer, error) {
	adminUserRepo := repository.NewAdminUserRepo(db)
	postRepo := mongorepo.NewPostRepo(mongoDB)
	productRepo := mongorepo.NewProductRepo(mongoDB)
	galleryRepo := mongorepo.NewGalleryRepo(mongoDB)
	videoRepo := mongorepo.NewVideoRepo(mongoDB)

	storage := service.NewMinioStorage()
	publisher := events.NewPublisher(producer)
	sessionStore := service.NewRedisSessionStore()
	mailClient := mail.NewClient(cfg.Mail)

	authService := service.NewAuthService(adminUserRepo, sessionStore, mailClient)
	postService := service.NewPostService(postRepo, storage, publisher)
	productService := service.NewProductService(productRepo, storage, publisher)
	galleryService := service.NewGalleryService(galleryRepo, storage, publisher)
	videoService := service.NewVideoService(videoRepo, storage, publisher)

	handlers := &api.HandlersGroup{
		AuthHandler:    handler.NewAuthHandler(authService),
		PostHandler:    handler.NewPostHandler(postService),
		ProductHandler: handler.NewProductHandler(productService),
		GalleryHandler: handler.NewGalleryHandler(galleryService),
		VideoHandler:   handler.NewVideoHandler(videoService),
		WSHandler:      handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewMediaCleanupJob(postRepo, productRepo, galleryRepo, videoRepo),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
