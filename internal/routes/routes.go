package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/config"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/handlers"
	infraRepo "github.com/TuneTutorsUK/tutor-scheduler/internal/infra/repository"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/storage"
	ucAvailability "github.com/TuneTutorsUK/tutor-scheduler/internal/usecase/availability"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	ownerGuard := ucAvailability.NewOwnerGuard(availabilityRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	imageStore := storage.NewS3ImageStore(cfg)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	createSlotUC := ucAvailability.NewCreateSlot(
		availabilityRepo,
		ownerGuard,
		auditDispatcher,
	)

	updateSlotUC := ucAvailability.NewUpdateSlot(
		availabilityRepo,
		ownerGuard,
		auditDispatcher,
	)

	deleteSlotUC := ucAvailability.NewDeleteSlot(
		availabilityRepo,
		ownerGuard,
		auditDispatcher,
	)

	bookSlotUC := ucAvailability.NewBookSlot(
		availabilityRepo,
		auditDispatcher,
	)

	listAdSlotsUC := ucAvailability.NewListAdSlots(availabilityRepo)

	listMyAdSlotsUC := ucAvailability.NewListMyAdSlots(
		availabilityRepo,
		ownerGuard,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	adHandler := handlers.NewAdHandler(db, imageStore)
	catalogHandler := handlers.NewCatalogHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		createSlotUC,
		updateSlotUC,
		deleteSlotUC,
		listMyAdSlotsUC,
	)

	publicHandler := handlers.NewPublicHandler(listAdSlotsUC, bookSlotUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	if rdb != nil {
		api.Use(middleware.RateLimitMiddleware(rdb))
	}

	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/instruments", catalogHandler.ListInstruments)
		api.GET("/locations", catalogHandler.ListLocations)

		api.GET("/ads", adHandler.List)
		api.GET("/ads/:adId", adHandler.Get)
		api.GET("/ads/:adId/availability", publicHandler.ListForAd)

		api.POST("/availability/:id/book", publicHandler.Book)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// TUTOR SESSION
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/ads", adHandler.Create)
			secured.PUT("/ads/:adId", adHandler.Update)
			secured.DELETE("/ads/:adId", adHandler.Delete)
			secured.POST("/me/ads/:id/image", adHandler.UploadImage)

			// ------------------------------
			// AVAILABILITY (management)
			// ------------------------------
			secured.GET("/availability/ad/:adId", availabilityHandler.ListMyAd)
			secured.POST("/availability", availabilityHandler.Create)
			secured.PUT("/availability/:id", availabilityHandler.Update)
			secured.DELETE("/availability/:id", availabilityHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
