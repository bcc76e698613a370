package handler

import (
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/config"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	logger      *zap.Logger
	heroes      *service.HeroSlideService
	dignitaries *service.DignitaryService
	tribes      *service.TribeService
	staff       *service.StaffService
	galleries   *service.GalleryService
	updates     *service.UpdateService
	pages       *service.PageService
	settings    *service.SettingService
	contacts    *service.ContactService
	stats       *service.StatsService
	users       *service.UserService

	uploadDir         string
	uploadURL         string
	allowRegistration bool
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	notifier := service.NewResendNotifier(cfg.ResendAPIKey, cfg.ContactNotifyFrom, cfg.ContactNotifyTo)
	var contactNotifier service.ContactNotifier
	if notifier != nil {
		contactNotifier = notifier
	}

	return &API{
		db:                gdb,
		logger:            logger,
		heroes:            service.NewHeroSlideService(gdb),
		dignitaries:       service.NewDignitaryService(gdb),
		tribes:            service.NewTribeService(gdb),
		staff:             service.NewStaffService(gdb),
		galleries:         service.NewGalleryService(gdb),
		updates:           service.NewUpdateService(gdb),
		pages:             service.NewPageService(gdb),
		settings:          service.NewSettingService(gdb),
		contacts:          service.NewContactService(gdb, contactNotifier, logger),
		stats:             service.NewStatsService(gdb),
		users:             service.NewUserService(gdb),
		uploadDir:         cfg.UploadDir,
		uploadURL:         cfg.UploadURLPath,
		allowRegistration: cfg.AllowRegistration,
	}
}

// AllowRegistration reports whether the self-registration route is enabled.
func (a *API) AllowRegistration() bool {
	return a.allowRegistration
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
