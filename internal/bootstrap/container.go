package bootstrap

import (
	"context"
	"time"

	"contractdesk-be/internal/config"
	"contractdesk-be/internal/controller"
	"contractdesk-be/internal/handler"
	"contractdesk-be/internal/pkg/logger"
	"contractdesk-be/internal/pkg/mailer"
	"contractdesk-be/internal/pkg/storage"
	"contractdesk-be/internal/repository/implementation"
	"contractdesk-be/internal/repository/unitofwork"
	"contractdesk-be/internal/service"
	"contractdesk-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	VendorController    controller.IVendorController
	ContractController  controller.IContractController
	ReviewController    controller.IReviewController
	DocumentController  controller.IDocumentController
	DashboardController controller.IDashboardController
	ReportController    controller.IReportController

	// Background Services (Exposed for main.go to run)
	ContractService     service.IContractService
	NotificationService service.INotificationService

	// WebSockets & Notification
	EventHandler *handler.EventHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	fileStore := storage.NewLocalStore(cfg.Storage.UploadDir)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/events.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.ContractTopic, pubSub)
	identifierService := service.NewIdentifierService()

	contractService := service.NewContractService(uowFactory, identifierService, publisherService, sysLogger, nil)
	reviewService := service.NewReviewService(
		uowFactory,
		publisherService,
		sysLogger,
		nil,
		cfg.Review.ReviewHorizonDays,
		cfg.Review.AttentionHorizonDays,
	)
	documentService := service.NewDocumentService(uowFactory, fileStore, sysLogger, nil)
	userService := service.NewUserService(uowFactory, identifierService, nil)
	vendorService := service.NewVendorService(uowFactory, identifierService, nil)
	authService := service.NewAuthService(
		uowFactory,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		nil,
	)
	dashboardService := service.NewDashboardService(uowFactory, nil)
	reportService := service.NewReportService(uowFactory, nil)

	eventRepo := implementation.NewContractEventRepository(db)
	notificationService := service.NewNotificationService(
		pubSub,
		cfg.Events.ContractTopic,
		uowFactory,
		eventRepo,
		wsHub,
		emailService,
	)
	if err := notificationService.Consume(context.Background()); err != nil {
		sysLogger.Error("bootstrap", "failed to start event consumer", map[string]interface{}{"error": err.Error()})
	}

	eventHandler := handler.NewEventHandler(notificationService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		VendorController:    controller.NewVendorController(vendorService),
		ContractController:  controller.NewContractController(contractService),
		ReviewController:    controller.NewReviewController(reviewService),
		DocumentController:  controller.NewDocumentController(documentService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ReportController:    controller.NewReportController(reportService),

		ContractService:     contractService,
		NotificationService: notificationService,

		EventHandler: eventHandler,
		WebSocketHub: wsHub,
	}
}
