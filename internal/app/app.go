package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gleam_backend/internal/config"
	"gleam_backend/internal/controller"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/service"
	"gleam_backend/internal/util"
	"gleam_backend/pkg/database"
	"gleam_backend/pkg/logger"
	"gleam_backend/pkg/monitoring"
	"gleam_backend/pkg/security"
	"gleam_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	bank       *repository.BankRepository
	submission *repository.SubmissionRepository
	screening  *repository.ScreeningRepository
	material   *repository.MaterialRepository
	feedback   *repository.FeedbackRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	bank      *service.BankService
	quiz      *service.QuizService
	history   *service.HistoryService
	screening *service.ScreeningService
	content   *service.ContentService
	feedback  *service.FeedbackService
	storage   *service.StorageService
}

type controllers struct {
	auth      *controller.AuthController
	portal    *controller.PortalController
	bank      *controller.BankController
	quiz      *controller.QuizController
	history   *controller.HistoryController
	screening *controller.ScreeningController
	content   *controller.ContentController
	feedback  *controller.FeedbackController
	user      *controller.UserController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a freshly reloaded config to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		bank:       repository.NewBankRepository(db),
		submission: repository.NewSubmissionRepository(db),
		screening:  repository.NewScreeningRepository(db),
		material:   repository.NewMaterialRepository(db),
		feedback:   repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	storage := service.NewStorageService(cfg)

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		user:      service.NewUserService(repos.user),
		bank:      service.NewBankService(repos.bank, repos.submission),
		quiz:      service.NewQuizService(repos.bank, repos.submission, rdb),
		history:   service.NewHistoryService(repos.submission, repos.bank),
		screening: service.NewScreeningService(repos.screening, cfg.Prediction),
		content:   service.NewContentService(repos.material, storage, rdb),
		feedback:  service.NewFeedbackService(repos.feedback),
		storage:   storage,
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, a.Config.Server.Mode == "release"),
		portal:    controller.NewPortalController(),
		bank:      controller.NewBankController(s.bank),
		quiz:      controller.NewQuizController(s.quiz),
		history:   controller.NewHistoryController(s.history),
		screening: controller.NewScreeningController(s.screening),
		content:   controller.NewContentController(s.content),
		feedback:  controller.NewFeedbackController(s.feedback),
		user:      controller.NewUserController(s.user),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("gleam-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
