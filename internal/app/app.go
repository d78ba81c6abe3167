package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai900_study_backend/internal/config"
	"ai900_study_backend/internal/controller"
	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/parser"
	"ai900_study_backend/internal/service"
	"ai900_study_backend/internal/session"
	"ai900_study_backend/internal/storage"
	"ai900_study_backend/pkg/database"
	"ai900_study_backend/pkg/logger"
	"ai900_study_backend/pkg/monitoring"
	"ai900_study_backend/pkg/security"
	"ai900_study_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Catalog  *model.Catalog
	sessions *session.Manager
	services *services
}

type services struct {
	content   *service.ContentService
	progress  *service.ProgressService
	flashcard *service.FlashcardService
	analytics *service.AnalyticsService
}

type controllers struct {
	content   *controller.ContentController
	progress  *controller.ProgressController
	flashcard *controller.FlashcardController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) initServices(catalog *model.Catalog) *services {
	s := &services{}
	s.content = service.NewContentService(catalog)
	s.progress = service.NewProgressService(catalog)
	s.flashcard = service.NewFlashcardService(catalog)
	s.analytics = service.NewAnalyticsService(catalog, s.content)
	return s
}

func (a *App) initControllers(s *services, catalog *model.Catalog) *controllers {
	return &controllers{
		content:   controller.NewContentController(s.content, s.progress, a.sessions),
		progress:  controller.NewProgressController(s.progress, a.sessions),
		flashcard: controller.NewFlashcardController(s.flashcard, a.sessions),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(catalog),
	}
}

func (a *App) initSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.Store == "redis" {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis session store", zap.Error(err))
		}
		return session.NewRedisStore(rdb, cfg.Session.ExpireTime)
	}
	return session.NewMemoryStore(cfg.Session.ExpireTime)
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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

	source, err := storage.NewSource(&cfg.Content)
	if err != nil {
		logger.Log.Fatal("Failed to initialize content source", zap.Error(err))
	}

	// 学习目录启动时构建一次，之后只读共享，不按请求重解析
	catalog := parser.BuildCatalog(context.Background(), source, logger.Log)

	app := &App{
		Config:  cfg,
		Catalog: catalog,
	}

	app.sessions = session.NewManager(app.initSessionStore(cfg), &cfg.Session)

	services := app.initServices(catalog)
	app.services = services
	controllers := app.initControllers(services, catalog)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ai900-study-app", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
