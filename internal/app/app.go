package app

import (
	"context"
	"educonexa_backend/internal/config"
	"educonexa_backend/internal/controller"
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/repository"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"
	"educonexa_backend/pkg/configwatcher"
	"educonexa_backend/pkg/database"
	"educonexa_backend/pkg/logger"
	"educonexa_backend/pkg/monitoring"
	"educonexa_backend/pkg/security"
	"educonexa_backend/pkg/tracing"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	// ConfigFile is watched for changes while the server runs. Empty disables
	// hot reload.
	ConfigFile string

	origins         *security.OriginSet
	tracer          *sdktrace.TracerProvider
	configCallbacks []configwatcher.Reloader
}

type repositories struct {
	user          *repository.UserRepository
	course        *repository.CourseRepository
	lesson        *repository.LessonRepository
	progress      *repository.LessonProgressRepository
	enrollment    *repository.EnrollmentRepository
	certification *repository.CertificationRepository
	post          *repository.PostRepository
	comment       *repository.CommentRepository
	follow        *repository.FollowRepository
	resource      *repository.ResourceRepository
}

type services struct {
	auth          *service.AuthService
	storage       *service.StorageService
	course        *service.CourseService
	lesson        *service.LessonService
	progress      *service.ProgressService
	enrollment    *service.EnrollmentService
	certification *service.CertificationService
	community     *service.CommunityService
	event         *service.EventService
	follow        *service.FollowService
	user          *service.UserService
	resource      *service.ResourceService
}

type controllers struct {
	auth      *controller.AuthController
	course    *controller.CourseController
	learning  *controller.LearningController
	community *controller.CommunityController
	user      *controller.UserController
	resource  *controller.ResourceController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback configwatcher.Reloader) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		course:        repository.NewCourseRepository(db),
		lesson:        repository.NewLessonRepository(db),
		progress:      repository.NewLessonProgressRepository(db),
		enrollment:    repository.NewEnrollmentRepository(db),
		certification: repository.NewCertificationRepository(db),
		post:          repository.NewPostRepository(db),
		comment:       repository.NewCommentRepository(db),
		follow:        repository.NewFollowRepository(db),
		resource:      repository.NewResourceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	var cache service.CourseCache = service.NoopCourseCache()
	if rdb != nil {
		cache = service.NewRedisCourseCache(rdb, cfg.Redis.CourseListTTL())
	}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, cache)
	s.lesson = service.NewLessonService(repos.lesson, repos.course, cache)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, cache)
	s.certification = service.NewCertificationService(repos.certification, repos.course, repos.user)
	s.progress = service.NewProgressService(
		db,
		repos.lesson,
		repos.progress,
		repos.enrollment,
		s.certification,
		cache,
	)
	s.community = service.NewCommunityService(repos.post, repos.comment, repos.course)
	s.event = service.NewEventService(repos.post)
	s.follow = service.NewFollowService(repos.follow, repos.user)
	s.user = service.NewUserService(repos.user, repos.post, repos.follow, s.storage, cache)
	s.resource = service.NewResourceService(repos.resource, repos.course, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, a.Config.JWT.ExpireTime, a.Config.Server.IsRelease()),
		course:    controller.NewCourseController(s.course, s.lesson),
		learning:  controller.NewLearningController(s.progress, s.enrollment, s.certification),
		community: controller.NewCommunityController(s.community, s.event),
		user:      controller.NewUserController(s.user, s.follow),
		resource:  controller.NewResourceController(s.resource),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config, s *services) {
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(security.Secure())
	router.Use(security.CORS(a.origins))
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.Session(s.auth))
}

// New assembles the HTTP application on top of an open database. rdb may be
// nil, in which case the course list is not cached.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	if cfg.Server.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}
	util.RegisterValidators()
	monitoring.Init()

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		origins: security.NewOriginSet(cfg.CORS.AllowedOrigins),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg, services)
	app.registerRoutes(router, controllers, services)

	app.RegisterConfigCallback(func(next *config.Config) {
		logger.SetLevel(next.Log.Level)
		app.origins.Replace(next.CORS.AllowedOrigins)
		logger.Log.Info("Applied reloaded settings",
			zap.String("log_level", next.Log.Level),
			zap.Strings("cors_origins", next.CORS.AllowedOrigins),
		)
	})

	return app
}

func shouldMigrate(cfg *config.Config) bool {
	return cfg.ForceMigrate || !cfg.Server.IsRelease()
}

// NewApp opens every external dependency named by the configuration and
// builds the application. configDir is the directory LoadConfig read.
func NewApp(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		Debug: !cfg.Server.IsRelease(),
	})
	logger.Log.Info("Logger initialized successfully")

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if shouldMigrate(cfg) {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Log.Info("Database migrated")
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// the cache is optional, requests fall through to the database
			logger.Log.Error("Redis unavailable, course cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := New(cfg, db, rdb)
	app.ConfigFile = filepath.Join(configDir, "config.yaml")

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("educonexa-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	if cfg.Storage.Type == util.StorageLocal {
		app.Router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

// RunMigrations migrates the schema and returns, for -migrate-only.
func RunMigrations(cfg *config.Config) error {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	if a.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(watchCtx, a.ConfigFile, a.configCallbacks...); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
