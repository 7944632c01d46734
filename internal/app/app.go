package app

import (
	"context"
	"lms_backend/internal/config"
	"lms_backend/internal/controller"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/security"
	"lms_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	module       *repository.ModuleRepository
	videoLesson  *repository.VideoLessonRepository
	quiz         *repository.QuizRepository
	quizAttempt  *repository.QuizAttemptRepository
	enrollment   *repository.EnrollmentRepository
	reflection   *repository.ReflectionRepository
	forum        *repository.ForumRepository
	certificate  *repository.CertificateRepository
	portfolio    *repository.PortfolioRepository
	notification *repository.NotificationRepository
	rubric       *repository.RubricRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	course       *service.CourseService
	module       *service.ModuleService
	videoLesson  *service.VideoLessonService
	quiz         *service.QuizService
	enrollment   *service.EnrollmentService
	reflection   *service.ReflectionService
	forum        *service.ForumService
	certificate  *service.CertificateService
	portfolio    *service.PortfolioService
	notification *service.NotificationService
	rubric       *service.RubricService
	storage      *service.StorageService
	file         *service.FileService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	module       *controller.ModuleController
	videoLesson  *controller.VideoLessonController
	quiz         *controller.QuizController
	enrollment   *controller.EnrollmentController
	reflection   *controller.ReflectionController
	forum        *controller.ForumController
	certificate  *controller.CertificateController
	portfolio    *controller.PortfolioController
	notification *controller.NotificationController
	rubric       *controller.RubricController
	file         *controller.FileController
	video        *controller.VideoController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		module:       repository.NewModuleRepository(db),
		videoLesson:  repository.NewVideoLessonRepository(db),
		quiz:         repository.NewQuizRepository(db),
		quizAttempt:  repository.NewQuizAttemptRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		reflection:   repository.NewReflectionRepository(db),
		forum:        repository.NewForumRepository(db),
		certificate:  repository.NewCertificateRepository(db),
		portfolio:    repository.NewPortfolioRepository(db),
		notification: repository.NewNotificationRepository(db),
		rubric:       repository.NewRubricRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.file = service.NewFileService(cfg, s.storage)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.user)
	s.module = service.NewModuleService(repos.module, repos.course)
	s.videoLesson = service.NewVideoLessonService(repos.videoLesson, repos.module, cfg, db)
	s.quiz = service.NewQuizService(repos.quiz, repos.quizAttempt, repos.module, repos.user, db)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.user)
	s.reflection = service.NewReflectionService(repos.reflection, repos.module, repos.user, repos.notification)
	s.forum = service.NewForumService(repos.forum, repos.course, repos.module, repos.notification, db)
	s.certificate = service.NewCertificateService(repos.certificate, repos.course, repos.user, repos.portfolio, repos.notification)
	s.portfolio = service.NewPortfolioService(repos.portfolio, repos.user)
	s.notification = service.NewNotificationService(repos.notification)
	s.rubric = service.NewRubricService(repos.rubric)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		course:       controller.NewCourseController(s.course),
		module:       controller.NewModuleController(s.module),
		videoLesson:  controller.NewVideoLessonController(s.videoLesson),
		quiz:         controller.NewQuizController(s.quiz),
		enrollment:   controller.NewEnrollmentController(s.enrollment),
		reflection:   controller.NewReflectionController(s.reflection),
		forum:        controller.NewForumController(s.forum),
		certificate:  controller.NewCertificateController(s.certificate),
		portfolio:    controller.NewPortfolioController(s.portfolio),
		notification: controller.NewNotificationController(s.notification),
		rubric:       controller.NewRubricController(s.rubric),
		file:         controller.NewFileController(s.file),
		video:        controller.NewVideoController(s.file),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(1000, time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lms-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.UploadRoot)
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
