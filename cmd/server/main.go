package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/studylink/internal/auth"
	"github.com/fadilmartias/studylink/internal/config"
	"github.com/fadilmartias/studylink/internal/domain/fiber/handler"
	applog "github.com/fadilmartias/studylink/internal/logger"
	"github.com/fadilmartias/studylink/internal/middleware"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/recommend"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/fadilmartias/studylink/internal/service"
	"github.com/fadilmartias/studylink/internal/usecase"
	"github.com/fadilmartias/studylink/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := applog.New(appConfig.IsProduction(), appConfig.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	recommendConfig, err := config.LoadRecommendConfig()
	if err != nil {
		zlog.Fatal("invalid recommendation config", zap.Error(err))
	}
	engine, err := recommend.NewEngine(recommendConfig.Engine)
	if err != nil {
		zlog.Fatal("invalid recommendation weights", zap.Error(err))
	}

	jwtConfig := config.LoadJWTConfig()
	jwtManager, err := auth.NewJWTManager(jwtConfig.Secret, jwtConfig.TTL)
	if err != nil {
		zlog.Fatal("invalid jwt config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	embedder, err := service.NewEmbeddingService(ctx, zlog)
	switch {
	case errors.Is(err, service.ErrNoEmbedder):
		zlog.Warn("no embedding provider configured, semantic search disabled")
		embedder = nil
	case err != nil:
		zlog.Fatal("could not create embedding service", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			}, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(zlog)

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	groupRepo := repository.NewStudyGroupRepository(db)
	memberRepo := repository.NewStudyMemberRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	interestRepo := repository.NewInterestRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, tagRepo, jwtManager, auth.NewPasswordHasher(bcrypt.DefaultCost))
	userUC := usecase.NewUserUsecase(userRepo, tagRepo, groupRepo, memberRepo, applicationRepo, interestRepo)
	groupUC := usecase.NewStudyGroupUsecase(groupRepo, tagRepo, embedder, zlog.Named("study_group"))
	recommendUC := usecase.NewRecommendationUsecase(engine, userRepo, groupRepo, memberRepo, recommendConfig.Limit, zlog.Named("recommend"))
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, groupRepo, memberRepo)
	commentUC := usecase.NewCommentUsecase(commentRepo, groupRepo)
	interestUC := usecase.NewInterestUsecase(interestRepo, groupRepo)

	requireAuth := middleware.RequireAuth(jwtManager)
	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewUserHandler(userUC, requireAuth).RegisterRoutes(app)
	handler.NewStudyGroupHandler(groupUC, recommendUC, requireAuth).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, requireAuth).RegisterRoutes(app)
	handler.NewCommentHandler(commentUC, requireAuth).RegisterRoutes(app)
	handler.NewInterestHandler(interestUC, requireAuth).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zlog.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server running",
		zap.String("port", appConfig.Port),
		zap.String("env", appConfig.Env),
		zap.Bool("semantic_search", embedder != nil),
		zap.Int("recommend_limit", recommendConfig.Limit))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB(zlog *zap.Logger) *gorm.DB {
	dbConfig, err := config.LoadDBConfig()
	if err != nil {
		zlog.Fatal("invalid database config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("could not get database instance", zap.Error(err))
	}
	pgDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	pgDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	pgDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	for _, ext := range []string{"uuid-ossp", "vector"} {
		if err := db.Exec(fmt.Sprintf(`CREATE EXTENSION IF NOT EXISTS "%s"`, ext)).Error; err != nil {
			zlog.Fatal("could not create extension", zap.String("extension", ext), zap.Error(err))
		}
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.StudyGroup{},
		&model.StudyMember{},
		&model.Application{},
		&model.Comment{},
		&model.Interest{},
	)
	if err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
