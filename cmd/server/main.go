package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finuel.backend/internal/config"
	"finuel.backend/internal/infrastructure/mail"
	"finuel.backend/internal/infrastructure/push"
	"finuel.backend/internal/infrastructure/repositories"
	"finuel.backend/internal/interfaces/http/handlers"
	"finuel.backend/internal/usecases"
	"finuel.backend/pkg/jwt"
	"finuel.backend/pkg/logger"
	"finuel.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	employmentRepo := repositories.NewEmploymentRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	pushTokenRepo := repositories.NewPushTokenRepository(db)

	// Initialize outbound clients
	mailer := mail.NewClient(cfg.Mail.BrevoAPIKey, cfg.Mail.SenderName, cfg.Mail.SenderEmail)
	notifier := push.NewClient(cfg.Push.Endpoint)
	cooldown := redis.NewCooldownStore(cfg.OTP.Cooldown)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, jwtService, mailer, cooldown)
	userUsecase := usecases.NewUserUsecase(userRepo, settingsRepo, kycRepo, employmentRepo, loanRepo, pushTokenRepo, notifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	// Initialize router
	r := newRouter(jwtService, routeDeps{
		authHandler: authHandler,
		userHandler: userHandler,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
