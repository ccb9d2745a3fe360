package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	httphandlers "github.com/rafabene/controle-financeiro-backend/internal/handlers/http"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/config"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/logging"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/security"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/storage"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

//	@title						Controle Financeiro API
//	@version					1.0
//	@description				API de controle financeiro pessoal: transações, metas de economia e usuários.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Inicializar logger
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting controle-financeiro backend",
		"env", cfg.Env,
		"log_backend", cfg.Logging.Backend,
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() { _ = postgres.Close(db) }()

	if err := postgres.PrepareSchema(db, cfg); err != nil {
		logger.Error("failed to prepare database schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	files, err := storage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	savingRepo := postgres.NewSavingRepository(db)
	uow := postgres.NewUnitOfWork(db)

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := security.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Inicializar services
	authService := services.NewAuthService(userRepo, uow, hasher, tokens, logger)
	userService := services.NewUserService(userRepo, uow, hasher, files, cfg.Upload.MaxBytes, logger)
	transactionService := services.NewTransactionService(transactionRepo, logger)
	savingService := services.NewSavingService(savingRepo, uow, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:             cfg,
		Logger:             logger,
		I18n:               i18nService,
		AuthService:        authService,
		UserService:        userService,
		TransactionService: transactionService,
		SavingService:      savingService,
		UploadDir:          files.Root(),
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		log.Fatal(err)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
