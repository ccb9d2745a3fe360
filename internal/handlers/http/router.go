package http

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/controle-financeiro-backend/docs"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/middleware"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/config"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/storage"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

var registerValidators sync.Once

// RouterDeps reúne o que o roteador precisa para montar as rotas
type RouterDeps struct {
	Config             *config.Config
	Logger             ports.Logger
	I18n               *i18n.Service
	AuthService        *services.AuthService
	UserService        *services.UserService
	TransactionService *services.TransactionService
	SavingService      *services.SavingService
	// UploadDir é servido em /uploads; vazio desativa os arquivos estáticos
	UploadDir string
	Now       func() time.Time
}

// NewRouter monta o engine do Gin com middlewares e rotas da API
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	var validatorErr error
	registerValidators.Do(func() { validatorErr = dto.RegisterValidators() })
	if validatorErr != nil {
		return nil, fmt.Errorf("register validators: %w", validatorErr)
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	cfg := deps.Config
	responder := NewErrorResponder(deps.Logger, !cfg.IsProduction())

	corsHandler, err := middleware.CORS(cfg.CORS.Origins())
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	router := gin.New()
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, responder.Recover))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.SecureHeaders())
	router.Use(corsHandler)
	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())

	router.NoRoute(responder.NotFoundRoute)

	if deps.UploadDir != "" {
		router.Static(storage.PublicPrefix, deps.UploadDir)
	}

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(deps.AuthService, responder)
	userHandler := NewUserHandler(deps.UserService, responder)
	transactionHandler := NewTransactionHandler(deps.TransactionService, responder)
	savingHandler := NewSavingHandler(deps.SavingService, responder)

	requireAuth := middleware.RequireAuth(deps.AuthService)

	api := router.Group("/api")
	{
		api.GET("/health", Health(cfg.Env, deps.Now))

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			protected := auth.Group("", requireAuth)
			protected.GET("/me", userHandler.Me)
			protected.GET("/profile", userHandler.Me)
			protected.PUT("/profile", userHandler.UpdateProfile)
			protected.PUT("/settings", userHandler.UpdateSettings)
			protected.POST("/photo", userHandler.UploadPhoto)
			protected.GET("/users", userHandler.ListUsers)
			protected.PUT("/users/:id", userHandler.UpdateUser)
		}

		transactions := api.Group("/transactions", requireAuth)
		{
			transactions.GET("", transactionHandler.List)
			transactions.GET("/stats", transactionHandler.Stats)
			transactions.POST("", transactionHandler.Create)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		savings := api.Group("/savings", requireAuth)
		{
			savings.GET("", savingHandler.List)
			savings.GET("/stats", savingHandler.Stats)
			savings.POST("", savingHandler.Create)
			savings.PUT("/:id", savingHandler.Update)
			savings.DELETE("/:id", savingHandler.Delete)
			savings.POST("/:id/add", savingHandler.AddContribution)
		}
	}

	return router, nil
}
