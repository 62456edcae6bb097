package router

import (
	"github.com/aurabank/aura-api/internal/docs"
	"github.com/aurabank/aura-api/internal/handler"
	"github.com/aurabank/aura-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds the HTTP routes of the API around accountHandler.
func New(accountHandler *handler.AccountHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	router.GET("/", handler.Welcome)
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	docs.Register(router)

	router.POST("/login", accountHandler.Login)
	router.GET("/accounts", accountHandler.MissingAccountID)
	router.GET("/accounts/:id", accountHandler.ListAccounts)
	router.POST("/transfer", accountHandler.Transfer)

	return router
}
