package routes

import (
	"github.com/gin-gonic/gin"

	"api_clientes/src/controllers"
	"api_clientes/src/logger"
	"api_clientes/src/middleware"
)

// NewRouter arma el engine con recovery, log por petición y CORS antes de las rutas.
func NewRouter(log *logger.Logger, cors gin.HandlerFunc, clientes *controllers.ClienteController, health *controllers.HealthController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), cors)

	router.GET("/health", health.GetHealth)
	ClienteRoute(router, clientes)
	return router
}
