package server

import (
	"options-strategy/controllers"
	"options-strategy/metrics"
	"options-strategy/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies bundles everything the router wires into handlers
type Dependencies struct {
	StrategyController *controllers.StrategyController
	OptionsController  *controllers.OptionsController
	Metrics            *metrics.Metrics // nil disables /metrics
	Logger             *logrus.Logger
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.HTTPMetrics(deps.Metrics))

	router.GET("/", deps.OptionsController.HandleRoot)
	router.GET("/health", deps.OptionsController.HandleHealth)
	router.GET("/options", deps.OptionsController.HandleGetOptionChain)

	strategy := router.Group("/strategy")
	{
		strategy.POST("/simulate", deps.StrategyController.HandleSimulate)
		strategy.POST("/adjust", deps.StrategyController.HandleAdjust)
	}

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return router
}
