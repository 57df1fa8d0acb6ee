package web

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/platform"
	"github.com/tripyverse/travelnext-hub/internal/platform/factory"
	"github.com/tripyverse/travelnext-hub/internal/tools/redisfactory"
)

func SetupRouter(log *zerolog.Logger, redisFactory *redisfactory.Factory) *gin.Engine {
	startTime := time.Now()

	router := gin.New()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	pprof.Register(router)

	platform.RegisterRoutes(
		router,
		factory.NewFactory(redisFactory),
		redisFactory,
	)

	return router
}
