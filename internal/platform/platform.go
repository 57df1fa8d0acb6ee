package platform

import (
	"github.com/gin-gonic/gin"
	"github.com/tripyverse/travelnext-hub/internal/platform/factory"
	"github.com/tripyverse/travelnext-hub/internal/tools/redisfactory"
)

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	registerFlightRoutes(router, factory, redisFactory)
	registerHotelRoutes(router, factory, redisFactory)
}
