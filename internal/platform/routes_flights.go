package platform

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/grouping"
	"github.com/tripyverse/travelnext-hub/internal/platform/errors"
	"github.com/tripyverse/travelnext-hub/internal/platform/factory"
	"github.com/tripyverse/travelnext-hub/internal/platform/interfaces"
	platformMiddleware "github.com/tripyverse/travelnext-hub/internal/platform/middleware"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/middleware"
	"github.com/tripyverse/travelnext-hub/internal/tools/redisfactory"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

func flightSearchCacheKey(c *gin.Context) (string, bool) {
	log := c.MustGet("logger").(*zerolog.Logger)

	service, ok := c.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightSearchGrouping)
	if !ok {
		return "", false
	}

	params, ok := c.MustGet(platformMiddleware.ParamsKey).(*schema.FlightSearchParams)
	if !ok {
		return "", false
	}

	return service.FlightSearchGroupingCacheKey(c.Request.Context(), *params, log), true
}

func registerFlightRoutes(
	router *gin.Engine,
	f *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	group := router.Group(
		"/flights",
		platformMiddleware.PrepareService(f, "flights"),
		platformMiddleware.TapLogger("flights"),
	)

	group.POST("/search",
		platformMiddleware.PrepareParams(schema.FlightSearchParams{}),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   redisFactory.GroupingClient(),
			CacheKey:      flightSearchCacheKey,
		}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("flights:search")

			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightSearch)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Flight search not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightSearchParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			response, err := service.SearchFlights(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting flight search", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)

			slowLog.Stop("flights:search")
		},
	)

	group.POST("/revalidate",
		platformMiddleware.PrepareParams(schema.FlightRevalidateParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightRevalidate)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Fare revalidation not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightRevalidateParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.RevalidateFare(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting fare revalidation", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/booking",
		platformMiddleware.PrepareParams(schema.FlightBookParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightBook)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Flight booking not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightBookParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.BookFlight(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting flight booking", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/extra-services",
		platformMiddleware.PrepareParams(schema.FlightExtraServicesParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightExtraServices)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Extra services not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightExtraServicesParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetExtraServices(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting extra services", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/fare-rules",
		platformMiddleware.PrepareParams(schema.FlightFareRulesParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightFareRules)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Fare rules not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightFareRulesParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetFareRules(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting fare rules", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/trip-details",
		platformMiddleware.PrepareParams(schema.FlightTripDetailsParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightTripDetails)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Trip details not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightTripDetailsParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetTripDetails(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting trip details", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/ticket-order",
		platformMiddleware.PrepareParams(schema.FlightTicketOrderParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightTicketOrder)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Ticket ordering not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightTicketOrderParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.OrderTicket(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting ticket order", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/cancel",
		platformMiddleware.PrepareParams(schema.FlightCancelParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithFlightCancel)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Flight cancel not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.FlightCancelParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.CancelFlightBooking(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting flight cancel", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/airports",
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithAirportList)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Airport list not implemented", errors.ErrorNotImplemented)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetAirports(ctx.Request.Context(), logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting airport list", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/airlines",
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithAirlineList)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Airline list not implemented", errors.ErrorNotImplemented)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetAirlines(ctx.Request.Context(), logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting airline list", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)
}
