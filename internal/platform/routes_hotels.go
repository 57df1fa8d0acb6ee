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

func hotelSearchCacheKey(c *gin.Context) (string, bool) {
	log := c.MustGet("logger").(*zerolog.Logger)

	service, ok := c.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelSearchGrouping)
	if !ok {
		return "", false
	}

	params, ok := c.MustGet(platformMiddleware.ParamsKey).(*schema.HotelSearchParams)
	if !ok {
		return "", false
	}

	return service.HotelSearchGroupingCacheKey(c.Request.Context(), *params, log), true
}

func registerHotelRoutes(
	router *gin.Engine,
	f *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	group := router.Group(
		"/hotels",
		platformMiddleware.PrepareService(f, "hotels"),
		platformMiddleware.TapLogger("hotels"),
	)

	group.POST("/search",
		platformMiddleware.PrepareParams(schema.HotelSearchParams{}),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   redisFactory.GroupingClient(),
			CacheKey:      hotelSearchCacheKey,
		}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("hotels:search")

			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelSearch)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Hotel search not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelSearchParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			response, err := service.SearchHotels(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting hotel search", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)

			slowLog.Stop("hotels:search")
		},
	)

	group.POST("/more-results",
		platformMiddleware.PrepareParams(schema.HotelMoreResultsParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelMoreResults)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "More results not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelMoreResultsParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetMoreResults(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting more results", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/filter",
		platformMiddleware.PrepareParams(schema.HotelFilterParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelFilter)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Result filtering not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelFilterParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.FilterResults(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting filtered results", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/more-filter-results",
		platformMiddleware.PrepareParams(schema.HotelMoreFilterResultsParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelMoreFilterResults)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "More filter results not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelMoreFilterResultsParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetMoreFilterResults(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting more filter results", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/details",
		platformMiddleware.PrepareParams(schema.HotelDetailsParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelDetails)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Hotel details not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelDetailsParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetHotelDetails(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting hotel details", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/room-rates",
		platformMiddleware.PrepareParams(schema.HotelRoomRatesParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelRoomRates)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Room rates not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelRoomRatesParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetRoomRates(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting room rates", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/booking",
		platformMiddleware.PrepareParams(schema.HotelBookParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelBook)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Hotel booking not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelBookParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.BookHotel(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting hotel booking", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/booking-details",
		platformMiddleware.PrepareParams(schema.HotelBookingDetailsParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelBookingDetails)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Booking details not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelBookingDetailsParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetBookingDetails(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting booking details", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/cancel",
		platformMiddleware.PrepareParams(schema.HotelCancelParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelCancel)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Hotel cancel not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelCancelParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.CancelHotelBooking(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting hotel cancel", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/static-content",
		platformMiddleware.PrepareParams(schema.HotelStaticContentParams{}),
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelStaticContent)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Static content not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.HotelStaticContentParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetStaticContent(ctx.Request.Context(), *params, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting static content", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/cities",
		func(ctx *gin.Context) {
			service, ok := ctx.MustGet(platformMiddleware.ServiceKey).(interfaces.WithHotelCities)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "City list not implemented", errors.ErrorNotImplemented)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := service.GetCities(ctx.Request.Context(), logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed requesting city list", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)
}
