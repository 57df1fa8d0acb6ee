package interfaces

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

// Flight pipeline capabilities.

type WithFlightSearchGrouping interface {
	FlightSearchGroupingCacheKey(context.Context, schema.FlightSearchParams, *zerolog.Logger) string
}

type WithFlightSearch interface {
	SearchFlights(context.Context, schema.FlightSearchParams, *zerolog.Logger) (schema.FlightSearchResponse, error)
}

type WithFlightRevalidate interface {
	RevalidateFare(context.Context, schema.FlightRevalidateParams, *zerolog.Logger) (schema.FlightRevalidateResponse, error)
}

type WithFlightBook interface {
	BookFlight(context.Context, schema.FlightBookParams, *zerolog.Logger) (schema.FlightBookResponse, error)
}

type WithFlightExtraServices interface {
	GetExtraServices(context.Context, schema.FlightExtraServicesParams, *zerolog.Logger) (schema.FlightExtraServicesResponse, error)
}

type WithFlightFareRules interface {
	GetFareRules(context.Context, schema.FlightFareRulesParams, *zerolog.Logger) (schema.FlightFareRulesResponse, error)
}

type WithFlightTripDetails interface {
	GetTripDetails(context.Context, schema.FlightTripDetailsParams, *zerolog.Logger) (schema.FlightTripDetailsResponse, error)
}

type WithFlightTicketOrder interface {
	OrderTicket(context.Context, schema.FlightTicketOrderParams, *zerolog.Logger) (schema.FlightTicketOrderResponse, error)
}

type WithFlightCancel interface {
	CancelFlightBooking(context.Context, schema.FlightCancelParams, *zerolog.Logger) (schema.FlightCancelResponse, error)
}

type WithAirportList interface {
	GetAirports(context.Context, *zerolog.Logger) (schema.AirportListResponse, error)
}

type WithAirlineList interface {
	GetAirlines(context.Context, *zerolog.Logger) (schema.AirlineListResponse, error)
}

// Hotel pipeline capabilities.

type WithHotelSearchGrouping interface {
	HotelSearchGroupingCacheKey(context.Context, schema.HotelSearchParams, *zerolog.Logger) string
}

type WithHotelSearch interface {
	SearchHotels(context.Context, schema.HotelSearchParams, *zerolog.Logger) (schema.HotelSearchResponse, error)
}

type WithHotelMoreResults interface {
	GetMoreResults(context.Context, schema.HotelMoreResultsParams, *zerolog.Logger) (schema.HotelSearchResponse, error)
}

type WithHotelFilter interface {
	FilterResults(context.Context, schema.HotelFilterParams, *zerolog.Logger) (schema.HotelSearchResponse, error)
}

type WithHotelMoreFilterResults interface {
	GetMoreFilterResults(context.Context, schema.HotelMoreFilterResultsParams, *zerolog.Logger) (schema.HotelSearchResponse, error)
}

type WithHotelDetails interface {
	GetHotelDetails(context.Context, schema.HotelDetailsParams, *zerolog.Logger) (schema.HotelDetailsResponse, error)
}

type WithHotelRoomRates interface {
	GetRoomRates(context.Context, schema.HotelRoomRatesParams, *zerolog.Logger) (schema.HotelRoomRatesResponse, error)
}

type WithHotelBook interface {
	BookHotel(context.Context, schema.HotelBookParams, *zerolog.Logger) (schema.HotelBookResponse, error)
}

type WithHotelBookingDetails interface {
	GetBookingDetails(context.Context, schema.HotelBookingDetailsParams, *zerolog.Logger) (schema.HotelBookingDetailsResponse, error)
}

type WithHotelCancel interface {
	CancelHotelBooking(context.Context, schema.HotelCancelParams, *zerolog.Logger) (schema.HotelCancelResponse, error)
}

type WithHotelStaticContent interface {
	GetStaticContent(context.Context, schema.HotelStaticContentParams, *zerolog.Logger) (schema.HotelStaticContentResponse, error)
}

type WithHotelCities interface {
	GetCities(context.Context, *zerolog.Logger) (schema.HotelCitiesResponse, error)
}
