package hotels

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type priceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type filterCriteria struct {
	Price             *priceRange `json:"price,omitempty"`
	Rating            string      `json:"rating,omitempty"`
	TripAdvisorRating string      `json:"tripadvisorRating,omitempty"`
	HotelName         string      `json:"hotelName,omitempty"`
	FareType          string      `json:"faretype,omitempty"`
	PropertyType      string      `json:"propertyType,omitempty"`
	Facility          string      `json:"facility,omitempty"`
	Locality          string      `json:"locality,omitempty"`
	Sorting           string      `json:"sorting,omitempty"`
}

type filterPayload struct {
	SessionID string         `json:"sessionId"`
	MaxResult int            `json:"maxResult"`
	Filters   filterCriteria `json:"filters"`
}

func buildFilterPayload(params schema.HotelFilterParams) filterPayload {
	criteria := filterCriteria{
		Rating:            params.Filters.Rating,
		TripAdvisorRating: params.Filters.TripAdvisorRating,
		HotelName:         params.Filters.HotelName,
		FareType:          params.Filters.FareType,
		PropertyType:      params.Filters.PropertyType,
		Facility:          params.Filters.Facility,
		Locality:          params.Filters.Locality,
		Sorting:           params.Filters.Sorting,
	}

	if params.Filters.PriceMin != nil || params.Filters.PriceMax != nil {
		criteria.Price = &priceRange{
			Min: params.Filters.PriceMin,
			Max: params.Filters.PriceMax,
		}
	}

	maxResult := params.MaxResult
	if maxResult <= 0 {
		maxResult = 25
	}

	return filterPayload{
		SessionID: params.SessionID,
		MaxResult: maxResult,
		Filters:   criteria,
	}
}

// filterPageFrom extracts a filtered listing page. Filter pages carry a
// filterKey instead of the search totals.
func filterPageFrom(decoded map[string]interface{}) ([]schema.HotelListing, *schema.HotelFilterMetadata) {
	status := extracting.Map(decoded, "status")
	hotels := normalizeHotels(extracting.Slice(decoded, "itineraries"))

	return hotels, &schema.HotelFilterMetadata{
		SessionID:       extracting.String(status, "sessionId", ""),
		MoreResults:     extracting.Bool(status, "moreResults", false),
		NextToken:       extracting.StringFromAny(status, "nextToken", ""),
		FilterKey:       extracting.StringFromAny(status, "filterKey", ""),
		FilteredResults: len(hotels),
	}
}

func (s *service) FilterResults(
	ctx context.Context,
	params schema.HotelFilterParams,
	logger *zerolog.Logger,
) (schema.HotelSearchResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:filter")
	defer slowLogger.Stop("hotels:filter")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelSearchResponse{
		Hotels: []schema.HotelListing{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	decoded, supplierError := s.requestSupplierBodiedGet(
		ctx,
		schema.HotelFilterRequest,
		"/filterResults",
		buildFilterPayload(params),
		s.transactionalTimeout(),
		logger,
		&requestsBucket,
	)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	if message, code, found := supplierErrorsIn(decoded); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	response.Hotels, response.FilterMetadata = filterPageFrom(decoded)
	response.Result = schema.OkResult()

	return response, nil
}
