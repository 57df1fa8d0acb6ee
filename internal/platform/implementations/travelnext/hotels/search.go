package hotels

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// The supplier accepts at most 1000 hotel codes per search.
const maxHotelCodes = 1000

const (
	noResultsStatusError = "No Results found, Please try with different date"
	noHotelsMessage      = "No hotels found for the selected dates and location. Please try different dates or destinations."
)

type roomOccupancy struct {
	RoomNo   int   `json:"room_no"`
	Adult    int   `json:"adult"`
	Child    int   `json:"child"`
	ChildAge []int `json:"child_age"`
}

type searchPayload struct {
	schema.Credentials
	RequiredCurrency string          `json:"requiredCurrency"`
	Nationality      string          `json:"nationality"`
	CheckIn          string          `json:"checkin"`
	CheckOut         string          `json:"checkout"`
	MaxResult        int             `json:"maxResult"`
	Radius           int             `json:"radius"`
	Occupancy        []roomOccupancy `json:"occupancy"`
	ResultsPerPage   int             `json:"resultsPerPage,omitempty"`
	RequiredLanguage string          `json:"requiredLanguage,omitempty"`
	CityName         string          `json:"city_name,omitempty"`
	CountryName      string          `json:"country_name,omitempty"`
	Latitude         *float64        `json:"latitude,omitempty"`
	Longitude        *float64        `json:"longitude,omitempty"`
	HotelCodes       []string        `json:"hotelCodes,omitempty"`
}

func buildOccupancy(rooms []schema.RoomOccupancyParams) []roomOccupancy {
	if len(rooms) == 0 {
		return []roomOccupancy{{RoomNo: 1, Adult: 1, Child: 0, ChildAge: []int{0}}}
	}

	occupancy := make([]roomOccupancy, 0, len(rooms))

	for index, room := range rooms {
		adults := room.Adults
		if adults <= 0 {
			adults = 1
		}

		childAges := room.ChildAges
		if childAges == nil {
			childAges = []int{}
			if room.Children > 0 {
				childAges = []int{0}
			}
		}

		occupancy = append(occupancy, roomOccupancy{
			RoomNo:   index + 1,
			Adult:    adults,
			Child:    room.Children,
			ChildAge: childAges,
		})
	}

	return occupancy
}

// searchMethodCount counts the provided search-method families: city plus
// country, coordinates, or an explicit hotel-code list.
func searchMethodCount(params schema.HotelSearchParams) int {
	count := 0

	if params.CityName != "" && params.CountryName != "" {
		count++
	}

	if params.Latitude != nil && params.Longitude != nil {
		count++
	}

	if len(params.HotelCodes) > 0 {
		count++
	}

	return count
}

func buildSearchPayload(credentials schema.Credentials, params schema.HotelSearchParams) (searchPayload, *schema.SupplierResponseError) {
	if searchMethodCount(params) == 0 {
		e := schema.NewValidationError(
			"A search method is required: city and country names, latitude and longitude, or a list of hotel codes",
		)
		return searchPayload{}, &e
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	nationality := params.Nationality
	if nationality == "" {
		nationality = "IN"
	}

	language := params.Language
	if language == "" {
		language = "en"
	}

	maxResult := params.MaxResult
	if maxResult <= 0 {
		maxResult = 25
	}

	radius := params.Radius
	if radius <= 0 {
		radius = 20
	}

	hotelCodes := params.HotelCodes
	if len(hotelCodes) > maxHotelCodes {
		hotelCodes = hotelCodes[:maxHotelCodes]
	}

	return searchPayload{
		Credentials:      credentials,
		RequiredCurrency: currency,
		Nationality:      nationality,
		CheckIn:          params.CheckIn,
		CheckOut:         params.CheckOut,
		MaxResult:        maxResult,
		Radius:           radius,
		Occupancy:        buildOccupancy(params.Rooms),
		ResultsPerPage:   params.ResultsPerPage,
		RequiredLanguage: language,
		CityName:         params.CityName,
		CountryName:      params.CountryName,
		Latitude:         params.Latitude,
		Longitude:        params.Longitude,
		HotelCodes:       hotelCodes,
	}, nil
}

func noResultsIn(decoded map[string]interface{}) bool {
	return extracting.String(extracting.Map(decoded, "status"), "error", "") == noResultsStatusError
}

// searchPageFrom extracts one listing page and the session metadata the
// caller needs to paginate it.
func searchPageFrom(decoded map[string]interface{}) ([]schema.HotelListing, *schema.HotelSearchMetadata) {
	status := extracting.Map(decoded, "status")
	hotels := normalizeHotels(extracting.Slice(decoded, "itineraries"))

	return hotels, &schema.HotelSearchMetadata{
		SessionID:      extracting.String(status, "sessionId", ""),
		MoreResults:    extracting.Bool(status, "moreResults", false),
		NextToken:      extracting.StringFromAny(status, "nextToken", ""),
		TotalResults:   extracting.Int(status, "totalResults", 0),
		CurrentResults: len(hotels),
		Paginator:      extracting.StringFromAny(decoded, "paginator", ""),
	}
}

func (s *service) SearchHotels(
	ctx context.Context,
	params schema.HotelSearchParams,
	logger *zerolog.Logger,
) (schema.HotelSearchResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:search")
	defer slowLogger.Stop("hotels:search")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelSearchResponse{
		Hotels: []schema.HotelListing{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload, validationError := buildSearchPayload(s.configuration.credentials, params)
	if validationError != nil {
		errorsBucket.AddError(*validationError)
		response.Result = schema.FailedResult(validationError.Message)

		return response, nil
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.HotelSearchRequest,
		"/hotel_search",
		payload,
		s.searchTimeout(),
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

	if noResultsIn(decoded) {
		errorsBucket.AddError(schema.NewSupplierError(noHotelsMessage))
		response.Result = schema.FailedResult(noHotelsMessage)

		return response, nil
	}

	response.Hotels, response.Metadata = searchPageFrom(decoded)
	response.Result = schema.OkResult()

	return response, nil
}
