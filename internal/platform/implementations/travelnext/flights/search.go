package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type originDestinationInfo struct {
	DepartureDate          string `json:"departureDate"`
	ReturnDate             string `json:"returnDate,omitempty"`
	AirportOriginCode      string `json:"airportOriginCode"`
	AirportDestinationCode string `json:"airportDestinationCode"`
}

type searchPayload struct {
	schema.Credentials
	RequiredCurrency      string                  `json:"requiredCurrency"`
	JourneyType           string                  `json:"journeyType"`
	OriginDestinationInfo []originDestinationInfo `json:"OriginDestinationInfo"`
	Class                 string                  `json:"class"`
	Adults                int                     `json:"adults"`
	Children              int                     `json:"childs"`
	Infants               int                     `json:"infants"`
	AirlineCode           string                  `json:"airlineCode,omitempty"`
	DirectFlight          *int                    `json:"directFlight,omitempty"`
}

func normalizeJourneyType(journeyType string) string {
	switch strings.ToLower(journeyType) {
	case "", "oneway", "one-way":
		return schema.JourneyTypeOneWay
	case "return", "roundtrip", "round-trip":
		return schema.JourneyTypeReturn
	case "circle", "multicity", "multi-city":
		return schema.JourneyTypeMultiCity
	default:
		return journeyType
	}
}

func buildSearchPayload(credentials schema.Credentials, params schema.FlightSearchParams) (searchPayload, *schema.SupplierResponseError) {
	journeyType := normalizeJourneyType(params.JourneyType)

	adults := params.Adults
	if adults <= 0 {
		adults = 1
	}

	class := params.Class
	if class == "" {
		class = "Economy"
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	payload := searchPayload{
		Credentials:           credentials,
		RequiredCurrency:      currency,
		JourneyType:           journeyType,
		OriginDestinationInfo: []originDestinationInfo{},
		Class:                 class,
		Adults:                adults,
		Children:              params.Children,
		Infants:               params.Infants,
		AirlineCode:           params.AirlineCode,
		DirectFlight:          params.DirectFlight,
	}

	switch journeyType {
	case schema.JourneyTypeOneWay:
		if params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
			e := schema.NewValidationError("Origin, destination and departure date are required")
			return searchPayload{}, &e
		}

		payload.OriginDestinationInfo = append(payload.OriginDestinationInfo, originDestinationInfo{
			DepartureDate:          params.DepartureDate,
			AirportOriginCode:      params.Origin,
			AirportDestinationCode: params.Destination,
		})
	case schema.JourneyTypeReturn:
		if params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
			e := schema.NewValidationError("Origin, destination and departure date are required")
			return searchPayload{}, &e
		}

		if params.ReturnDate == "" {
			e := schema.NewValidationError("Return date is required for round trip")
			return searchPayload{}, &e
		}

		payload.OriginDestinationInfo = append(payload.OriginDestinationInfo, originDestinationInfo{
			DepartureDate:          params.DepartureDate,
			ReturnDate:             params.ReturnDate,
			AirportOriginCode:      params.Origin,
			AirportDestinationCode: params.Destination,
		})
	case schema.JourneyTypeMultiCity:
		if len(params.Segments) == 0 {
			e := schema.NewValidationError("At least one segment is required for multi-city search")
			return searchPayload{}, &e
		}

		for _, segment := range params.Segments {
			if segment.Origin == "" || segment.Destination == "" || segment.DepartureDate == "" {
				e := schema.NewValidationError("Each segment requires origin, destination and departure date")
				return searchPayload{}, &e
			}

			payload.OriginDestinationInfo = append(payload.OriginDestinationInfo, originDestinationInfo{
				DepartureDate:          segment.DepartureDate,
				AirportOriginCode:      segment.Origin,
				AirportDestinationCode: segment.Destination,
			})
		}
	default:
		e := schema.NewValidationError("Unsupported journey type: " + params.JourneyType)
		return searchPayload{}, &e
	}

	return payload, nil
}

func (s *service) SearchFlights(
	ctx context.Context,
	params schema.FlightSearchParams,
	logger *zerolog.Logger,
) (schema.FlightSearchResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:search")
	defer slowLogger.Stop("flights:search")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightSearchResponse{
		Flights: []schema.FlightOption{},
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
		schema.FlightSearchRequest,
		"/availability",
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

	searchResponse, ok := extracting.HasMap(decoded, "AirSearchResponse")
	if !ok || len(searchResponse) == 0 {
		message := "No flight data in response"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	itineraries := extracting.Maps(extracting.Map(searchResponse, "AirSearchResult"), "FareItineraries")

	inboundResult, hasInbound := extracting.HasMap(searchResponse, "AirSearchResultInbound")
	if hasInbound && len(inboundResult) > 0 {
		itineraries = append(itineraries, extracting.Maps(inboundResult, "FareItineraries")...)
	}

	for _, wrapper := range itineraries {
		flight, ok := normalizeFlight(extracting.Map(wrapper, "FareItinerary"))
		if !ok {
			continue
		}

		response.Flights = append(response.Flights, flight)
	}

	response.Result = schema.OkResult()
	response.TotalResults = len(response.Flights)
	response.SessionID = extracting.StringFromAny(searchResponse, "session_id", "")
	response.Supplier = extracting.String(searchResponse, "supplier", "")
	response.HasInboundResults = hasInbound && len(inboundResult) > 0

	return response, nil
}

// normalizeFlight flattens one fare itinerary. The first route anchors the
// display fields; itineraries without segments are dropped.
func normalizeFlight(itinerary map[string]interface{}) (schema.FlightOption, bool) {
	fareInfo := extracting.Map(itinerary, "AirItineraryFareInfo")
	totalFares := extracting.Map(fareInfo, "ItinTotalFares")

	routes := extracting.Maps(itinerary, "OriginDestinationOptions")
	if len(routes) == 0 {
		return schema.FlightOption{}, false
	}

	firstRoute := routes[0]

	segments := extracting.Maps(firstRoute, "OriginDestinationOption")
	if len(segments) == 0 {
		return schema.FlightOption{}, false
	}

	firstWrapper := segments[0]
	firstSegment := extracting.Map(firstWrapper, "FlightSegment")
	lastSegment := extracting.Map(segments[len(segments)-1], "FlightSegment")

	fareBreakdown := extracting.Maps(fareInfo, "FareBreakdown")
	fareSource := extracting.String(fareInfo, "FareSourceCode", "")

	id := extracting.StringFromAny(fareInfo, "ResultIndex", "")
	if id == "" {
		id = fareSource
		if len(id) > 20 {
			id = id[:20]
		}
	}

	seatsRemaining := extracting.Map(firstWrapper, "SeatsRemaining")

	return schema.FlightOption{
		ID:                  id,
		FareSourceCode:      fareSource,
		AirlineCode:         extracting.String(firstSegment, "MarketingAirlineCode", ""),
		AirlineName:         extracting.String(firstSegment, "MarketingAirlineName", ""),
		FlightNumber:        extracting.StringFromAny(firstSegment, "FlightNumber", ""),
		From:                extracting.String(firstSegment, "DepartureAirportLocationCode", ""),
		To:                  extracting.String(lastSegment, "ArrivalAirportLocationCode", ""),
		DepartureTime:       extracting.String(firstSegment, "DepartureDateTime", ""),
		ArrivalTime:         extracting.String(lastSegment, "ArrivalDateTime", ""),
		TotalDuration:       formatDuration(firstSegment["JourneyDuration"]),
		TotalStops:          extracting.Int(firstRoute, "TotalStops", 0),
		TotalAmount:         schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "TotalFare"), "Amount", 0)),
		BasePrice:           schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "BaseFare"), "Amount", 0)),
		Taxes:               schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "TotalTax"), "Amount", 0)),
		ServiceTax:          schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "ServiceTax"), "Amount", 0)),
		Currency:            extracting.String(extracting.Map(totalFares, "TotalFare"), "CurrencyCode", "USD"),
		IsRefundable:        extracting.String(fareInfo, "IsRefundable", "Yes") == "Yes",
		FareType:            extracting.String(fareInfo, "FareType", "Public"),
		BookingClass:        extracting.String(firstWrapper, "ResBookDesigCode", ""),
		CabinClass:          extracting.String(firstSegment, "CabinClassCode", "Y"),
		AircraftType:        extracting.String(extracting.Map(firstSegment, "OperatingAirline"), "Equipment", ""),
		ValidatingAirline:   extracting.String(itinerary, "ValidatingAirlineCode", ""),
		TicketType:          extracting.String(itinerary, "TicketType", "eTicket"),
		IsPassportMandatory: extracting.Bool(itinerary, "IsPassportMandatory", false),
		SeatsRemaining: schema.SeatsRemaining{
			Number:       extracting.Int(seatsRemaining, "Number", 0),
			BelowMinimum: extracting.Bool(seatsRemaining, "BelowMinimum", false),
		},
		PassengerFares: normalizePassengerFares(fareBreakdown),
		Segments:       normalizeSegments(segments),
		BaggageInfo:    normalizeBaggageInfo(fareBreakdown),
	}, true
}

func normalizeSegments(segments []map[string]interface{}) []schema.FlightSegment {
	normalized := make([]schema.FlightSegment, 0, len(segments))

	for _, wrapper := range segments {
		segment := extracting.Map(wrapper, "FlightSegment")
		operatingAirline := extracting.Map(segment, "OperatingAirline")

		normalized = append(normalized, schema.FlightSegment{
			DepartureAirport: extracting.String(segment, "DepartureAirportLocationCode", ""),
			ArrivalAirport:   extracting.String(segment, "ArrivalAirportLocationCode", ""),
			DepartureTime:    extracting.String(segment, "DepartureDateTime", ""),
			ArrivalTime:      extracting.String(segment, "ArrivalDateTime", ""),
			FlightNumber:     extracting.StringFromAny(segment, "FlightNumber", ""),
			AirlineCode:      extracting.String(segment, "MarketingAirlineCode", ""),
			AirlineName:      extracting.String(segment, "MarketingAirlineName", ""),
			AircraftType:     extracting.String(operatingAirline, "Equipment", ""),
			Duration:         formatDuration(segment["JourneyDuration"]),
			Stops:            extracting.Int(wrapper, "StopQuantity", 0),
			CabinClass:       extracting.String(segment, "CabinClassCode", "Y"),
			FareBasis:        "",
			BaggageInfo:      "",
		})
	}

	return normalized
}

var passengerTypeNames = map[string]string{
	"ADT": "Adult",
	"CHD": "Child",
	"INF": "Infant",
}

func passengerTypeName(code string) string {
	if name, ok := passengerTypeNames[code]; ok {
		return name
	}

	return "Adult"
}

func normalizePassengerFares(fareBreakdown []map[string]interface{}) []schema.PassengerFare {
	fares := make([]schema.PassengerFare, 0, len(fareBreakdown))

	for _, breakdown := range fareBreakdown {
		typeQuantity := extracting.Map(breakdown, "PassengerTypeQuantity")
		passengerFare := extracting.Map(breakdown, "PassengerFare")

		code := extracting.String(typeQuantity, "Code", "ADT")

		fares = append(fares, schema.PassengerFare{
			PassengerType:  passengerTypeName(code),
			PassengerCode:  code,
			BaseFare:       schema.RoundedFloat(extracting.Float(extracting.Map(passengerFare, "BaseFare"), "Amount", 0)),
			Taxes:          schema.RoundedFloat(extracting.Float(extracting.Map(passengerFare, "ServiceTax"), "Amount", 0)),
			TotalFare:      schema.RoundedFloat(extracting.Float(extracting.Map(passengerFare, "TotalFare"), "Amount", 0)),
			PassengerCount: extracting.Int(typeQuantity, "Quantity", 1),
		})
	}

	return fares
}

// normalizeBaggageInfo reads allowances from the first breakdown entry,
// which the supplier keeps for the adult passenger.
func normalizeBaggageInfo(fareBreakdown []map[string]interface{}) []string {
	if len(fareBreakdown) == 0 {
		return []string{"No baggage info available"}
	}

	adultBreakdown := fareBreakdown[0]

	info := []string{}

	if checked := firstNonEmpty(extracting.Slice(adultBreakdown, "Baggage")); checked != "" {
		info = append(info, "Checked: "+checked)
	}

	if cabin := firstNonEmpty(extracting.Slice(adultBreakdown, "CabinBaggage")); cabin != "" {
		info = append(info, "Cabin: "+cabin)
	}

	if len(info) == 0 {
		return []string{"Standard baggage allowance"}
	}

	return info
}

func firstNonEmpty(values []interface{}) string {
	if len(values) == 0 {
		return ""
	}

	value, _ := values[0].(string)

	return value
}
