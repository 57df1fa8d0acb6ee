package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// Post-booking operations authenticate per call instead of per session.
type bookingReferencePayload struct {
	schema.Credentials
	UniqueID string `json:"UniqueID"`
}

func (s *service) GetTripDetails(
	ctx context.Context,
	params schema.FlightTripDetailsParams,
	logger *zerolog.Logger,
) (schema.FlightTripDetailsResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:trip-details")
	defer slowLogger.Stop("flights:trip-details")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightTripDetailsResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := bookingReferencePayload{
		Credentials: s.configuration.credentials,
		UniqueID:    params.UniqueID,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.FlightTripDetailsRequest,
		"/trip_details",
		payload,
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

	detailsResponse, ok := extracting.HasMap(decoded, "TripDetailsResponse")
	if !ok || len(detailsResponse) == 0 {
		message := "No trip details response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	outboundResult := extracting.Map(detailsResponse, "TripDetailsResult")
	if !extracting.Bool(outboundResult, "Success", false) {
		message := "Trip details request failed"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	details := schema.TripDetails{
		Outbound:          normalizeTripLeg(outboundResult, "outbound"),
		TargetEnvironment: extracting.String(outboundResult, "Target", ""),
	}

	inboundResult := extracting.Map(detailsResponse, "TripDetailsResultInbound")
	if len(inboundResult) > 0 && extracting.Bool(inboundResult, "Success", false) {
		inbound := normalizeTripLeg(inboundResult, "inbound")
		details.Inbound = &inbound
		details.IsRoundTrip = true
	}

	summary := summarizeTrip(details)

	response.Result = schema.OkResult()
	response.TripDetails = &details
	response.Summary = &summary

	return response, nil
}

func normalizeTripLeg(tripResult map[string]interface{}, direction string) schema.TripLeg {
	travelItinerary := extracting.Map(tripResult, "TravelItinerary")
	itineraryInfo := extracting.Map(travelItinerary, "ItineraryInfo")

	return schema.TripLeg{
		Direction:      direction,
		BookingInfo:    normalizeTripBookingInfo(travelItinerary),
		Passengers:     normalizeTripPassengers(extracting.Maps(itineraryInfo, "CustomerInfos")),
		FlightSegments: normalizeTripSegments(extracting.Maps(itineraryInfo, "ReservationItems")),
		Pricing:        normalizeTripPricing(extracting.Map(itineraryInfo, "ItineraryPricing")),
		FareBreakdown:  normalizeTripFareBreakdown(extracting.Maps(itineraryInfo, "TripDetailsPTC_FareBreakdowns")),
		ExtraServices:  normalizeBookedServices(extracting.Map(itineraryInfo, "ExtraServices")),
		BookingNotes:   normalizeBookingNotes(extracting.Maps(itineraryInfo, "BookingNotes")),
	}
}

func normalizeTripBookingInfo(travelItinerary map[string]interface{}) schema.TripBookingInfo {
	return schema.TripBookingInfo{
		UniqueID:             extracting.StringFromAny(travelItinerary, "UniqueID", ""),
		ReissueUniqueID:      extracting.StringFromAny(travelItinerary, "ReissueUniqueID", ""),
		BookingStatus:        extracting.String(travelItinerary, "BookingStatus", ""),
		TicketStatus:         extracting.String(travelItinerary, "TicketStatus", ""),
		Origin:               extracting.String(travelItinerary, "Origin", ""),
		Destination:          extracting.String(travelItinerary, "Destination", ""),
		FareType:             extracting.String(travelItinerary, "FareType", ""),
		IsCommissionable:     extracting.Bool(travelItinerary, "IsCommissionable", false),
		IsMOFare:             extracting.Bool(travelItinerary, "IsMOFare", false),
		CrossBorderIndicator: extracting.Bool(travelItinerary, "CrossBorderIndicator", false),
	}
}

func normalizeTripPassengers(customerInfos []map[string]interface{}) []schema.TripPassenger {
	passengers := []schema.TripPassenger{}

	for _, wrapper := range customerInfos {
		customerInfo := extracting.Map(wrapper, "CustomerInfo")

		title := extracting.String(customerInfo, "PassengerTitle", "")
		firstName := extracting.String(customerInfo, "PassengerFirstName", "")
		lastName := extracting.String(customerInfo, "PassengerLastName", "")
		passengerType := extracting.String(customerInfo, "PassengerType", "")

		passengers = append(passengers, schema.TripPassenger{
			ItemRPH:           extracting.Int(customerInfo, "ItemRPH", 0),
			PassengerType:     passengerType,
			PassengerCategory: passengerCategory(passengerType),
			Title:             title,
			FirstName:         firstName,
			LastName:          lastName,
			FullName:          strings.TrimSpace(title + " " + firstName + " " + lastName),
			DateOfBirth:       extracting.String(customerInfo, "DateOfBirth", ""),
			Gender:            extracting.String(customerInfo, "Gender", ""),
			Nationality:       extracting.String(customerInfo, "PassengerNationality", ""),
			PassportNumber:    extracting.StringFromAny(customerInfo, "PassportNumber", ""),
			EmailAddress:      extracting.String(customerInfo, "EmailAddress", ""),
			PhoneNumber:       extracting.StringFromAny(customerInfo, "PhoneNumber", ""),
			PostCode:          extracting.StringFromAny(customerInfo, "PostCode", ""),
			ETicketNumber:     extracting.StringFromAny(customerInfo, "eTicketNumber", ""),
		})
	}

	return passengers
}

func normalizeTripSegments(reservationItems []map[string]interface{}) []schema.TripSegment {
	segments := []schema.TripSegment{}

	for _, wrapper := range reservationItems {
		item := extracting.Map(wrapper, "ReservationItem")

		stops := extracting.Int(item, "StopQuantity", 0)
		segmentType := "direct"
		if stops > 0 {
			segmentType = "connecting"
		}

		segments = append(segments, schema.TripSegment{
			ItemRPH:           extracting.Int(item, "ItemRPH", 0),
			FlightNumber:      extracting.StringFromAny(item, "FlightNumber", ""),
			OperatingAirline:  extracting.String(item, "OperatingAirlineCode", ""),
			MarketingAirline:  extracting.String(item, "MarketingAirlineCode", ""),
			DepartureAirport:  extracting.String(item, "DepartureAirportLocationCode", ""),
			ArrivalAirport:    extracting.String(item, "ArrivalAirportLocationCode", ""),
			DepartureDateTime: extracting.String(item, "DepartureDateTime", ""),
			ArrivalDateTime:   extracting.String(item, "ArrivalDateTime", ""),
			DepartureTerminal: extracting.StringFromAny(item, "DepartureTerminal", ""),
			ArrivalTerminal:   extracting.StringFromAny(item, "ArrivalTerminal", ""),
			JourneyDuration:   extracting.StringFromAny(item, "JourneyDuration", "0"),
			StopQuantity:      stops,
			AircraftType:      extracting.StringFromAny(item, "AirEquipmentType", ""),
			BookingClass:      extracting.String(item, "ResBookDesigCode", ""),
			CabinClass:        extracting.String(item, "CabinClassText", ""),
			AirlinePNR:        extracting.StringFromAny(item, "AirlinePNR", ""),
			NumberInParty:     extracting.Int(item, "NumberInParty", 0),
			BaggageAllowance:  extracting.String(item, "Baggage", ""),
			SegmentType:       segmentType,
		})
	}

	return segments
}

var tripFareComponents = []string{"EquiFare", "Tax", "ServiceTax", "TotalFare"}

func normalizeTripPricing(pricing map[string]interface{}) schema.TripPricing {
	normalized := schema.TripPricing{}

	for _, component := range tripFareComponents {
		fareInfo, ok := extracting.HasMap(pricing, component)
		if !ok {
			continue
		}

		normalized[strings.ToLower(component)] = normalizeServiceCost(fareInfo)
	}

	return normalized
}

func normalizeTripFareBreakdown(fareBreakdowns []map[string]interface{}) []schema.TripFareBreakdown {
	breakdown := []schema.TripFareBreakdown{}

	for _, wrapper := range fareBreakdowns {
		fareBreakdown := extracting.Map(wrapper, "TripDetailsPTC_FareBreakdown")
		typeQuantity := extracting.Map(fareBreakdown, "PassengerTypeQuantity")
		passengerType := extracting.String(typeQuantity, "Code", "")

		breakdown = append(breakdown, schema.TripFareBreakdown{
			PassengerType:     passengerType,
			PassengerCategory: passengerCategory(passengerType),
			Quantity:          extracting.Int(typeQuantity, "Quantity", 0),
			FareDetails:       normalizeTripPricing(extracting.Map(fareBreakdown, "TripDetailsPassengerFare")),
		})
	}

	return breakdown
}

func normalizeBookedServices(extraServices map[string]interface{}) []schema.BookedService {
	services := []schema.BookedService{}

	for _, wrapper := range extracting.Maps(extraServices, "Services") {
		service := extracting.Map(wrapper, "Service")
		serviceType := extracting.String(service, "Type", "")
		behavior := extracting.String(service, "Behavior", "")

		services = append(services, schema.BookedService{
			PassengerNumber: extracting.StringFromAny(service, "NameNumber", "0"),
			ServiceID:       extracting.StringFromAny(service, "ServiceId", ""),
			ServiceType:     serviceType,
			Description:     extracting.String(service, "Description", ""),
			Behavior:        behavior,
			CheckInType:     extracting.String(service, "CheckInType", ""),
			IsMandatory:     extracting.Bool(service, "IsMandatory", false),
			Cost:            normalizeServiceCost(extracting.Map(service, "ServiceCost")),
			ServiceCategory: categorizeServiceType(serviceType),
			Direction:       directionFromBehavior(behavior),
		})
	}

	return services
}

func normalizeBookingNotes(bookingNotes []map[string]interface{}) []schema.BookingNote {
	notes := []schema.BookingNote{}

	for _, note := range bookingNotes {
		details := extracting.String(note, "NoteDetails", "")

		notes = append(notes, schema.BookingNote{
			NoteDetails: details,
			CreatedOn:   extracting.String(note, "CreatedOn", ""),
			NoteType:    categorizeBookingNote(details),
		})
	}

	return notes
}

func passengerCategory(passengerType string) string {
	if name, ok := passengerTypeNames[passengerType]; ok {
		return name
	}

	return passengerType
}

func categorizeServiceType(serviceType string) string {
	switch strings.ToUpper(serviceType) {
	case "BAGGAGE":
		return "baggage"
	case "MEAL", "OTHERS":
		return "meal"
	default:
		return "other"
	}
}

func categorizeBookingNote(noteDetails string) string {
	noteLower := strings.ToLower(noteDetails)

	keywordCategories := []struct {
		keywords []string
		category string
	}{
		{[]string{"wheelchair", "mobility", "assistance"}, "special_assistance"},
		{[]string{"meal", "dietary", "vegetarian"}, "meal_preference"},
		{[]string{"seat", "window", "aisle"}, "seat_preference"},
	}

	for _, entry := range keywordCategories {
		for _, keyword := range entry.keywords {
			if strings.Contains(noteLower, keyword) {
				return entry.category
			}
		}
	}

	return "general"
}

func summarizeTrip(details schema.TripDetails) schema.TripSummary {
	summary := schema.TripSummary{
		IsRoundTrip:        details.IsRoundTrip,
		PassengerTypes:     map[string]int{},
		TotalPassengers:    len(details.Outbound.Passengers),
		TotalSegments:      len(details.Outbound.FlightSegments),
		TotalExtraServices: len(details.Outbound.ExtraServices),
		BookingStatus:      details.Outbound.BookingInfo.BookingStatus,
		TicketStatus:       details.Outbound.BookingInfo.TicketStatus,
		Currency:           "USD",
	}

	for _, passenger := range details.Outbound.Passengers {
		category := passenger.PassengerCategory
		if category == "" {
			category = "Unknown"
		}

		summary.PassengerTypes[category]++
	}

	if totalFare, ok := details.Outbound.Pricing["totalfare"]; ok {
		summary.TotalAmount = totalFare.Amount
		summary.Currency = totalFare.Currency
	}

	if details.Inbound != nil {
		summary.TotalSegments += len(details.Inbound.FlightSegments)
		summary.TotalExtraServices += len(details.Inbound.ExtraServices)
	}

	return summary
}
