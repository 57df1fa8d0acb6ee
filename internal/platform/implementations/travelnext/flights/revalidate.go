package flights

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// The supplier keys revalidation on the search session, so the payload
// carries no credentials.
type revalidatePayload struct {
	SessionID             string `json:"session_id"`
	FareSourceCode        string `json:"fare_source_code"`
	FareSourceCodeInbound string `json:"fare_source_code_inbound,omitempty"`
}

func (s *service) RevalidateFare(
	ctx context.Context,
	params schema.FlightRevalidateParams,
	logger *zerolog.Logger,
) (schema.FlightRevalidateResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:revalidate")
	defer slowLogger.Stop("flights:revalidate")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightRevalidateResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := revalidatePayload{
		SessionID:             params.SessionID,
		FareSourceCode:        params.FareSourceCode,
		FareSourceCodeInbound: params.FareSourceCodeInbound,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.FlightRevalidateRequest,
		"/revalidate",
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

	revalidateResponse, ok := extracting.HasMap(decoded, "AirRevalidateResponse")
	if !ok || len(revalidateResponse) == 0 {
		message := "No validation data in response"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	revalidateResult := extracting.Map(revalidateResponse, "AirRevalidateResult")

	// An expired fare is a business outcome, not a supplier failure.
	if !extracting.Bool(revalidateResult, "IsValid", false) {
		message := "Fare is no longer valid or available"
		response.Result = schema.OkResult()
		response.Result.Error = &message
		response.IsValid = false

		return response, nil
	}

	if itinerary := extracting.Map(extracting.Map(revalidateResult, "FareItineraries"), "FareItinerary"); len(itinerary) > 0 {
		fare := normalizeValidatedFare(itinerary)
		response.FareDetails = &fare
	}

	response.ExtraServices = normalizeAncillaryServices(extracting.Map(revalidateResult, "ExtraServices"))

	inboundResult, hasInbound := extracting.HasMap(revalidateResponse, "AirRevalidateResultInbound")
	inboundValid := len(inboundResult) > 0 && extracting.Bool(inboundResult, "IsValid", false)
	if inboundValid {
		if itinerary := extracting.Map(extracting.Map(inboundResult, "FareItineraries"), "FareItinerary"); len(itinerary) > 0 {
			fare := normalizeValidatedFare(itinerary)
			response.InboundFareDetails = &fare
		}
	}

	response.Result = schema.OkResult()
	response.IsValid = true
	response.Metadata = &schema.RevalidationMetadata{
		SessionID:    extracting.StringFromAny(decoded, "session_id", ""),
		HasInbound:   hasInbound && len(inboundResult) > 0,
		InboundValid: inboundValid,
	}

	return response, nil
}

// normalizeValidatedFare flattens a revalidated itinerary. Unlike the search
// normalization it walks every route, since the booking step needs the
// complete segment list.
func normalizeValidatedFare(itinerary map[string]interface{}) schema.ValidatedFare {
	fareInfo := extracting.Map(itinerary, "AirItineraryFareInfo")
	totalFares := extracting.Map(fareInfo, "ItinTotalFares")

	segments := []schema.ValidatedSegment{}

	for _, route := range extracting.Maps(itinerary, "OriginDestinationOptions") {
		for _, wrapper := range extracting.Maps(route, "OriginDestinationOption") {
			segment := extracting.Map(wrapper, "FlightSegment")

			segments = append(segments, schema.ValidatedSegment{
				Airline:          extracting.String(segment, "MarketingAirlineName", ""),
				AirlineCode:      extracting.String(segment, "MarketingAirlineCode", ""),
				FlightNumber:     extracting.StringFromAny(segment, "FlightNumber", ""),
				From:             extracting.String(segment, "DepartureAirportLocationCode", ""),
				To:               extracting.String(segment, "ArrivalAirportLocationCode", ""),
				DepartureTime:    extracting.String(segment, "DepartureDateTime", ""),
				ArrivalTime:      extracting.String(segment, "ArrivalDateTime", ""),
				Duration:         formatDuration(segment["JourneyDuration"]),
				CabinClass:       extracting.String(segment, "CabinClassCode", ""),
				CabinClassText:   extracting.String(segment, "CabinClassText", ""),
				ETicketEligible:  extracting.Bool(segment, "Eticket", true),
				OperatingAirline: extracting.Map(segment, "OperatingAirline"),
				BookingClass:     extracting.String(wrapper, "ResBookDesigCode", ""),
				BookingClassText: extracting.String(wrapper, "ResBookDesigText", ""),
				SeatsRemaining:   extracting.Map(wrapper, "SeatsRemaining"),
				Stops:            extracting.Int(wrapper, "StopQuantity", 0),
			})
		}
	}

	return schema.ValidatedFare{
		FareSourceCode: extracting.String(fareInfo, "FareSourceCode", ""),
		FareType:       extracting.String(fareInfo, "FareType", ""),
		IsRefundable:   extracting.StringFromAny(fareInfo, "IsRefundable", ""),
		DivideInParty:  extracting.StringFromAny(fareInfo, "DivideInPartyIndicator", ""),
		TotalFares: schema.FareTotals{
			BaseFare:   schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "BaseFare"), "Amount", 0)),
			EquivFare:  schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "EquivFare"), "Amount", 0)),
			ServiceTax: schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "ServiceTax"), "Amount", 0)),
			TotalTax:   schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "TotalTax"), "Amount", 0)),
			TotalFare:  schema.RoundedFloat(extracting.Float(extracting.Map(totalFares, "TotalFare"), "Amount", 0)),
			Currency:   extracting.String(extracting.Map(totalFares, "TotalFare"), "CurrencyCode", "USD"),
		},
		PassengerFares:       normalizePassengerFares(extracting.Maps(fareInfo, "FareBreakdown")),
		Segments:             segments,
		DirectionIndicator:   extracting.String(itinerary, "DirectionInd", "OneWay"),
		IsPassportMandatory:  extracting.Bool(itinerary, "IsPassportMandatory", false),
		IsPassportFullDetail: extracting.Bool(itinerary, "IsPassportFullDetailsMandatory", false),
		RequiredFieldsToBook: extracting.Strings(itinerary, "RequiredFieldsToBook"),
		SequenceNumber:       extracting.StringFromAny(itinerary, "SequenceNumber", ""),
		TicketType:           extracting.String(itinerary, "TicketType", "eTicket"),
		ValidatingAirline:    extracting.String(itinerary, "ValidatingAirlineCode", ""),
		CharacterLimits: schema.NameCharacterLimits{
			FirstName:         extracting.Int(itinerary, "FirstNameCharacterLimit", 58),
			LastName:          extracting.Int(itinerary, "LastNameCharacterLimit", 58),
			PassengerNameFull: extracting.Int(itinerary, "PaxNameCharacterLimit", 60),
		},
	}
}

func normalizeAncillaryServices(extraServices map[string]interface{}) []schema.AncillaryService {
	services := []schema.AncillaryService{}

	for _, wrapper := range extracting.Maps(extraServices, "Services") {
		service := extracting.Map(wrapper, "Service")

		services = append(services, schema.AncillaryService{
			ServiceID:        extracting.StringFromAny(service, "ServiceId", ""),
			Type:             extracting.String(service, "Type", ""),
			Description:      extracting.String(service, "Description", ""),
			IsMandatory:      extracting.Bool(service, "IsMandatory", false),
			Behavior:         extracting.String(service, "Behavior", ""),
			CheckInType:      extracting.String(service, "CheckInType", ""),
			Relation:         extracting.String(service, "Relation", ""),
			FlightDesignator: extracting.StringFromAny(service, "FlightDesignator", ""),
			Cost:             normalizeServiceCost(extracting.Map(service, "ServiceCost")),
		})
	}

	return services
}

func normalizeServiceCost(cost map[string]interface{}) schema.ServiceCost {
	return schema.ServiceCost{
		Amount:        schema.RoundedFloat(extracting.Float(cost, "Amount", 0)),
		Currency:      extracting.String(cost, "CurrencyCode", "USD"),
		DecimalPlaces: extracting.Int(cost, "DecimalPlaces", 2),
	}
}
