package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type fareSourcePayload struct {
	SessionID      string `json:"session_id"`
	FareSourceCode string `json:"fare_source_code"`
}

func (s *service) GetExtraServices(
	ctx context.Context,
	params schema.FlightExtraServicesParams,
	logger *zerolog.Logger,
) (schema.FlightExtraServicesResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:extra-services")
	defer slowLogger.Stop("flights:extra-services")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightExtraServicesResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := fareSourcePayload{
		SessionID:      params.SessionID,
		FareSourceCode: params.FareSourceCode,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.FlightExtraServicesRequest,
		"/extra_services",
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

	servicesResponse, ok := extracting.HasMap(decoded, "ExtraServicesResponse")
	if !ok || len(servicesResponse) == 0 {
		message := "No extra services response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	servicesResult := extracting.Map(servicesResponse, "ExtraServicesResult")

	if !extracting.Bool(servicesResult, "success", false) {
		message := "Extra services request failed"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	data := normalizeExtraServicesData(extracting.Map(servicesResult, "ExtraServicesData"))

	response.Result = schema.OkResult()
	response.ExtraServices = &data
	response.Metadata = &schema.ExtraServicesMetadata{
		SessionID:           params.SessionID,
		FareSourceCode:      params.FareSourceCode,
		TotalBaggageOptions: len(data.Baggage),
		TotalMealOptions:    len(data.Meals),
		TotalSeatOptions:    len(data.Seats),
	}

	return response, nil
}

func normalizeExtraServicesData(servicesData map[string]interface{}) schema.ExtraServicesData {
	return schema.ExtraServicesData{
		Baggage: normalizeServiceGroups(extracting.Maps(servicesData, "DynamicBaggage"), "baggage"),
		Meals:   normalizeServiceGroups(extracting.Maps(servicesData, "DynamicMeal"), "meal"),
		Seats:   normalizeSeatDecks(extracting.Slice(servicesData, "DynamicSeat")),
	}
}

func normalizeServiceGroups(groups []map[string]interface{}, serviceType string) []schema.ExtraServiceGroup {
	normalized := []schema.ExtraServiceGroup{}

	for _, group := range groups {
		behavior := extracting.String(group, "Behavior", "")

		item := schema.ExtraServiceGroup{
			Behavior:      behavior,
			IsMultiSelect: extracting.Bool(group, "IsMultiSelect", false),
			Direction:     directionFromBehavior(behavior),
			Services:      [][]schema.ExtraServiceItem{},
		}

		// Each inner list holds the alternatives of one flight segment.
		for _, rawList := range extracting.Slice(group, "Services") {
			serviceList, isList := rawList.([]interface{})
			if !isList {
				continue
			}

			segmentServices := []schema.ExtraServiceItem{}
			for _, rawService := range serviceList {
				service, isMap := rawService.(map[string]interface{})
				if !isMap {
					continue
				}

				segmentServices = append(segmentServices, schema.ExtraServiceItem{
					ServiceID:       extracting.StringFromAny(service, "ServiceId", ""),
					Type:            serviceType,
					CheckInType:     extracting.String(service, "CheckInType", ""),
					Description:     extracting.String(service, "Description", ""),
					FareDescription: extracting.String(service, "FareDescription", ""),
					IsMandatory:     extracting.Bool(service, "IsMandatory", false),
					MinimumQuantity: extracting.Int(service, "MinimumQuantity", 0),
					MaximumQuantity: extracting.Int(service, "MaximumQuantity", 1),
					Cost:            normalizeServiceCost(extracting.Map(service, "ServiceCost")),
				})
			}

			item.Services = append(item.Services, segmentServices)
		}

		normalized = append(normalized, item)
	}

	return normalized
}

func normalizeSeatDecks(sectors []interface{}) []schema.SeatDeck {
	decks := []schema.SeatDeck{}

	for _, rawSector := range sectors {
		sector, isList := rawSector.([]interface{})
		if !isList {
			continue
		}

		for _, rawGroup := range sector {
			group, isMap := rawGroup.(map[string]interface{})
			if !isMap {
				continue
			}

			for _, deck := range extracting.Maps(group, "DeckSeats") {
				deckInfo := schema.SeatDeck{
					DeckNumber: extracting.Int(deck, "DeckNo", 0),
					Rows:       []schema.SeatRow{},
				}

				for _, row := range extracting.Maps(deck, "RowSeats") {
					rowInfo := schema.SeatRow{
						RowNumber: extracting.StringFromAny(row, "RowNo", ""),
						Seats:     []schema.SeatOption{},
					}

					for _, seat := range extracting.Maps(row, "Seats") {
						rowInfo.Seats = append(rowInfo.Seats, normalizeSeat(seat))
					}

					deckInfo.Rows = append(deckInfo.Rows, rowInfo)
				}

				decks = append(decks, deckInfo)
			}
		}
	}

	return decks
}

func normalizeSeat(seat map[string]interface{}) schema.SeatOption {
	availability := extracting.Map(seat, "AvailablityType")
	seatType := extracting.Map(seat, "SeatType")
	seatTypeText := extracting.String(seatType, "Text", "")

	return schema.SeatOption{
		ServiceID:        extracting.StringFromAny(seat, "ServiceId", ""),
		Type:             "seat",
		AirlineCode:      extracting.String(seat, "AirlineCode", ""),
		FlightNumber:     extracting.StringFromAny(seat, "FlightNumber", ""),
		EquipmentCode:    extracting.StringFromAny(seat, "EquipmentCode", ""),
		DepartureAirport: extracting.String(seat, "DepartureAirportLocationCode", ""),
		ArrivalAirport:   extracting.String(seat, "ArrivalAirportLocationCode", ""),
		DeckNumber:       extracting.Int(seat, "DeckNo", 0),
		RowNumber:        extracting.StringFromAny(seat, "RowNo", ""),
		SeatNumber:       extracting.StringFromAny(seat, "SeatNo", ""),
		SeatCode:         extracting.StringFromAny(seat, "SeatCode", ""),
		Availability: schema.SeatAvailability{
			Code:        extracting.Int(availability, "Code", 0),
			Text:        extracting.String(availability, "Text", ""),
			IsAvailable: extracting.Int(availability, "Code", 0) == 1,
		},
		Description: normalizeSeatAttribute(extracting.Map(seat, "Description")),
		Compartment: normalizeSeatAttribute(extracting.Map(seat, "Compartment")),
		SeatType: schema.SeatTypeInfo{
			Code:     extracting.Int(seatType, "Code", 0),
			Text:     seatTypeText,
			Category: seatCategory(seatTypeText),
		},
		SeatWayType: normalizeSeatAttribute(extracting.Map(seat, "SeatWayType")),
		Cost:        normalizeServiceCost(extracting.Map(seat, "Fare")),
	}
}

func normalizeSeatAttribute(attribute map[string]interface{}) schema.SeatAttribute {
	return schema.SeatAttribute{
		Code: extracting.Int(attribute, "Code", 0),
		Text: extracting.String(attribute, "Text", ""),
	}
}

func directionFromBehavior(behavior string) string {
	upper := strings.ToUpper(behavior)

	switch {
	case strings.Contains(upper, "OUTBOUND"):
		return "outbound"
	case strings.Contains(upper, "INBOUND"):
		return "inbound"
	default:
		return "both"
	}
}

func seatCategory(seatTypeText string) string {
	lower := strings.ToLower(seatTypeText)

	switch {
	case strings.Contains(lower, "window"):
		return "window"
	case strings.Contains(lower, "aisle"):
		return "aisle"
	case strings.Contains(lower, "middle"):
		return "middle"
	default:
		return "unspecified"
	}
}
