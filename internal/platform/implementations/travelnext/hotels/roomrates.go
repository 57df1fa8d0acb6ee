package hotels

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type roomRatesPayload struct {
	schema.Credentials
	HotelCode    string                       `json:"hotel_code"`
	SessionID    string                       `json:"session_id"`
	CheckInDate  string                       `json:"check_in_date"`
	CheckOutDate string                       `json:"check_out_date"`
	Rooms        []schema.RoomOccupancyParams `json:"rooms"`
}

func normalizeRoomRates(rawRates []map[string]interface{}) []schema.RoomRate {
	rates := make([]schema.RoomRate, 0, len(rawRates))

	for _, rateData := range rawRates {
		fareType := extracting.String(rateData, "fareType", "")

		total := extracting.Float(rateData, "netPrice", 0)
		if total == 0 {
			total = extracting.Float(rateData, "total", 0)
		}

		rates = append(rates, schema.RoomRate{
			Name:               extracting.String(rateData, "name", ""),
			Description:        extracting.String(rateData, "description", ""),
			BoardType:          extracting.String(rateData, "boardType", ""),
			RateBasisID:        extracting.StringFromAny(rateData, "rateBasisId", ""),
			Total:              schema.RoundedFloat(total),
			Currency:           extracting.String(rateData, "currency", "USD"),
			FareType:           fareType,
			IsRefundable:       strings.ToLower(fareType) == "refundable",
			CancellationPolicy: extracting.String(rateData, "cancellationPolicy", ""),
		})
	}

	return rates
}

func (s *service) GetRoomRates(
	ctx context.Context,
	params schema.HotelRoomRatesParams,
	logger *zerolog.Logger,
) (schema.HotelRoomRatesResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:room-rates")
	defer slowLogger.Stop("hotels:room-rates")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelRoomRatesResponse{
		RoomRates:      []schema.RoomRate{},
		HotelInfo:      map[string]interface{}{},
		PricingSummary: map[string]interface{}{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := roomRatesPayload{
		Credentials:  s.configuration.credentials,
		HotelCode:    params.HotelCode,
		SessionID:    params.SessionID,
		CheckInDate:  params.CheckIn,
		CheckOutDate: params.CheckOut,
		Rooms:        params.Rooms,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.HotelRoomRatesRequest,
		"/room_rates",
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

	response.RoomRates = normalizeRoomRates(extracting.Maps(decoded, "roomRates"))
	response.HotelInfo = extracting.Map(decoded, "hotelInfo")

	if len(response.RoomRates) > 0 {
		lowest := response.RoomRates[0].Total
		for _, rate := range response.RoomRates[1:] {
			if rate.Total < lowest {
				lowest = rate.Total
			}
		}

		response.PricingSummary = map[string]interface{}{
			"total_options": len(response.RoomRates),
			"lowest_total":  lowest,
			"currency":      response.RoomRates[0].Currency,
		}
	}

	response.Result = schema.OkResult()

	return response, nil
}
