package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type bookingPayload struct {
	FlightBookingInfo map[string]interface{} `json:"flightBookingInfo"`
	PaxInfo           map[string]interface{} `json:"paxInfo"`
}

var requiredFlightBookingFields = []string{
	"flight_session_id", "fare_source_code", "IsPassportMandatory", "fareType", "areaCode",
}

var requiredPassengerInfoFields = []string{"customerEmail", "customerPhone", "paxDetails"}

var requiredAdultFields = []string{"title", "firstName", "lastName", "dob", "nationality"}

// validateBookingPayload mirrors the supplier's mandatory booking fields so
// malformed requests fail before a supplier call is made.
func validateBookingPayload(params schema.FlightBookParams) []string {
	messages := []string{}

	for _, field := range requiredFlightBookingFields {
		if _, ok := params.FlightBookingInfo[field]; !ok {
			messages = append(messages, "Missing required field in flight booking info: "+field)
		}
	}

	for _, field := range requiredPassengerInfoFields {
		if _, ok := params.PassengerInfo[field]; !ok {
			messages = append(messages, "Missing required field in passenger info: "+field)
		}
	}

	if rawDetails, ok := params.PassengerInfo["paxDetails"]; ok {
		details, isList := rawDetails.([]interface{})
		if !isList || len(details) == 0 {
			messages = append(messages, "paxDetails must be a non-empty array")

			return messages
		}

		detail, _ := details[0].(map[string]interface{})

		hasPassengerType := false
		for _, passengerType := range []string{"adult", "child", "infant"} {
			if _, ok := detail[passengerType]; ok {
				hasPassengerType = true
			}
		}

		if !hasPassengerType {
			messages = append(messages, "At least one passenger type (adult, child, infant) is required")
		}

		if rawAdult, ok := detail["adult"]; ok {
			adult, _ := rawAdult.(map[string]interface{})
			for _, field := range requiredAdultFields {
				if _, ok := adult[field]; !ok {
					messages = append(messages, "Missing required field in adult passenger details: "+field)
				}
			}
		}
	}

	return messages
}

func (s *service) BookFlight(
	ctx context.Context,
	params schema.FlightBookParams,
	logger *zerolog.Logger,
) (schema.FlightBookResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:booking")
	defer slowLogger.Stop("flights:booking")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightBookResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	if messages := validateBookingPayload(params); len(messages) > 0 {
		for _, message := range messages {
			errorsBucket.AddError(schema.NewValidationError(message))
		}

		response.Result = schema.FailedResult(strings.Join(messages, "; "))

		return response, nil
	}

	payload := bookingPayload{
		FlightBookingInfo: params.FlightBookingInfo,
		PaxInfo:           params.PassengerInfo,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.FlightBookRequest,
		"/booking",
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

	bookResponse, ok := extracting.HasMap(decoded, "BookFlightResponse")
	if !ok || len(bookResponse) == 0 {
		message := "No booking response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	bookResult := extracting.Map(bookResponse, "BookFlightResult")

	// Booking failures come back as an array of wrapped error objects.
	if resultErrors := extracting.Slice(bookResult, "Errors"); len(resultErrors) > 0 {
		message := "Booking failed with unknown error"
		code := "UNKNOWN"

		if wrapper, isMap := resultErrors[0].(map[string]interface{}); isMap {
			detail := extracting.Map(wrapper, "Errors")
			message = extracting.String(detail, "ErrorMessage", "Booking failed")
			code = extracting.String(detail, "ErrorCode", "UNKNOWN")
		}

		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	success := extracting.Bool(bookResult, "Success", false)
	status := extracting.String(bookResult, "Status", "")
	uniqueID := extracting.StringFromAny(bookResult, "UniqueID", "")
	statusUpper := strings.ToUpper(status)

	response.Result = schema.Result{Success: success}
	response.BookingConfirmed = success && (statusUpper == "CONFIRMED" || statusUpper == "PENDING")
	response.Status = status
	response.UniqueID = uniqueID
	response.TicketTimeLimit = extracting.StringFromAny(bookResult, "TktTimeLimit", "")
	response.TargetEnvironment = extracting.String(bookResult, "Target", "")
	response.BookingDetails = &schema.FlightBookingDetails{
		ConfirmationNumber: uniqueID,
		BookingStatus:      status,
		PaymentDeadline:    extracting.StringFromAny(bookResult, "TktTimeLimit", ""),
		IsConfirmed:        statusUpper == "CONFIRMED",
		IsPending:          statusUpper == "PENDING",
	}

	if !success || !response.BookingConfirmed {
		message := "Booking failed with status: " + status
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result.Error = &message
	}

	return response, nil
}
