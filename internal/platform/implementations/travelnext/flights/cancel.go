package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

func (s *service) CancelFlightBooking(
	ctx context.Context,
	params schema.FlightCancelParams,
	logger *zerolog.Logger,
) (schema.FlightCancelResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:cancel")
	defer slowLogger.Stop("flights:cancel")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightCancelResponse{
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
		schema.FlightCancelRequest,
		"/cancel",
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

	cancelResponse, ok := extracting.HasMap(decoded, "CancelBookingResponse")
	if !ok || len(cancelResponse) == 0 {
		message := "No cancel booking response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	cancelResult := extracting.Map(cancelResponse, "CancelBookingResult")

	if resultErrors, found := extracting.HasMap(cancelResult, "Errors"); found && len(resultErrors) > 0 {
		message := extracting.String(resultErrors, "ErrorMessage", "Booking cancellation failed")
		code := extracting.String(resultErrors, "ErrorCode", "UNKNOWN")

		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	success := strings.ToLower(extracting.StringFromAny(cancelResult, "Success", "false")) == "true"

	bookingStatus := "active"
	message := "Booking cancellation failed"
	if success {
		bookingStatus = "cancelled"
		message = "Booking cancelled successfully"
	}

	response.Result = schema.Result{Success: success}
	response.Cancellation = &schema.FlightCancellationDetails{
		Success:               success,
		UniqueID:              extracting.StringFromAny(cancelResult, "UniqueID", ""),
		TargetEnvironment:     extracting.String(cancelResult, "Target", ""),
		BookingStatus:         bookingStatus,
		Message:               message,
		CancellationConfirmed: success,
	}

	return response, nil
}
