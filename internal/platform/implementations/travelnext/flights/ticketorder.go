package flights

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// OrderTicket issues tickets for non-LCC bookings. LCC carriers ticket
// automatically at booking time, so the supplier rejects them here.
func (s *service) OrderTicket(
	ctx context.Context,
	params schema.FlightTicketOrderParams,
	logger *zerolog.Logger,
) (schema.FlightTicketOrderResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:ticket-order")
	defer slowLogger.Stop("flights:ticket-order")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightTicketOrderResponse{
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
		schema.FlightTicketOrderRequest,
		"/ticket_order",
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

	orderResponse, ok := extracting.HasMap(decoded, "AirOrderTicketRS")
	if !ok || len(orderResponse) == 0 {
		message := "No ticket order response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	orderResult := extracting.Map(orderResponse, "TicketOrderResult")

	if resultErrors, found := extracting.HasMap(orderResult, "Errors"); found && len(resultErrors) > 0 {
		detail := extracting.Map(resultErrors, "Error")
		message := extracting.String(detail, "ErrorMessage", "Ticket order failed")
		code := extracting.String(detail, "ErrorCode", "UNKNOWN")

		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	// Success comes back as a string here, unlike the booking operation.
	success := strings.ToLower(extracting.StringFromAny(orderResult, "Success", "false")) == "true"

	ticketStatus := "failed"
	message := "Ticket order failed"
	if success {
		ticketStatus = "ordered"
		message = "Ticket ordered successfully"
	}

	response.Result = schema.Result{Success: success}
	response.TicketOrder = &schema.TicketOrderDetails{
		Success:           success,
		UniqueID:          extracting.StringFromAny(orderResult, "UniqueID", ""),
		TargetEnvironment: extracting.String(orderResult, "Target", ""),
		TicketStatus:      ticketStatus,
		Message:           message,
	}

	return response, nil
}
