package hotels

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

var cancellationStatusMessages = map[string]string{
	"CANCELLED": "🚫 Booking Successfully Cancelled",
	"PENDING":   "⏳ Cancellation Pending",
	"FAILED":    "❌ Cancellation Failed",
	"PARTIAL":   "⚠️ Partial Cancellation",
}

func formatCancellationStatusMessage(status string) string {
	if message, ok := cancellationStatusMessages[strings.ToUpper(status)]; ok {
		return message
	}

	return "Cancellation Status: " + status
}

func formatRefundSummary(refund schema.HotelRefundDetails) string {
	amount := float64(refund.RefundAmount)
	fees := float64(refund.CancellationFees)

	switch {
	case amount > 0 && fees > 0:
		return fmt.Sprintf("Refund: %s %.2f (Fees: %s %.2f)", refund.Currency, amount, refund.Currency, fees)
	case amount > 0:
		return fmt.Sprintf("Full Refund: %s %.2f", refund.Currency, amount)
	case fees > 0:
		return fmt.Sprintf("Cancellation Fees: %s %.2f", refund.Currency, fees)
	default:
		return "No refund information available"
	}
}

func normalizeCancellationResult(decoded map[string]interface{}) schema.HotelCancellationResult {
	status := extracting.String(decoded, "status", "")
	cancelReference := extracting.StringFromAny(decoded, "cancelReferenceNum", "")
	message := extracting.String(decoded, "message", "")

	refund := schema.HotelRefundDetails{
		RefundAmount:     schema.RoundedFloat(extracting.Float(decoded, "refundAmount", 0)),
		CancellationFees: schema.RoundedFloat(extracting.Float(decoded, "cancellationFees", 0)),
		NetRefund:        schema.RoundedFloat(extracting.Float(decoded, "netRefund", 0)),
		Currency:         extracting.String(decoded, "currency", "USD"),
		RefundMethod:     extracting.String(decoded, "refundMethod", ""),
		RefundTimeline:   extracting.String(decoded, "refundTimeline", ""),
	}

	referenceSummary := "Cancellation processed"
	if cancelReference != "" {
		referenceSummary = "Cancellation Ref: " + cancelReference
	}

	messageSummary := message
	if messageSummary == "" {
		messageSummary = "Booking cancellation completed"
	}

	return schema.HotelCancellationResult{
		CancellationStatus:    status,
		IsCancelled:           strings.ToUpper(status) == "CANCELLED",
		CancelReferenceNum:    cancelReference,
		Message:               message,
		CancellationTimestamp: extracting.String(decoded, "cancellationTimestamp", ""),
		RefundDetails:         refund,
		Display: schema.HotelCancellationDisplay{
			StatusMessage:    formatCancellationStatusMessage(status),
			ReferenceSummary: referenceSummary,
			MessageSummary:   messageSummary,
			RefundSummary:    formatRefundSummary(refund),
		},
	}
}

func (s *service) CancelHotelBooking(
	ctx context.Context,
	params schema.HotelCancelParams,
	logger *zerolog.Logger,
) (schema.HotelCancelResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:cancel")
	defer slowLogger.Stop("hotels:cancel")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelCancelResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := bookingReferencePayload{
		Credentials:             s.configuration.credentials,
		SupplierConfirmationNum: params.SupplierConfirmationNum,
		ReferenceNum:            params.ReferenceNum,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.HotelCancelRequest,
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

	if message, code, found := transactionErrorsIn(decoded, "Cancellation Error: ", "Unknown cancellation error", "CANCELLATION_FAILED"); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	result := normalizeCancellationResult(decoded)
	response.CancellationResult = &result
	response.Result = schema.OkResult()

	return response, nil
}
