package hotels

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// Post-booking lookups authenticate with the account credentials; the
// search session that produced the booking may be long gone.
type bookingReferencePayload struct {
	schema.Credentials
	SupplierConfirmationNum string `json:"supplierConfirmationNum"`
	ReferenceNum            string `json:"referenceNum"`
}

func normalizeBookingRecord(decoded map[string]interface{}) schema.HotelBookingRecord {
	record := schema.HotelBookingRecord{
		HotelBookingResult: normalizeBookingResult(decoded),
		BookingTimestamp:   extracting.String(decoded, "bookingTimestamp", ""),
		LastUpdated:        extracting.String(decoded, "lastUpdated", ""),
	}

	referenceSummary := ""
	if record.ReferenceNum != "" {
		referenceSummary = "Ref: " + record.ReferenceNum
	}

	// Details pages surface the reference and hotel name; the stay and
	// price lines only appear when the supplier echoed the room block.
	display := schema.HotelBookingDisplay{
		StatusMessage:       record.Display.StatusMessage,
		ConfirmationSummary: record.Display.ConfirmationSummary,
		ReferenceSummary:    referenceSummary,
	}

	if _, hasRoomDetails := extracting.HasMap(decoded, "roomBookDetails"); hasRoomDetails {
		hotelSummary := record.StayDetails.HotelName
		if hotelSummary == "" {
			hotelSummary = "Hotel booking"
		}

		display.StaySummary = record.Display.StaySummary
		display.PriceSummary = record.Display.PriceSummary
		display.HotelSummary = hotelSummary
	}

	record.Display = display

	return record
}

func (s *service) GetBookingDetails(
	ctx context.Context,
	params schema.HotelBookingDetailsParams,
	logger *zerolog.Logger,
) (schema.HotelBookingDetailsResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:booking-details")
	defer slowLogger.Stop("hotels:booking-details")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelBookingDetailsResponse{
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
		schema.HotelBookingDetailsRequest,
		"/bookingDetails",
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

	if message, code, found := transactionErrorsIn(decoded, "Booking Details Error: ", "Unknown error", "BOOKING_DETAILS_FAILED"); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	record := normalizeBookingRecord(decoded)
	response.BookingDetails = &record
	response.Result = schema.OkResult()

	return response, nil
}
