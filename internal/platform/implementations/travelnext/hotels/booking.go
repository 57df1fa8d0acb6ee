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

type bookingPayload struct {
	SessionID     string                   `json:"sessionId"`
	ProductID     string                   `json:"productId"`
	TokenID       string                   `json:"tokenId"`
	RateBasisID   string                   `json:"rateBasisId"`
	ClientRef     string                   `json:"clientRef"`
	CustomerEmail string                   `json:"customerEmail"`
	CustomerPhone string                   `json:"customerPhone"`
	BookingNote   string                   `json:"bookingNote"`
	PaxDetails    []map[string]interface{} `json:"paxDetails"`
}

var bookingStatusMessages = map[string]string{
	"CONFIRMED": "✅ Booking Confirmed Successfully",
	"PENDING":   "⏳ Booking Pending Confirmation",
	"FAILED":    "❌ Booking Failed",
	"CANCELLED": "🚫 Booking Cancelled",
}

func formatBookingStatusMessage(status string) string {
	if message, ok := bookingStatusMessages[strings.ToUpper(status)]; ok {
		return message
	}

	return "Booking Status: " + status
}

// formatCancellationPolicy counts the |t|-delimited rule entries the
// supplier packs into one string.
func formatCancellationPolicy(policy string) string {
	if policy == "" {
		return "No cancellation policy available"
	}

	if strings.Contains(policy, "|t|") {
		return fmt.Sprintf("%d cancellation rule(s) apply", len(strings.Split(policy, "|t|")))
	}

	return "Cancellation policy applies"
}

func validateBookingParams(params schema.HotelBookParams) []string {
	messages := []string{}

	if params.CustomerEmail == "" {
		messages = append(messages, "Customer email is required")
	}

	if params.CustomerPhone == "" {
		messages = append(messages, "Customer phone is required")
	}

	if len(params.PaxDetails) == 0 {
		messages = append(messages, "At least one room of passenger details is required")
	}

	return messages
}

func normalizeBookedRooms(roomBookDetails map[string]interface{}) []schema.BookedRoom {
	roomsData := extracting.Maps(roomBookDetails, "rooms")
	rooms := make([]schema.BookedRoom, 0, len(roomsData))

	for _, roomData := range roomsData {
		rooms = append(rooms, schema.BookedRoom{
			Name:        extracting.String(roomData, "name", ""),
			Description: extracting.String(roomData, "description", ""),
			BoardType:   extracting.String(roomData, "boardType", ""),
			GuestNames:  extracting.Strings(extracting.Map(roomData, "paxDetails"), "name"),
		})
	}

	return rooms
}

func normalizeStayDetails(roomBookDetails map[string]interface{}) schema.HotelStayDetails {
	return schema.HotelStayDetails{
		HotelID:            extracting.StringFromAny(roomBookDetails, "hotelId", ""),
		HotelName:          extracting.String(roomBookDetails, "hotelName", ""),
		CheckIn:            extracting.String(roomBookDetails, "checkIn", ""),
		CheckOut:           extracting.String(roomBookDetails, "checkOut", ""),
		Days:               extracting.Int(roomBookDetails, "days", 0),
		Currency:           extracting.String(roomBookDetails, "currency", ""),
		NetPrice:           extracting.StringFromAny(roomBookDetails, "NetPrice", "0"),
		FareType:           extracting.String(roomBookDetails, "fareType", ""),
		CancellationPolicy: extracting.String(roomBookDetails, "cancellationPolicy", ""),
		CustomerEmail:      extracting.String(roomBookDetails, "customerEmail", ""),
		CustomerPhone:      extracting.String(roomBookDetails, "customerPhone", ""),
	}
}

func normalizeBookingPricing(roomBookDetails map[string]interface{}) schema.HotelBookingPricing {
	fareType := extracting.String(roomBookDetails, "fareType", "")

	return schema.HotelBookingPricing{
		TotalAmount:  schema.RoundedFloat(extracting.Float(roomBookDetails, "NetPrice", 0)),
		Currency:     extracting.String(roomBookDetails, "currency", "USD"),
		FareType:     fareType,
		IsRefundable: strings.ToLower(fareType) == "refundable",
	}
}

func normalizeBookingResult(decoded map[string]interface{}) schema.HotelBookingResult {
	bookingStatus := extracting.String(decoded, "status", "")
	supplierConfirmation := extracting.StringFromAny(decoded, "supplierConfirmationNum", "")
	roomBookDetails := extracting.Map(decoded, "roomBookDetails")

	stay := normalizeStayDetails(roomBookDetails)
	rooms := normalizeBookedRooms(roomBookDetails)

	confirmationSummary := "Booking " + bookingStatus
	if supplierConfirmation != "" {
		confirmationSummary += " - " + supplierConfirmation
	}

	return schema.HotelBookingResult{
		BookingStatus:           bookingStatus,
		IsConfirmed:             strings.ToUpper(bookingStatus) == "CONFIRMED",
		SupplierConfirmationNum: supplierConfirmation,
		ReferenceNum:            extracting.StringFromAny(decoded, "referenceNum", ""),
		ClientRefNum:            extracting.StringFromAny(decoded, "clientRefNum", ""),
		ProductID:               extracting.StringFromAny(decoded, "productId", ""),
		StayDetails:             stay,
		Rooms:                   rooms,
		Pricing:                 normalizeBookingPricing(roomBookDetails),
		Display: schema.HotelBookingDisplay{
			StatusMessage:       formatBookingStatusMessage(bookingStatus),
			ConfirmationSummary: confirmationSummary,
			StaySummary:         fmt.Sprintf("%s to %s (%d nights)", stay.CheckIn, stay.CheckOut, stay.Days),
			PriceSummary:        fmt.Sprintf("%s %s (%s)", stay.Currency, stay.NetPrice, stay.FareType),
			RoomsSummary:        fmt.Sprintf("%d room(s) booked", len(rooms)),
			CancellationSummary: formatCancellationPolicy(stay.CancellationPolicy),
		},
	}
}

func (s *service) BookHotel(
	ctx context.Context,
	params schema.HotelBookParams,
	logger *zerolog.Logger,
) (schema.HotelBookResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:booking")
	defer slowLogger.Stop("hotels:booking")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelBookResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	if messages := validateBookingParams(params); len(messages) > 0 {
		for _, message := range messages {
			errorsBucket.AddError(schema.NewValidationError(message))
		}

		response.Result = schema.FailedResult(strings.Join(messages, "; "))

		return response, nil
	}

	// Booking authenticates through the search session, not the account
	// credentials block.
	payload := bookingPayload{
		SessionID:     params.SessionID,
		ProductID:     params.ProductID,
		TokenID:       params.TokenID,
		RateBasisID:   params.RateBasisID,
		ClientRef:     params.ClientRef,
		CustomerEmail: params.CustomerEmail,
		CustomerPhone: params.CustomerPhone,
		BookingNote:   params.BookingNote,
		PaxDetails:    params.PaxDetails,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.HotelBookRequest,
		"/hotel_book",
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

	if message, code, found := transactionErrorsIn(decoded, "Booking Error: ", "Unknown booking error", "BOOKING_FAILED"); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	bookingResult := normalizeBookingResult(decoded)
	response.BookingResult = &bookingResult
	response.Result = schema.OkResult()

	return response, nil
}
