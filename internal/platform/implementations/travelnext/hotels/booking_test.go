package hotels_test

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/hotels"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func defaultBookParams() schema.HotelBookParams {
	return schema.HotelBookParams{
		SessionID:     "hsess-1",
		ProductID:     "P1",
		TokenID:       "T1",
		RateBasisID:   "RB1",
		ClientRef:     "CR-1",
		CustomerEmail: "guest@example.com",
		CustomerPhone: "+10012345678",
		PaxDetails: []map[string]interface{}{
			{"room_no": 1, "adult": map[string]interface{}{"title": []string{"Mr"}, "firstName": []string{"John"}, "lastName": []string{"Doe"}}},
		},
	}
}

const confirmedBookingResponse = `{
	"status": "CONFIRMED",
	"supplierConfirmationNum": "SUP123",
	"referenceNum": "REF456",
	"clientRefNum": "CR-1",
	"productId": "P1",
	"roomBookDetails": {
		"hotelId": "H1",
		"hotelName": "Grand Plaza",
		"checkIn": "2026-10-01",
		"checkOut": "2026-10-05",
		"days": 4,
		"currency": "USD",
		"NetPrice": "120",
		"fareType": "Refundable",
		"cancellationPolicy": "Free until Sep 20|t|50% until Sep 28|t|No refund after",
		"customerEmail": "guest@example.com",
		"customerPhone": "+10012345678",
		"rooms": [
			{
				"name": "Deluxe Room",
				"description": "Marina view",
				"boardType": "Bed & Breakfast",
				"paxDetails": {"name": ["John Doe", "Jane Doe"]}
			}
		]
	}
}`

func TestFormatCancellationPolicy(t *testing.T) {
	assert.Equal(t, "No cancellation policy available", hotels.FormatCancellationPolicy(""))
	assert.Equal(t, "Cancellation policy applies", hotels.FormatCancellationPolicy("Non-refundable rate"))
	assert.Equal(t, "3 cancellation rule(s) apply", hotels.FormatCancellationPolicy("a|t|b|t|c"))
}

func TestBookHotel(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should reject an incomplete booking request", func(t *testing.T) {
		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookHotel(context.Background(), schema.HotelBookParams{
			SessionID:   "hsess-1",
			ProductID:   "P1",
			TokenID:     "T1",
			RateBasisID: "RB1",
		}, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(
			t,
			"Customer email is required; Customer phone is required; At least one room of passenger details is required",
			*response.Error,
		)
		assert.Len(t, *response.Diagnostics.Errors, 3)
		assert.False(t, supplierCalled)
	})

	t.Run("should send a session scoped payload", func(t *testing.T) {
		var requestBody map[string]interface{}

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/hotel_book", r.RequestURI)

			body, _ := io.ReadAll(r.Body)
			jsonEncoding.Unmarshal(body, &requestBody)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(confirmedBookingResponse))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		_, err := service.BookHotel(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.Equal(t, "hsess-1", requestBody["sessionId"])
		assert.Equal(t, "RB1", requestBody["rateBasisId"])
		assert.Equal(t, "guest@example.com", requestBody["customerEmail"])
		assert.NotContains(t, requestBody, "user_id")
	})

	t.Run("should normalize a confirmed booking", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(confirmedBookingResponse))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookHotel(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)

		booking := response.BookingResult
		assert.Equal(t, "CONFIRMED", booking.BookingStatus)
		assert.True(t, booking.IsConfirmed)
		assert.Equal(t, "SUP123", booking.SupplierConfirmationNum)
		assert.Equal(t, "REF456", booking.ReferenceNum)

		stay := booking.StayDetails
		assert.Equal(t, "H1", stay.HotelID)
		assert.Equal(t, "Grand Plaza", stay.HotelName)
		assert.Equal(t, "120", stay.NetPrice)
		assert.Equal(t, 4, stay.Days)

		assert.Equal(t, schema.RoundedFloat(120), booking.Pricing.TotalAmount)
		assert.True(t, booking.Pricing.IsRefundable)

		assert.Len(t, booking.Rooms, 1)
		assert.Equal(t, "Deluxe Room", booking.Rooms[0].Name)
		assert.Equal(t, []string{"John Doe", "Jane Doe"}, booking.Rooms[0].GuestNames)

		display := booking.Display
		assert.Equal(t, "✅ Booking Confirmed Successfully", display.StatusMessage)
		assert.Equal(t, "Booking CONFIRMED - SUP123", display.ConfirmationSummary)
		assert.Equal(t, "2026-10-01 to 2026-10-05 (4 nights)", display.StaySummary)
		assert.Equal(t, "USD 120 (Refundable)", display.PriceSummary)
		assert.Equal(t, "1 room(s) booked", display.RoomsSummary)
		assert.Equal(t, "3 cancellation rule(s) apply", display.CancellationSummary)
	})

	t.Run("should surface a flat supplier error", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"error": "Rate no longer available"}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookHotel(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Booking Error: Rate no longer available", *response.Error)
		assert.Equal(t, "BOOKING_FAILED", *response.ErrorCode)
		assert.Nil(t, response.BookingResult)
	})

	t.Run("should surface a supplier status failure", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookHotel(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Contains(t, *response.Error, "502")
	})
}
