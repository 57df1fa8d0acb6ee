package flights_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/flights"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func defaultBookParams() schema.FlightBookParams {
	return schema.FlightBookParams{
		FlightBookingInfo: map[string]interface{}{
			"flight_session_id":   "sess-123",
			"fare_source_code":    "FSC-OUT-1",
			"IsPassportMandatory": true,
			"fareType":            "Public",
			"areaCode":            "971",
		},
		PassengerInfo: map[string]interface{}{
			"customerEmail": "traveler@example.com",
			"customerPhone": "500000000",
			"paxDetails": []interface{}{
				map[string]interface{}{
					"adult": map[string]interface{}{
						"title":       []interface{}{"Mr"},
						"firstName":   []interface{}{"John"},
						"lastName":    []interface{}{"Doe"},
						"dob":         []interface{}{"1990-01-01"},
						"nationality": []interface{}{"AE"},
					},
				},
			},
		},
	}
}

func TestBookFlight(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should validate the payload before calling the supplier", func(t *testing.T) {
		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		params := defaultBookParams()
		delete(params.FlightBookingInfo, "fare_source_code")
		delete(params.PassengerInfo, "customerEmail")

		response, err := service.BookFlight(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.False(t, supplierCalled)
		assert.Contains(t, *response.Error, "Missing required field in flight booking info: fare_source_code")
		assert.Contains(t, *response.Error, "Missing required field in passenger info: customerEmail")
		assert.Len(t, *response.Diagnostics.Errors, 2)
	})

	t.Run("should reject empty passenger details", func(t *testing.T) {
		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration("http://localhost"))

		params := defaultBookParams()
		params.PassengerInfo["paxDetails"] = []interface{}{}

		response, err := service.BookFlight(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Contains(t, *response.Error, "paxDetails must be a non-empty array")
	})

	t.Run("should confirm a successful booking", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/booking", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"BookFlightResponse": {
					"BookFlightResult": {
						"Success": true,
						"Status": "CONFIRMED",
						"UniqueID": "TNX-42",
						"TktTimeLimit": "2026-09-16T23:59:00",
						"Target": "Production"
					}
				}
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookFlight(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.True(t, response.BookingConfirmed)
		assert.Equal(t, "TNX-42", response.UniqueID)
		assert.True(t, response.BookingDetails.IsConfirmed)
		assert.False(t, response.BookingDetails.IsPending)
		assert.Nil(t, response.Error)
	})

	t.Run("should flag unconfirmed statuses", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"BookFlightResponse": {
					"BookFlightResult": {
						"Success": true,
						"Status": "REJECTED",
						"UniqueID": "TNX-43"
					}
				}
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookFlight(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.False(t, response.BookingConfirmed)
		assert.Equal(t, "Booking failed with status: REJECTED", *response.Error)
	})

	t.Run("should surface wrapped booking errors", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"BookFlightResponse": {
					"BookFlightResult": {
						"Errors": [
							{"Errors": {"ErrorMessage": "Fare no longer available", "ErrorCode": "FARE01"}}
						]
					}
				}
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.BookFlight(context.Background(), defaultBookParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Fare no longer available", *response.Error)
		assert.Equal(t, "FARE01", *response.ErrorCode)
	})
}
