package flights_test

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
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/flights"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func defaultSearchParams() schema.FlightSearchParams {
	return schema.FlightSearchParams{
		JourneyType:   "OneWay",
		Origin:        "DXB",
		Destination:   "LHR",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}
}

func defaultSupplierSearchResponse() []byte {
	return []byte(`{
		"AirSearchResponse": {
			"session_id": "sess-123",
			"supplier": "travelnext",
			"AirSearchResult": {
				"FareItineraries": [
					{
						"FareItinerary": {
							"AirItineraryFareInfo": {
								"FareSourceCode": "FSC-OUT-1",
								"ResultIndex": "OB1",
								"IsRefundable": "Yes",
								"FareType": "Public",
								"ItinTotalFares": {
									"TotalFare": {"Amount": "120", "CurrencyCode": "USD"},
									"BaseFare": {"Amount": "100"},
									"TotalTax": {"Amount": "15"},
									"ServiceTax": {"Amount": "5"}
								},
								"FareBreakdown": [
									{
										"PassengerTypeQuantity": {"Code": "ADT", "Quantity": 1},
										"PassengerFare": {
											"BaseFare": {"Amount": "100"},
											"ServiceTax": {"Amount": "5"},
											"TotalFare": {"Amount": "120"}
										},
										"Baggage": ["30K"],
										"CabinBaggage": ["7K"]
									}
								]
							},
							"OriginDestinationOptions": [
								{
									"TotalStops": 0,
									"OriginDestinationOption": [
										{
											"ResBookDesigCode": "Q",
											"SeatsRemaining": {"Number": 5, "BelowMinimum": false},
											"FlightSegment": {
												"DepartureAirportLocationCode": "DXB",
												"ArrivalAirportLocationCode": "LHR",
												"DepartureDateTime": "2026-09-15T08:00:00",
												"ArrivalDateTime": "2026-09-15T12:30:00",
												"FlightNumber": "101",
												"JourneyDuration": 450,
												"MarketingAirlineCode": "EK",
												"MarketingAirlineName": "Emirates",
												"CabinClassCode": "Y",
												"OperatingAirline": {"Equipment": "388"}
											}
										}
									]
								}
							],
							"ValidatingAirlineCode": "EK",
							"TicketType": "eTicket",
							"IsPassportMandatory": true
						}
					}
				]
			}
		}
	}`)
}

func TestSearchFlights(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should reject invalid params before calling the supplier", func(t *testing.T) {
		tests := []struct {
			name          string
			params        schema.FlightSearchParams
			expectedError string
		}{
			{
				"missing route",
				schema.FlightSearchParams{JourneyType: "OneWay"},
				"Origin, destination and departure date are required",
			},
			{
				"round trip without return date",
				schema.FlightSearchParams{
					JourneyType:   "Return",
					Origin:        "DXB",
					Destination:   "LHR",
					DepartureDate: "2026-09-15",
				},
				"Return date is required for round trip",
			},
			{
				"multi-city without segments",
				schema.FlightSearchParams{JourneyType: "Circle"},
				"At least one segment is required for multi-city search",
			},
			{
				"unsupported journey type",
				schema.FlightSearchParams{JourneyType: "Teleport"},
				"Unsupported journey type: Teleport",
			},
		}

		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				response, err := service.SearchFlights(context.Background(), test.params, &log)

				assert.Nil(t, err)
				assert.False(t, response.Success)
				assert.Equal(t, test.expectedError, *response.Error)
				assert.False(t, supplierCalled)
			})
		}
	})

	t.Run("should build the supplier payload with defaults", func(t *testing.T) {
		var requestBody map[string]interface{}

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/availability", r.RequestURI)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			jsonEncoding.Unmarshal(body, &requestBody)

			w.WriteHeader(http.StatusOK)
			w.Write(defaultSupplierSearchResponse())
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		params := defaultSearchParams()
		params.Adults = 0
		params.Class = ""
		params.Currency = ""

		_, err := service.SearchFlights(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.Equal(t, "test-user", requestBody["user_id"])
		assert.Equal(t, "OneWay", requestBody["journeyType"])
		assert.Equal(t, float64(1), requestBody["adults"])
		assert.Equal(t, "Economy", requestBody["class"])
		assert.Equal(t, "USD", requestBody["requiredCurrency"])

		destinations := requestBody["OriginDestinationInfo"].([]interface{})
		assert.Len(t, destinations, 1)
	})

	t.Run("should normalize supplier itineraries", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write(defaultSupplierSearchResponse())
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.SearchFlights(context.Background(), defaultSearchParams(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.TotalResults)
		assert.Equal(t, "sess-123", response.SessionID)
		assert.Equal(t, "travelnext", response.Supplier)
		assert.False(t, response.HasInboundResults)

		flight := response.Flights[0]
		assert.Equal(t, "OB1", flight.ID)
		assert.Equal(t, "FSC-OUT-1", flight.FareSourceCode)
		assert.Equal(t, "EK", flight.AirlineCode)
		assert.Equal(t, "DXB", flight.From)
		assert.Equal(t, "LHR", flight.To)
		assert.Equal(t, "7h 30m", flight.TotalDuration)
		assert.True(t, flight.IsRefundable)
		assert.True(t, flight.IsPassportMandatory)
		assert.Equal(t, "Q", flight.BookingClass)
		assert.Equal(t, 5, flight.SeatsRemaining.Number)
		assert.Equal(t, []string{"Checked: 30K", "Cabin: 7K"}, flight.BaggageInfo)

		serialized, _ := jsonEncoding.Marshal(flight)
		assert.Contains(t, string(serialized), `"total_amount":120.00`)

		assert.Len(t, flight.PassengerFares, 1)
		assert.Equal(t, "Adult", flight.PassengerFares[0].PassengerType)
		assert.Equal(t, "ADT", flight.PassengerFares[0].PassengerCode)
	})

	t.Run("should surface supplier error blocks", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"Errors": {"ErrorMessage": "Invalid credentials", "ErrorCode": "AUTH01"}}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.SearchFlights(context.Background(), defaultSearchParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "API Error: Invalid credentials", *response.Error)
		assert.Equal(t, "AUTH01", *response.ErrorCode)
		assert.Len(t, *response.Diagnostics.Errors, 1)
	})

	t.Run("should fail when response carries no flight data", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"something_else": true}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.SearchFlights(context.Background(), defaultSearchParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "No flight data in response", *response.Error)
	})

	t.Run("should report supplier status errors", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.SearchFlights(context.Background(), defaultSearchParams(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "supplier returned status code 502", *response.Error)
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"minutes as number", float64(450), "7h 30m"},
		{"minutes as string", "90", "1h 30m"},
		{"zero", 0, "0h 0m"},
		{"garbage", "soon", "N/A"},
		{"nil", nil, "N/A"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, flights.FormatDuration(test.value))
		})
	}
}
