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

func TestDirectionFromBehavior(t *testing.T) {
	assert.Equal(t, "outbound", flights.DirectionFromBehavior("PER_PAX_OUTBOUND"))
	assert.Equal(t, "inbound", flights.DirectionFromBehavior("group inbound"))
	assert.Equal(t, "both", flights.DirectionFromBehavior("GROUP_PAX"))
}

func TestSeatCategory(t *testing.T) {
	assert.Equal(t, "window", flights.SeatCategory("Window Seat"))
	assert.Equal(t, "aisle", flights.SeatCategory("AISLE"))
	assert.Equal(t, "middle", flights.SeatCategory("middle seat"))
	assert.Equal(t, "unspecified", flights.SeatCategory("Exit Row"))
}

func TestGetExtraServices(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	params := schema.FlightExtraServicesParams{
		SessionID:      "sess-123",
		FareSourceCode: "FSC-OUT-1",
	}

	t.Run("should normalize baggage, meals and seats", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/extra_services", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"ExtraServicesResponse": {
					"ExtraServicesResult": {
						"success": true,
						"ExtraServicesData": {
							"DynamicBaggage": [
								{
									"Behavior": "PER_PAX_OUTBOUND",
									"IsMultiSelect": false,
									"Services": [
										[
											{
												"ServiceId": "BAG1",
												"CheckInType": "AIRPORT",
												"Description": "Extra 10kg",
												"FareDescription": "10KG",
												"IsMandatory": false,
												"MinimumQuantity": 0,
												"MaximumQuantity": 2,
												"ServiceCost": {"Amount": "30", "CurrencyCode": "AED", "DecimalPlaces": 2}
											}
										]
									]
								}
							],
							"DynamicMeal": [
								{
									"Behavior": "GROUP_PAX",
									"IsMultiSelect": true,
									"Services": [[]]
								}
							],
							"DynamicSeat": [
								[
									{
										"DeckSeats": [
											{
												"DeckNo": 1,
												"RowSeats": [
													{
														"RowNo": "12",
														"Seats": [
															{
																"ServiceId": "SEAT1",
																"AirlineCode": "EK",
																"FlightNumber": "101",
																"SeatNo": "12A",
																"SeatCode": "A",
																"AvailablityType": {"Code": 1, "Text": "Available"},
																"SeatType": {"Code": 2, "Text": "Window Seat"},
																"Fare": {"Amount": "15", "CurrencyCode": "AED"}
															}
														]
													}
												]
											}
										]
									}
								]
							]
						}
					}
				}
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetExtraServices(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)

		data := response.ExtraServices
		assert.Len(t, data.Baggage, 1)
		assert.Equal(t, "outbound", data.Baggage[0].Direction)
		assert.Equal(t, "baggage", data.Baggage[0].Services[0][0].Type)
		assert.Equal(t, 2, data.Baggage[0].Services[0][0].MaximumQuantity)

		assert.Len(t, data.Meals, 1)
		assert.Equal(t, "both", data.Meals[0].Direction)
		assert.True(t, data.Meals[0].IsMultiSelect)

		assert.Len(t, data.Seats, 1)
		seat := data.Seats[0].Rows[0].Seats[0]
		assert.Equal(t, "12A", seat.SeatNumber)
		assert.True(t, seat.Availability.IsAvailable)
		assert.Equal(t, "window", seat.SeatType.Category)

		assert.Equal(t, 1, response.Metadata.TotalBaggageOptions)
		assert.Equal(t, 1, response.Metadata.TotalMealOptions)
		assert.Equal(t, 1, response.Metadata.TotalSeatOptions)
		assert.Equal(t, "sess-123", response.Metadata.SessionID)
	})

	t.Run("should fail when the supplier reports no success", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ExtraServicesResponse": {"ExtraServicesResult": {"success": false}}}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetExtraServices(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Extra services request failed", *response.Error)
	})
}
