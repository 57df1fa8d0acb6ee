package hotels_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/hotels"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func TestCategorizeFacilities(t *testing.T) {
	categories := hotels.CategorizeFacilities([]string{
		"Free WiFi",
		"Rooftop Restaurant",
		"24h Room Service",
		"Outdoor Pool",
		"Valet Parking",
		"Prayer Room",
	})

	assert.Equal(t, []string{"Free WiFi"}, categories["connectivity"])
	assert.Equal(t, []string{"Rooftop Restaurant", "24h Room Service"}, categories["dining"])
	assert.Equal(t, []string{"Outdoor Pool"}, categories["leisure"])
	assert.Equal(t, []string{"Valet Parking"}, categories["transportation"])
	assert.Equal(t, []string{"Prayer Room"}, categories["other"])
	assert.NotContains(t, categories, "business")
}

func TestDescriptionPreview(t *testing.T) {
	t.Run("should pass short descriptions through", func(t *testing.T) {
		assert.Equal(t, "A fine hotel.", hotels.DescriptionPreview("A fine hotel.", 150))
	})

	t.Run("should cut at the last sentence when one ends late enough", func(t *testing.T) {
		description := "First sentence here. Second one follows. And a trailing fragment that runs over"

		assert.Equal(t, "First sentence here. Second one follows.", hotels.DescriptionPreview(description, 45))
	})

	t.Run("should fall back to an ellipsis", func(t *testing.T) {
		description := strings.Repeat("word ", 40)

		preview := hotels.DescriptionPreview(description, 50)

		assert.True(t, strings.HasSuffix(preview, "..."))
		assert.LessOrEqual(t, len(preview), 53)
	})

	t.Run("should handle an empty description", func(t *testing.T) {
		assert.Equal(t, "No description available", hotels.DescriptionPreview("", 150))
	})
}

func TestGetHotelDetails(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should normalize the hotel details", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/hotelDetails", r.URL.Path)
			assert.Equal(t, "hsess-1", r.URL.Query().Get("sessionId"))
			assert.Equal(t, "H1", r.URL.Query().Get("hotelId"))
			assert.Equal(t, "P1", r.URL.Query().Get("productId"))
			assert.Equal(t, "T1", r.URL.Query().Get("tokenId"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"hotelId": "H1",
				"name": "Grand Plaza",
				"address": "1 Marina Walk",
				"city": "Dubai",
				"postalCode": 12345,
				"latitude": 25.08,
				"longitude": 55.14,
				"hotelRating": 4,
				"description": {"content": "A fine hotel by the marina."},
				"facilities": ["Free WiFi", "Outdoor Pool"],
				"hotelImages": [
					{"url": "https://cdn.example.com/1.jpg", "caption": "Lobby"},
					{"url": "https://cdn.example.com/2.jpg"}
				]
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetHotelDetails(context.Background(), schema.HotelDetailsParams{
			SessionID: "hsess-1",
			HotelID:   "H1",
			ProductID: "P1",
			TokenID:   "T1",
		}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)

		details := response.HotelDetails
		assert.Equal(t, "H1", details.HotelID)
		assert.Equal(t, "12345", details.PostalCode)
		assert.Equal(t, "4★", details.Rating.RatingDisplay)
		assert.True(t, details.Description.HasDescription)
		assert.Equal(t, 2, details.Amenities.TotalAmenities)
		assert.Equal(t, 2, details.Images.ImageCount)
		assert.Equal(t, map[string]int{"Lobby": 1, "GEN": 1}, details.Images.ImageCategories)

		display := details.Display
		assert.Equal(t, "Grand Plaza (4★)", display.Title)
		assert.Equal(t, "Dubai, 1 Marina Walk", display.Location)
		assert.Equal(t, "2 amenities available", display.AmenitiesSummary)
		assert.Equal(t, "2 photos available", display.ImagesSummary)
		assert.Equal(t, "A fine hotel by the marina.", display.DescriptionPreview)
	})

	t.Run("should handle a hotel without rating or images", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"hotelId": "H2", "name": "Roadside Inn", "address": "Route 9"}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetHotelDetails(context.Background(), schema.HotelDetailsParams{
			SessionID: "hsess-1",
			HotelID:   "H2",
			ProductID: "P2",
			TokenID:   "T2",
		}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)

		details := response.HotelDetails
		assert.Equal(t, "No rating", details.Rating.RatingDisplay)
		assert.Equal(t, "Roadside Inn (No rating)", details.Display.Title)
		assert.Equal(t, "Route 9", details.Display.Location)
		assert.Equal(t, "No photos available", details.Display.ImagesSummary)
		assert.Equal(t, "No description available", details.Display.DescriptionPreview)
	})

	t.Run("should surface supplier errors", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"Errors": {"ErrorMessage": "Hotel not found", "ErrorCode": "HTL404"}}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetHotelDetails(context.Background(), schema.HotelDetailsParams{
			SessionID: "hsess-1",
			HotelID:   "H0",
			ProductID: "P0",
			TokenID:   "T0",
		}, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "API Error: Hotel not found", *response.Error)
		assert.Equal(t, "HTL404", *response.ErrorCode)
	})
}
