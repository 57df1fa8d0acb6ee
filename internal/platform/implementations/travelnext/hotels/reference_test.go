package hotels_test

import (
	"bytes"
	"compress/flate"
	"context"
	"crypto/sha1"
	jsonEncoding "encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/hotels"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func compressForCache(t *testing.T, value any) []byte {
	serialized, err := jsonEncoding.Marshal(value)
	assert.Nil(t, err)

	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)
	_, err = writer.Write(serialized)
	assert.Nil(t, err)
	assert.Nil(t, writer.Close())

	return buffer.Bytes()
}

func staticContentCacheKey(t *testing.T, params schema.HotelStaticContentParams) string {
	payload, err := jsonEncoding.Marshal(params)
	assert.Nil(t, err)

	return fmt.Sprintf("hotels:reference:static-content:%x", sha1.Sum(payload))
}

func TestGetStaticContent(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	latitude := 25.08
	longitude := 55.14
	rating := 4.5

	expectedHotels := []schema.StaticHotel{
		{
			HotelID: "H1",
			Name:    "Grand Plaza",
			Location: schema.StaticHotelLocation{
				City:    "Dubai",
				State:   "Dubai",
				Country: "AE",
				Address: "1 Marina Walk",
			},
			Coordinates: schema.Coordinates{Latitude: &latitude, Longitude: &longitude},
			Contact: schema.HotelContact{
				Phone: "+971-4-1234567",
				Email: "stay@grandplaza.example",
			},
			PropertyDetails: schema.StaticHotelProperty{HotelType: "Hotel", Rating: &rating},
			Description: schema.HotelDescription{
				Content:        "A fine hotel by the marina.",
				HasDescription: true,
			},
			Media: schema.StaticHotelMedia{
				Images:     []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
				ImageCount: 2,
				HasImages:  true,
			},
			Display: schema.StaticHotelDisplay{
				Title:              "Grand Plaza (4.5★)",
				LocationSummary:    "Dubai, Dubai, AE",
				AddressSummary:     "1 Marina Walk",
				ContactSummary:     "📞 +971-4-1234567 | ✉️ stay@grandplaza.example",
				MediaSummary:       "2 images available",
				DescriptionPreview: "A fine hotel by the marina.",
			},
		},
	}

	expectedPagination := schema.StaticContentPagination{
		From:         1,
		To:           100,
		Total:        250,
		CurrentCount: 1,
		HasMore:      true,
	}

	t.Run("should fetch, normalize and cache a content page", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/static_content", r.URL.Path)
			assert.Equal(t, "test-user", r.URL.Query().Get("user_id"))
			assert.Equal(t, "1", r.URL.Query().Get("from"))
			assert.Equal(t, "100", r.URL.Query().Get("to"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"from": "1",
				"to": "100",
				"total": 250,
				"hotels": [
					{
						"hotelId": "H1",
						"name": "Grand Plaza",
						"city": "Dubai",
						"state": "Dubai",
						"country": "AE",
						"address": "1 Marina Walk",
						"latitude": 25.08,
						"longitude": 55.14,
						"phone": "+971-4-1234567",
						"email": "stay@grandplaza.example",
						"hotelType": "Hotel",
						"rating": 4.5,
						"description": "A fine hotel by the marina.",
						"images": ["https://cdn.example.com/1.jpg", "  ", "https://cdn.example.com/2.jpg"]
					}
				]
			}`))
		}))
		defer testServer.Close()

		cacheKey := staticContentCacheKey(t, schema.HotelStaticContentParams{From: 1, To: 100})
		cachedPage := map[string]any{"hotels": expectedHotels, "pagination": expectedPagination}

		redisClient, mock := testRedisClient()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetEx(cacheKey, compressForCache(t, cachedPage), 12*time.Hour).SetVal("")

		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetStaticContent(context.Background(), schema.HotelStaticContentParams{}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, expectedHotels, response.Hotels)
		assert.Equal(t, expectedPagination, *response.Pagination)
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("should serve a cached page without calling the supplier", func(t *testing.T) {
		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		cacheKey := staticContentCacheKey(t, schema.HotelStaticContentParams{From: 1, To: 100})
		cachedPage := map[string]any{"hotels": expectedHotels, "pagination": expectedPagination}

		redisClient, mock := testRedisClient()
		mock.ExpectGet(cacheKey).SetVal(string(compressForCache(t, cachedPage)))

		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetStaticContent(context.Background(), schema.HotelStaticContentParams{}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, expectedHotels, response.Hotels)
		assert.False(t, supplierCalled)
	})

	t.Run("should surface supplier errors", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"error": "Static content unavailable"}`))
		}))
		defer testServer.Close()

		redisClient, mock := testRedisClient()
		mock.ExpectGet(staticContentCacheKey(t, schema.HotelStaticContentParams{From: 1, To: 100})).RedisNil()

		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetStaticContent(context.Background(), schema.HotelStaticContentParams{}, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Static Content Error: Static content unavailable", *response.Error)
		assert.Equal(t, "STATIC_CONTENT_FAILED", *response.ErrorCode)
	})
}

func TestGetCities(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	expectedCities := []schema.HotelCity{
		{CityCode: "DXB", CityName: "Dubai", CountryCode: "AE", CountryName: "United Arab Emirates"},
	}

	t.Run("should fetch, normalize and cache the city list", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/hotel_cities", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"cities": [
					{"cityCode": "DXB", "cityName": "Dubai", "countryCode": "AE", "countryName": "United Arab Emirates"}
				]
			}`))
		}))
		defer testServer.Close()

		redisClient, mock := testRedisClient()
		mock.ExpectGet("hotels:reference:cities").RedisNil()
		mock.ExpectSetEx("hotels:reference:cities", compressForCache(t, expectedCities), 24*time.Hour).SetVal("")

		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetCities(context.Background(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.TotalCities)
		assert.Equal(t, expectedCities, response.Cities)
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("should serve the cached list without calling the supplier", func(t *testing.T) {
		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		redisClient, mock := testRedisClient()
		mock.ExpectGet("hotels:reference:cities").SetVal(string(compressForCache(t, expectedCities)))

		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetCities(context.Background(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "DXB", response.Cities[0].CityCode)
		assert.False(t, supplierCalled)
	})
}
