package flights_test

import (
	"bytes"
	"compress/flate"
	"context"
	jsonEncoding "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/flights"
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

func TestGetAirports(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should fetch, normalize and cache the airport list", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/airport_list", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{"AirportCode": "DXB", "AirportName": "Dubai International", "City": "Dubai", "Country": "United Arab Emirates"}
			]`))
		}))
		defer testServer.Close()

		expectedAirports := []schema.Airport{
			{
				AirportCode: "DXB",
				AirportName: "Dubai International",
				City:        "Dubai",
				Country:     "United Arab Emirates",
				DisplayName: "Dubai International (DXB)",
				SearchText:  "DXB Dubai International Dubai United Arab Emirates",
			},
		}

		redisClient, mock := testRedisClient()
		mock.ExpectGet("flights:reference:airports").RedisNil()
		mock.ExpectSetEx("flights:reference:airports", compressForCache(t, expectedAirports), 24*time.Hour).SetVal("")

		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetAirports(context.Background(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 1, response.TotalAirports)
		assert.Equal(t, expectedAirports, response.Airports)
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("should serve the cached list without calling the supplier", func(t *testing.T) {
		supplierCalled := false
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplierCalled = true
		}))
		defer testServer.Close()

		cachedAirports := []schema.Airport{{AirportCode: "LHR", AirportName: "Heathrow"}}

		redisClient, mock := testRedisClient()
		mock.ExpectGet("flights:reference:airports").SetVal(string(compressForCache(t, cachedAirports)))

		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetAirports(context.Background(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "LHR", response.Airports[0].AirportCode)
		assert.False(t, supplierCalled)
	})

	t.Run("should reject a non-array response", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"unexpected": true}`))
		}))
		defer testServer.Close()

		redisClient, mock := testRedisClient()
		mock.ExpectGet("flights:reference:airports").RedisNil()

		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetAirports(context.Background(), &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Invalid response format", *response.Error)
	})
}

func TestGetAirlines(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should sort airlines by name", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/airline_list", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{"AirLineCode": "QF", "AirLineName": "Qantas", "Logo": ""},
				{"AirLineCode": "EK", "AirLineName": "Emirates", "Logo": "https://cdn.example.com/ek.png"}
			]`))
		}))
		defer testServer.Close()

		redisClient, mock := testRedisClient()
		mock.ExpectGet("flights:reference:airlines").RedisNil()

		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetAirlines(context.Background(), &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, 2, response.TotalAirlines)
		assert.Equal(t, "Emirates", response.Airlines[0].AirlineName)
		assert.Equal(t, "Qantas", response.Airlines[1].AirlineName)
		assert.True(t, response.Airlines[0].HasLogo)
		assert.False(t, response.Airlines[1].HasLogo)
		assert.Equal(t, "Emirates (EK)", response.Airlines[0].DisplayName)
	})
}
