package hotels_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/hotels"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func TestFilterResults(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should send the filter criteria in a GET body", func(t *testing.T) {
		priceMin := 100.0
		priceMax := 400.0

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/filterResults", r.RequestURI)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{
				"sessionId": "hsess-1",
				"maxResult": 25,
				"filters": {
					"price": {"min": 100, "max": 400},
					"rating": "4",
					"faretype": "Refundable",
					"sorting": "price-low-high"
				}
			}`, string(body))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"status": {"sessionId": "hsess-1", "moreResults": true, "nextToken": "tok-3", "filterKey": "fk-9"},
				"itineraries": [{"hotelId": "H1", "hotelName": "Grand Plaza"}]
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.FilterResults(context.Background(), schema.HotelFilterParams{
			SessionID: "hsess-1",
			Filters: schema.HotelFilterCriteria{
				PriceMin: &priceMin,
				PriceMax: &priceMax,
				Rating:   "4",
				FareType: "Refundable",
				Sorting:  "price-low-high",
			},
		}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Len(t, response.Hotels, 1)
		assert.Nil(t, response.Metadata)

		metadata := response.FilterMetadata
		assert.Equal(t, "hsess-1", metadata.SessionID)
		assert.True(t, metadata.MoreResults)
		assert.Equal(t, "tok-3", metadata.NextToken)
		assert.Equal(t, "fk-9", metadata.FilterKey)
		assert.Equal(t, 1, metadata.FilteredResults)
	})

	t.Run("should omit the price block when no bounds are set", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"sessionId": "hsess-1", "maxResult": 25, "filters": {"hotelName": "Plaza"}}`, string(body))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": {"sessionId": "hsess-1"}, "itineraries": []}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.FilterResults(context.Background(), schema.HotelFilterParams{
			SessionID: "hsess-1",
			Filters:   schema.HotelFilterCriteria{HotelName: "Plaza"},
		}, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.Empty(t, response.Hotels)
	})

	t.Run("should surface supplier errors", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"Errors": {"ErrorMessage": "Session expired"}}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := hotels.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.FilterResults(context.Background(), schema.HotelFilterParams{
			SessionID: "hsess-1",
		}, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "API Error: Session expired", *response.Error)
		assert.Equal(t, "UNKNOWN", *response.ErrorCode)
	})
}
