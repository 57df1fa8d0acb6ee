package flights

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/requesting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

const (
	airportListCacheKey = "flights:reference:airports"
	airlineListCacheKey = "flights:reference:airlines"

	referenceCacheTtl = 24 * time.Hour
)

func (s *service) GetAirports(ctx context.Context, logger *zerolog.Logger) (schema.AirportListResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:airport-list")
	defer slowLogger.Stop("flights:airport-list")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.AirportListResponse{
		Airports: []schema.Airport{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	var cached []schema.Airport
	if s.cache.Fetch(ctx, airportListCacheKey, &cached) {
		response.Result = schema.OkResult()
		response.Airports = cached
		response.TotalAirports = len(cached)

		return response, nil
	}

	entries, supplierError := s.requestReferenceList(ctx, schema.AirportListRequest, "/airport_list", logger, &requestsBucket)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	for _, entry := range entries {
		code := extracting.String(entry, "AirportCode", "")
		name := extracting.String(entry, "AirportName", "")
		city := extracting.String(entry, "City", "")
		country := extracting.String(entry, "Country", "")

		response.Airports = append(response.Airports, schema.Airport{
			AirportCode: code,
			AirportName: name,
			City:        city,
			Country:     country,
			DisplayName: name + " (" + code + ")",
			SearchText:  code + " " + name + " " + city + " " + country,
		})
	}

	response.Result = schema.OkResult()
	response.TotalAirports = len(response.Airports)

	if err := s.cache.Store(ctx, airportListCacheKey, response.Airports, referenceCacheTtl); err != nil {
		logger.Warn().Err(err).Msg("Failed caching airport list")
	}

	return response, nil
}

func (s *service) GetAirlines(ctx context.Context, logger *zerolog.Logger) (schema.AirlineListResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:airline-list")
	defer slowLogger.Stop("flights:airline-list")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.AirlineListResponse{
		Airlines: []schema.Airline{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	var cached []schema.Airline
	if s.cache.Fetch(ctx, airlineListCacheKey, &cached) {
		response.Result = schema.OkResult()
		response.Airlines = cached
		response.TotalAirlines = len(cached)

		return response, nil
	}

	entries, supplierError := s.requestReferenceList(ctx, schema.AirlineListRequest, "/airline_list", logger, &requestsBucket)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	for _, entry := range entries {
		code := extracting.String(entry, "AirLineCode", "")
		name := extracting.String(entry, "AirLineName", "")
		logo := extracting.String(entry, "Logo", "")

		response.Airlines = append(response.Airlines, schema.Airline{
			AirlineCode: code,
			AirlineName: name,
			LogoURL:     logo,
			DisplayName: name + " (" + code + ")",
			SearchText:  code + " " + name,
			HasLogo:     logo != "",
		})
	}

	sort.Slice(response.Airlines, func(i, j int) bool {
		return response.Airlines[i].AirlineName < response.Airlines[j].AirlineName
	})

	response.Result = schema.OkResult()
	response.TotalAirlines = len(response.Airlines)

	if err := s.cache.Store(ctx, airlineListCacheKey, response.Airlines, referenceCacheTtl); err != nil {
		logger.Warn().Err(err).Msg("Failed caching airline list")
	}

	return response, nil
}

// requestReferenceList fetches a reference endpoint with retries. These
// endpoints reply with a bare array, or an Errors object on failure.
func (s *service) requestReferenceList(
	ctx context.Context,
	name schema.SupplierRequestName,
	path string,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
) ([]map[string]interface{}, *schema.SupplierResponseError) {
	responseBytes, supplierError := s.requestSupplierRaw(
		ctx,
		name,
		path,
		s.configuration.credentials,
		s.referenceTimeout(),
		logger,
		bucket,
		&s.retryPolicy,
	)
	if supplierError != nil {
		return nil, supplierError
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(responseBytes, &entries); err == nil {
		return entries, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(responseBytes, &decoded); err == nil {
		if message, _, found := supplierErrorsIn(decoded); found {
			e := schema.NewSupplierError(message)
			return nil, &e
		}
	}

	e := schema.NewSupplierError("Invalid response format")
	return nil, &e
}
