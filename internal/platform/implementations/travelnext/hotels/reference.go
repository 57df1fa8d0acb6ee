package hotels

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

const (
	cityListCacheKey = "hotels:reference:cities"

	// Static content pages change with inventory loads, the city list
	// barely moves.
	staticContentCacheTtl = 12 * time.Hour
	cityListCacheTtl      = 24 * time.Hour
)

type staticContentQuery struct {
	UserID       string `url:"user_id"`
	UserPassword string `url:"user_password"`
	Access       string `url:"access"`
	IPAddress    string `url:"ip_address"`
	From         int    `url:"from"`
	To           int    `url:"to"`
	CityName     string `url:"city_name,omitempty"`
	CountryName  string `url:"country_name,omitempty"`
}

type staticContentPage struct {
	Hotels     []schema.StaticHotel           `json:"hotels"`
	Pagination schema.StaticContentPagination `json:"pagination"`
}

func staticContentCacheKey(params schema.HotelStaticContentParams) string {
	payload, _ := json.Marshal(params)

	return fmt.Sprintf("hotels:reference:static-content:%x", sha1.Sum(payload))
}

func formatContactInfo(contact schema.HotelContact) string {
	parts := []string{}

	if contact.Phone != "" {
		parts = append(parts, "📞 "+contact.Phone)
	}

	if contact.Email != "" {
		parts = append(parts, "✉️ "+contact.Email)
	}

	if len(parts) == 0 {
		return "Contact information not available"
	}

	return strings.Join(parts, " | ")
}

func normalizeStaticHotels(rawHotels []interface{}) []schema.StaticHotel {
	hotels := make([]schema.StaticHotel, 0, len(rawHotels))

	for _, raw := range rawHotels {
		hotelData, ok := raw.(map[string]interface{})
		if !ok {
			hotels = append(hotels, schema.StaticHotel{
				Name: "Unknown Hotel",
				Note: "Normalization failed: unexpected record shape",
			})
			continue
		}

		hotels = append(hotels, normalizeStaticHotel(hotelData))
	}

	return hotels
}

func normalizeStaticHotel(hotelData map[string]interface{}) schema.StaticHotel {
	images := []string{}
	for _, image := range extracting.Strings(hotelData, "images") {
		if strings.TrimSpace(image) != "" {
			images = append(images, image)
		}
	}

	description := extracting.String(hotelData, "description", "")

	hotel := schema.StaticHotel{
		HotelID: extracting.StringFromAny(hotelData, "hotelId", ""),
		Name:    extracting.String(hotelData, "name", ""),
		Location: schema.StaticHotelLocation{
			City:    extracting.String(hotelData, "city", ""),
			State:   extracting.String(hotelData, "state", ""),
			Country: extracting.String(hotelData, "country", ""),
			Address: extracting.String(hotelData, "address", ""),
		},
		Coordinates: schema.Coordinates{
			Latitude:  extracting.FloatPtr(hotelData, "latitude"),
			Longitude: extracting.FloatPtr(hotelData, "longitude"),
		},
		Contact: schema.HotelContact{
			Phone: extracting.StringFromAny(hotelData, "phone", ""),
			Email: extracting.String(hotelData, "email", ""),
		},
		PropertyDetails: schema.StaticHotelProperty{
			HotelType: extracting.String(hotelData, "hotelType", ""),
			Rating:    extracting.FloatPtr(hotelData, "rating"),
		},
		Description: schema.HotelDescription{
			Content:        description,
			HasDescription: strings.TrimSpace(description) != "",
		},
		Media: schema.StaticHotelMedia{
			Images:     images,
			ImageCount: len(images),
			HasImages:  len(images) > 0,
		},
	}

	title := hotel.Name
	if hotel.PropertyDetails.Rating != nil && *hotel.PropertyDetails.Rating != 0 {
		title = fmt.Sprintf("%s (%s★)", hotel.Name, displayFloat(*hotel.PropertyDetails.Rating))
	}

	addressSummary := hotel.Location.Address
	if addressSummary == "" {
		addressSummary = "Address not available"
	}

	mediaSummary := "No images available"
	if hotel.Media.HasImages {
		mediaSummary = fmt.Sprintf("%d images available", hotel.Media.ImageCount)
	}

	hotel.Display = schema.StaticHotelDisplay{
		Title:              title,
		LocationSummary:    fmt.Sprintf("%s, %s, %s", hotel.Location.City, hotel.Location.State, hotel.Location.Country),
		AddressSummary:     addressSummary,
		ContactSummary:     formatContactInfo(hotel.Contact),
		MediaSummary:       mediaSummary,
		DescriptionPreview: descriptionPreview(description, 100),
	}

	return hotel
}

func atoiOrDefault(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func (s *service) GetStaticContent(
	ctx context.Context,
	params schema.HotelStaticContentParams,
	logger *zerolog.Logger,
) (schema.HotelStaticContentResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:static-content")
	defer slowLogger.Stop("hotels:static-content")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelStaticContentResponse{
		Hotels: []schema.StaticHotel{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	if params.From <= 0 {
		params.From = 1
	}

	if params.To <= 0 {
		params.To = 100
	}

	cacheKey := staticContentCacheKey(params)

	var cached staticContentPage
	if s.cache.Fetch(ctx, cacheKey, &cached) {
		response.Result = schema.OkResult()
		response.Hotels = cached.Hotels
		response.Pagination = &cached.Pagination

		return response, nil
	}

	query := staticContentQuery{
		UserID:       s.configuration.credentials.UserID,
		UserPassword: s.configuration.credentials.UserPassword,
		Access:       s.configuration.credentials.Access,
		IPAddress:    s.configuration.credentials.IPAddress,
		From:         params.From,
		To:           params.To,
		CityName:     params.CityName,
		CountryName:  params.CountryName,
	}

	decoded, supplierError := s.requestSupplierQuery(
		ctx,
		schema.HotelStaticContentRequest,
		"/static_content",
		query,
		s.referenceTimeout(),
		logger,
		&requestsBucket,
		&s.retryPolicy,
	)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	if message, code, found := transactionErrorsIn(decoded, "Static Content Error: ", "Unknown error", "STATIC_CONTENT_FAILED"); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	// The supplier echoes the range bounds back as strings.
	fromRange := atoiOrDefault(extracting.StringFromAny(decoded, "from", "1"), 1)
	toRange := atoiOrDefault(extracting.StringFromAny(decoded, "to", "100"), 100)
	totalHotels := extracting.Int(decoded, "total", 0)

	response.Hotels = normalizeStaticHotels(extracting.Slice(decoded, "hotels"))
	response.Pagination = &schema.StaticContentPagination{
		From:         fromRange,
		To:           toRange,
		Total:        totalHotels,
		CurrentCount: len(response.Hotels),
		HasMore:      toRange < totalHotels,
	}
	response.Result = schema.OkResult()

	page := staticContentPage{Hotels: response.Hotels, Pagination: *response.Pagination}
	if err := s.cache.Store(ctx, cacheKey, page, staticContentCacheTtl); err != nil {
		logger.Warn().Err(err).Msg("Failed caching static content page")
	}

	return response, nil
}

func (s *service) GetCities(ctx context.Context, logger *zerolog.Logger) (schema.HotelCitiesResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:cities")
	defer slowLogger.Stop("hotels:cities")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelCitiesResponse{
		Cities: []schema.HotelCity{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	var cached []schema.HotelCity
	if s.cache.Fetch(ctx, cityListCacheKey, &cached) {
		response.Result = schema.OkResult()
		response.Cities = cached
		response.TotalCities = len(cached)

		return response, nil
	}

	body, err := json.Marshal(s.configuration.credentials)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		errorsBucket.AddError(e)
		response.Result = schema.FailedResult(e.Message)

		return response, nil
	}

	decoded, supplierError := s.perform(
		ctx,
		schema.HotelCitiesRequest,
		s.referenceTimeout(),
		logger,
		&requestsBucket,
		&s.retryPolicy,
		func(requestCtx context.Context) (*http.Request, error) {
			request, err := http.NewRequestWithContext(
				requestCtx,
				http.MethodPost,
				s.configuration.url+"/hotel_cities",
				bytes.NewReader(body),
			)
			if err != nil {
				return nil, err
			}

			request.Header.Set("Content-Type", "application/json")
			request.Header.Set("Accept", "application/json")

			return request, nil
		},
	)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	if message, code, found := supplierErrorsIn(decoded); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	for _, cityData := range extracting.Maps(decoded, "cities") {
		response.Cities = append(response.Cities, schema.HotelCity{
			CityCode:    extracting.StringFromAny(cityData, "cityCode", ""),
			CityName:    extracting.String(cityData, "cityName", ""),
			CountryCode: extracting.String(cityData, "countryCode", ""),
			CountryName: extracting.String(cityData, "countryName", ""),
		})
	}

	response.Result = schema.OkResult()
	response.TotalCities = len(response.Cities)

	if err := s.cache.Store(ctx, cityListCacheKey, response.Cities, cityListCacheTtl); err != nil {
		logger.Warn().Err(err).Msg("Failed caching city list")
	}

	return response, nil
}
