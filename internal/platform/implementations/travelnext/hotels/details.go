package hotels

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

// Facility buckets are checked in order; the first keyword hit wins, so
// "room service" lands under dining rather than services.
var facilityCategories = []struct {
	name     string
	keywords []string
}{
	{"connectivity", []string{"wifi", "wlan", "internet", "wireless"}},
	{"dining", []string{"restaurant", "bar", "cafe", "dining", "breakfast", "room service"}},
	{"business", []string{"conference", "meeting", "business", "boardroom"}},
	{"leisure", []string{"pool", "gym", "spa", "fitness", "casino", "games", "theatre", "nightclub"}},
	{"services", []string{"laundry", "concierge", "reception", "room service", "housekeeping", "medical"}},
	{"transportation", []string{"parking", "car park", "garage", "valet"}},
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}

	return false
}

func categorizeFacilities(facilities []string) map[string][]string {
	categories := map[string][]string{}

	for _, facility := range facilities {
		lowered := strings.ToLower(facility)

		bucket := "other"
		for _, category := range facilityCategories {
			if containsAny(lowered, category.keywords) {
				bucket = category.name
				break
			}
		}

		categories[bucket] = append(categories[bucket], facility)
	}

	return categories
}

func normalizeImages(rawImages []interface{}) []schema.HotelImage {
	images := make([]schema.HotelImage, 0, len(rawImages))

	for _, raw := range rawImages {
		imageData, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		images = append(images, schema.HotelImage{
			URL:     extracting.String(imageData, "url", ""),
			Caption: extracting.String(imageData, "caption", "GEN"),
		})
	}

	return images
}

func categorizeImages(images []schema.HotelImage) map[string]int {
	categories := map[string]int{}

	for _, image := range images {
		categories[image.Caption]++
	}

	return categories
}

func normalizeHotelDetails(decoded map[string]interface{}) schema.HotelDetails {
	facilities := extracting.Strings(decoded, "facilities")
	images := normalizeImages(extracting.Slice(decoded, "hotelImages"))
	description := extracting.String(extracting.Map(decoded, "description"), "content", "")

	ratingDisplay := "No rating"
	hotelRating := extracting.FloatPtr(decoded, "hotelRating")
	if hotelRating != nil && *hotelRating != 0 {
		ratingDisplay = displayFloat(*hotelRating) + "★"
	}

	details := schema.HotelDetails{
		HotelID:    extracting.StringFromAny(decoded, "hotelId", ""),
		Name:       extracting.String(decoded, "name", ""),
		Address:    extracting.String(decoded, "address", ""),
		City:       extracting.String(decoded, "city", ""),
		PostalCode: extracting.StringFromAny(decoded, "postalCode", ""),
		Coordinates: schema.Coordinates{
			Latitude:  extracting.FloatPtr(decoded, "latitude"),
			Longitude: extracting.FloatPtr(decoded, "longitude"),
		},
		Rating: schema.HotelDetailsRating{
			HotelRating:   hotelRating,
			RatingDisplay: ratingDisplay,
		},
		Description: schema.HotelDescription{
			Content:        description,
			HasDescription: description != "",
		},
		Facilities: facilities,
		Amenities: schema.HotelAmenitiesInfo{
			TotalAmenities: len(facilities),
			Categories:     categorizeFacilities(facilities),
		},
		Images: schema.HotelImagesInfo{
			Images:          images,
			ImageCount:      len(images),
			HasImages:       len(images) > 0,
			ImageCategories: categorizeImages(images),
		},
	}

	location := details.Address
	if details.City != "" {
		location = details.City + ", " + details.Address
	}

	imagesSummary := "No photos available"
	if details.Images.HasImages {
		imagesSummary = fmt.Sprintf("%d photos available", details.Images.ImageCount)
	}

	details.Display = schema.HotelDetailsDisplay{
		Title:              fmt.Sprintf("%s (%s)", details.Name, details.Rating.RatingDisplay),
		Location:           location,
		AmenitiesSummary:   fmt.Sprintf("%d amenities available", details.Amenities.TotalAmenities),
		ImagesSummary:      imagesSummary,
		DescriptionPreview: descriptionPreview(description, 150),
	}

	return details
}

func (s *service) GetHotelDetails(
	ctx context.Context,
	params schema.HotelDetailsParams,
	logger *zerolog.Logger,
) (schema.HotelDetailsResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:details")
	defer slowLogger.Stop("hotels:details")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelDetailsResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	decoded, supplierError := s.requestSupplierQuery(
		ctx,
		schema.HotelDetailsRequest,
		"/hotelDetails",
		params,
		s.transactionalTimeout(),
		logger,
		&requestsBucket,
		nil,
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

	details := normalizeHotelDetails(decoded)
	response.HotelDetails = &details
	response.Result = schema.OkResult()

	return response, nil
}
