package hotels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
)

// displayFloat renders supplier numbers the way they arrived, without
// trailing zeros. Ratings and distances are not money values.
func displayFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// normalizeHotels keeps the record count stable: a raw entry that is not
// an object degrades to a stub listing instead of being dropped, so
// pagination windows stay aligned with the supplier's counts.
func normalizeHotels(rawItineraries []interface{}) []schema.HotelListing {
	hotels := make([]schema.HotelListing, 0, len(rawItineraries))

	for _, raw := range rawItineraries {
		hotelData, ok := raw.(map[string]interface{})
		if !ok {
			hotels = append(hotels, schema.HotelListing{
				HotelName: "Unknown Hotel",
				Note:      "Normalization failed: unexpected record shape",
			})
			continue
		}

		hotels = append(hotels, normalizeHotel(hotelData))
	}

	return hotels
}

func normalizeHotel(hotelData map[string]interface{}) schema.HotelListing {
	fareType := extracting.String(hotelData, "fareType", "")
	isRefundable := strings.ToLower(fareType) == "refundable"

	cancellationPolicy := "Non-refundable"
	if isRefundable {
		cancellationPolicy = "Free cancellation"
	}

	rating := schema.HotelRatingInfo{
		HotelRating:            extracting.FloatPtr(hotelData, "hotelRating"),
		TripAdvisorRating:      extracting.FloatPtr(hotelData, "tripAdvisorRating"),
		TripAdvisorReviewCount: extracting.Int(hotelData, "tripAdvisorReview", 0),
	}

	facilities := extracting.Strings(hotelData, "facilities")
	thumbnail := extracting.String(hotelData, "thumbNailUrl", "")

	imageCount := 0
	if thumbnail != "" {
		imageCount = 1
	}

	listing := schema.HotelListing{
		HotelID:    extracting.StringFromAny(hotelData, "hotelId", ""),
		TwxHotelID: extracting.StringFromAny(hotelData, "twxHotelId", ""),
		ProductID:  extracting.StringFromAny(hotelData, "productId", ""),
		TokenID:    extracting.StringFromAny(hotelData, "tokenId", ""),
		HotelName:  extracting.String(hotelData, "hotelName", ""),
		Address:    extracting.String(hotelData, "address", ""),
		City:       extracting.String(hotelData, "city", ""),
		Locality:   extracting.String(hotelData, "locality", ""),
		Country:    extracting.String(hotelData, "country", ""),
		PostalCode: extracting.StringFromAny(hotelData, "postalCode", ""),
		Coordinates: schema.Coordinates{
			Latitude:  extracting.FloatPtr(hotelData, "latitude"),
			Longitude: extracting.FloatPtr(hotelData, "longitude"),
		},
		Contact: schema.HotelContact{
			Phone: extracting.StringFromAny(hotelData, "phone", ""),
			Email: extracting.String(hotelData, "email", ""),
		},
		Rating: rating,
		Pricing: schema.HotelPricing{
			Total:    schema.RoundedFloat(extracting.Float(hotelData, "total", 0)),
			Currency: extracting.String(hotelData, "currency", ""),
			FareType: fareType,
		},
		PropertyDetails: schema.HotelPropertyDetails{
			PropertyType: extracting.String(hotelData, "propertyType", ""),
			DistanceFromCenter: schema.HotelDistance{
				Value: extracting.FloatPtr(hotelData, "distanceValue"),
				Unit:  extracting.String(hotelData, "distanceUnit", "KM"),
			},
		},
		Media: schema.HotelMedia{
			ThumbnailURL: thumbnail,
			ImageCount:   imageCount,
		},
		Facilities:     facilities,
		AmenitiesCount: len(facilities),
		BookingInfo: schema.HotelBookingInfo{
			IsRefundable:       isRefundable,
			CancellationPolicy: cancellationPolicy,
		},
	}

	listing.Display = buildListingDisplay(listing)

	return listing
}

func buildListingDisplay(listing schema.HotelListing) schema.HotelDisplay {
	nameWithRating := listing.HotelName
	if listing.Rating.HotelRating != nil && *listing.Rating.HotelRating != 0 {
		nameWithRating = fmt.Sprintf("%s (%s★)", listing.HotelName, displayFloat(*listing.Rating.HotelRating))
	}

	locationSummary := listing.City
	if listing.Locality != "" {
		locationSummary = listing.Locality + ", " + listing.City
	}

	distance := listing.PropertyDetails.DistanceFromCenter
	distanceSummary := ""
	if distance.Value != nil && *distance.Value != 0 {
		distanceSummary = fmt.Sprintf("%s %s from center", displayFloat(*distance.Value), distance.Unit)
	}

	return schema.HotelDisplay{
		NameWithRating:   nameWithRating,
		LocationSummary:  locationSummary,
		PriceSummary:     fmt.Sprintf("%s %.2f", listing.Pricing.Currency, float64(listing.Pricing.Total)),
		DistanceSummary:  distanceSummary,
		AmenitiesSummary: fmt.Sprintf("%d amenities available", listing.AmenitiesCount),
		RatingSummary:    formatRatingSummary(listing.Rating),
	}
}

func formatRatingSummary(rating schema.HotelRatingInfo) string {
	parts := []string{}

	if rating.HotelRating != nil && *rating.HotelRating != 0 {
		parts = append(parts, displayFloat(*rating.HotelRating)+"★ Hotel Rating")
	}

	if rating.TripAdvisorRating != nil && *rating.TripAdvisorRating != 0 && rating.TripAdvisorReviewCount != 0 {
		parts = append(parts, fmt.Sprintf(
			"%s/5 TripAdvisor (%d reviews)",
			displayFloat(*rating.TripAdvisorRating),
			rating.TripAdvisorReviewCount,
		))
	}

	if len(parts) == 0 {
		return "No ratings available"
	}

	return strings.Join(parts, " | ")
}

// descriptionPreview cuts at the last sentence break when one lands in
// the final third of the window, otherwise mid-word with an ellipsis.
func descriptionPreview(description string, maxLength int) string {
	if description == "" {
		return "No description available"
	}

	if len(description) <= maxLength {
		return description
	}

	preview := description[:maxLength]

	if lastPeriod := strings.LastIndex(preview, "."); lastPeriod > int(float64(maxLength)*0.7) {
		return preview[:lastPeriod+1]
	}

	return strings.TrimRight(preview, " ") + "..."
}
