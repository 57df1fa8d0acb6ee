package schema

type RoomOccupancyParams struct {
	Adults    int   `json:"adults"`
	Children  int   `json:"children"`
	ChildAges []int `json:"child_ages,omitempty"`
}

type HotelSearchParams struct {
	CheckIn        string                `json:"check_in" binding:"required"`
	CheckOut       string                `json:"check_out" binding:"required"`
	Rooms          []RoomOccupancyParams `json:"rooms,omitempty"`
	Nationality    string                `json:"nationality,omitempty"`
	Currency       string                `json:"currency,omitempty"`
	Language       string                `json:"language,omitempty"`
	CityName       string                `json:"city_name,omitempty"`
	CountryName    string                `json:"country_name,omitempty"`
	Latitude       *float64              `json:"latitude,omitempty"`
	Longitude      *float64              `json:"longitude,omitempty"`
	HotelCodes     []string              `json:"hotel_codes,omitempty"`
	Radius         int                   `json:"radius,omitempty"`
	MaxResult      int                   `json:"max_result,omitempty"`
	ResultsPerPage int                   `json:"results_per_page,omitempty"`
}

type HotelMoreResultsParams struct {
	SessionID string `json:"session_id" binding:"required" url:"sessionId"`
	NextToken string `json:"next_token" binding:"required" url:"nextToken"`
	MaxResult int    `json:"max_result,omitempty" url:"maxResult,omitempty"`
	Paginated bool   `json:"paginated,omitempty" url:"-"`
}

type HotelFilterCriteria struct {
	PriceMin          *float64 `json:"price_min,omitempty"`
	PriceMax          *float64 `json:"price_max,omitempty"`
	Rating            string   `json:"rating,omitempty"`
	TripAdvisorRating string   `json:"tripadvisor_rating,omitempty"`
	HotelName         string   `json:"hotel_name,omitempty"`
	FareType          string   `json:"fare_type,omitempty"`
	PropertyType      string   `json:"property_type,omitempty"`
	Facility          string   `json:"facility,omitempty"`
	Sorting           string   `json:"sorting,omitempty"`
	Locality          string   `json:"locality,omitempty"`
}

type HotelFilterParams struct {
	SessionID string              `json:"session_id" binding:"required"`
	MaxResult int                 `json:"max_result,omitempty"`
	Filters   HotelFilterCriteria `json:"filters"`
}

type HotelMoreFilterResultsParams struct {
	SessionID string `json:"session_id" binding:"required" url:"sessionId"`
	NextToken string `json:"next_token" binding:"required" url:"nextToken"`
	FilterKey string `json:"filter_key" binding:"required" url:"filterKey"`
	Paginated bool   `json:"paginated,omitempty" url:"-"`
}

type HotelDetailsParams struct {
	SessionID string `json:"session_id" binding:"required" url:"sessionId"`
	HotelID   string `json:"hotel_id" binding:"required" url:"hotelId"`
	ProductID string `json:"product_id" binding:"required" url:"productId"`
	TokenID   string `json:"token_id" binding:"required" url:"tokenId"`
}

type HotelRoomRatesParams struct {
	SessionID string                `json:"session_id" binding:"required"`
	HotelCode string                `json:"hotel_code" binding:"required"`
	CheckIn   string                `json:"check_in"`
	CheckOut  string                `json:"check_out"`
	Rooms     []RoomOccupancyParams `json:"rooms,omitempty"`
}

type HotelBookParams struct {
	SessionID     string                   `json:"session_id" binding:"required"`
	ProductID     string                   `json:"product_id" binding:"required"`
	TokenID       string                   `json:"token_id" binding:"required"`
	RateBasisID   string                   `json:"rate_basis_id" binding:"required"`
	ClientRef     string                   `json:"client_ref"`
	CustomerEmail string                   `json:"customer_email"`
	CustomerPhone string                   `json:"customer_phone"`
	BookingNote   string                   `json:"booking_note,omitempty"`
	PaxDetails    []map[string]interface{} `json:"pax_details"`
}

type HotelBookingDetailsParams struct {
	SupplierConfirmationNum string `json:"supplier_confirmation_num" binding:"required"`
	ReferenceNum            string `json:"reference_num" binding:"required"`
}

type HotelCancelParams struct {
	SupplierConfirmationNum string `json:"supplier_confirmation_num" binding:"required"`
	ReferenceNum            string `json:"reference_num" binding:"required"`
}

type HotelStaticContentParams struct {
	From        int    `json:"from,omitempty" url:"from"`
	To          int    `json:"to,omitempty" url:"to"`
	CityName    string `json:"city_name,omitempty" url:"city_name,omitempty"`
	CountryName string `json:"country_name,omitempty" url:"country_name,omitempty"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type HotelContact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type HotelRatingInfo struct {
	HotelRating            *float64 `json:"hotel_rating,omitempty"`
	TripAdvisorRating      *float64 `json:"trip_advisor_rating,omitempty"`
	TripAdvisorReviewCount int      `json:"trip_advisor_review_count"`
}

type HotelPricing struct {
	Total    RoundedFloat `json:"total"`
	Currency string       `json:"currency"`
	FareType string       `json:"fare_type"`
}

type HotelDistance struct {
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit"`
}

type HotelPropertyDetails struct {
	PropertyType       string        `json:"property_type"`
	DistanceFromCenter HotelDistance `json:"distance_from_center"`
}

type HotelMedia struct {
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ImageCount   int    `json:"image_count"`
}

type HotelBookingInfo struct {
	IsRefundable       bool   `json:"is_refundable"`
	CancellationPolicy string `json:"cancellation_policy"`
}

type HotelDisplay struct {
	NameWithRating   string `json:"name_with_rating"`
	LocationSummary  string `json:"location_summary"`
	PriceSummary     string `json:"price_summary"`
	DistanceSummary  string `json:"distance_summary"`
	AmenitiesSummary string `json:"amenities_summary"`
	RatingSummary    string `json:"rating_summary"`
}

// HotelListing is one normalized property in a search or filter result
// page. When normalization of a raw record fails, only HotelID, HotelName
// and Note are populated.
type HotelListing struct {
	HotelID         string               `json:"hotel_id"`
	TwxHotelID      string               `json:"twx_hotel_id,omitempty"`
	ProductID       string               `json:"product_id,omitempty"`
	TokenID         string               `json:"token_id,omitempty"`
	HotelName       string               `json:"hotel_name"`
	Address         string               `json:"address,omitempty"`
	City            string               `json:"city,omitempty"`
	Locality        string               `json:"locality,omitempty"`
	Country         string               `json:"country,omitempty"`
	PostalCode      string               `json:"postal_code,omitempty"`
	Coordinates     Coordinates          `json:"coordinates"`
	Contact         HotelContact         `json:"contact"`
	Rating          HotelRatingInfo      `json:"rating"`
	Pricing         HotelPricing         `json:"pricing"`
	PropertyDetails HotelPropertyDetails `json:"property_details"`
	Media           HotelMedia           `json:"media"`
	Facilities      []string             `json:"facilities"`
	AmenitiesCount  int                  `json:"amenities_count"`
	BookingInfo     HotelBookingInfo     `json:"booking_info"`
	Display         HotelDisplay         `json:"display"`
	Note            string               `json:"note,omitempty"`
}

type HotelSearchMetadata struct {
	SessionID      string `json:"session_id"`
	MoreResults    bool   `json:"more_results"`
	NextToken      string `json:"next_token,omitempty"`
	TotalResults   int    `json:"total_results"`
	CurrentResults int    `json:"current_results"`
	Paginator      string `json:"paginator,omitempty"`
}

// HotelFilterMetadata replaces the search metadata on filter pages; the
// filterKey must be echoed back to continue a filtered result set.
type HotelFilterMetadata struct {
	SessionID       string `json:"session_id"`
	MoreResults     bool   `json:"more_results"`
	NextToken       string `json:"next_token,omitempty"`
	FilterKey       string `json:"filter_key,omitempty"`
	FilteredResults int    `json:"filtered_results"`
}

type HotelSearchResponse struct {
	Result
	Hotels         []HotelListing       `json:"hotels"`
	Metadata       *HotelSearchMetadata `json:"search_metadata,omitempty"`
	FilterMetadata *HotelFilterMetadata `json:"filter_metadata,omitempty"`
	Diagnostics
}

type HotelImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type HotelImagesInfo struct {
	Images          []HotelImage   `json:"hotel_images"`
	ImageCount      int            `json:"image_count"`
	HasImages       bool           `json:"has_images"`
	ImageCategories map[string]int `json:"image_categories"`
}

type HotelAmenitiesInfo struct {
	TotalAmenities int                 `json:"total_amenities"`
	Categories     map[string][]string `json:"categories"`
}

type HotelDescription struct {
	Content        string `json:"content"`
	HasDescription bool   `json:"has_description"`
}

type HotelDetailsRating struct {
	HotelRating   *float64 `json:"hotel_rating,omitempty"`
	RatingDisplay string   `json:"rating_display"`
}

type HotelDetailsDisplay struct {
	Title              string `json:"title"`
	Location           string `json:"location"`
	AmenitiesSummary   string `json:"amenities_summary"`
	ImagesSummary      string `json:"images_summary"`
	DescriptionPreview string `json:"description_preview"`
}

type HotelDetails struct {
	HotelID     string              `json:"hotel_id"`
	Name        string              `json:"name"`
	Address     string              `json:"address,omitempty"`
	City        string              `json:"city,omitempty"`
	PostalCode  string              `json:"postal_code,omitempty"`
	Coordinates Coordinates         `json:"coordinates"`
	Rating      HotelDetailsRating  `json:"rating"`
	Description HotelDescription    `json:"description"`
	Facilities  []string            `json:"facilities"`
	Amenities   HotelAmenitiesInfo  `json:"amenities_info"`
	Images      HotelImagesInfo     `json:"images"`
	Display     HotelDetailsDisplay `json:"display"`
}

type HotelDetailsResponse struct {
	Result
	HotelDetails *HotelDetails `json:"hotel_details,omitempty"`
	Diagnostics
}

type RoomRate struct {
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	BoardType          string       `json:"board_type,omitempty"`
	RateBasisID        string       `json:"rate_basis_id,omitempty"`
	Total              RoundedFloat `json:"total"`
	Currency           string       `json:"currency"`
	FareType           string       `json:"fare_type,omitempty"`
	IsRefundable       bool         `json:"is_refundable"`
	CancellationPolicy string       `json:"cancellation_policy,omitempty"`
}

type HotelRoomRatesResponse struct {
	Result
	RoomRates      []RoomRate             `json:"room_rates"`
	HotelInfo      map[string]interface{} `json:"hotel_info"`
	PricingSummary map[string]interface{} `json:"pricing_summary"`
	Diagnostics
}

type BookedRoom struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BoardType   string   `json:"board_type,omitempty"`
	GuestNames  []string `json:"guest_names"`
}

type HotelStayDetails struct {
	HotelID            string `json:"hotel_id"`
	HotelName          string `json:"hotel_name,omitempty"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	Days               int    `json:"days"`
	Currency           string `json:"currency"`
	NetPrice           string `json:"net_price"`
	FareType           string `json:"fare_type"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`
	CustomerEmail      string `json:"customer_email,omitempty"`
	CustomerPhone      string `json:"customer_phone,omitempty"`
}

type HotelBookingPricing struct {
	TotalAmount  RoundedFloat `json:"total_amount"`
	Currency     string       `json:"currency"`
	FareType     string       `json:"fare_type,omitempty"`
	IsRefundable bool         `json:"is_refundable"`
}

type HotelBookingDisplay struct {
	StatusMessage       string `json:"status_message"`
	ConfirmationSummary string `json:"confirmation_summary"`
	ReferenceSummary    string `json:"reference_summary,omitempty"`
	StaySummary         string `json:"stay_summary,omitempty"`
	PriceSummary        string `json:"price_summary,omitempty"`
	RoomsSummary        string `json:"rooms_summary,omitempty"`
	HotelSummary        string `json:"hotel_summary,omitempty"`
	CancellationSummary string `json:"cancellation_summary,omitempty"`
}

type HotelBookingResult struct {
	BookingStatus           string              `json:"booking_status"`
	IsConfirmed             bool                `json:"is_confirmed"`
	SupplierConfirmationNum string              `json:"supplier_confirmation_num"`
	ReferenceNum            string              `json:"reference_num"`
	ClientRefNum            string              `json:"client_ref_num,omitempty"`
	ProductID               string              `json:"product_id,omitempty"`
	StayDetails             HotelStayDetails    `json:"stay_details"`
	Rooms                   []BookedRoom        `json:"rooms"`
	Pricing                 HotelBookingPricing `json:"pricing"`
	Display                 HotelBookingDisplay `json:"display"`
}

type HotelBookResponse struct {
	Result
	BookingResult *HotelBookingResult `json:"booking_result,omitempty"`
	Diagnostics
}

type HotelBookingRecord struct {
	HotelBookingResult
	BookingTimestamp string `json:"booking_timestamp,omitempty"`
	LastUpdated      string `json:"last_updated,omitempty"`
}

type HotelBookingDetailsResponse struct {
	Result
	BookingDetails *HotelBookingRecord `json:"booking_details,omitempty"`
	Diagnostics
}

type HotelRefundDetails struct {
	RefundAmount     RoundedFloat `json:"refund_amount"`
	CancellationFees RoundedFloat `json:"cancellation_fees"`
	NetRefund        RoundedFloat `json:"net_refund"`
	Currency         string       `json:"currency"`
	RefundMethod     string       `json:"refund_method,omitempty"`
	RefundTimeline   string       `json:"refund_timeline,omitempty"`
}

type HotelCancellationDisplay struct {
	StatusMessage    string `json:"status_message"`
	ReferenceSummary string `json:"reference_summary"`
	MessageSummary   string `json:"message_summary"`
	RefundSummary    string `json:"refund_summary"`
}

type HotelCancellationResult struct {
	CancellationStatus    string                   `json:"cancellation_status"`
	IsCancelled           bool                     `json:"is_cancelled"`
	CancelReferenceNum    string                   `json:"cancel_reference_num,omitempty"`
	Message               string                   `json:"message,omitempty"`
	CancellationTimestamp string                   `json:"cancellation_timestamp,omitempty"`
	RefundDetails         HotelRefundDetails       `json:"refund_details"`
	Display               HotelCancellationDisplay `json:"display"`
}

type HotelCancelResponse struct {
	Result
	CancellationResult *HotelCancellationResult `json:"cancellation_result,omitempty"`
	Diagnostics
}

type StaticHotelLocation struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

type StaticHotelProperty struct {
	HotelType string   `json:"hotel_type,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

type StaticHotelMedia struct {
	Images     []string `json:"images"`
	ImageCount int      `json:"image_count"`
	HasImages  bool     `json:"has_images"`
}

type StaticHotelDisplay struct {
	Title              string `json:"title"`
	LocationSummary    string `json:"location_summary"`
	AddressSummary     string `json:"address_summary"`
	ContactSummary     string `json:"contact_summary"`
	MediaSummary       string `json:"media_summary"`
	DescriptionPreview string `json:"description_preview"`
}

type StaticHotel struct {
	HotelID         string              `json:"hotel_id"`
	Name            string              `json:"name"`
	Location        StaticHotelLocation `json:"location"`
	Coordinates     Coordinates         `json:"coordinates"`
	Contact         HotelContact        `json:"contact"`
	PropertyDetails StaticHotelProperty `json:"property_details"`
	Description     HotelDescription    `json:"description"`
	Media           StaticHotelMedia    `json:"media"`
	Display         StaticHotelDisplay  `json:"display"`
	Note            string              `json:"note,omitempty"`
}

type StaticContentPagination struct {
	From         int  `json:"from"`
	To           int  `json:"to"`
	Total        int  `json:"total"`
	CurrentCount int  `json:"current_count"`
	HasMore      bool `json:"has_more"`
}

type HotelStaticContentResponse struct {
	Result
	Hotels     []StaticHotel            `json:"hotels"`
	Pagination *StaticContentPagination `json:"pagination,omitempty"`
	Diagnostics
}

type HotelCity struct {
	CityCode    string `json:"city_code,omitempty"`
	CityName    string `json:"city_name"`
	CountryCode string `json:"country_code,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

type HotelCitiesResponse struct {
	Result
	Cities      []HotelCity `json:"cities"`
	TotalCities int         `json:"total_cities"`
	Diagnostics
}
