package schema

// Journey types accepted by the flight search operation.
const (
	JourneyTypeOneWay    = "OneWay"
	JourneyTypeReturn    = "Return"
	JourneyTypeMultiCity = "Circle"
)

type FlightSearchSegment struct {
	Origin        string `json:"origin" url:"origin"`
	Destination   string `json:"destination" url:"destination"`
	DepartureDate string `json:"departure_date" url:"departure_date"`
}

type FlightSearchParams struct {
	JourneyType   string                `json:"journey_type" url:"journey_type"`
	Origin        string                `json:"origin" url:"origin"`
	Destination   string                `json:"destination" url:"destination"`
	DepartureDate string                `json:"departure_date" url:"departure_date"`
	ReturnDate    string                `json:"return_date,omitempty" url:"return_date,omitempty"`
	Segments      []FlightSearchSegment `json:"segments,omitempty" url:"-"`
	Adults        int                   `json:"adults" url:"adults"`
	Children      int                   `json:"children" url:"children"`
	Infants       int                   `json:"infants" url:"infants"`
	Class         string                `json:"class" url:"class"`
	Currency      string                `json:"currency" url:"currency"`
	AirlineCode   string                `json:"airline_code,omitempty" url:"airline_code,omitempty"`
	DirectFlight  *int                  `json:"direct_flight,omitempty" url:"direct_flight,omitempty"`
}

type FlightRevalidateParams struct {
	SessionID             string `json:"session_id" binding:"required"`
	FareSourceCode        string `json:"fare_source_code" binding:"required"`
	FareSourceCodeInbound string `json:"fare_source_code_inbound,omitempty"`
}

type FlightBookParams struct {
	FlightBookingInfo map[string]interface{} `json:"flight_booking_info"`
	PassengerInfo     map[string]interface{} `json:"passenger_info"`
}

type FlightExtraServicesParams struct {
	SessionID      string `json:"session_id" binding:"required"`
	FareSourceCode string `json:"fare_source_code" binding:"required"`
}

type FlightFareRulesParams struct {
	SessionID             string `json:"session_id" binding:"required"`
	FareSourceCode        string `json:"fare_source_code" binding:"required"`
	FareSourceCodeInbound string `json:"fare_source_code_inbound,omitempty"`
}

type FlightTripDetailsParams struct {
	UniqueID string `json:"unique_id" binding:"required"`
}

type FlightTicketOrderParams struct {
	UniqueID string `json:"unique_id" binding:"required"`
}

type FlightCancelParams struct {
	UniqueID string `json:"unique_id" binding:"required"`
}

type PassengerFare struct {
	PassengerType  string       `json:"passenger_type"`
	PassengerCode  string       `json:"passenger_code,omitempty"`
	BaseFare       RoundedFloat `json:"base_fare"`
	Taxes          RoundedFloat `json:"taxes"`
	TotalFare      RoundedFloat `json:"total_fare"`
	PassengerCount int          `json:"passenger_count"`
}

type SeatsRemaining struct {
	Number       int  `json:"number"`
	BelowMinimum bool `json:"below_minimum"`
}

type FlightSegment struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	FlightNumber     string `json:"flight_number"`
	AirlineCode      string `json:"airline_code"`
	AirlineName      string `json:"airline_name"`
	AircraftType     string `json:"aircraft_type"`
	Duration         string `json:"duration"`
	Stops            int    `json:"stops"`
	CabinClass       string `json:"cabin_class"`
	FareBasis        string `json:"fare_basis"`
	BaggageInfo      string `json:"baggage_info"`
}

// FlightOption is one bookable itinerary from a search response, flattened
// for display with the first and last segments anchoring the route.
type FlightOption struct {
	ID                  string          `json:"id"`
	FareSourceCode      string          `json:"fare_source_code"`
	AirlineCode         string          `json:"airline_code"`
	AirlineName         string          `json:"airline_name"`
	FlightNumber        string          `json:"flight_number"`
	From                string          `json:"from"`
	To                  string          `json:"to"`
	DepartureTime       string          `json:"departure_time"`
	ArrivalTime         string          `json:"arrival_time"`
	TotalDuration       string          `json:"total_duration"`
	TotalStops          int             `json:"total_stops"`
	TotalAmount         RoundedFloat    `json:"total_amount"`
	BasePrice           RoundedFloat    `json:"base_price"`
	Taxes               RoundedFloat    `json:"taxes"`
	ServiceTax          RoundedFloat    `json:"service_tax"`
	Currency            string          `json:"currency"`
	IsRefundable        bool            `json:"is_refundable"`
	FareType            string          `json:"fare_type"`
	BookingClass        string          `json:"booking_class"`
	CabinClass          string          `json:"cabin_class"`
	AircraftType        string          `json:"aircraft_type"`
	ValidatingAirline   string          `json:"validating_airline"`
	TicketType          string          `json:"ticket_type"`
	IsPassportMandatory bool            `json:"is_passport_mandatory"`
	SeatsRemaining      SeatsRemaining  `json:"seats_remaining"`
	PassengerFares      []PassengerFare `json:"passenger_fares"`
	Segments            []FlightSegment `json:"segments"`
	BaggageInfo         []string        `json:"baggage_info"`
}

type FlightSearchResponse struct {
	Result
	Flights           []FlightOption `json:"flights"`
	TotalResults      int            `json:"total_results"`
	SessionID         string         `json:"session_id,omitempty"`
	Supplier          string         `json:"supplier,omitempty"`
	HasInboundResults bool           `json:"has_inbound_results"`
	Diagnostics
}

type FareTotals struct {
	BaseFare   RoundedFloat `json:"base_fare"`
	EquivFare  RoundedFloat `json:"equiv_fare"`
	ServiceTax RoundedFloat `json:"service_tax"`
	TotalTax   RoundedFloat `json:"total_tax"`
	TotalFare  RoundedFloat `json:"total_fare"`
	Currency   string       `json:"currency"`
}

// ValidatedSegment keeps the extra booking attributes revalidation returns
// on top of the plain search segment shape.
type ValidatedSegment struct {
	Airline          string                 `json:"airline"`
	AirlineCode      string                 `json:"airline_code"`
	FlightNumber     string                 `json:"flight_number"`
	From             string                 `json:"from"`
	To               string                 `json:"to"`
	DepartureTime    string                 `json:"departure_time"`
	ArrivalTime      string                 `json:"arrival_time"`
	Duration         string                 `json:"duration"`
	CabinClass       string                 `json:"cabin_class"`
	CabinClassText   string                 `json:"cabin_class_text"`
	ETicketEligible  bool                   `json:"eticket_eligible"`
	OperatingAirline map[string]interface{} `json:"operating_airline"`
	BookingClass     string                 `json:"booking_class"`
	BookingClassText string                 `json:"booking_class_text"`
	SeatsRemaining   map[string]interface{} `json:"seats_remaining"`
	Stops            int                    `json:"stops"`
}

type NameCharacterLimits struct {
	FirstName         int `json:"first_name"`
	LastName          int `json:"last_name"`
	PassengerNameFull int `json:"pax_name"`
}

// ValidatedFare is the fully priced itinerary returned by revalidation. It
// walks every route of the fare, unlike the search normalization.
type ValidatedFare struct {
	FareSourceCode       string              `json:"fare_source_code"`
	FareType             string              `json:"fare_type"`
	IsRefundable         string              `json:"is_refundable"`
	DivideInParty        string              `json:"divide_in_party"`
	TotalFares           FareTotals          `json:"total_fares"`
	PassengerFares       []PassengerFare     `json:"passenger_fares"`
	Segments             []ValidatedSegment  `json:"segments"`
	DirectionIndicator   string              `json:"direction_indicator"`
	IsPassportMandatory  bool                `json:"is_passport_mandatory"`
	IsPassportFullDetail bool                `json:"is_passport_full_details_mandatory"`
	RequiredFieldsToBook []string            `json:"required_fields_to_book"`
	SequenceNumber       string              `json:"sequence_number"`
	TicketType           string              `json:"ticket_type"`
	ValidatingAirline    string              `json:"validating_airline"`
	CharacterLimits      NameCharacterLimits `json:"character_limits"`
}

type ServiceCost struct {
	Amount        RoundedFloat `json:"amount"`
	Currency      string       `json:"currency"`
	DecimalPlaces int          `json:"decimal_places"`
}

// AncillaryService is a purchasable add-on surfaced during revalidation.
type AncillaryService struct {
	ServiceID        string      `json:"service_id"`
	Type             string      `json:"type"`
	Description      string      `json:"description"`
	IsMandatory      bool        `json:"is_mandatory"`
	Behavior         string      `json:"behavior"`
	CheckInType      string      `json:"check_in_type"`
	Relation         string      `json:"relation"`
	FlightDesignator string      `json:"flight_designator"`
	Cost             ServiceCost `json:"cost"`
}

type RevalidationMetadata struct {
	SessionID    string `json:"session_id"`
	HasInbound   bool   `json:"has_inbound"`
	InboundValid bool   `json:"inbound_valid"`
}

type FlightRevalidateResponse struct {
	Result
	IsValid            bool                  `json:"is_valid"`
	FareDetails        *ValidatedFare        `json:"fare_details,omitempty"`
	InboundFareDetails *ValidatedFare        `json:"inbound_fare_details,omitempty"`
	ExtraServices      []AncillaryService    `json:"extra_services,omitempty"`
	Metadata           *RevalidationMetadata `json:"validation_metadata,omitempty"`
	Diagnostics
}

type FlightBookingDetails struct {
	ConfirmationNumber string `json:"confirmation_number"`
	BookingStatus      string `json:"booking_status"`
	PaymentDeadline    string `json:"payment_deadline"`
	IsConfirmed        bool   `json:"is_confirmed"`
	IsPending          bool   `json:"is_pending"`
}

type FlightBookResponse struct {
	Result
	BookingConfirmed  bool                  `json:"booking_confirmed"`
	Status            string                `json:"status,omitempty"`
	UniqueID          string                `json:"unique_id,omitempty"`
	TicketTimeLimit   string                `json:"ticket_time_limit,omitempty"`
	TargetEnvironment string                `json:"target,omitempty"`
	BookingDetails    *FlightBookingDetails `json:"booking_details,omitempty"`
	Diagnostics
}

type ExtraServiceItem struct {
	ServiceID       string      `json:"service_id"`
	Type            string      `json:"type"`
	CheckInType     string      `json:"check_in_type"`
	Description     string      `json:"description"`
	FareDescription string      `json:"fare_description"`
	IsMandatory     bool        `json:"is_mandatory"`
	MinimumQuantity int         `json:"minimum_quantity"`
	MaximumQuantity int         `json:"maximum_quantity"`
	Cost            ServiceCost `json:"cost"`
}

// ExtraServiceGroup is one selectable bundle of baggage or meal services.
// The inner slice holds the alternatives of a single selection slot.
type ExtraServiceGroup struct {
	Behavior      string               `json:"behavior"`
	IsMultiSelect bool                 `json:"is_multi_select"`
	Direction     string               `json:"direction"`
	Services      [][]ExtraServiceItem `json:"services"`
}

type SeatAttribute struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

type SeatAvailability struct {
	Code        int    `json:"code"`
	Text        string `json:"text"`
	IsAvailable bool   `json:"is_available"`
}

type SeatTypeInfo struct {
	Code     int    `json:"code"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

type SeatOption struct {
	ServiceID        string           `json:"service_id"`
	Type             string           `json:"type"`
	AirlineCode      string           `json:"airline_code"`
	FlightNumber     string           `json:"flight_number"`
	EquipmentCode    string           `json:"equipment_code"`
	DepartureAirport string           `json:"departure_airport"`
	ArrivalAirport   string           `json:"arrival_airport"`
	DeckNumber       int              `json:"deck_number"`
	RowNumber        string           `json:"row_number"`
	SeatNumber       string           `json:"seat_number"`
	SeatCode         string           `json:"seat_code"`
	Availability     SeatAvailability `json:"availability"`
	Description      SeatAttribute    `json:"description"`
	Compartment      SeatAttribute    `json:"compartment"`
	SeatType         SeatTypeInfo     `json:"seat_type"`
	SeatWayType      SeatAttribute    `json:"seat_way_type"`
	Cost             ServiceCost      `json:"cost"`
}

type SeatRow struct {
	RowNumber string       `json:"row_number"`
	Seats     []SeatOption `json:"seats"`
}

type SeatDeck struct {
	DeckNumber int       `json:"deck_number"`
	Rows       []SeatRow `json:"rows"`
}

type ExtraServicesData struct {
	Baggage []ExtraServiceGroup `json:"baggage"`
	Meals   []ExtraServiceGroup `json:"meals"`
	Seats   []SeatDeck          `json:"seats"`
}

type ExtraServicesMetadata struct {
	SessionID           string `json:"session_id"`
	FareSourceCode      string `json:"fare_source_code"`
	TotalBaggageOptions int    `json:"total_baggage_options"`
	TotalMealOptions    int    `json:"total_meal_options"`
	TotalSeatOptions    int    `json:"total_seat_options"`
}

type FlightExtraServicesResponse struct {
	Result
	ExtraServices *ExtraServicesData     `json:"extra_services,omitempty"`
	Metadata      *ExtraServicesMetadata `json:"metadata,omitempty"`
	Diagnostics
}

type BaggageAllowance struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Pieces      int    `json:"pieces,omitempty"`
	WeightKg    int    `json:"weight_kg,omitempty"`
}

type BaggageRule struct {
	DepartureAirport   string           `json:"departure_airport"`
	ArrivalAirport     string           `json:"arrival_airport"`
	FlightNumber       string           `json:"flight_number"`
	BaggageAllowance   string           `json:"baggage_allowance"`
	BaggageDescription BaggageAllowance `json:"baggage_description"`
}

type FareRule struct {
	AirlineCode  string   `json:"airline_code"`
	CityPair     string   `json:"city_pair"`
	Category     string   `json:"category"`
	RulesText    string   `json:"rules_text"`
	RulesSummary []string `json:"rules_summary"`
	CategoryType string   `json:"category_type"`
}

type FareRuleSet struct {
	Direction   string        `json:"direction"`
	BaggageInfo []BaggageRule `json:"baggage_info"`
	FareRules   []FareRule    `json:"fare_rules"`
}

type FareRulesData struct {
	Outbound    FareRuleSet  `json:"outbound"`
	Inbound     *FareRuleSet `json:"inbound,omitempty"`
	IsRoundTrip bool         `json:"is_round_trip"`
}

type FareRulesSummary struct {
	HasOutboundRules     bool     `json:"has_outbound_rules"`
	HasInboundRules      bool     `json:"has_inbound_rules"`
	TotalBaggageSegments int      `json:"total_baggage_segments"`
	TotalRuleCategories  int      `json:"total_rule_categories"`
	RuleCategories       []string `json:"rule_categories"`
	KeyRestrictions      []string `json:"key_restrictions"`
}

type FlightFareRulesResponse struct {
	Result
	FareRules *FareRulesData    `json:"fare_rules,omitempty"`
	Summary   *FareRulesSummary `json:"summary,omitempty"`
	Diagnostics
}

type TripBookingInfo struct {
	UniqueID             string `json:"unique_id"`
	ReissueUniqueID      string `json:"reissue_unique_id"`
	BookingStatus        string `json:"booking_status"`
	TicketStatus         string `json:"ticket_status"`
	Origin               string `json:"origin"`
	Destination          string `json:"destination"`
	FareType             string `json:"fare_type"`
	IsCommissionable     bool   `json:"is_commissionable"`
	IsMOFare             bool   `json:"is_mo_fare"`
	CrossBorderIndicator bool   `json:"cross_border_indicator"`
}

type TripPassenger struct {
	ItemRPH           int    `json:"item_rph"`
	PassengerType     string `json:"passenger_type"`
	PassengerCategory string `json:"passenger_category"`
	Title             string `json:"title"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	FullName          string `json:"full_name"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	Nationality       string `json:"nationality"`
	PassportNumber    string `json:"passport_number"`
	EmailAddress      string `json:"email_address"`
	PhoneNumber       string `json:"phone_number"`
	PostCode          string `json:"post_code"`
	ETicketNumber     string `json:"e_ticket_number"`
}

type TripSegment struct {
	ItemRPH           int    `json:"item_rph"`
	FlightNumber      string `json:"flight_number"`
	OperatingAirline  string `json:"operating_airline"`
	MarketingAirline  string `json:"marketing_airline"`
	DepartureAirport  string `json:"departure_airport"`
	ArrivalAirport    string `json:"arrival_airport"`
	DepartureDateTime string `json:"departure_datetime"`
	ArrivalDateTime   string `json:"arrival_datetime"`
	DepartureTerminal string `json:"departure_terminal"`
	ArrivalTerminal   string `json:"arrival_terminal"`
	JourneyDuration   string `json:"journey_duration"`
	StopQuantity      int    `json:"stop_quantity"`
	AircraftType      string `json:"aircraft_type"`
	BookingClass      string `json:"booking_class"`
	CabinClass        string `json:"cabin_class"`
	AirlinePNR        string `json:"airline_pnr"`
	NumberInParty     int    `json:"number_in_party"`
	BaggageAllowance  string `json:"baggage_allowance"`
	SegmentType       string `json:"segment_type"`
}

// TripPricing and the per-passenger fare details key fare components by
// their lowercased supplier name (equifare, tax, servicetax, totalfare).
type TripPricing map[string]ServiceCost

type TripFareBreakdown struct {
	PassengerType     string      `json:"passenger_type"`
	PassengerCategory string      `json:"passenger_category"`
	Quantity          int         `json:"quantity"`
	FareDetails       TripPricing `json:"fare_details"`
}

type BookedService struct {
	PassengerNumber string      `json:"passenger_number"`
	ServiceID       string      `json:"service_id"`
	ServiceType     string      `json:"service_type"`
	Description     string      `json:"description"`
	Behavior        string      `json:"behavior"`
	CheckInType     string      `json:"check_in_type"`
	IsMandatory     bool        `json:"is_mandatory"`
	Cost            ServiceCost `json:"cost"`
	ServiceCategory string      `json:"service_category"`
	Direction       string      `json:"direction"`
}

type BookingNote struct {
	NoteDetails string `json:"note_details"`
	CreatedOn   string `json:"created_on"`
	NoteType    string `json:"note_type"`
}

type TripLeg struct {
	Direction      string              `json:"direction"`
	BookingInfo    TripBookingInfo     `json:"booking_info"`
	Passengers     []TripPassenger     `json:"passengers"`
	FlightSegments []TripSegment       `json:"flight_segments"`
	Pricing        TripPricing         `json:"pricing"`
	FareBreakdown  []TripFareBreakdown `json:"fare_breakdown"`
	ExtraServices  []BookedService     `json:"extra_services"`
	BookingNotes   []BookingNote       `json:"booking_notes"`
}

type TripDetails struct {
	Outbound          TripLeg  `json:"outbound"`
	Inbound           *TripLeg `json:"inbound,omitempty"`
	IsRoundTrip       bool     `json:"is_round_trip"`
	TargetEnvironment string   `json:"target_environment,omitempty"`
}

type TripSummary struct {
	IsRoundTrip        bool           `json:"is_round_trip"`
	TotalPassengers    int            `json:"total_passengers"`
	PassengerTypes     map[string]int `json:"passenger_types"`
	TotalSegments      int            `json:"total_segments"`
	TotalExtraServices int            `json:"total_extra_services"`
	BookingStatus      string         `json:"booking_status"`
	TicketStatus       string         `json:"ticket_status"`
	TotalAmount        RoundedFloat   `json:"total_amount"`
	Currency           string         `json:"currency"`
}

type FlightTripDetailsResponse struct {
	Result
	TripDetails *TripDetails `json:"trip_details,omitempty"`
	Summary     *TripSummary `json:"summary,omitempty"`
	Diagnostics
}

type TicketOrderDetails struct {
	Success           bool   `json:"success"`
	UniqueID          string `json:"unique_id"`
	TargetEnvironment string `json:"target_environment"`
	TicketStatus      string `json:"ticket_status"`
	Message           string `json:"message"`
}

type FlightTicketOrderResponse struct {
	Result
	TicketOrder *TicketOrderDetails `json:"ticket_order,omitempty"`
	Diagnostics
}

type FlightCancellationDetails struct {
	Success               bool   `json:"success"`
	UniqueID              string `json:"unique_id"`
	TargetEnvironment     string `json:"target_environment"`
	BookingStatus         string `json:"booking_status"`
	Message               string `json:"message"`
	CancellationConfirmed bool   `json:"cancellation_confirmed"`
}

type FlightCancelResponse struct {
	Result
	Cancellation *FlightCancellationDetails `json:"cancellation,omitempty"`
	Diagnostics
}

type Airport struct {
	AirportCode string `json:"airport_code"`
	AirportName string `json:"airport_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	DisplayName string `json:"display_name"`
	SearchText  string `json:"search_text"`
}

type AirportListResponse struct {
	Result
	Airports      []Airport `json:"airports"`
	TotalAirports int       `json:"total_airports"`
	Diagnostics
}

type Airline struct {
	AirlineCode string `json:"airline_code"`
	AirlineName string `json:"airline_name"`
	LogoURL     string `json:"logo_url"`
	DisplayName string `json:"display_name"`
	SearchText  string `json:"search_text"`
	HasLogo     bool   `json:"has_logo"`
}

type AirlineListResponse struct {
	Result
	Airlines      []Airline `json:"airlines"`
	TotalAirlines int       `json:"total_airlines"`
	Diagnostics
}
