package schema

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/tripyverse/travelnext-hub/internal/tools/converting"
)

type Key string

const (
	RequestingTypeKey Key = "requestingType"
)

// SupplierRequestName labels an outgoing supplier call in the
// supplier_requests diagnostics bucket.
type SupplierRequestName string

const (
	FlightSearchRequest        SupplierRequestName = "flight:search"
	FlightRevalidateRequest    SupplierRequestName = "flight:revalidate"
	FlightBookRequest          SupplierRequestName = "flight:book"
	FlightExtraServicesRequest SupplierRequestName = "flight:extra-services"
	FlightFareRulesRequest     SupplierRequestName = "flight:fare-rules"
	FlightTripDetailsRequest   SupplierRequestName = "flight:trip-details"
	FlightTicketOrderRequest   SupplierRequestName = "flight:ticket-order"
	FlightCancelRequest        SupplierRequestName = "flight:cancel"
	AirportListRequest         SupplierRequestName = "flight:airport-list"
	AirlineListRequest         SupplierRequestName = "flight:airline-list"

	HotelSearchRequest         SupplierRequestName = "hotel:search"
	HotelMoreResultsRequest    SupplierRequestName = "hotel:more-results"
	HotelFilterRequest         SupplierRequestName = "hotel:filter"
	HotelMoreFilterRequest     SupplierRequestName = "hotel:more-filter-results"
	HotelDetailsRequest        SupplierRequestName = "hotel:details"
	HotelRoomRatesRequest      SupplierRequestName = "hotel:room-rates"
	HotelBookRequest           SupplierRequestName = "hotel:book"
	HotelBookingDetailsRequest SupplierRequestName = "hotel:booking-details"
	HotelCancelRequest         SupplierRequestName = "hotel:cancel"
	HotelStaticContentRequest  SupplierRequestName = "hotel:static-content"
	HotelCitiesRequest         SupplierRequestName = "hotel:cities"
)

type RequestContent struct {
	Url     *string                 `json:"url,omitempty"`
	Method  *string                 `json:"method,omitempty"`
	Body    *string                 `json:"body,omitempty"`
	Headers *map[string]interface{} `json:"headers,omitempty"`
}

type ResponseContent struct {
	StatusCode *int                    `json:"statusCode,omitempty"`
	Body       *string                 `json:"body,omitempty"`
	Headers    *map[string]interface{} `json:"headers,omitempty"`
}

type SupplierRequest struct {
	Name            *SupplierRequestName `json:"name,omitempty"`
	StartDateTime   *time.Time           `json:"startDateTime,omitempty"`
	Duration        *int                 `json:"duration,omitempty"`
	RequestContent  *RequestContent      `json:"requestContent,omitempty"`
	ResponseContent *ResponseContent     `json:"responseContent,omitempty"`
}

type SupplierRequests []SupplierRequest

type supplierRequestsBucket struct {
	supplierRequests SupplierRequests
	sync.Mutex
}

func NewSupplierRequestsBucket() supplierRequestsBucket {
	return supplierRequestsBucket{
		supplierRequests: []SupplierRequest{},
	}
}

func (r *supplierRequestsBucket) SupplierRequests() *SupplierRequests {
	return &r.supplierRequests
}

func (r *supplierRequestsBucket) AddRequests(requests SupplierRequests) {
	r.Lock()
	r.supplierRequests = append(r.supplierRequests, requests...)
	r.Unlock()
}

func (r *supplierRequestsBucket) FinishedRequest(
	requestType SupplierRequestName,
	startTime time.Time,
	statusCode int,
	method string,
	url string,
	requestBody string,
	requestHeaders http.Header,
	responseBody string,
	responseHeaders http.Header,
) {
	reqHeaders := converting.ConvertMap(requestHeaders)

	req := RequestContent{
		Url:     &url,
		Method:  &method,
		Body:    &requestBody,
		Headers: &reqHeaders,
	}

	historyRequest := SupplierRequest{
		Name:           &requestType,
		RequestContent: &req,
	}

	resHeaders := converting.ConvertMap(responseHeaders)

	res := ResponseContent{
		StatusCode: &statusCode,
		Headers:    &resHeaders,
		Body:       &responseBody,
	}

	historyRequest.ResponseContent = &res

	if os.Getenv("TEST") != "true" {
		duration := int(time.Since(startTime).Milliseconds())
		historyRequest.Duration = &duration
		historyRequest.StartDateTime = &startTime
	}

	r.Lock()
	r.supplierRequests = append(r.supplierRequests, historyRequest)
	r.Unlock()
}
