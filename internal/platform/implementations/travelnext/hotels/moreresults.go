package hotels

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type moreResultsQuery struct {
	SessionID string `url:"sessionId"`
	NextToken string `url:"nextToken"`
	MaxResult int    `url:"maxResult,omitempty"`
}

// GetMoreResults pulls the next page of an open search session. The
// paginated variant lets the supplier choose the page size.
func (s *service) GetMoreResults(
	ctx context.Context,
	params schema.HotelMoreResultsParams,
	logger *zerolog.Logger,
) (schema.HotelSearchResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:more-results")
	defer slowLogger.Stop("hotels:more-results")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelSearchResponse{
		Hotels: []schema.HotelListing{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	query := moreResultsQuery{
		SessionID: params.SessionID,
		NextToken: params.NextToken,
	}

	path := "/moreResultsPagination"
	if !params.Paginated {
		path = "/moreResults"

		query.MaxResult = params.MaxResult
		if query.MaxResult <= 0 {
			query.MaxResult = 20
		}
	}

	decoded, supplierError := s.requestSupplierQuery(
		ctx,
		schema.HotelMoreResultsRequest,
		path,
		query,
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

	if noResultsIn(decoded) {
		errorsBucket.AddError(schema.NewSupplierError(noHotelsMessage))
		response.Result = schema.FailedResult(noHotelsMessage)

		return response, nil
	}

	response.Hotels, response.Metadata = searchPageFrom(decoded)
	response.Result = schema.OkResult()

	return response, nil
}
