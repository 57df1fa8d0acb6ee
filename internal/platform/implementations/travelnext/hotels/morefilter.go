package hotels

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type moreFilterQuery struct {
	SessionID string `url:"sessionId"`
	NextToken string `url:"nextToken"`
	FilterKey string `url:"filterKey"`
}

// GetMoreFilterResults continues a filtered result set. The filterKey
// from the first filter page must be echoed on every continuation.
func (s *service) GetMoreFilterResults(
	ctx context.Context,
	params schema.HotelMoreFilterResultsParams,
	logger *zerolog.Logger,
) (schema.HotelSearchResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("hotels:more-filter-results")
	defer slowLogger.Stop("hotels:more-filter-results")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.HotelSearchResponse{
		Hotels: []schema.HotelListing{},
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	// The supplier spells the non-paginated path with the typo.
	path := "/moreFiterResults"
	if params.Paginated {
		path = "/filterResultsPagination"
	}

	decoded, supplierError := s.requestSupplierQuery(
		ctx,
		schema.HotelMoreFilterRequest,
		path,
		moreFilterQuery{
			SessionID: params.SessionID,
			NextToken: params.NextToken,
			FilterKey: params.FilterKey,
		},
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

	response.Hotels, response.FilterMetadata = filterPageFrom(decoded)
	response.Result = schema.OkResult()

	return response, nil
}
