// Package hotels normalizes the TravelNext hotel API v6 into the hub's
// hotel envelopes. The search family is session-scoped: every pagination,
// filter and detail call replays the sessionId minted by the initial
// search.
package hotels

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	querystring "github.com/google/go-querystring/query"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/caching"
	"github.com/tripyverse/travelnext-hub/internal/tools/requesting"
)

type serviceConfiguration struct {
	url         string
	credentials schema.Credentials
	timeouts    schema.Timeouts
}

type service struct {
	configuration serviceConfiguration
	cache         *caching.Cacher
	retryPolicy   requesting.RetryPolicy
}

func New(redisClient *redis.Client, config schema.SupplierConfig) *service {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if ok {
		transport.DisableKeepAlives = true
	}

	return &service{
		configuration: serviceConfiguration{
			url:         config.HotelApiUrl,
			credentials: config.Credentials,
			timeouts:    config.Timeouts,
		},
		cache:       caching.NewRedisCache(redisClient),
		retryPolicy: requesting.NewReferenceRetryPolicy(),
	}
}

func (s *service) HotelSearchGroupingCacheKey(
	ctx context.Context,
	params schema.HotelSearchParams,
	log *zerolog.Logger,
) string {
	payload, _ := json.Marshal(params)

	return fmt.Sprintf("hotels:search:%x", sha1.Sum(payload))
}

func (s *service) httpClient(timeout time.Duration, logger *zerolog.Logger, bucket requesting.RequestBucket) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: http.DefaultTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger),
				requesting.NewBucketTransportMiddleware(bucket),
			},
		},
	}
}

func (s *service) searchTimeout() time.Duration {
	return time.Duration(s.configuration.timeouts.Search) * time.Millisecond
}

func (s *service) transactionalTimeout() time.Duration {
	return time.Duration(s.configuration.timeouts.Transactional) * time.Millisecond
}

func (s *service) referenceTimeout() time.Duration {
	return time.Duration(s.configuration.timeouts.Reference) * time.Millisecond
}

func (s *service) perform(
	ctx context.Context,
	name schema.SupplierRequestName,
	timeout time.Duration,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
	retry *requesting.RetryPolicy,
	makeRequest func(context.Context) (*http.Request, error),
) (map[string]interface{}, *schema.SupplierResponseError) {
	requestCtx := context.WithValue(ctx, schema.RequestingTypeKey, name)

	build := func() (*http.Request, error) {
		return makeRequest(requestCtx)
	}

	client := s.httpClient(timeout, logger, bucket)

	var (
		response      *http.Response
		supplierError *schema.SupplierResponseError
	)

	if retry != nil {
		response, supplierError = retry.Do(requestCtx, client, build)
	} else {
		request, err := build()
		if err != nil {
			e := schema.NewConnectionError(err.Error())
			return nil, &e
		}

		response, supplierError = requesting.RequestErrors(client.Do(request))
	}

	if supplierError != nil {
		return nil, supplierError
	}

	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(responseBytes, &decoded); err != nil {
		e := schema.NewSupplierError("unable to parse supplier response")
		return nil, &e
	}

	return decoded, nil
}

func (s *service) requestSupplier(
	ctx context.Context,
	name schema.SupplierRequestName,
	path string,
	payload any,
	timeout time.Duration,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
) (map[string]interface{}, *schema.SupplierResponseError) {
	body, err := json.Marshal(payload)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	return s.perform(ctx, name, timeout, logger, bucket, nil, func(requestCtx context.Context) (*http.Request, error) {
		request, err := http.NewRequestWithContext(requestCtx, http.MethodPost, s.configuration.url+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "application/json")
		request.Header.Set("Accept", "application/json")

		return request, nil
	})
}

// requestSupplierQuery issues a GET with the url-tagged fields of params
// encoded as query values. Reference lookups pass a retry policy, the
// session-scoped pagination calls do not.
func (s *service) requestSupplierQuery(
	ctx context.Context,
	name schema.SupplierRequestName,
	path string,
	params any,
	timeout time.Duration,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
	retry *requesting.RetryPolicy,
) (map[string]interface{}, *schema.SupplierResponseError) {
	values, err := querystring.Values(params)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	target := s.configuration.url + path + "?" + values.Encode()

	return s.perform(ctx, name, timeout, logger, bucket, retry, func(requestCtx context.Context) (*http.Request, error) {
		request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}

		request.Header.Set("Accept", "application/json")

		return request, nil
	})
}

// requestSupplierBodiedGet issues a GET that carries a JSON body. The
// filter endpoint reads its criteria from the body despite the verb.
func (s *service) requestSupplierBodiedGet(
	ctx context.Context,
	name schema.SupplierRequestName,
	path string,
	payload any,
	timeout time.Duration,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
) (map[string]interface{}, *schema.SupplierResponseError) {
	body, err := json.Marshal(payload)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	return s.perform(ctx, name, timeout, logger, bucket, nil, func(requestCtx context.Context) (*http.Request, error) {
		request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, s.configuration.url+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "application/json")
		request.Header.Set("Accept", "application/json")

		return request, nil
	})
}
