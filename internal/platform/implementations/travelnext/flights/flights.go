// Package flights normalizes the TravelNext aero API into the hub's
// flight envelopes. Every operation reports supplier failures inside the
// envelope rather than through transport status codes.
package flights

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

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
			url:         config.FlightApiUrl,
			credentials: config.Credentials,
			timeouts:    config.Timeouts,
		},
		cache:       caching.NewRedisCache(redisClient),
		retryPolicy: requesting.NewReferenceRetryPolicy(),
	}
}

func (s *service) FlightSearchGroupingCacheKey(
	ctx context.Context,
	params schema.FlightSearchParams,
	log *zerolog.Logger,
) string {
	payload, _ := json.Marshal(params)

	return fmt.Sprintf("flights:search:%x", sha1.Sum(payload))
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

// requestSupplierRaw posts the payload and returns the raw body. Reference
// endpoints reply with bare arrays, hence the byte-level variant.
func (s *service) requestSupplierRaw(
	ctx context.Context,
	name schema.SupplierRequestName,
	path string,
	payload any,
	timeout time.Duration,
	logger *zerolog.Logger,
	bucket requesting.RequestBucket,
	retry *requesting.RetryPolicy,
) ([]byte, *schema.SupplierResponseError) {
	body, err := json.Marshal(payload)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	requestCtx := context.WithValue(ctx, schema.RequestingTypeKey, name)

	makeRequest := func() (*http.Request, error) {
		request, err := http.NewRequestWithContext(requestCtx, http.MethodPost, s.configuration.url+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "application/json")
		request.Header.Set("Accept", "application/json")

		return request, nil
	}

	client := s.httpClient(timeout, logger, bucket)

	var (
		response      *http.Response
		supplierError *schema.SupplierResponseError
	)

	if retry != nil {
		response, supplierError = retry.Do(requestCtx, client, makeRequest)
	} else {
		request, err := makeRequest()
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

	return responseBytes, nil
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
	responseBytes, supplierError := s.requestSupplierRaw(ctx, name, path, payload, timeout, logger, bucket, nil)
	if supplierError != nil {
		return nil, supplierError
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(responseBytes, &decoded); err != nil {
		e := schema.NewSupplierError("unable to parse supplier response")
		return nil, &e
	}

	return decoded, nil
}
