package requesting

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/tripyverse/travelnext-hub/internal/schema"
)

// RetryPolicy retries reference data lookups on connection failures and
// throttling. Transactional supplier calls must not use it.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	Limiter     *rate.Limiter
}

func NewReferenceRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     500 * time.Millisecond,
		Limiter:     rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

func shouldRetry(response *http.Response, err error) bool {
	if err != nil {
		return true
	}

	return response.StatusCode == http.StatusTooManyRequests || response.StatusCode >= 500
}

// retryAfter prefers the supplier's Retry-After header over the scaled
// backoff when the header carries a parsable seconds value.
func (p RetryPolicy) retryAfter(response *http.Response, attempt int) time.Duration {
	wait := p.Backoff * time.Duration(attempt+1)

	if response == nil {
		return wait
	}

	header := response.Header.Get("Retry-After")
	if header == "" {
		return wait
	}

	seconds, err := strconv.Atoi(header)
	if err != nil {
		return wait
	}

	return time.Duration(seconds) * time.Second
}

// Do executes the request, rebuilding it per attempt since request bodies
// cannot be replayed.
func (p RetryPolicy) Do(
	ctx context.Context,
	client *http.Client,
	makeRequest func() (*http.Request, error),
) (*http.Response, *schema.SupplierResponseError) {
	var (
		response *http.Response
		err      error
	)

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if p.Limiter != nil {
			if waitErr := p.Limiter.Wait(ctx); waitErr != nil {
				e := schema.NewConnectionError(waitErr.Error())
				return nil, &e
			}
		}

		request, buildErr := makeRequest()
		if buildErr != nil {
			e := schema.NewConnectionError(buildErr.Error())
			return nil, &e
		}

		response, err = client.Do(request)

		if !shouldRetry(response, err) {
			return RequestErrors(response, err)
		}

		if attempt == p.MaxAttempts-1 {
			break
		}

		wait := p.retryAfter(response, attempt)

		if response != nil {
			response.Body.Close()
		}

		select {
		case <-ctx.Done():
			e := schema.NewConnectionError(ctx.Err().Error())
			return nil, &e
		case <-time.After(wait):
		}
	}

	return RequestErrors(response, err)
}
