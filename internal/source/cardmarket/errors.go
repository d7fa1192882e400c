package cardmarket

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	headerLimitCount = "X-Request-Limit-Count"
	headerLimitMax   = "X-Request-Limit-Max"

	maxErrorBody = 512
)

// APIError is returned for every non-2xx marketplace response.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	LimitCount int
	LimitMax   int
	HasLimit   bool
	Body       string
}

func newAPIError(req *http.Request, resp *http.Response, body []byte) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode,
		Method:     req.Method,
		URL:        req.URL.Redacted(),
	}

	count, errCount := strconv.Atoi(resp.Header.Get(headerLimitCount))
	limit, errMax := strconv.Atoi(resp.Header.Get(headerLimitMax))
	if errCount == nil && errMax == nil {
		e.LimitCount = count
		e.LimitMax = limit
		e.HasLimit = true
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	e.Body = string(body)

	return e
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	if e.HasLimit {
		msg += fmt.Sprintf(" (requests %d/%d)", e.LimitCount, e.LimitMax)
	}
	return msg
}

// RateLimitExceeded reports whether the daily request quota is used up.
func (e *APIError) RateLimitExceeded() bool {
	return e.StatusCode == http.StatusTooManyRequests && e.HasLimit && e.LimitCount >= e.LimitMax
}

func (e *APIError) temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}
