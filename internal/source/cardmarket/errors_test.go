package cardmarket

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func apiErrorFor(status int, header http.Header, body string) *APIError {
	req, _ := http.NewRequest(http.MethodGet, "https://api.example.com/ws/v2.0/output.json/articles/1?start=0", nil)
	resp := &http.Response{StatusCode: status, Header: header}
	return newAPIError(req, resp, []byte(body))
}

func TestAPIError_RateLimitExceeded(t *testing.T) {
	limits := func(count, limit string) http.Header {
		h := http.Header{}
		h.Set(headerLimitCount, count)
		h.Set(headerLimitMax, limit)
		return h
	}

	tests := []struct {
		name   string
		status int
		header http.Header
		want   bool
	}{
		{name: "quota used up", status: http.StatusTooManyRequests, header: limits("5000", "5000"), want: true},
		{name: "over quota", status: http.StatusTooManyRequests, header: limits("5001", "5000"), want: true},
		{name: "quota left", status: http.StatusTooManyRequests, header: limits("12", "5000"), want: false},
		{name: "no limit headers", status: http.StatusTooManyRequests, header: http.Header{}, want: false},
		{name: "malformed headers", status: http.StatusTooManyRequests, header: limits("many", "5000"), want: false},
		{name: "not a 429", status: http.StatusForbidden, header: limits("5000", "5000"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apiErrorFor(tt.status, tt.header, "").RateLimitExceeded())
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	h := http.Header{}
	h.Set(headerLimitCount, "12")
	h.Set(headerLimitMax, "5000")

	err := apiErrorFor(http.StatusTooManyRequests, h, "")

	assert.Equal(t, "GET https://api.example.com/ws/v2.0/output.json/articles/1?start=0: unexpected status 429 (requests 12/5000)", err.Error())
	assert.True(t, err.HasLimit)
	assert.Equal(t, 12, err.LimitCount)
	assert.Equal(t, 5000, err.LimitMax)
}

func TestAPIError_TruncatesBody(t *testing.T) {
	err := apiErrorFor(http.StatusInternalServerError, http.Header{}, strings.Repeat("x", 2000))

	assert.Len(t, err.Body, maxErrorBody)
	assert.True(t, err.temporary())
	assert.False(t, apiErrorFor(http.StatusNotFound, http.Header{}, "").temporary())
}
