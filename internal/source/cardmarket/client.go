// Package cardmarket is the client of the Cardmarket REST API.
package cardmarket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"mpu/internal/domain"
	"mpu/internal/metrics"
)

const (
	endpointStock    = "stock/file"
	endpointProducts = "products"
	endpointArticles = "articles"
	endpointWrite    = "stock"
)

// Config holds marketplace client configuration.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	ItemTag           string
	Credentials       Credentials
}

// ArticleQuery filters the offers listed for a product.
type ArticleQuery struct {
	MinCondition domain.Condition
	MaxResults   int
	LanguageID   *int
	Foil         *bool
}

// Client talks to the marketplace. It is safe for concurrent use; all
// requests share one rate limiter.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	itemTag        string
	metrics        metrics.Recorder
	logger         *slog.Logger
}

// New creates a new marketplace client.
func New(cfg Config, recorder metrics.Recorder, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newSigningTransport(cfg.Credentials, http.DefaultTransport),
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		limiter:        rate.NewLimiter(limit, burst),
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		itemTag:        cfg.ItemTag,
		metrics:        recorder,
		logger:         logger.With("component", "cardmarket"),
	}
}

// FetchStock downloads the seller's full stock.
func (c *Client) FetchStock(ctx context.Context) ([]domain.StockRow, error) {
	body, _, err := c.get(ctx, endpointStock, endpointStock, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch stock: %w", err)
	}

	var resp StockResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode stock response: %w", err)
	}

	rows, err := DecodeStockFile(resp.Stock)
	if err != nil {
		return nil, err
	}

	c.logger.Info("fetched stock", "rows", len(rows))
	return rows, nil
}

// FetchProductInfo returns the catalogue entry of a product.
func (c *Client) FetchProductInfo(ctx context.Context, productID int64) (domain.ProductInfo, error) {
	path := endpointProducts + "/" + strconv.FormatInt(productID, 10)

	body, _, err := c.get(ctx, endpointProducts, path, nil)
	if err != nil {
		return domain.ProductInfo{}, fmt.Errorf("fetch product %d: %w", productID, err)
	}

	var resp ProductResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ProductInfo{}, fmt.Errorf("decode product %d: %w", productID, err)
	}
	return resp.Product, nil
}

// FetchProductArticles lists the offers of a product. A product without
// matching offers yields an empty, non-nil slice.
func (c *Client) FetchProductArticles(ctx context.Context, productID int64, q ArticleQuery) ([]domain.Article, error) {
	path := endpointArticles + "/" + strconv.FormatInt(productID, 10)

	body, status, err := c.get(ctx, endpointArticles, path, q.values())
	if err != nil {
		return nil, fmt.Errorf("fetch articles of product %d: %w", productID, err)
	}
	if status == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return []domain.Article{}, nil
	}

	var resp ArticlesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode articles of product %d: %w", productID, err)
	}
	if resp.Article == nil {
		return []domain.Article{}, nil
	}
	return resp.Article, nil
}

// WritePriceUpdates sends one stock write. Writes are never retried.
func (c *Client) WritePriceUpdates(ctx context.Context, updates []domain.PriceUpdate) (*WriteAck, error) {
	payload, err := EncodePriceUpdates(updates, c.itemTag)
	if err != nil {
		return nil, err
	}

	body, _, err := c.doRequest(ctx, endpointWrite, http.MethodPut, c.baseURL+"/"+endpointWrite, payload)
	if err != nil {
		return nil, fmt.Errorf("write %d price updates: %w", len(updates), err)
	}

	ack := &WriteAck{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, ack); err != nil {
			c.logger.Warn("failed to decode write acknowledgement", "error", err)
		}
	}
	if len(ack.NotUpdated) > 0 {
		c.logger.Warn("marketplace refused some updates",
			"sent", len(updates),
			"not_updated", len(ack.NotUpdated),
		)
	}
	return ack, nil
}

func (q ArticleQuery) values() url.Values {
	v := url.Values{}
	v.Set("start", "0")
	v.Set("maxResults", strconv.Itoa(q.MaxResults))
	v.Set("minCondition", string(q.MinCondition))
	if q.Foil != nil {
		v.Set("isFoil", strconv.FormatBool(*q.Foil))
	}
	if q.LanguageID != nil {
		v.Set("idLanguage", strconv.Itoa(*q.LanguageID))
	}
	v.Set("isSigned", "false")
	v.Set("isAltered", "false")
	return v
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, int, error) {
	target := c.baseURL + "/" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body []byte
	var status int
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, status, err = c.doRequest(ctx, endpoint, http.MethodGet, target, nil)
		if err == nil {
			return body, status, nil
		}
		if ctx.Err() != nil || !retryable(err) {
			return nil, status, err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"endpoint", endpoint,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, status, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, status, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

// doRequest sends one request through the signing transport.
func (c *Client) doRequest(ctx context.Context, endpoint, method, target string, payload []byte) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("wait for rate limiter: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mpu/1.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/xml")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RecordAPIResponse(endpoint, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(req, resp, data)
		c.logger.Error("marketplace request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"rate_limited", apiErr.RateLimitExceeded(),
		)
		return nil, resp.StatusCode, apiErr
	}

	return data, resp.StatusCode, nil
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.temporary()
	}
	return true
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
