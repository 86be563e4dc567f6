package calculator

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/crossroads/crossroads-api/internal/household"
)

// DefaultTimeout bounds a single calculator round trip. Point computations
// for large households can take several seconds on a cold engine.
const DefaultTimeout = 30 * time.Second

// PolicyEngineClient talks to a hosted PolicyEngine US calculation service
// over HTTP.
type PolicyEngineClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// PolicyEngineOption configures the client.
type PolicyEngineOption func(*PolicyEngineClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) PolicyEngineOption {
	return func(p *PolicyEngineClient) { p.httpClient = c }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) PolicyEngineOption {
	return func(p *PolicyEngineClient) { p.httpClient.Timeout = d }
}

// NewPolicyEngineClient creates a calculator client for the given base URL.
func NewPolicyEngineClient(baseURL string, logger *zap.Logger, opts ...PolicyEngineOption) *PolicyEngineClient {
	client := &PolicyEngineClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type calculateRequest struct {
	Year      int       `json:"year"`
	Situation situation `json:"situation"`
}

type calculateResponse struct {
	Programs map[string]float64 `json:"programs"`
	Error    string             `json:"error,omitempty"`
}

// Compute sends the household to the calculation service and returns the
// per-program breakdown. Rejections come back as *CalculationError;
// timeouts and server unavailability as *TimeoutError.
func (c *PolicyEngineClient) Compute(ctx context.Context, h household.Household) (Breakdown, error) {
	payload, err := json.Marshal(calculateRequest{
		Year:      h.Year,
		Situation: buildSituation(h),
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding situation")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "building calculate request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TimeoutError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TimeoutError{Err: err}
	}

	c.logger.Debug("calculator round trip",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("members", h.Size()))

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode >= http.StatusInternalServerError,
		resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests:
		return nil, &TimeoutError{Err: errors.Errorf("calculator returned status %d", resp.StatusCode)}
	default:
		return nil, &CalculationError{Status: resp.StatusCode, Reason: decodeErrorReason(body)}
	}

	var decoded calculateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "decoding calculator response")
	}
	if decoded.Error != "" {
		return nil, &CalculationError{Status: resp.StatusCode, Reason: decoded.Error}
	}
	return decoded.Programs, nil
}

func decodeErrorReason(body []byte) string {
	var decoded calculateResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return strings.TrimSpace(string(body))
}
