package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/pkg/requestid"
)

// Client is an HTTP client for the fitting room API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("fitting room service returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fitting room service returned status %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
}

func (c *Client) GetInfo(ctx context.Context) (*v1alpha1.Info, error) {
	var info v1alpha1.Info
	if err := c.do(ctx, http.MethodGet, "/api/v1/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetSizeChart(ctx context.Context) (*v1alpha1.SizeChart, error) {
	var chart v1alpha1.SizeChart
	if err := c.do(ctx, http.MethodGet, "/api/v1/size-chart", nil, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

func (c *Client) CreateRecommendation(ctx context.Context, m v1alpha1.Measurements) (*v1alpha1.Recommendation, error) {
	var rec v1alpha1.Recommendation
	if err := c.do(ctx, http.MethodPost, "/api/v1/recommendations", m, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		httpReq.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call fitting room service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(bodyBytes))}
		var errBody v1alpha1.Error
		if json.Unmarshal(bodyBytes, &errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
			apiErr.RequestID = errBody.RequestId
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
