package quickbooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gymstack/accounting-service/internal/domain/provider"
	"go.uber.org/zap"
)

const (
	defaultBaseURL      = "https://quickbooks.api.intuit.com"
	defaultMinorVersion = "65"
)

// Client talks to the QuickBooks Online v3 API for one tenant (realm).
type Client struct {
	baseURL      string
	minorVersion string
	realmID      string
	accessToken  string
	client       *http.Client
	logger       *zap.Logger
}

// NewClient creates a QuickBooks client from the gym's integration
// credentials. baseURL and minorVersion fall back to production defaults.
func NewClient(baseURL, minorVersion, realmID, accessToken string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if minorVersion == "" {
		minorVersion = defaultMinorVersion
	}
	return &Client{
		baseURL:      baseURL,
		minorVersion: minorVersion,
		realmID:      realmID,
		accessToken:  accessToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return string(provider.ProviderTypeQuickBooks)
}

// Supported reports that QuickBooks exports are implemented.
func (c *Client) Supported() bool {
	return true
}

// post sends a JSON request to a company-scoped resource endpoint and decodes
// the response into out.
func (c *Client) post(ctx context.Context, resource string, body interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return &provider.ProviderError{
			Code:    "MARSHAL_ERROR",
			Message: "Failed to prepare request",
			Details: err.Error(),
		}
	}

	reqURL := fmt.Sprintf("%s/v3/company/%s/%s?minorversion=%s",
		c.baseURL, c.realmID, resource, c.minorVersion)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return &provider.ProviderError{
			Code:    "REQUEST_ERROR",
			Message: "Failed to create request",
			Details: err.Error(),
		}
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("QuickBooks: API request failed",
			zap.String("resource", resource),
			zap.Error(err))
		return &provider.ProviderError{
			Code:    "API_ERROR",
			Message: "QuickBooks API request failed",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &provider.ProviderError{
			Code:    "RESPONSE_ERROR",
			Message: "Failed to read response",
			Details: err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return c.faultError(resource, resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse response",
			Details: err.Error(),
		}
	}
	return nil
}

// query runs a QuickBooks SQL-like query and decodes the response into out.
func (c *Client) query(ctx context.Context, q string, out interface{}) error {
	reqURL := fmt.Sprintf("%s/v3/company/%s/query?query=%s&minorversion=%s",
		c.baseURL, c.realmID, url.QueryEscape(q), c.minorVersion)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &provider.ProviderError{
			Code:    "REQUEST_ERROR",
			Message: "Failed to create request",
			Details: err.Error(),
		}
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("QuickBooks: query failed", zap.Error(err))
		return &provider.ProviderError{
			Code:    "API_ERROR",
			Message: "QuickBooks API request failed",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &provider.ProviderError{
			Code:    "RESPONSE_ERROR",
			Message: "Failed to read response",
			Details: err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return c.faultError("query", resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse response",
			Details: err.Error(),
		}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// faultError converts a QuickBooks fault response into a ProviderError.
func (c *Client) faultError(resource string, status int, body []byte) error {
	c.logger.Error("QuickBooks: API returned error",
		zap.String("resource", resource),
		zap.Int("status_code", status),
		zap.String("response", string(body)))

	var fault struct {
		Fault struct {
			Error []struct {
				Message string `json:"Message"`
				Detail  string `json:"Detail"`
				Code    string `json:"code"`
			} `json:"Error"`
		} `json:"Fault"`
	}
	_ = json.Unmarshal(body, &fault)

	code := fmt.Sprintf("HTTP_%d", status)
	message := "QuickBooks API returned an error"
	if len(fault.Fault.Error) > 0 {
		if fault.Fault.Error[0].Code != "" {
			code = fault.Fault.Error[0].Code
		}
		if fault.Fault.Error[0].Message != "" {
			message = fault.Fault.Error[0].Message
		}
	}

	return &provider.ProviderError{
		Code:    code,
		Message: message,
		Details: string(body),
	}
}
