package dian

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
)

const (
	pathValidate          = "/payroll"
	pathStatusZip         = "/payroll/status-zip"
	pathStatusDocumentLog = "/payroll/status-document-log"
	testSuffix            = "/test"

	maxResponseBytes = 1 << 20
)

var (
	// ErrNotConfigured is returned when no gateway URL was configured.
	ErrNotConfigured = errors.New("electronic payroll gateway is not configured")
	// ErrResponseTooLarge is returned when the gateway answers with more than maxResponseBytes.
	ErrResponseTooLarge = errors.New("electronic payroll gateway response is too large")
)

// Config holds the gateway connection settings
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the electronic payroll gateway over HTTP
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new gateway client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError represents a gateway error response
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dian API error [%d] %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

type resultBody struct {
	IsValid           bool     `json:"is_valid"`
	UUID              string   `json:"uuid"`
	Number            string   `json:"number"`
	IssueDate         string   `json:"issue_date"`
	ZipKey            string   `json:"zip_key"`
	StatusCode        string   `json:"status_code"`
	StatusDescription string   `json:"status_description"`
	ErrorsMessages    []string `json:"errors_messages"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate submits the document for validation.
func (c *Client) Validate(ctx context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return c.post(ctx, pathValidate, p, isNotTest)
}

// StatusZip queries the processing status of a test submission.
func (c *Client) StatusZip(ctx context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return c.post(ctx, pathStatusZip, p, isNotTest)
}

// StatusDocumentLog queries the document log of a submission.
func (c *Client) StatusDocumentLog(ctx context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return c.post(ctx, pathStatusDocumentLog, p, isNotTest)
}

func (c *Client) post(ctx context.Context, path string, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	if c.baseURL == "" {
		return payslipedi.Result{}, ErrNotConfigured
	}

	body, err := json.Marshal(p)
	if err != nil {
		return payslipedi.Result{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	url := c.baseURL + path
	if !isNotTest {
		url += testSuffix
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return payslipedi.Result{}, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payslipedi.Result{}, fmt.Errorf("failed to call gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return payslipedi.Result{}, fmt.Errorf("failed to read gateway response: %w", err)
	}
	if len(raw) > maxResponseBytes {
		return payslipedi.Result{}, ErrResponseTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			apiErr.ErrorCode = eb.Code
			apiErr.Message = eb.Message
		}
		return payslipedi.Result{}, apiErr
	}

	var rb resultBody
	if err := json.Unmarshal(raw, &rb); err != nil {
		return payslipedi.Result{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	result := payslipedi.Result{
		IsValid:           rb.IsValid,
		UUID:              rb.UUID,
		Number:            rb.Number,
		ZipKey:            rb.ZipKey,
		StatusCode:        rb.StatusCode,
		StatusDescription: rb.StatusDescription,
		Errors:            rb.ErrorsMessages,
	}
	if rb.IssueDate != "" {
		issued, err := time.Parse(payload.DateLayout, rb.IssueDate[:min(len(rb.IssueDate), len(payload.DateLayout))])
		if err != nil {
			return payslipedi.Result{}, fmt.Errorf("invalid issue_date %q: %w", rb.IssueDate, err)
		}
		result.IssueDate = &issued
	}
	return result, nil
}
