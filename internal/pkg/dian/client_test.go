package dian

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_valid":true,"uuid":"cune-1","number":"SLE5","issue_date":"2024-03-31 10:00:00","zip_key":"zip-9","status_code":"00","status_description":"Procesado Correctamente."}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", Token: "tok", Timeout: time.Second})
	result, err := client.Validate(context.Background(), &payload.Payload{Sequence: &payload.Sequence{Prefix: "SLE", Number: 5}}, true)
	require.NoError(t, err)

	assert.Equal(t, "/payroll", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Contains(t, gotBody, "sequence")
	assert.True(t, result.IsValid)
	assert.Equal(t, "cune-1", result.UUID)
	assert.Equal(t, "SLE5", result.Number)
	assert.Equal(t, "zip-9", result.ZipKey)
	require.NotNil(t, result.IssueDate)
	assert.Equal(t, "2024-03-31", result.IssueDate.Format(payload.DateLayout))
}

func TestClient_TestEnvironmentPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"is_valid":false,"status_code":"99","errors_messages":["Regla: 90"]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	_, err := client.Validate(ctx, &payload.Payload{}, false)
	require.NoError(t, err)
	_, err = client.StatusZip(ctx, &payload.Payload{}, false)
	require.NoError(t, err)
	result, err := client.StatusDocumentLog(ctx, &payload.Payload{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"/payroll/test", "/payroll/status-zip/test", "/payroll/status-document-log/test"}, paths)
	assert.Equal(t, []string{"Regla: 90"}, result.Errors)
	assert.Nil(t, result.IssueDate)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"invalid_payload","message":"employee is required"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Validate(context.Background(), &payload.Payload{}, true)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid_payload", apiErr.ErrorCode)
	assert.Equal(t, "employee is required", apiErr.Message)
}

func TestClient_APIError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.StatusZip(context.Background(), &payload.Payload{}, true)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.StatusZip(context.Background(), &payload.Payload{}, false)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_ResponseTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_valid":true,"status_description":"`))
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBytes)))
		_, _ = w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Validate(context.Background(), &payload.Payload{}, true)

	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestClient_ResponseAtLimit(t *testing.T) {
	prefix := `{"is_valid":true,"status_description":"`
	suffix := `"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(prefix))
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBytes-len(prefix)-len(suffix))))
		_, _ = w.Write([]byte(suffix))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result, err := client.Validate(context.Background(), &payload.Payload{}, true)

	require.NoError(t, err)
	assert.True(t, result.IsValid)
}
