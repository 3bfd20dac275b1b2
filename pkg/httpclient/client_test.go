package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Message string `json:"message"`
}

func TestBuildQueryString(t *testing.T) {
	assert.Equal(t, "", buildQueryString(nil))
	assert.Equal(t, "a=1", buildQueryString(map[string]string{"a": "1"}))

	// Keys are sorted so the same params always produce the same URL.
	query := buildQueryString(map[string]string{"longitude": "-0.12", "latitude": "51.5", "hourly": "temperature_2m"})
	assert.Equal(t, "hourly=temperature_2m&latitude=51.5&longitude=-0.12", query)
}

func TestBuildURL(t *testing.T) {
	client := NewClient("http://provider.test/v1/", ClientOptions{RawQuery: "timezone=UTC&models=best_match"})

	full := client.buildURL("forecast", map[string]string{"latitude": "51.5"})
	assert.Equal(t, "http://provider.test/v1/forecast?latitude=51.5&timezone=UTC&models=best_match", full)

	full = client.buildURL("/forecast", nil)
	assert.Equal(t, "http://provider.test/v1/forecast?timezone=UTC&models=best_match", full)
}

func TestBuildURL_EmptyPathRequestsBaseURLExactly(t *testing.T) {
	client := NewClient("http://provider.test/v1/forecast", ClientOptions{})

	full := client.buildURL("", map[string]string{"latitude": "51.5"})
	assert.Equal(t, "http://provider.test/v1/forecast?latitude=51.5", full)

	full = client.buildURL("", nil)
	assert.Equal(t, "http://provider.test/v1/forecast", full)
}

func TestExecute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, ClientOptions{RequestTimeout: 2 * time.Second})

	var raw []byte
	successResp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithMethod(GET).
		WithPath("/").
		WithSuccessResp(&echoPayload{}).
		WithRawBody(&raw).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", successResp.(*echoPayload).Message)
	assert.JSONEq(t, `{"message":"hello"}`, string(raw))
}

func TestExecute_ErrorResponseSingleAttempt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, ClientOptions{RequestTimeout: 2 * time.Second})

	successResp, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/").
		WithSuccessResp(&echoPayload{}).
		WithErrorResp(&echoPayload{}).
		Execute()

	require.Error(t, err)
	assert.Nil(t, successResp)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "down", errResp.(*echoPayload).Message)
	assert.Equal(t, 1, calls)
}

func TestExecute_PlainTextErrorBodyIsBestEffort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, ClientOptions{RequestTimeout: 2 * time.Second})

	var raw []byte
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/").
		WithSuccessResp(&echoPayload{}).
		WithErrorResp(&echoPayload{}).
		WithRawBody(&raw).
		Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, `<html>bad gateway</html>`, string(raw))
}

func TestExecute_NetworkErrorHasZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(serverURL, ClientOptions{RequestTimeout: time.Second})

	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/").
		Execute()

	require.Error(t, err)
	assert.Zero(t, status)
}
