package normalize

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/petal-labs/aidraw/core"
)

func TestOpenAIStyleProviderError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         []byte
		requestID    string
		wantCode     string
		wantMsg      string
		wantSentinel error
	}{
		{
			name:         "bad request",
			status:       http.StatusBadRequest,
			body:         []byte(`{"error":{"message":"Invalid size","type":"invalid_request_error","code":"invalid_size"}}`),
			requestID:    "req-123",
			wantCode:     "invalid_size",
			wantMsg:      "Invalid size",
			wantSentinel: core.ErrBadRequest,
		},
		{
			name:         "fallback to type",
			status:       http.StatusUnauthorized,
			body:         []byte(`{"error":{"message":"Invalid API key","type":"authentication_error"}}`),
			requestID:    "req-456",
			wantCode:     "authentication_error",
			wantMsg:      "Invalid API key",
			wantSentinel: core.ErrUnauthorized,
		},
		{
			name:         "fallback to status text",
			status:       http.StatusBadGateway,
			body:         []byte(`{}`),
			wantMsg:      "Bad Gateway",
			wantSentinel: core.ErrServer,
		},
		{
			name:         "non json body kept as message",
			status:       http.StatusServiceUnavailable,
			body:         []byte("upstream unavailable"),
			wantMsg:      "upstream unavailable",
			wantSentinel: core.ErrServer,
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         []byte(`{"error":{"message":"Unknown model"}}`),
			wantMsg:      "Unknown model",
			wantSentinel: core.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OpenAIStyleProviderError("test-provider", tt.status, tt.body, tt.requestID)

			var provErr *core.ProviderError
			if !errors.As(err, &provErr) {
				t.Fatal("expected *core.ProviderError")
			}
			if provErr.Provider != "test-provider" {
				t.Errorf("Provider = %q, want test-provider", provErr.Provider)
			}
			if provErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", provErr.Status, tt.status)
			}
			if provErr.RequestID != tt.requestID {
				t.Errorf("RequestID = %q, want %q", provErr.RequestID, tt.requestID)
			}
			if provErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", provErr.Code, tt.wantCode)
			}
			if provErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", provErr.Message, tt.wantMsg)
			}
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.wantSentinel)
			}
		})
	}
}

func TestOpenAIStyleProviderErrorTrimsLongBody(t *testing.T) {
	body := []byte(strings.Repeat("x", 2000))
	err := OpenAIStyleProviderError("openai", http.StatusInternalServerError, body, "")

	var provErr *core.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatal("expected *core.ProviderError")
	}
	if len(provErr.Message) != maxBodyMessage+3 {
		t.Errorf("len(Message) = %d, want %d", len(provErr.Message), maxBodyMessage+3)
	}
}

func TestNetworkError(t *testing.T) {
	err := NetworkError("openai", errors.New("connection refused"))
	if !errors.Is(err, core.ErrNetwork) {
		t.Error("NetworkError should wrap core.ErrNetwork")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, should contain cause", err.Error())
	}
}

func TestDecodeError(t *testing.T) {
	err := DecodeError("openai", errors.New("missing data"))
	if !errors.Is(err, core.ErrDecode) {
		t.Error("DecodeError should wrap core.ErrDecode")
	}
}

func TestSentinelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, core.ErrBadRequest},
		{http.StatusUnauthorized, core.ErrUnauthorized},
		{http.StatusForbidden, core.ErrUnauthorized},
		{http.StatusNotFound, core.ErrBadRequest},
		{http.StatusConflict, core.ErrBadRequest},
		{http.StatusTooManyRequests, core.ErrBadRequest},
		{http.StatusInternalServerError, core.ErrServer},
		{http.StatusBadGateway, core.ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			if got := SentinelForStatus(tt.status); got != tt.want {
				t.Errorf("SentinelForStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
