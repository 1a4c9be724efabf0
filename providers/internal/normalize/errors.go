// Package normalize converts provider HTTP failures into core errors.
package normalize

import (
	"encoding/json"
	"net/http"

	"github.com/petal-labs/aidraw/core"
)

// openAIStyleErrorResponse matches the envelope
// {"error":{"message":"...","type":"...","code":"..."}}.
type openAIStyleErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// OpenAIStyleProviderError normalizes an error response that uses the
// OpenAI error envelope. A body that is not such an envelope is kept as the
// message so the HTTP detail still reaches the user.
func OpenAIStyleProviderError(provider string, status int, body []byte, requestID string) error {
	var errResp openAIStyleErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ProviderError(provider, status, requestID, "", trimBody(body), nil)
	}

	code := errResp.Error.Code
	if code == "" {
		code = errResp.Error.Type
	}

	return ProviderError(provider, status, requestID, code, errResp.Error.Message, nil)
}

// NetworkError wraps transport failures as provider-specific network errors.
func NetworkError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// DecodeError wraps decode and data-shape failures.
func DecodeError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Code:     "decode_error",
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// ProviderError constructs a normalized ProviderError.
// If message is empty, HTTP status text is used.
// If sentinel is nil, status-based mapping is applied.
func ProviderError(provider string, status int, requestID, code, message string, sentinel error) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if sentinel == nil {
		sentinel = SentinelForStatus(status)
	}
	return &core.ProviderError{
		Provider:  provider,
		Status:    status,
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Err:       sentinel,
	}
}

// SentinelForStatus maps an HTTP status code to a core sentinel error.
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status >= 400 && status < 500:
		return core.ErrBadRequest
	default:
		return core.ErrServer
	}
}

const maxBodyMessage = 512

func trimBody(body []byte) string {
	if len(body) > maxBodyMessage {
		return string(body[:maxBodyMessage]) + "..."
	}
	return string(body)
}
