package core

import (
	"errors"
	"fmt"
)

// ProviderError is a failed call to the image generation API. Err is one of
// the sentinels below and decides how the CLI reports the failure.
type ProviderError struct {
	Provider  string
	Status    int // 0 when no HTTP response was received
	RequestID string
	Code      string
	Message   string
	Err       error
}

func (e *ProviderError) Error() string {
	msg := e.Provider + ": " + e.Message
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d", e.Status)
		if e.Code != "" {
			msg += " " + e.Code
		}
		msg += ")"
	}
	if e.RequestID != "" {
		msg += " [request " + e.RequestID + "]"
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Failure classes. The API side has three: the key was refused, the request
// was refused, or the service failed. Anything aidraw cannot tell apart
// shares a class.
var (
	ErrUnauthorized = errors.New("API key rejected")
	ErrBadRequest   = errors.New("request rejected")
	ErrServer       = errors.New("service error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("unexpected response shape")
	ErrDownload     = errors.New("download failed")
	ErrFilesystem   = errors.New("filesystem error")
)

// Validation errors, raised before any network call.
var (
	ErrMissingAPIKey = errors.New("missing API key: pass --key or set OPENAI_API_KEY (see aidraw --help)")
	ErrEmptyPrompt   = errors.New("empty prompt: pass one or more words describing the image (see aidraw --help)")
)
