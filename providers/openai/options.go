package openai

import (
	"io"
	"net/http"

	"github.com/petal-labs/aidraw/core"
)

// Config holds configuration for the OpenAI provider.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to https://api.openai.com/v1
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header

	// Telemetry receives request start/end events. Defaults to a no-op hook.
	Telemetry core.TelemetryHook

	// DebugWriter receives request and response dumps when non-nil.
	DebugWriter io.Writer

	// DebugLimit caps each dump in bytes. Zero or negative means DefaultDebugLimit.
	DebugLimit int

	// NewRequestID generates the X-Client-Request-Id value for each call.
	NewRequestID func() string
}

// DefaultBaseURL is the default OpenAI API base URL.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultDebugLimit is the default per-dump byte cap for debug output.
const DefaultDebugLimit = 4096

// Option configures the OpenAI provider.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithTelemetry installs a telemetry hook.
func WithTelemetry(hook core.TelemetryHook) Option {
	return func(c *Config) {
		if hook != nil {
			c.Telemetry = hook
		}
	}
}

// WithDebug enables request/response dumps to w, each truncated to limit bytes.
func WithDebug(w io.Writer, limit int) Option {
	return func(c *Config) {
		c.DebugWriter = w
		c.DebugLimit = limit
	}
}

// WithRequestIDFunc overrides how client request IDs are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Config) {
		if fn != nil {
			c.NewRequestID = fn
		}
	}
}
