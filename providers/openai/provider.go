package openai

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/petal-labs/aidraw/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the OpenAI API key.
const DefaultAPIKeyEnvVar = "OPENAI_API_KEY"

// providerID labels errors and telemetry events.
const providerID = "openai"

// OpenAI is an image generation client for the OpenAI API.
type OpenAI struct {
	config Config
}

// New creates a new OpenAI provider with the given API key and options.
func New(apiKey string, opts ...Option) *OpenAI {
	cfg := Config{
		APIKey:       core.NewSecret(apiKey),
		BaseURL:      DefaultBaseURL,
		HTTPClient:   http.DefaultClient,
		Telemetry:    core.NoopTelemetryHook{},
		NewRequestID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.DebugLimit <= 0 {
		cfg.DebugLimit = DefaultDebugLimit
	}

	return &OpenAI{config: cfg}
}

// ID returns the provider identifier.
func (p *OpenAI) ID() string {
	return providerID
}

// buildHeaders constructs the HTTP headers for an API request.
func (p *OpenAI) buildHeaders(requestID string) http.Header {
	headers := make(http.Header)

	headers.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json; charset=utf-8")
	if requestID != "" {
		headers.Set("X-Client-Request-Id", requestID)
	}

	for key, values := range p.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

var _ core.ImageGenerator = (*OpenAI)(nil)
