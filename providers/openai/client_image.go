package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/petal-labs/aidraw/core"
	"github.com/petal-labs/aidraw/providers/internal/normalize"
)

// imageGenerationsPath is the API endpoint for image generation.
const imageGenerationsPath = "/images/generations"

// Generate sends one generation request and returns the image URLs in the
// order the API listed them.
func (p *OpenAI) Generate(ctx context.Context, req *core.GenerationRequest) (result *core.GenerationResult, err error) {
	requestID := p.config.NewRequestID()
	start := time.Now()
	p.config.Telemetry.OnRequestStart(core.RequestStartEvent{
		Provider:  providerID,
		Model:     req.Model,
		RequestID: requestID,
		Start:     start,
	})
	defer func() {
		end := core.RequestEndEvent{
			Provider:  providerID,
			Model:     req.Model,
			RequestID: requestID,
			Start:     start,
			End:       time.Now(),
			Err:       err,
		}
		if result != nil {
			end.Images = len(result.Images)
		}
		p.config.Telemetry.OnRequestEnd(end)
	}()

	body, err := json.Marshal(mapGenerationRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.config.BaseURL + imageGenerationsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = p.buildHeaders(requestID)
	p.dumpRequest(httpReq, requestID, body)

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, normalize.NetworkError(providerID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, normalize.NetworkError(providerID, err)
	}
	p.dumpResponse(resp, respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, normalize.OpenAIStyleProviderError(providerID, resp.StatusCode, respBody, responseRequestID(resp, requestID))
	}

	var openaiResp openAIGenerationResponse
	if err := json.Unmarshal(respBody, &openaiResp); err != nil {
		return nil, normalize.DecodeError(providerID, err)
	}

	result, err = mapGenerationResponse(&openaiResp)
	if err != nil {
		return nil, normalize.DecodeError(providerID, err)
	}
	if p.config.DebugWriter != nil {
		parsed, _ := json.Marshal(result)
		p.dump("parsed result", parsed)
	}

	return result, nil
}

// responseRequestID prefers the server-assigned request ID.
func responseRequestID(resp *http.Response, fallback string) string {
	if id := resp.Header.Get("x-request-id"); id != "" {
		return id
	}
	return fallback
}
