package openai

import (
	"errors"
	"fmt"

	"github.com/petal-labs/aidraw/core"
)

var errMissingData = errors.New(`response has no "data" list`)

// mapGenerationRequest converts a core request to the OpenAI wire body.
func mapGenerationRequest(req *core.GenerationRequest) *openAIGenerationRequest {
	format := req.ResponseFormat
	if format == "" {
		format = core.ResponseFormatURL
	}
	return &openAIGenerationRequest{
		Model:          string(req.Model),
		Prompt:         req.Prompt,
		NumImages:      req.Count,
		Size:           req.Size,
		ResponseFormat: format,
	}
}

// mapGenerationResponse converts a decoded response to core format,
// rejecting responses without a data list or with entries lacking a URL.
func mapGenerationResponse(resp *openAIGenerationResponse) (*core.GenerationResult, error) {
	if resp.Data == nil {
		return nil, errMissingData
	}

	data := *resp.Data
	result := &core.GenerationResult{
		Created: resp.Created,
		Images:  make([]core.GeneratedImage, len(data)),
	}
	for i, d := range data {
		if d.URL == "" {
			return nil, fmt.Errorf("data[%d] has no url", i)
		}
		result.Images[i] = core.GeneratedImage{URL: d.URL}
	}

	return result, nil
}
