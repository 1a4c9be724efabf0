package core

import "context"

// ModelID is a string identifier for a model.
type ModelID string

// ResponseFormatURL asks the provider to return hosted image URLs rather
// than inline image data.
const ResponseFormatURL = "url"

// GenerationRequest describes one image-generation call.
//
// Count and Size are passed through unvalidated; the provider decides which
// values it accepts.
type GenerationRequest struct {
	Model          ModelID `json:"model"`
	Prompt         string  `json:"prompt"`
	Count          int     `json:"num_images"`
	Size           string  `json:"size"`
	ResponseFormat string  `json:"response_format"`
}

// NewGenerationRequest returns a request that asks for hosted URLs.
func NewGenerationRequest(model ModelID, prompt string, count int, size string) *GenerationRequest {
	return &GenerationRequest{
		Model:          model,
		Prompt:         prompt,
		Count:          count,
		Size:           size,
		ResponseFormat: ResponseFormatURL,
	}
}

// GeneratedImage is a single entry of a generation result.
type GeneratedImage struct {
	URL string `json:"url"`
}

// GenerationResult lists the generated images in the order the provider
// returned them. Its length is not checked against the requested count.
type GenerationResult struct {
	Created int64            `json:"created,omitempty"`
	Images  []GeneratedImage `json:"images"`
}

// URLs returns the image URLs in order.
func (r *GenerationResult) URLs() []string {
	if r == nil {
		return nil
	}
	urls := make([]string, len(r.Images))
	for i, img := range r.Images {
		urls[i] = img.URL
	}
	return urls
}

// ImageGenerator is implemented by providers that can generate images.
type ImageGenerator interface {
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error)
}
