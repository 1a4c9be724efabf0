package openai

// openAIGenerationRequest is the body posted to /images/generations.
type openAIGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	NumImages      int    `json:"num_images"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

// openAIGenerationResponse is the success body. Data is a pointer so a
// missing or null "data" field can be told apart from an empty list.
type openAIGenerationResponse struct {
	Created int64              `json:"created"`
	Data    *[]openAIImageData `json:"data"`
}

// openAIImageData represents a single image in the response.
type openAIImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}
