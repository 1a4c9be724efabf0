// Package openai implements image generation against the OpenAI Images API.
package openai

import "github.com/petal-labs/aidraw/core"

// Image model identifiers.
const (
	ModelImageAlpha001 core.ModelID = "image-alpha-001"
	ModelDallE2        core.ModelID = "dall-e-2"
	ModelDallE3        core.ModelID = "dall-e-3"
)

// DefaultModel is used when no model is configured.
const DefaultModel = ModelImageAlpha001
