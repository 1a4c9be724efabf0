// Package download fetches generated images and writes them to templated
// file paths.
package download

import (
	"strconv"
	"strings"
)

// Placeholders recognized in output templates.
const (
	PlaceholderSentence = "{sentence}"
	PlaceholderNum      = "{num}"
)

// DefaultTemplate is the output template used when none is configured.
const DefaultTemplate = "images/{sentence}/aidraw-{num}.jpg"

// RenderPath substitutes every {sentence} with sentence, then every {num}
// with the 1-based image index.
func RenderPath(template, sentence string, num int) string {
	path := strings.ReplaceAll(template, PlaceholderSentence, sentence)
	return strings.ReplaceAll(path, PlaceholderNum, strconv.Itoa(num))
}
