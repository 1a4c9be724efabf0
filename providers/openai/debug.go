package openai

import (
	"fmt"
	"net/http"
)

// dump writes a labeled, size-capped copy of body to the debug writer.
// It is a no-op unless debug output is enabled.
func (p *OpenAI) dump(label string, body []byte) {
	w := p.config.DebugWriter
	if w == nil {
		return
	}

	limit := p.config.DebugLimit
	fmt.Fprintf(w, "--- %s (%d bytes) ---\n", label, len(body))
	if len(body) > limit {
		fmt.Fprintf(w, "%s\n... %d bytes truncated\n", body[:limit], len(body)-limit)
		return
	}
	fmt.Fprintf(w, "%s\n", body)
}

// dumpRequest logs the outgoing request line, request ID and body.
func (p *OpenAI) dumpRequest(req *http.Request, requestID string, body []byte) {
	p.dump(fmt.Sprintf("request %s %s id=%s", req.Method, req.URL, requestID), body)
}

// dumpResponse logs the response status and raw body.
func (p *OpenAI) dumpResponse(resp *http.Response, body []byte) {
	p.dump(fmt.Sprintf("response %s", resp.Status), body)
}
