package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/petal-labs/aidraw/core"
	"github.com/petal-labs/aidraw/download"
	"github.com/petal-labs/aidraw/providers/openai"
)

// styles renders CLI messages for one writer. The renderer inspects the
// writer, so pipes and buffers get plain text.
type styles struct {
	ok    lipgloss.Style
	err   lipgloss.Style
	dim   lipgloss.Style
	label lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:    r.NewStyle().Foreground(lipgloss.Color("#00ff9f")),
		err:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		label: r.NewStyle().Bold(true),
	}
}

// printSaved reports a written image on stdout.
func (a *App) printSaved(index int, path string, size int) {
	st := newStyles(a.stdout)
	fmt.Fprintf(a.stdout, "%s image %d %s %s\n",
		st.ok.Render("saved"), index, path, st.dim.Render(fmt.Sprintf("(%d bytes)", size)))
}

func (a *App) printSummary(n int, prompt string) {
	st := newStyles(a.stdout)
	fmt.Fprintf(a.stdout, "%s %d image(s) for %q\n", st.label.Render("done:"), n, prompt)
}

// printError writes err to stderr along with provider or download context.
func (a *App) printError(err error) {
	st := newStyles(a.stderr)
	fmt.Fprintf(a.stderr, "%s %v\n", st.err.Render("Error:"), err)

	var provErr *core.ProviderError
	if errors.As(err, &provErr) && provErr.RequestID != "" {
		fmt.Fprintf(a.stderr, "  %s\n", st.dim.Render(fmt.Sprintf("Provider: %s, Request ID: %s", provErr.Provider, provErr.RequestID)))
	}

	if errors.Is(err, core.ErrUnauthorized) {
		fmt.Fprintf(a.stderr, "  %s\n", st.dim.Render("check the key passed with --key or $"+openai.DefaultAPIKeyEnvVar))
	}

	var dlErr *download.Error
	if errors.As(err, &dlErr) && len(dlErr.Saved) > 0 {
		fmt.Fprintf(a.stderr, "  %s\n", st.dim.Render("kept before the failure:"))
		for _, path := range dlErr.Saved {
			fmt.Fprintf(a.stderr, "    %s\n", path)
		}
	}
}

// debugTelemetry prints request timing lines in debug mode.
type debugTelemetry struct {
	w io.Writer
}

func (d *debugTelemetry) OnRequestStart(e core.RequestStartEvent) {
	fmt.Fprintf(d.w, "--- %s generation started model=%s id=%s ---\n", e.Provider, e.Model, e.RequestID)
}

func (d *debugTelemetry) OnRequestEnd(e core.RequestEndEvent) {
	if e.Err != nil {
		fmt.Fprintf(d.w, "--- %s generation failed after %s ---\n", e.Provider, e.Duration())
		return
	}
	fmt.Fprintf(d.w, "--- %s generation returned %d image(s) in %s ---\n", e.Provider, e.Images, e.Duration())
}

var _ core.TelemetryHook = (*debugTelemetry)(nil)
