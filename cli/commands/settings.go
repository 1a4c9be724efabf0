package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/aidraw/core"
	"github.com/petal-labs/aidraw/download"
	"github.com/petal-labs/aidraw/providers/openai"
)

const (
	defaultSize   = "256x256"
	defaultCount  = 1
	defaultOutput = download.DefaultTemplate
)

// drawSettings is the fully resolved, read-only input of one run.
type drawSettings struct {
	Prompt     string
	Model      core.ModelID
	Size       string
	Count      int
	Output     string
	APIKey     core.Secret
	BaseURL    string
	Debug      bool
	DebugLimit int
}

// request builds the generation request for these settings.
func (s drawSettings) request() *core.GenerationRequest {
	return core.NewGenerationRequest(s.Model, s.Prompt, s.Count, s.Size)
}

// resolveSettings layers flags over config values over built-in defaults.
// The API key comes from --key or the environment only.
func (a *App) resolveSettings(cmd *cobra.Command, args []string) (drawSettings, error) {
	prompt, err := a.resolvePrompt(args)
	if err != nil {
		return drawSettings{}, err
	}

	key := a.key
	if key == "" {
		key = a.getenv(openai.DefaultAPIKeyEnvVar)
	}
	if key == "" {
		return drawSettings{}, core.ErrMissingAPIKey
	}

	s := drawSettings{
		Prompt: prompt,
		Model:  core.ModelID(a.model),
		Size:   a.size,
		Count:  a.count,
		Output: a.output,
		APIKey: core.NewSecret(key),
		Debug:  a.debug,
	}

	if cfg := a.cfg; cfg != nil {
		flags := cmd.Flags()
		if !flags.Changed("model") && cfg.DefaultModel != "" {
			s.Model = core.ModelID(cfg.DefaultModel)
		}
		if !flags.Changed("size") && cfg.DefaultSize != "" {
			s.Size = cfg.DefaultSize
		}
		if !flags.Changed("count") && cfg.DefaultCount > 0 {
			s.Count = cfg.DefaultCount
		}
		if !flags.Changed("output") && cfg.Output != "" {
			s.Output = cfg.Output
		}
		s.BaseURL = cfg.BaseURL
		s.DebugLimit = cfg.DebugLimit
	}

	return s, nil
}

// resolvePrompt joins the positional words with single spaces. Without
// words, a non-interactive stdin supplies the prompt.
func (a *App) resolvePrompt(args []string) (string, error) {
	if len(args) > 0 {
		prompt := strings.Join(args, " ")
		if strings.TrimSpace(prompt) == "" {
			return "", core.ErrEmptyPrompt
		}
		return prompt, nil
	}

	if a.isTerminal(a.stdin) {
		return "", core.ErrEmptyPrompt
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	prompt := strings.Join(strings.Fields(string(data)), " ")
	if prompt == "" {
		return "", core.ErrEmptyPrompt
	}
	return prompt, nil
}

func stdinIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
