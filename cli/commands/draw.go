package commands

import (
	"github.com/spf13/cobra"

	"github.com/petal-labs/aidraw/download"
	"github.com/petal-labs/aidraw/providers/openai"
)

func (a *App) runDraw(cmd *cobra.Command, args []string) error {
	s, err := a.resolveSettings(cmd, args)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	ctx := cmd.Context()

	generator := a.newGenerator(s.APIKey.Expose(), a.generatorOptions(s)...)
	result, err := generator.Generate(ctx, s.request())
	if err != nil {
		return classify(err)
	}

	writer := download.NewWriter(
		download.WithHTTPClient(a.httpClient),
		download.WithProgress(a.printSaved),
	)
	written, err := writer.SaveAll(ctx, result.URLs(), s.Output, s.Prompt)
	if err != nil {
		return classify(err)
	}

	a.printSummary(len(written), s.Prompt)
	return nil
}

func (a *App) generatorOptions(s drawSettings) []openai.Option {
	opts := []openai.Option{openai.WithHTTPClient(a.httpClient)}
	if s.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(s.BaseURL))
	}
	if s.Debug {
		opts = append(opts,
			openai.WithDebug(a.stderr, s.DebugLimit),
			openai.WithTelemetry(&debugTelemetry{w: a.stderr}),
		)
	}
	return opts
}
