// Package commands implements the aidraw command structure using Cobra.
package commands

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/aidraw/cli/config"
	"github.com/petal-labs/aidraw/core"
	"github.com/petal-labs/aidraw/providers/openai"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// GeneratorFactory creates the image generator for a resolved API key.
type GeneratorFactory func(apiKey string, opts ...openai.Option) core.ImageGenerator

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig   ConfigLoader
	newGenerator GeneratorFactory
	getenv       func(string) string
	isTerminal   func(io.Reader) bool
	httpClient   *http.Client
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer

	cfgFile string
	size    string
	count   int
	model   string
	key     string
	output  string
	debug   bool
	cfg     *config.Config
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithGeneratorFactory injects the image generator constructor.
func WithGeneratorFactory(factory GeneratorFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newGenerator = factory
		}
	}
}

// WithGetenv injects the environment lookup used to resolve the API key.
func WithGetenv(getenv func(string) string) AppOption {
	return func(a *App) {
		if getenv != nil {
			a.getenv = getenv
		}
	}
}

// WithTerminalCheck injects the check deciding whether stdin is interactive.
func WithTerminalCheck(check func(io.Reader) bool) AppOption {
	return func(a *App) {
		if check != nil {
			a.isTerminal = check
		}
	}
}

// WithHTTPClient sets the client used for both generation and downloads.
func WithHTTPClient(client *http.Client) AppOption {
	return func(a *App) {
		if client != nil {
			a.httpClient = client
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig: config.LoadConfig,
		newGenerator: func(apiKey string, opts ...openai.Option) core.ImageGenerator {
			return openai.New(apiKey, opts...)
		},
		getenv:     os.Getenv,
		isTerminal: stdinIsTerminal,
		httpClient: http.DefaultClient,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "aidraw [flags] <prompt words...>",
		Short: "Generate images from a text prompt",
		Long: `aidraw sends a prompt to the OpenAI image generation API and saves
every returned image to a path built from the --output template.

The template understands two placeholders:
  {sentence}  the prompt, words joined with spaces
  {num}       the 1-based image number

The API key is taken from --key or the ` + openai.DefaultAPIKeyEnvVar + ` environment variable.
When no prompt words are given, the prompt is read from piped stdin.

Examples:
  aidraw a red fox
  aidraw --count 2 --size 512x512 a red fox
  aidraw --output "out/{num}.png" a lighthouse at dusk
  echo "a red fox" | aidraw`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE:          a.runDraw,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// The prompt is positional, so the root has no subcommands: any
	// subcommand would also make cobra add "help" and "completion" and
	// shadow prompts starting with those words.
	root.SetVersionTemplate(versionText())
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.aidraw/config.yaml)")

	flags := root.Flags()
	flags.StringVar(&a.size, "size", defaultSize, "size of the generated images")
	flags.IntVar(&a.count, "count", defaultCount, "number of images to generate")
	flags.StringVar(&a.model, "model", string(openai.DefaultModel), "ID of the image generation model")
	flags.StringVar(&a.key, "key", "", "OpenAI API key (default $"+openai.DefaultAPIKeyEnvVar+")")
	flags.StringVar(&a.output, "output", defaultOutput, "output path template")
	flags.BoolVar(&a.debug, "debug", false, "dump request and response bodies to stderr")

	return root
}

// Execute runs the root command. Errors are reported on stderr exactly once.
func (a *App) Execute() error {
	err := a.root.Execute()
	if err != nil {
		a.printError(err)
		var ee *exitError
		if !errors.As(err, &ee) {
			err = exitWithCode(ExitValidation, err)
		}
	}
	return err
}

// SetArgs overrides the arguments the root command parses.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	a.cfg = cfg

	return nil
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
