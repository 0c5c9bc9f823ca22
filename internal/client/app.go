package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/adapter"
	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/spf13/cobra"
)

const role = "go-bookshelf-client"

type App struct {
	root      *cobra.Command
	buildInfo models.AppBuildInfo

	// persistent flags
	configPath string
	address    string
	timeout    time.Duration
	hashKey    string
	verbose    bool

	adapter adapter.ServerAdapter
	logger  *logger.Logger

	stdout io.Writer
	stderr io.Writer
}

// Option configures optional App behaviour.
type Option func(*App)

// WithAdapter makes the App use a instead of building an HTTP adapter from
// the configuration.
func WithAdapter(a adapter.ServerAdapter) Option {
	return func(app *App) {
		app.adapter = a
	}
}

// WithOutput redirects command results to stdout and logs to stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(app *App) {
		app.stdout = stdout
		app.stderr = stderr
	}
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	app := &App{
		buildInfo: buildInfo,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.root = app.rootCommand()
	return app
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookshelf",
		Short: "Command-line client of the bookshelf API",
		Long: `A command-line client of the bookshelf REST API.

Every command prints its result as JSON. The server address, request timeout
and integrity hash key come from ADAPTER_ADDRESS, ADAPTER_REQUEST_TIMEOUT and
APP_HASH_KEY, a config file, or the flags below.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "JSON or YAML config file")
	flags.StringVarP(&a.address, "address", "a", "", "server address, e.g. http://localhost:8080")
	flags.DurationVar(&a.timeout, "timeout", 0, "request timeout, e.g. 5s")
	flags.StringVar(&a.hashKey, "hash-key", "", "integrity hash key shared with the server")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(a.userCommand())
	root.AddCommand(a.bookCommand())
	root.AddCommand(a.versionCommand())

	return root
}

// setup builds the logger and, unless one was injected, the server adapter.
// Flags override the config file and the environment.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logger.NewConsoleLogger(role, a.stderr, a.verbose)
	if a.adapter != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		cfg.Adapter.HTTPAddress = a.address
	}
	if flags.Changed("timeout") {
		cfg.Adapter.RequestTimeout = a.timeout
	}
	if flags.Changed("hash-key") {
		cfg.App.HashKey = a.hashKey
	}
	a.logger.Debug().
		Str("address", cfg.Adapter.HTTPAddress).
		Dur("timeout", cfg.Adapter.RequestTimeout).
		Bool("signed", cfg.App.HashKey != "").
		Msg("client configured")

	a.adapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	return nil
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}
