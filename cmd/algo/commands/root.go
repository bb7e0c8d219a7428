// Package commands implements the algo CLI commands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/pkg/config"
	"github.com/Sumatoshi-tech/algo/pkg/observability"
	"github.com/Sumatoshi-tech/algo/pkg/version"
)

const (
	envOTLPHeaders = "OTEL_EXPORTER_OTLP_HEADERS"
	levelDebug     = "debug"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	verbose    bool
	noColor    bool

	cfg       *config.Config
	providers observability.Providers
	logger    *slog.Logger
}

// NewRootCommand builds the algo command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "algo",
		Short: "Generic containers and algorithms on sample datasets",
		Long: `algo drives sample records through arrays, linked lists and AVL trees.

Commands:
  sort      Sort records with quick or bubble sort
  search    Find the first record with an id
  list      Build a sorted doubly-linked list
  avl       Build a balanced search tree
  convert   Move records between containers`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.open,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .algo.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newSortCommand(a),
		newSearchCommand(a),
		newListCommand(a),
		newAVLCommand(a),
		newConvertCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// open loads configuration and starts telemetry before a command runs.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}

	if a.verbose {
		cfg.Logging.Level = levelDebug
	}

	if a.logJSON {
		cfg.Logging.JSON = true
	}

	if len(cfg.Telemetry.OTLPHeaders) == 0 {
		cfg.Telemetry.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv(envOTLPHeaders))
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceName = cfg.Telemetry.ServiceName
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = cfg.Telemetry.OTLPHeaders
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.LogLevel = observability.ParseLevel(cfg.Logging.Level)
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	a.cfg = cfg
	a.providers = providers
	a.logger = providers.Logger

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.providers.Shutdown == nil {
		return nil
	}

	err := a.providers.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutdown observability: %w", err)
	}

	return nil
}
