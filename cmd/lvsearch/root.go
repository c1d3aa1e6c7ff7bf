package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/report"
)

// version is set at build time via -ldflags.
var version = "dev"

// envPrefix prefixes environment overrides of the global flags,
// e.g. LVSEARCH_LOG_LEVEL=debug.
const envPrefix = "LVSEARCH"

// Global flag names; also the keys of the config file.
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"
	flagTelemetry = "telemetry"
)

// app carries per-invocation state built in PersistentPreRunE.
type app struct {
	root       *cobra.Command
	configFile string
	runID      string
	log        *slog.Logger
	mode       report.Mode
	shutdown   func(context.Context) error
}

func newApp() *app {
	a := &app{
		log:      slog.New(slog.DiscardHandler),
		shutdown: func(context.Context) error { return nil },
	}
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search and heuristic verification",
		Long: "lvsearch explores state spaces with uninformed (bfs, dfs, ucs, ldfs, ids)\n" +
			"and informed (gbfs, hcs, astar) strategies and checks whether a heuristic\n" +
			"is optimistic and consistent.\n\n" +
			"Global flags may also be set in a YAML file (--config) or through\n" +
			envPrefix + "_* environment variables, e.g. " + envPrefix + "_LOG_LEVEL=debug.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, flagConfig, "", "YAML file with defaults for the global flags")
	pf.String(flagLogLevel, "warn", "Log level: debug, info, warn, error")
	pf.String(flagLogFormat, "auto", "Log format: auto, text, json")
	pf.StringP(flagOutput, "o", "ascii", "Table format: ascii, markdown")
	pf.String(flagTelemetry, telemetry.ExporterNone, "Trace and metric exporter: none, stdout (written to stderr)")

	root.AddCommand(
		newSearchCmd(a),
		newCheckCmd(a),
		newCompareCmd(a),
		newInfoCmd(a),
		newGridCmd(a),
		newPuzzleCmd(a),
	)
	a.root = root

	return a
}

// settings resolves the global flags: explicit flag, then environment,
// then config file, then flag default.
func (a *app) settings() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(a.root.PersistentFlags()); err != nil {
		return nil, err
	}
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", a.configFile, err)
		}
	}

	return v, nil
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := a.settings()
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	mode, err := report.ParseMode(v.GetString(flagOutput))
	if err != nil {
		return err
	}
	logging.Init(level, v.GetString(flagLogFormat), cmd.ErrOrStderr())

	tcfg := telemetry.DefaultConfig()
	tcfg.ServiceVersion = version
	tcfg.Exporter = v.GetString(flagTelemetry)
	tcfg.Writer = cmd.ErrOrStderr()
	shutdown, err := telemetry.Init(cmd.Context(), tcfg)
	if err != nil {
		return err
	}

	a.shutdown = shutdown
	a.mode = mode
	a.runID = uuid.NewString()
	a.log = logging.New("cli").With(slog.String("run_id", a.runID), slog.String("command", cmd.Name()))
	a.log.Debug("starting", slog.String("config", v.ConfigFileUsed()))

	return nil
}

// execute runs the command tree and flushes telemetry whatever the outcome.
func (a *app) execute(ctx context.Context) error {
	err := a.root.ExecuteContext(ctx)
	if serr := a.shutdown(ctx); serr != nil {
		a.log.Warn("telemetry shutdown failed", slog.Any("error", serr))
	}

	return err
}

// printer returns a report printer on the command's output.
func (a *app) printer(cmd *cobra.Command) *report.Printer {
	return report.NewPrinter(cmd.OutOrStdout(), a.mode)
}

// searchLogger is the logger handed to search runs.
func (a *app) searchLogger() *slog.Logger {
	return logging.New("search").With(slog.String("run_id", a.runID))
}
