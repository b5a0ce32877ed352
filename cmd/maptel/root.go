package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/maptel/internal/logging"
	"github.com/randalmurphal/maptel/pkg/maptel"
	"github.com/randalmurphal/maptel/pkg/maptel/config"
)

var rootCmd = &cobra.Command{
	Use:   "maptel",
	Short: "maptel resolves telephone numbers through translation tables",
	Long: `maptel loads named translation tables from a YAML or JSON file and
follows each number through its table until it reaches a number with no
further mapping. Tables may contain cycles; a number caught in a cycle
resolves to itself.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "tables.yaml", "YAML or JSON file holding the tables")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print an OpenTelemetry metrics summary to stderr")
	rootCmd.PersistentFlags().Bool("tracing", false, "Print OpenTelemetry spans to stderr")
}

// session is a registry seeded from the tables file.
type session struct {
	registry *maptel.Registry
	handles  map[string]maptel.Handle
	logger   *slog.Logger
}

// settings are the resolved global flags for one invocation.
type settings struct {
	logLevel string
	metrics  bool
	tracing  bool
}

// readSettings merges the persistent flags with the file's own
// log_level, metrics, and tracing keys. Flags given explicitly win.
func readSettings(cmd *cobra.Command, cfg config.Config) (settings, error) {
	flags := cmd.Flags()

	var s settings
	var err error

	s.logLevel = cfg.String("log_level", "warn")
	s.metrics = cfg.Bool("metrics", false)
	s.tracing = cfg.Bool("tracing", false)

	if flags.Changed("log-level") {
		if s.logLevel, err = flags.GetString("log-level"); err != nil {
			return s, err
		}
	}
	if flags.Changed("metrics") {
		if s.metrics, err = flags.GetBool("metrics"); err != nil {
			return s, err
		}
	}
	if flags.Changed("tracing") {
		if s.tracing, err = flags.GetBool("tracing"); err != nil {
			return s, err
		}
	}
	return s, nil
}

// openSession loads the tables file named by --file and seeds a registry
// from it. The returned telemetry must be flushed once the command is done.
func openSession(cmd *cobra.Command) (*session, *telemetry, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, nil, err
	}

	s, err := readSettings(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), s.logLevel)
	if err != nil {
		return nil, nil, err
	}

	tel := setupTelemetry(s.metrics, s.tracing)

	reg := maptel.New(
		maptel.WithLogger(logger),
		maptel.WithMetrics(s.metrics),
		maptel.WithTracing(s.tracing),
	)

	handles, err := maptel.Seed(reg, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.Info("tables loaded",
		slog.String("file", path),
		slog.Int("tables", len(handles)),
		slog.String("registry_id", reg.ID()),
	)

	return &session{registry: reg, handles: handles, logger: logger}, tel, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, lvl), nil
}

// handle returns the handle of the named table.
func (s *session) handle(name string) (maptel.Handle, error) {
	h, ok := s.handles[name]
	if !ok {
		return 0, fmt.Errorf("no table named %q", name)
	}
	return h, nil
}
