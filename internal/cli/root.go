package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/csheth/partscout/internal/config"
	"github.com/csheth/partscout/internal/logger"
	"github.com/csheth/partscout/internal/lookup"
)

// ErrReported is returned by commands that already printed their failure.
// Callers should exit non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	endpoint    string
	catalog     string
	verbose     bool
	noAltScreen bool
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "partscout",
		Short: "Part number cross-reference lookup",
		Long: `PartScout looks up a part number in a cross-reference catalog and shows
every matching group with its analog parts.

Run without a subcommand to start the interactive terminal UI, or use
"partscout search <part-number>" for a single lookup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&opts.endpoint, "endpoint", "e", "", "lookup backend base URL (eg. http://localhost:8000)")
	rootCmd.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "catalog to search (wipers, brake-pads)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	rootCmd.AddCommand(newSearchCommand(opts))
	rootCmd.AddCommand(newHealthCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadConfig resolves the effective configuration. Flags win over every
// other source.
func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	cfg, source, err := config.NewLoader().LoadConfig(o.configPath)
	if err != nil {
		return nil, "", err
	}
	if o.endpoint != "" {
		cfg.Server.Endpoint = o.endpoint
	}
	if o.catalog != "" {
		cfg.Server.Catalog = o.catalog
	}
	if o.verbose {
		cfg.Log.Verbose = true
	}
	if o.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, source, nil
}

func newClient(cfg *config.Config, log *logger.Logger) (*lookup.Client, error) {
	return lookup.New(lookup.Options{
		Endpoint: cfg.Server.Endpoint,
		Timeout:  cfg.Server.Timeout,
		Logger:   log,
	})
}

// commandLogger logs to w, which is stderr for one-shot commands.
func commandLogger(cfg *config.Config, component string, w io.Writer) *logger.Logger {
	verbose := cfg.Log.Verbose
	return logger.New(component, func() bool { return verbose }).WithWriter(w)
}

// fileLogger opens cfg.Log.File for the interactive program, which owns the
// terminal. An empty path discards every line.
func fileLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logger.Discard(), func() {}, nil
	}
	path := filepath.Clean(cfg.Log.File)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	// #nosec G304 - path comes from the user's own configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	verbose := cfg.Log.Verbose
	log := logger.New("partscout", func() bool { return verbose }).WithWriter(f)
	return log, func() { _ = f.Close() }, nil
}
