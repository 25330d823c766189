package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csheth/partscout/internal/config"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect PartScout configuration",
	}
	configCmd.AddCommand(newConfigShowCommand(opts))
	configCmd.AddCommand(newConfigPathCommand(opts))
	return configCmd
}

func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the effective configuration after merging defaults, config
files, environment variables and flags.`,
		Example: `  # Show config in YAML format
  partscout config show

  # Show config in JSON format
  partscout config show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := config.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config to YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")
	return showCmd
}

func newConfigPathCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List config file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, source, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Config file search paths (highest priority first):")
			for _, path := range config.GetConfigPaths() {
				marker := " "
				if path == source {
					marker = "*"
				}
				fmt.Fprintf(out, " %s %s\n", marker, path)
			}
			if source == "" {
				fmt.Fprintln(out, "No config file found; using defaults.")
			}
			return nil
		},
	}
}
