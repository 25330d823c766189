package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const healthTimeout = 5 * time.Second

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the lookup backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			client, err := newClient(cfg, commandLogger(cfg, "health", cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
			defer cancel()
			start := time.Now()
			if err := client.Health(ctx); err != nil {
				return fmt.Errorf("%s is unhealthy: %w", client.Endpoint(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is healthy (%s)\n", client.Endpoint(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
