package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csheth/partscout/internal/searchui"
)

func newSearchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <part-number>",
		Short: "Look up a single part number",
		Long: `Look up a part number once and print the matching groups.

The exit status is non-zero when the lookup ends in an error, including
a blank part number.`,
		Example: `  # Search the wipers catalog
  partscout search 6R1998002

  # Search the brake pads catalog
  partscout search 5E1 --catalog brake-pads`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log := commandLogger(cfg, "search", cmd.ErrOrStderr())
			client, err := newClient(cfg, log)
			if err != nil {
				return err
			}

			controller := searchui.NewController(cfg.Catalog())
			state := controller.Perform(cmd.Context(), client, args[0])
			out := cmd.OutOrStdout()
			theme := searchui.PlainTheme()
			if state.Phase != searchui.PhaseResults {
				fmt.Fprintln(out, searchui.RenderError(state.Message, theme, 0))
				return ErrReported
			}
			fmt.Fprintln(out, searchui.RenderResults(state.Response, state.Query, theme, 0))
			return nil
		},
	}
}
