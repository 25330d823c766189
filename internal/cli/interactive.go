package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/csheth/partscout/internal/config"
	"github.com/csheth/partscout/internal/logger"
	"github.com/csheth/partscout/internal/tui"
)

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, source, err := opts.loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}
	log.InfoWithFields("starting interactive session", []logger.Field{
		logger.F("endpoint", client.Endpoint()),
		logger.F("catalog", cfg.Catalog()),
		logger.F("config", source),
	})

	model := tui.New(tui.Config{
		Searcher:     client,
		Health:       client,
		Catalog:      cfg.Catalog(),
		Examples:     cfg.UI.Examples,
		HintInterval: cfg.UI.HintInterval,
		CompactWidth: cfg.UI.CompactWidth,
		Endpoint:     client.Endpoint(),
		Logger:       log,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, programOpts...)

	if cfg.UI.WatchConfig && source != "" {
		watcher, err := config.Watch(config.NewLoader(), opts.configPath, source,
			func(updated *config.Config) {
				log.Info("config reloaded from %s", source)
				program.Send(tui.ExamplesMsg{Examples: updated.UI.Examples})
			},
			func(err error) {
				log.WarnWithFields("config reload failed", []logger.Field{logger.Err(err)})
			},
		)
		if err != nil {
			log.WarnWithFields("config watcher disabled", []logger.Field{logger.Err(err)})
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
