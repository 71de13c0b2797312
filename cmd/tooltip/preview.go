package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	tooltip "github.com/grindlemire/go-tooltip"
	"github.com/grindlemire/go-tooltip/internal/config"
	"github.com/grindlemire/go-tooltip/internal/debug"
	"github.com/grindlemire/go-tooltip/internal/termhost"
)

func newPreviewCmd() *cobra.Command {
	var configPath, logPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the interactive terminal preview",
		Long: `Run a full-screen preview with a few anchors. Move the pointer with the
mouse or the arrow keys to see tooltips flip, clamp and replace each other.

Settings from --config are applied to every anchor. Tooltip transitions are
logged to --log, or to the file named by ` + debug.EnvVar + ` when it is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []tooltip.Option
			if configPath != "" {
				file, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if extra, err = file.Options(); err != nil {
					return err
				}
			}
			loggerFromContext(cmd.Context()).Debug("starting preview", "config", configPath)

			// The screen belongs to the program; log to the debug file only.
			if logPath != "" {
				if err := debug.Init(logPath); err != nil {
					return err
				}
			}
			logger := debug.Logger()
			defer debug.Close()

			m, err := termhost.NewModel(logger, extra...)
			if err != nil {
				return fmt.Errorf("create preview: %w", err)
			}
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&logPath, "log", "", "write debug logs to this file")
	return cmd
}
