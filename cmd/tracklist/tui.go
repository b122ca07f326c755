package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing and editing the playlist.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.loadOrCreatePlaylist()
			if err != nil {
				return err
			}

			tuiApp := tui.NewApp(p, func() error {
				return app.savePlaylist(p)
			})
			return tuiApp.Run()
		},
	}
}
