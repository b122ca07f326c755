package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/playlist"
)

// createGetCommand создает команду get
func (app *Application) createGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [index]",
		Short: "Show the track at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			t, err := p.Get(index)
			if err != nil {
				return fmt.Errorf("ошибка получения трека: %w", err)
			}

			fmt.Printf("%d. %s\n", index, t)
			return nil
		},
	}
}

// createFindCommand создает команду find
func (app *Application) createFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find [title] [artist]",
		Short: "Find the position of a track",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			probe, err := probeTrack(args[0], args[1])
			if err != nil {
				return err
			}

			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			index := p.IndexOf(probe)
			if index == playlist.NotFound {
				fmt.Printf("🔍 Трек не найден: %s - %s\n", probe.Artist(), probe.Title())
				return nil
			}

			t, err := p.Get(index)
			if err != nil {
				return err
			}
			fmt.Printf("🔍 Найден на позиции %d: %s\n", index, t)
			return nil
		},
	}
}

// createShowCommand создает команду show
func (app *Application) createShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the playlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			fmt.Print(p.String())
			return nil
		},
	}
}

// createDurationCommand создает команду duration
func (app *Application) createDurationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "duration",
		Short: "Show total duration of the playlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			fmt.Printf("⏱️  %s (%d сек.)\n", p.FormattedTotalDuration(), p.TotalDuration())
			return nil
		},
	}
}
