package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/track"
)

// createRemoveCommand создает команду remove
func (app *Application) createRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [title] [artist]",
		Short: "Remove the first matching track",
		Long:  `Remove the first track with the given title and artist. Duration is not compared.`,
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

			if !p.Remove(probe) {
				fmt.Printf("🔍 Трек не найден: %s - %s\n", probe.Artist(), probe.Title())
				return nil
			}

			if err := app.savePlaylist(p); err != nil {
				return err
			}

			fmt.Printf("🗑️  Удален трек: %s - %s\n", probe.Artist(), probe.Title())
			printSummary(p)
			return nil
		},
	}
}

// createRemoveAtCommand создает команду remove-at
func (app *Application) createRemoveAtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-at [index]",
		Short: "Remove the track at a position",
		Long:  `Remove the track at the given 0-based position.`,
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

			removed, err := p.RemoveAt(index)
			if err != nil {
				return fmt.Errorf("ошибка удаления трека: %w", err)
			}

			if err := app.savePlaylist(p); err != nil {
				return err
			}

			fmt.Printf("🗑️  Удален трек %d: %s - %s\n", index, removed.Artist(), removed.Title())
			printSummary(p)
			return nil
		},
	}
}

// probeTrack строит трек для поиска; длительность в сравнении не участвует
func probeTrack(title, artist string) (track.Track, error) {
	t, err := track.New(title, artist, 1)
	if err != nil {
		return track.Track{}, fmt.Errorf("ошибка создания трека: %w", err)
	}
	return t, nil
}
