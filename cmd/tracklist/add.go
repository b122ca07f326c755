package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/metadata"
	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	var (
		first bool
		at    int
	)

	cmd := &cobra.Command{
		Use:   "add [title] [artist] [seconds]",
		Short: "Add a track to the playlist",
		Long:  `Add a track to the end of the playlist, to the front (--first) or at a position (--at).`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseSeconds(args[2])
			if err != nil {
				return err
			}
			t, err := track.New(args[0], args[1], seconds)
			if err != nil {
				return fmt.Errorf("ошибка создания трека: %w", err)
			}

			insert := func(p *playlist.Playlist) (int, error) {
				return p.Size(), p.AddLast(t)
			}
			switch {
			case first:
				insert = func(p *playlist.Playlist) (int, error) {
					return 0, p.AddFirst(t)
				}
			case cmd.Flags().Changed("at"):
				insert = func(p *playlist.Playlist) (int, error) {
					return at, p.InsertAt(at, t)
				}
			}
			return app.addTrack(t, insert)
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "add the track to the front of the playlist")
	cmd.Flags().IntVar(&at, "at", 0, "insert the track at the given position")
	cmd.MarkFlagsMutuallyExclusive("first", "at")

	return cmd
}

// createAddFileCommand создает команду add-file
func (app *Application) createAddFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-file [file path] [seconds]",
		Short: "Add a track from audio file tags",
		Long:  `Read title and artist from the tags of an audio file and append the track to the playlist.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			seconds, err := parseSeconds(args[1])
			if err != nil {
				return err
			}
			t, err := metadata.NewExtractor().TrackFromFile(args[0], seconds)
			if err != nil {
				return fmt.Errorf("ошибка чтения метаданных: %w", err)
			}
			return app.addTrack(t, appendTrack(t))
		},
	}
}

// createAddYouTubeCommand создает команду add-youtube
func (app *Application) createAddYouTubeCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add-youtube [url]",
		Short: "Add a track from YouTube video metadata",
		Long:  `Fetch title, author and duration of a YouTube video and append the track to the playlist.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Printf("🌐 Получаем информацию о видео: %s\n", args[0])

			resolveCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			t, err := app.resolver.Resolve(resolveCtx, args[0])
			if err != nil {
				return fmt.Errorf("ошибка получения трека: %w", err)
			}
			return app.addTrack(t, appendTrack(t))
		},
	}
}

func appendTrack(t track.Track) func(p *playlist.Playlist) (int, error) {
	return func(p *playlist.Playlist) (int, error) {
		return p.Size(), p.AddLast(t)
	}
}

// addTrack загружает плейлист, выполняет вставку и сохраняет результат
func (app *Application) addTrack(t track.Track, insert func(p *playlist.Playlist) (int, error)) error {
	p, err := app.loadOrCreatePlaylist()
	if err != nil {
		return err
	}

	index, err := insert(p)
	if err != nil {
		return fmt.Errorf("ошибка добавления трека: %w", err)
	}

	if err := app.savePlaylist(p); err != nil {
		return err
	}

	fmt.Printf("✅ Трек добавлен на позицию %d: %s - %s (%s)\n",
		index, t.Artist(), t.Title(), t.DurationFormatted())
	printSummary(p)
	return nil
}

func parseSeconds(s string) (int, error) {
	seconds, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("неверная длительность '%s': должно быть целое число секунд", s)
	}
	return seconds, nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("неверный индекс '%s': должно быть целое число", s)
	}
	return index, nil
}
