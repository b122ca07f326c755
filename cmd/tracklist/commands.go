package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/data"
	"github.com/hazadus/go-tracklist/internal/playlist"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tracklist",
		Short:        "A command line tool to build and manage playlists",
		Long:         `A command line tool to build ordered playlists of tracks, store them locally and export them to S3.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&app.playlistName, "playlist", "p", defaultPlaylistName, "playlist name")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createCreateCommand())
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createAddFileCommand())
	rootCmd.AddCommand(app.createAddYouTubeCommand(ctx))
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createRemoveAtCommand())
	rootCmd.AddCommand(app.createGetCommand())
	rootCmd.AddCommand(app.createFindCommand())
	rootCmd.AddCommand(app.createShowCommand())
	rootCmd.AddCommand(app.createDurationCommand())
	rootCmd.AddCommand(app.createClearCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createDropCommand())
	rootCmd.AddCommand(app.createPushCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}

// loadPlaylist восстанавливает текущий плейлист из библиотеки
func (app *Application) loadPlaylist() (*playlist.Playlist, error) {
	p, err := app.Data.Playlist(app.playlistName)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки плейлиста: %w", err)
	}
	return p, nil
}

// loadOrCreatePlaylist как loadPlaylist, но создает пустой плейлист, если его нет
func (app *Application) loadOrCreatePlaylist() (*playlist.Playlist, error) {
	p, err := app.Data.Playlist(app.playlistName)
	if errors.Is(err, data.ErrPlaylistNotFound) {
		return playlist.New(app.playlistName), nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки плейлиста: %w", err)
	}
	return p, nil
}

// savePlaylist записывает снимок плейлиста и сохраняет библиотеку
func (app *Application) savePlaylist(p *playlist.Playlist) error {
	app.Data.PutPlaylist(p)
	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}
	return nil
}

func printSummary(p *playlist.Playlist) {
	fmt.Printf("📀 Плейлист «%s»: треков %d, длительность %s\n",
		p.Name(), p.Size(), p.FormattedTotalDuration())
}
