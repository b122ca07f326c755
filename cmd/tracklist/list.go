package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/data"
	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/utils"
)

// createCreateCommand создает команду create
func (app *Application) createCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create an empty playlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := app.Data.Playlist(app.playlistName)
			switch {
			case err == nil:
				return fmt.Errorf("плейлист %q уже существует", app.playlistName)
			case !errors.Is(err, data.ErrPlaylistNotFound):
				return fmt.Errorf("ошибка загрузки плейлиста: %w", err)
			}

			p := playlist.New(app.playlistName)
			if err := app.savePlaylist(p); err != nil {
				return err
			}

			fmt.Printf("✅ Плейлист «%s» создан\n", p.Name())
			return nil
		},
	}
}

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all playlists from the library",
		Long:  `Display a list of all playlists stored in the application data.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listPlaylists()
		},
	}
}

func (app *Application) listPlaylists() error {
	names := app.Data.Names()
	if len(names) == 0 {
		fmt.Println("📚 Библиотека пуста. Создайте плейлист с помощью команды 'create'.")
		return nil
	}

	fmt.Printf("📚 Найдено плейлистов: %d\n\n", len(names))

	fmt.Printf("%-30s %-8s %-12s\n", "Название", "Треков", "Длительность")
	fmt.Println(strings.Repeat("-", 52))

	for _, name := range names {
		p, err := app.Data.Playlist(name)
		if err != nil {
			return fmt.Errorf("ошибка загрузки плейлиста: %w", err)
		}
		fmt.Printf("%-30s %-8d %-12s\n",
			utils.TruncateString(name, 28), p.Size(), p.FormattedTotalDuration())
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'tracklist show -p [название]' для просмотра плейлиста")
	return nil
}

// createClearCommand создает команду clear
func (app *Application) createClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all tracks from the playlist",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			p.Clear()
			if err := app.savePlaylist(p); err != nil {
				return err
			}

			fmt.Printf("🧹 Плейлист «%s» очищен\n", p.Name())
			return nil
		},
	}
}

// createDropCommand создает команду drop
func (app *Application) createDropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Delete the playlist from the library",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := app.Data.DeletePlaylist(app.playlistName); err != nil {
				return fmt.Errorf("ошибка удаления плейлиста: %w", err)
			}
			if err := app.SaveData(); err != nil {
				return fmt.Errorf("ошибка сохранения данных: %w", err)
			}

			fmt.Printf("🗑️  Плейлист «%s» удален из библиотеки\n", app.playlistName)
			return nil
		},
	}
}
