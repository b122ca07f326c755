package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hazadus/go-tracklist/internal/playlist"
)

const keyPrefix = "playlists/"

var unsafeKeyChars = regexp.MustCompile(`[<>:"/\\|?*\s]+`)

// Storage хранилище объектов, в которое выгружаются плейлисты
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Exporter выгружает текстовое представление плейлистов
type Exporter struct {
	storage Storage
}

// NewExporter создает экспортер поверх хранилища
func NewExporter(storage Storage) *Exporter {
	return &Exporter{storage: storage}
}

// Export выгружает плейлист и возвращает URL объекта
func (e *Exporter) Export(ctx context.Context, p *playlist.Playlist) (string, error) {
	key := ObjectKey(p.Name())
	url, err := e.storage.Put(ctx, key, strings.NewReader(p.String()))
	if err != nil {
		return "", fmt.Errorf("ошибка выгрузки плейлиста %q: %w", p.Name(), err)
	}
	slog.Info("Плейлист выгружен", "playlist", p.Name(), "key", key, "tracks", p.Size())
	return url, nil
}

// Remove удаляет выгруженный плейлист
func (e *Exporter) Remove(ctx context.Context, name string) error {
	key := ObjectKey(name)
	if err := e.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("ошибка удаления плейлиста %q: %w", name, err)
	}
	slog.Info("Плейлист удален из S3", "playlist", name, "key", key)
	return nil
}

// ObjectKey формирует ключ объекта для плейлиста
func ObjectKey(name string) string {
	slug := strings.Trim(unsafeKeyChars.ReplaceAllString(name, "_"), "_")
	if slug == "" {
		slug = "untitled"
	}
	return keyPrefix + slug + ".txt"
}
