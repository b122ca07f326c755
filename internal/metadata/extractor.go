// Package metadata предоставляет функционал для создания треков по тегам аудио файлов
package metadata

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-tracklist/internal/track"
)

const unknownArtist = "Unknown Artist"

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker.
// Недостающие поля берутся из имени файла
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	fallback := e.getDefaultMetadata(source)

	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return fallback
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		slog.Debug("Теги не прочитаны, используем имя файла", "source", source, "error", err)
		return fallback
	}

	result := TrackMetadata{
		Artist: strings.TrimSpace(metadata.Artist()),
		Title:  strings.TrimSpace(metadata.Title()),
	}
	if result.Artist == "" {
		result.Artist = fallback.Artist
	}
	if result.Title == "" {
		result.Title = fallback.Title
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) (TrackMetadata, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return TrackMetadata{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath), nil
}

// TrackFromFile создает трек по тегам файла. Длительность передается явно,
// потому что аудио не декодируется
func (e *Extractor) TrackFromFile(filePath string, durationSeconds int) (track.Track, error) {
	metadata, err := e.ExtractFromFile(filePath)
	if err != nil {
		return track.Track{}, err
	}
	t, err := track.New(metadata.Title, metadata.Artist, durationSeconds)
	if err != nil {
		return track.Track{}, fmt.Errorf("ошибка создания трека из %s: %w", filepath.Base(filePath), err)
	}
	return t, nil
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return TrackMetadata{
		Artist: unknownArtist,
		Title:  nameWithoutExt,
	}
}
