// Package data содержит хранилище снимков плейлистов в YAML файле
package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
)

// ErrPlaylistNotFound возвращается, если плейлиста с таким именем нет
var ErrPlaylistNotFound = errors.New("плейлист не найден")

type TrackRecord struct {
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Duration int    `yaml:"duration"` // Длительность трека в секундах
}

type PlaylistRecord struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Tracks []TrackRecord `yaml:"tracks"`
}

type Library struct {
	Playlists []PlaylistRecord `yaml:"playlists"`
}

// NewLibrary создает пустую библиотеку
func NewLibrary() *Library {
	return &Library{
		Playlists: make([]PlaylistRecord, 0),
	}
}

// LoadData загружает данные из файла
func (l *Library) LoadData(filePath string) error {
	path, err := expandHome(filePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Если файл не найден, инициализируем пустыми данными
		if os.IsNotExist(err) {
			slog.Debug("Файл данных не найден, начинаем с пустой библиотеки", "path", path)
			*l = *NewLibrary()
			return nil
		}
		return fmt.Errorf("ошибка чтения файла данных: %w", err)
	}
	if len(data) == 0 {
		*l = *NewLibrary()
		return nil
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return fmt.Errorf("ошибка разбора данных: %w", err)
	}
	slog.Debug("Данные загружены", "path", path, "playlists", len(l.Playlists))
	return nil
}

// SaveData сохраняет данные в файл
func (l *Library) SaveData(filePath string) error {
	path, err := expandHome(filePath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	slog.Debug("Данные сохранены", "path", path, "playlists", len(l.Playlists))
	return nil
}

// Names возвращает отсортированные имена плейлистов
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Playlists))
	for _, p := range l.Playlists {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Playlist восстанавливает плейлист из снимка по имени
func (l *Library) Playlist(name string) (*playlist.Playlist, error) {
	record := l.recordByName(name)
	if record == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrPlaylistNotFound)
	}
	return record.toPlaylist()
}

// PutPlaylist сохраняет снимок плейлиста, заменяя снимок с тем же именем
func (l *Library) PutPlaylist(p *playlist.Playlist) {
	record := newPlaylistRecord(p)
	if existing := l.recordByName(p.Name()); existing != nil {
		record.ID = existing.ID
		*existing = record
		return
	}
	record.ID = uuid.New().String()
	l.Playlists = append(l.Playlists, record)
}

// DeletePlaylist удаляет снимок плейлиста по имени
func (l *Library) DeletePlaylist(name string) error {
	for i := range l.Playlists {
		if l.Playlists[i].Name == name {
			l.Playlists = append(l.Playlists[:i], l.Playlists[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrPlaylistNotFound)
}

func (l *Library) recordByName(name string) *PlaylistRecord {
	for i := range l.Playlists {
		if l.Playlists[i].Name == name {
			return &l.Playlists[i]
		}
	}
	return nil
}

func newPlaylistRecord(p *playlist.Playlist) PlaylistRecord {
	record := PlaylistRecord{
		Name:   p.Name(),
		Tracks: make([]TrackRecord, 0, p.Size()),
	}
	for _, t := range p.All() {
		record.Tracks = append(record.Tracks, TrackRecord{
			Title:    t.Title(),
			Artist:   t.Artist(),
			Duration: t.DurationSeconds(),
		})
	}
	return record
}

func (r PlaylistRecord) toPlaylist() (*playlist.Playlist, error) {
	p := playlist.New(r.Name)
	// Собираем с конца: AddFirst не проходит список
	for i := len(r.Tracks) - 1; i >= 0; i-- {
		rec := r.Tracks[i]
		t, err := track.New(rec.Title, rec.Artist, rec.Duration)
		if err != nil {
			return nil, fmt.Errorf("трек %d плейлиста %q: %w", i, r.Name, err)
		}
		if err := p.AddFirst(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// expandHome раскрывает тильду в пути
func expandHome(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}
