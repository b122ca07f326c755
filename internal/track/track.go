// Package track содержит неизменяемое значение трека
package track

import (
	"errors"
	"fmt"

	"github.com/hazadus/go-tracklist/internal/utils"
)

// ErrInvalidArgument возвращается, когда обязательное значение пустое или неположительное
var ErrInvalidArgument = errors.New("недопустимый аргумент")

// Track представляет один трек: название, исполнитель и длительность в секундах.
// Значение неизменяемо; нулевое значение означает отсутствующий трек.
type Track struct {
	title    string
	artist   string
	duration int // Длительность трека в секундах
}

// Key идентифицирует трек. Длительность в идентичность не входит.
type Key struct {
	Title  string
	Artist string
}

// New создает трек, проверяя аргументы
func New(title, artist string, durationSeconds int) (Track, error) {
	if title == "" {
		return Track{}, fmt.Errorf("название трека не может быть пустым: %w", ErrInvalidArgument)
	}
	if artist == "" {
		return Track{}, fmt.Errorf("исполнитель трека не может быть пустым: %w", ErrInvalidArgument)
	}
	if durationSeconds <= 0 {
		return Track{}, fmt.Errorf("длительность должна быть положительной, получено %d: %w", durationSeconds, ErrInvalidArgument)
	}
	return Track{
		title:    title,
		artist:   artist,
		duration: durationSeconds,
	}, nil
}

// Title возвращает название трека
func (t Track) Title() string { return t.title }

// Artist возвращает исполнителя
func (t Track) Artist() string { return t.artist }

// DurationSeconds возвращает длительность в секундах
func (t Track) DurationSeconds() int { return t.duration }

// IsZero сообщает, что значение не было создано через New
func (t Track) IsZero() bool {
	return t == Track{}
}

// Key возвращает ключ идентичности трека, пригодный для map
func (t Track) Key() Key {
	return Key{Title: t.title, Artist: t.artist}
}

// Equal сравнивает треки по названию и исполнителю
func (t Track) Equal(other Track) bool {
	return t.Key() == other.Key()
}

// DurationFormatted форматирует длительность как mm:ss.
// Минуты не переносятся в часы: 3600 секунд дают "60:00".
func (t Track) DurationFormatted() string {
	return utils.FormatMinutesSeconds(t.duration)
}

func (t Track) String() string {
	return fmt.Sprintf("Track{title='%s', artist='%s', duration=%s}", t.title, t.artist, t.DurationFormatted())
}
