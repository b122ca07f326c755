// Package playlist содержит плейлист, упорядоченную коллекцию треков
// на односвязном списке
package playlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/hazadus/go-tracklist/internal/track"
	"github.com/hazadus/go-tracklist/internal/utils"
)

// NotFound возвращается IndexOf, если трек не найден
const NotFound = -1

// ErrIndexOutOfRange возвращается, когда позиция вне допустимого диапазона операции
var ErrIndexOutOfRange = errors.New("индекс вне диапазона")

// Playlist именованная изменяемая последовательность треков.
// Хвост не хранится, поэтому AddLast проходит список от головы.
//
// Playlist не защищен от конкурентного доступа: вызывающий код
// должен сам сериализовать обращения из разных горутин.
type Playlist struct {
	name string
	head *node
	size int
}

// New создает пустой плейлист. Имя сохраняется как есть
func New(name string) *Playlist {
	return &Playlist{name: name}
}

// Name возвращает имя плейлиста
func (p *Playlist) Name() string {
	return p.name
}

// AddLast добавляет трек в конец плейлиста
func (p *Playlist) AddLast(t track.Track) error {
	if err := requireTrack(t); err != nil {
		return err
	}
	n := newNode(t, nil)
	if p.head == nil {
		p.head = n
	} else {
		current := p.head
		for current.next != nil {
			current = current.next
		}
		current.next = n
	}
	p.size++
	return nil
}

// AddFirst добавляет трек в начало плейлиста
func (p *Playlist) AddFirst(t track.Track) error {
	if err := requireTrack(t); err != nil {
		return err
	}
	p.head = newNode(t, p.head)
	p.size++
	return nil
}

// InsertAt вставляет трек перед элементом с позицией index.
// Допустимы значения от 0 до Size() включительно
func (p *Playlist) InsertAt(index int, t track.Track) error {
	if err := requireTrack(t); err != nil {
		return err
	}
	if index < 0 || index > p.size {
		return outOfRange(index, p.size)
	}
	if index == 0 {
		return p.AddFirst(t)
	}
	prev := p.nodeAt(index - 1)
	prev.next = newNode(t, prev.next)
	p.size++
	return nil
}

// Remove удаляет первое вхождение трека, равного t.
// Возвращает false, если трек не найден; это не ошибка
func (p *Playlist) Remove(t track.Track) bool {
	if t.IsZero() || p.head == nil {
		return false
	}
	if p.head.track.Equal(t) {
		p.head = p.head.next
		p.size--
		return true
	}
	for current := p.head; current.next != nil; current = current.next {
		if current.next.track.Equal(t) {
			current.next = current.next.next
			p.size--
			return true
		}
	}
	return false
}

// RemoveAt удаляет и возвращает трек с позицией index
func (p *Playlist) RemoveAt(index int) (track.Track, error) {
	if index < 0 || index >= p.size {
		return track.Track{}, outOfRange(index, p.size)
	}
	var removed *node
	if index == 0 {
		removed = p.head
		p.head = removed.next
	} else {
		prev := p.nodeAt(index - 1)
		removed = prev.next
		prev.next = removed.next
	}
	removed.next = nil
	p.size--
	return removed.track, nil
}

// Get возвращает трек с позицией index
func (p *Playlist) Get(index int) (track.Track, error) {
	if index < 0 || index >= p.size {
		return track.Track{}, outOfRange(index, p.size)
	}
	return p.nodeAt(index).track, nil
}

// IndexOf возвращает позицию первого трека, равного t, или NotFound
func (p *Playlist) IndexOf(t track.Track) int {
	index := 0
	for current := p.head; current != nil; current = current.next {
		if current.track.Equal(t) {
			return index
		}
		index++
	}
	return NotFound
}

// Contains сообщает, есть ли в плейлисте трек, равный t
func (p *Playlist) Contains(t track.Track) bool {
	return p.IndexOf(t) != NotFound
}

// Size возвращает количество треков
func (p *Playlist) Size() int {
	return p.size
}

// IsEmpty возвращает true, если плейлист пуст
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// TotalDuration возвращает суммарную длительность треков в секундах
func (p *Playlist) TotalDuration() int {
	total := 0
	for current := p.head; current != nil; current = current.next {
		total += current.track.DurationSeconds()
	}
	return total
}

// FormattedTotalDuration возвращает суммарную длительность в формате HH:MM:SS,
// а если она меньше часа, то MM:SS
func (p *Playlist) FormattedTotalDuration() string {
	return utils.FormatDurationFromSeconds(p.TotalDuration())
}

// Clear удаляет все треки
func (p *Playlist) Clear() {
	p.head = nil
	p.size = 0
}

// All возвращает итератор по позициям и трекам в порядке плейлиста
func (p *Playlist) All() iter.Seq2[int, track.Track] {
	return func(yield func(int, track.Track) bool) {
		index := 0
		for current := p.head; current != nil; current = current.next {
			if !yield(index, current.track) {
				return
			}
			index++
		}
	}
}

// Tracks возвращает копию треков в порядке плейлиста
func (p *Playlist) Tracks() []track.Track {
	tracks := make([]track.Track, 0, p.size)
	for _, t := range p.All() {
		tracks = append(tracks, t)
	}
	return tracks
}

func (p *Playlist) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Playlist '%s' [%d tracks]:\n", p.name, p.size))
	for i, t := range p.All() {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i, t))
	}
	return builder.String()
}

// nodeAt возвращает звено с позицией index; индекс должен быть уже проверен
func (p *Playlist) nodeAt(index int) *node {
	current := p.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

func requireTrack(t track.Track) error {
	if t.IsZero() {
		return fmt.Errorf("трек не задан: %w", track.ErrInvalidArgument)
	}
	return nil
}

func outOfRange(index, size int) error {
	return fmt.Errorf("индекс %d при размере %d: %w", index, size, ErrIndexOutOfRange)
}
