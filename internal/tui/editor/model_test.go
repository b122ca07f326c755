package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
)

func newPlaylistWith(t *testing.T, titles ...string) *playlist.Playlist {
	t.Helper()

	p := playlist.New("Test")
	for _, title := range titles {
		tr, err := track.New(title, "Artist", 100)
		if err != nil {
			t.Fatalf("track.New: %v", err)
		}
		if err := p.AddLast(tr); err != nil {
			t.Fatalf("AddLast: %v", err)
		}
	}
	return p
}

func fill(m *Model, artist, title, duration, position string) {
	m.inputs[artistField].SetValue(artist)
	m.inputs[titleField].SetValue(title)
	m.inputs[durationField].SetValue(duration)
	m.inputs[positionField].SetValue(position)
}

var ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}

func TestNewModelDefaultPosition(t *testing.T) {
	m := NewModel(newPlaylistWith(t, "A", "B"), 2)

	if got := m.inputs[positionField].Value(); got != "2" {
		t.Errorf("Expected default position 2, got %q", got)
	}
	if !m.inputs[artistField].Focused() {
		t.Error("Expected artist field to be focused")
	}
}

func TestSubmitInsertsTrack(t *testing.T) {
	p := newPlaylistWith(t, "A", "B")
	m := NewModel(p, 2)
	fill(m, " Queen ", "Bohemian Rhapsody", "354", "1")

	_, cmd := m.Update(ctrlS)
	if cmd == nil {
		t.Fatalf("Expected command, form error: %s", m.Err())
	}

	msg, ok := cmd().(TrackAddedMsg)
	if !ok {
		t.Fatalf("Expected TrackAddedMsg, got %T", cmd())
	}
	if msg.Index != 1 {
		t.Errorf("Expected index 1, got %d", msg.Index)
	}

	if p.Size() != 3 {
		t.Fatalf("Expected size 3, got %d", p.Size())
	}
	got, err := p.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Artist() != "Queen" || got.Title() != "Bohemian Rhapsody" || got.DurationSeconds() != 354 {
		t.Errorf("Unexpected track at 1: %v", got)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name                               string
		artist, title, duration, position string
		errContains                        string
	}{
		{"EmptyArtist", "", "Song", "100", "0", "Некорректный трек"},
		{"EmptyTitle", "Band", "", "100", "0", "Некорректный трек"},
		{"ZeroDuration", "Band", "Song", "0", "0", "Некорректный трек"},
		{"NotANumber", "Band", "Song", "abc", "0", "целым числом секунд"},
		{"BadPosition", "Band", "Song", "100", "x", "Позиция должна быть целым числом"},
		{"OutOfRange", "Band", "Song", "100", "5", "0..1"},
		{"Negative", "Band", "Song", "100", "-1", "0..1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlaylistWith(t, "A")
			m := NewModel(p, 0)
			fill(m, tc.artist, tc.title, tc.duration, tc.position)

			_, cmd := m.Update(ctrlS)
			if cmd != nil {
				t.Fatal("Expected no command on validation error")
			}
			if !strings.Contains(m.Err(), tc.errContains) {
				t.Errorf("Expected error containing %q, got %q", tc.errContains, m.Err())
			}
			if !strings.Contains(m.View(), tc.errContains) {
				t.Error("Expected error in view")
			}
			if p.Size() != 1 {
				t.Errorf("Playlist must stay unchanged, size %d", p.Size())
			}
		})
	}
}

func TestFocusNavigation(t *testing.T) {
	m := NewModel(newPlaylistWith(t), 0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusIndex != 1 || !m.inputs[titleField].Focused() {
		t.Errorf("Expected title field focused, focusIndex=%d", m.focusIndex)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusIndex != len(m.inputs) {
		t.Errorf("Expected focus on add button, got %d", m.focusIndex)
	}
}

func TestEscGoesBack(t *testing.T) {
	m := NewModel(newPlaylistWith(t), 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected command")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Errorf("Expected GoBackMsg, got %T", cmd())
	}
}
