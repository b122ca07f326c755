package tui

import (
	"testing"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/tui/app"
)

func TestNewApp(t *testing.T) {
	p := playlist.New("Test")
	saved := false

	tuiApp := NewApp(p, func() error {
		saved = true
		return nil
	})

	if tuiApp.playlist != p {
		t.Error("Expected playlist to be stored")
	}
	if tuiApp.saveFunc == nil {
		t.Fatal("Expected saveFunc to be stored")
	}
	if err := tuiApp.saveFunc(); err != nil || !saved {
		t.Errorf("saveFunc was not wired: saved=%v err=%v", saved, err)
	}

	model := tuiApp.Model()
	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Expected TracklistScreen, got %v", model.CurrentScreen())
	}
	if model.View() == "" {
		t.Error("Expected non-empty view")
	}
}
