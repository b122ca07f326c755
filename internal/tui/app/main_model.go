// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/tui/editor"
	"github.com/hazadus/go-tracklist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// EditorScreen - форма добавления трека
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	playlist       *playlist.Playlist
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
	saveFunc       func() error // Функция для сохранения данных
}

// NewMainModel создает новую главную модель
func NewMainModel(p *playlist.Playlist, saveFunc func() error) *MainModel {
	return &MainModel{
		playlist:       p,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(p),
		saveFunc:       saveFunc,
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.currentScreen == TracklistScreen {
			return m, tea.Quit
		}

	case tracklist.AddTrackMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.playlist, msg.Position)
		return m, m.editorModel.Init()

	case tracklist.TrackRemovedMsg:
		slog.Debug("Трек удален", "index", msg.Index, "track", msg.Track.String())
		m.tracklistModel.SetError(m.save())
		return m, nil

	case editor.TrackAddedMsg:
		slog.Debug("Трек добавлен", "index", msg.Index, "track", msg.Track.String())
		m.backToTracklist()
		m.tracklistModel.SetError(m.save())
		return m, nil

	case editor.GoBackMsg:
		m.backToTracklist()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

func (m *MainModel) backToTracklist() {
	m.currentScreen = TracklistScreen
	m.editorModel = nil
	m.tracklistModel.RefreshData()
}

func (m *MainModel) save() error {
	if m.saveFunc == nil {
		return nil
	}
	if err := m.saveFunc(); err != nil {
		slog.Error("Ошибка сохранения плейлиста", "playlist", m.playlist.Name(), "error", err)
		return fmt.Errorf("ошибка сохранения в файл: %w", err)
	}
	return nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
