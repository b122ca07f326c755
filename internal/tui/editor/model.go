// Package editor содержит форму добавления трека в плейлист для TUI
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// TrackAddedMsg отправляется после вставки трека в плейлист
type TrackAddedMsg struct {
	Index int
	Track track.Track
}

// GoBackMsg отправляется при отмене добавления
type GoBackMsg struct{}

// fieldType определяет поле формы
type fieldType int

const (
	artistField fieldType = iota
	titleField
	durationField
	positionField
	numFields
)

var fieldLabels = [numFields]string{"Исполнитель:", "Название:", "Длительность:", "Позиция:"}

// Model представляет форму добавления трека
type Model struct {
	playlist   *playlist.Playlist
	inputs     []textinput.Model
	focusIndex int
	err        string
}

// NewModel создает форму; position предлагается как позиция вставки по умолчанию
func NewModel(p *playlist.Playlist, position int) *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[artistField] = textinput.New()
	inputs[artistField].Placeholder = "Введите исполнителя"
	inputs[artistField].Focus()
	inputs[artistField].PromptStyle = focusedStyle
	inputs[artistField].TextStyle = focusedStyle

	inputs[titleField] = textinput.New()
	inputs[titleField].Placeholder = "Введите название трека"

	inputs[durationField] = textinput.New()
	inputs[durationField].Placeholder = "Длительность в секундах"

	inputs[positionField] = textinput.New()
	inputs[positionField].Placeholder = fmt.Sprintf("0..%d", p.Size())
	inputs[positionField].SetValue(strconv.Itoa(position))

	return &Model{
		playlist: p,
		inputs:   inputs,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.submit()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.updateFocus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

// submit проверяет форму и вставляет трек; при ошибке форма остается открытой
func (m *Model) submit() tea.Cmd {
	artist := strings.TrimSpace(m.inputs[artistField].Value())
	title := strings.TrimSpace(m.inputs[titleField].Value())

	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[durationField].Value()))
	if err != nil {
		m.err = "Длительность должна быть целым числом секунд"
		return nil
	}

	position, err := strconv.Atoi(strings.TrimSpace(m.inputs[positionField].Value()))
	if err != nil {
		m.err = "Позиция должна быть целым числом"
		return nil
	}

	t, err := track.New(title, artist, duration)
	if err != nil {
		m.err = fmt.Sprintf("Некорректный трек: %v", err)
		return nil
	}

	if err := m.playlist.InsertAt(position, t); err != nil {
		if errors.Is(err, playlist.ErrIndexOutOfRange) {
			m.err = fmt.Sprintf("Позиция должна быть в диапазоне 0..%d", m.playlist.Size())
		} else {
			m.err = fmt.Sprintf("Ошибка добавления трека: %v", err)
		}
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return TrackAddedMsg{Index: position, Track: t}
	}
}

// Err возвращает текст последней ошибки формы
func (m *Model) Err() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Новый трек в плейлисте «%s»", m.playlist.Name())))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	addButton := "[ Добавить ]"
	if m.focusIndex == len(m.inputs) {
		addButton = focusedStyle.Render(addButton)
	} else {
		addButton = blurredStyle.Render(addButton)
	}
	b.WriteString(addButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: добавить • Esc: отмена"))

	return b.String()
}
