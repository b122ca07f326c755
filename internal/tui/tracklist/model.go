// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
	"github.com/hazadus/go-tracklist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	footerStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// AddTrackMsg запрашивает форму добавления трека на позицию Position
type AddTrackMsg struct {
	Position int
}

// TrackRemovedMsg отправляется после удаления трека из плейлиста
type TrackRemovedMsg struct {
	Index int
	Track track.Track
}

// trackItem реализует интерфейс list.Item для записи плейлиста
type trackItem struct {
	index int
	track track.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Artist(), i.track.Title())
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Позиция | Исполнитель | Название | Продолжительность
	str := fmt.Sprintf("%-4d %-20s %-50s %s",
		i.index,
		utils.TruncateString(i.track.Artist(), 20),
		utils.TruncateString(i.track.Title(), 50),
		i.track.DurationFormatted())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list     list.Model
	playlist *playlist.Playlist
	err      string
	quitting bool
}

// NewModel создает модель списка треков плейлиста
func NewModel(p *playlist.Playlist) *Model {
	l := list.New(buildItems(p), trackItemDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("Плейлист «%s»", p.Name())
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:     l,
		playlist: p,
	}
}

func buildItems(p *playlist.Playlist) []list.Item {
	items := make([]list.Item, 0, p.Size())
	for i, t := range p.All() {
		items = append(items, trackItem{index: i, track: t})
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData перечитывает записи плейлиста без пересоздания модели
func (m *Model) RefreshData() {
	m.list.SetItems(buildItems(m.playlist))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 6) // Место под итоги и справку
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "a":
			// Новый трек вставляется после выбранного
			position := m.playlist.Size()
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				position = item.index + 1
			}
			return m, func() tea.Msg {
				return AddTrackMsg{Position: position}
			}

		case "d":
			item, ok := m.list.SelectedItem().(trackItem)
			if !ok {
				return m, nil
			}
			removed, err := m.playlist.RemoveAt(item.index)
			if err != nil {
				m.err = fmt.Sprintf("Ошибка удаления трека: %v", err)
				return m, nil
			}
			m.err = ""
			m.RefreshData()
			return m, func() tea.Msg {
				return TrackRemovedMsg{Index: item.index, Track: removed}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetError показывает ошибку под списком
func (m *Model) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// Summary возвращает строку с количеством треков и общей длительностью
func (m *Model) Summary() string {
	return fmt.Sprintf("Треков: %d • Общая длительность: %s",
		m.playlist.Size(), m.playlist.FormattedTotalDuration())
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.Summary()))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("a: добавить • d: удалить • /: поиск • q: выход"))
	return b.String()
}
