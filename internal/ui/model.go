package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/logging"
)

const (
	defaultWidth  = 96
	minColWidth   = 20
	minInputWidth = 10
)

type focus int

const (
	focusBoard focus = iota
	focusTitle
	focusDescription
)

// Model is the Bubble Tea model for the board. It is the only writer of
// the store while the program runs.
type Model struct {
	store  *board.Store
	logger *log.Logger

	stages []board.Stage
	col    int
	rows   []int // selected card per column

	focus       focus
	title       textinput.Model
	description textarea.Model

	keys   keyMap
	help   help.Model
	width  int
	status string
}

// NewModel creates a board model over store. A nil logger discards logs.
func NewModel(store *board.Store, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = "Title: "
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Description (optional)"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)

	stages := board.Stages()
	m := &Model{
		store:       store,
		logger:      logger,
		stages:      stages,
		rows:        make([]int, len(stages)),
		title:       ti,
		description: ta,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.resize(defaultWidth)
	return m
}

func (m *Model) Init() tea.Cmd {
	m.logger.Info("board opened", "tasks", m.store.Len())
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("quit")
			return m, tea.Quit
		}
		if m.focus == focusBoard {
			return m.updateBoard(msg)
		}
		return m.updateForm(msg)
	}

	return m.forwardToInput(msg)
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.stages)-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Up):
		if m.rows[m.col] > 0 {
			m.rows[m.col]--
		}
	case key.Matches(msg, m.keys.Down):
		m.rows[m.col]++
		m.clampRows()
	case key.Matches(msg, m.keys.Advance):
		m.advanceSelected()
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.NewTask):
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.setFocus(focusBoard)
	case key.Matches(msg, m.keys.NextField):
		if m.focus == focusTitle {
			return m, m.setFocus(focusDescription)
		}
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.SubmitAny):
		return m, m.submit()
	case m.focus == focusTitle && key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	}
	return m.forwardToInput(msg)
}

func (m *Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

// setFocus moves keyboard focus and returns the input's blink command.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}

// submit adds a task from the form. A blank title leaves everything as is.
func (m *Model) submit() tea.Cmd {
	task, ok := m.store.Add(m.title.Value(), m.description.Value())
	if !ok {
		m.logger.Debug("add ignored: blank title")
		return nil
	}
	m.logger.Info("task added", "id", task.ID, "title", task.Title)
	m.status = fmt.Sprintf("Added #%d %s", task.ID, task.Title)
	m.title.Reset()
	m.description.Reset()
	return m.setFocus(focusTitle)
}

// selected returns the task under the cursor, if any.
func (m *Model) selected() (board.Task, bool) {
	tasks := m.store.TasksByStage(m.stages[m.col])
	row := m.rows[m.col]
	if row < 0 || row >= len(tasks) {
		return board.Task{}, false
	}
	return tasks[row], true
}

func (m *Model) advanceSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}
	next := task.Stage.Next()
	if !m.store.Advance(task.ID, next) {
		m.logger.Warn("advance ignored", "id", task.ID, "to", next)
		return
	}
	m.logger.Info("task moved", "id", task.ID, "from", task.Stage, "to", next)
	m.status = fmt.Sprintf("Moved #%d to %s", task.ID, next.Label())
	m.clampRows()
}

func (m *Model) deleteSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}
	if !m.store.Delete(task.ID) {
		return
	}
	m.logger.Info("task deleted", "id", task.ID, "title", task.Title)
	m.status = fmt.Sprintf("Deleted #%d %s", task.ID, task.Title)
	m.clampRows()
}

// clampRows keeps every column's cursor on an existing card.
func (m *Model) clampRows() {
	for i, stage := range m.stages {
		n := len(m.store.TasksByStage(stage))
		if m.rows[i] >= n {
			m.rows[i] = n - 1
		}
		if m.rows[i] < 0 {
			m.rows[i] = 0
		}
	}
}

func (m *Model) resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	m.help.Width = width
	m.title.Width = max(width-len(m.title.Prompt)-6, minInputWidth)
	m.description.SetWidth(max(width-4, minInputWidth))
}

func (m *Model) columnWidth() int {
	// Two border cells and two padding cells per column.
	w := m.width/len(m.stages) - 4
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kanban"))
	b.WriteString("\n\n")
	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.focus == focusBoard {
		b.WriteString(m.help.View(boardHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(formHelp{m.keys}))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewColumns() string {
	width := m.columnWidth()
	counts := m.store.Counts()
	cols := make([]string, 0, len(m.stages))

	for i, stage := range m.stages {
		header := columnHeaderStyle.
			Foreground(stageColor[i%len(stageColor)]).
			Render(fmt.Sprintf("%s (%d)", stage.Label(), counts[stage]))

		parts := []string{header}
		tasks := m.store.TasksByStage(stage)
		if len(tasks) == 0 {
			parts = append(parts, emptyStyle.Render("No tasks"))
		}
		for j, task := range tasks {
			active := m.focus == focusBoard && i == m.col && j == m.rows[i]
			parts = append(parts, renderCard(task, width-4, active))
		}

		style := columnStyle
		if m.focus == focusBoard && i == m.col {
			style = activeColumnStyle
		}
		cols = append(cols, style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderCard(task board.Task, width int, selected bool) string {
	lines := []string{cardTitleStyle.Render(task.Title)}
	if task.Description != "" {
		lines = append(lines, cardDescStyle.Render(task.Description))
	}
	style := cardStyle
	if selected {
		style = selectedCardStyle
		lines = append(lines, nextHintStyle.Render("→ "+task.Stage.Next().Label()))
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewForm() string {
	style := formStyle
	if m.focus != focusBoard {
		style = activeFormStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		columnHeaderStyle.Render("New task"),
		m.title.View(),
		m.description.View(),
	)
	return style.Width(max(m.width-2, minInputWidth)).Render(body)
}
