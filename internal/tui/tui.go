// Package tui is the interactive terminal board.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/board"
	"taskboard/internal/output"
	"taskboard/internal/session"
	"taskboard/internal/view"
)

type mode int

const (
	modeInput mode = iota
	modeList
	modeCounter
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#B0B7C3"})
	activeTab     = tabStyle.Bold(true).Foreground(lipgloss.Color("12")).Underline(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	counterStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder())
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the bubbletea model of the terminal board.
type Model struct {
	ctx    context.Context
	sess   *session.Session
	keys   keyMap
	input  textinput.Model
	mode   mode
	cursor int
}

// New builds a model over sess. ctx bounds the slot writes triggered by
// key presses.
func New(ctx context.Context, sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.SetValue(sess.Board.PendingInput())
	ti.Focus()

	return Model{
		ctx:   ctx,
		sess:  sess,
		keys:  defaultKeys(),
		input: ti,
		mode:  modeInput,
	}
}

// Run runs the terminal board until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, sess), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal board: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if key.Matches(km, m.keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeInput:
		return m.updateInput(km)
	case modeCounter:
		return m.updateCounter(km)
	default:
		return m.updateList(km)
	}
}

func (m Model) updateInput(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.submit):
		m.sess.Board.SetPendingInput(m.input.Value())
		if _, ok := m.sess.Board.Submit(m.ctx); ok {
			m.input.Reset()
		}
		return m, nil
	case key.Matches(km, m.keys.cycle):
		m.cycleFilter()
		return m, nil
	case key.Matches(km, m.keys.blur):
		m.mode = modeList
		m.input.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km)
	m.sess.Board.SetPendingInput(m.input.Value())
	return m, cmd
}

func (m Model) updateList(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.sess.Board
	switch {
	case key.Matches(km, m.keys.quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.down):
		m.cursor++
	case key.Matches(km, m.keys.toggle):
		if item, ok := m.selected(); ok {
			b.ToggleTask(m.ctx, item.ID)
		}
	case key.Matches(km, m.keys.remove):
		if item, ok := m.selected(); ok {
			b.DeleteTask(m.ctx, item.ID)
		}
	case key.Matches(km, m.keys.edit):
		m.mode = modeInput
		return m, m.input.Focus()
	case key.Matches(km, m.keys.cycle):
		m.cycleFilter()
	case key.Matches(km, m.keys.all):
		b.SetFilter(board.FilterAll)
	case key.Matches(km, m.keys.active):
		b.SetFilter(board.FilterActive)
	case key.Matches(km, m.keys.completed):
		b.SetFilter(board.FilterCompleted)
	case key.Matches(km, m.keys.counter):
		m.mode = modeCounter
	}
	m.clampCursor()
	return m, nil
}

func (m Model) updateCounter(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.inc):
		m.sess.Increment(m.ctx)
	case key.Matches(km, m.keys.dec):
		m.sess.Decrement(m.ctx)
	case key.Matches(km, m.keys.reset):
		m.sess.Reset(m.ctx)
	case key.Matches(km, m.keys.counter), km.Type == tea.KeyEsc:
		m.mode = modeList
	case key.Matches(km, m.keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) cycleFilter() {
	cur := m.sess.Board.Filter()
	for i, f := range board.Filters {
		if f == cur {
			m.sess.Board.SetFilter(board.Filters[(i+1)%len(board.Filters)])
			return
		}
	}
	m.sess.Board.SetFilter(board.FilterAll)
}

func (m Model) project() view.Board {
	return view.Project(m.sess.Board.Tasks(), m.sess.Board.Filter())
}

func (m Model) selected() (view.Item, bool) {
	items := m.project().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return view.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.project().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	if m.mode == modeCounter {
		return m.counterView()
	}

	v := m.project()
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("taskboard"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	tabs := make([]string, 0, len(board.Filters))
	for _, f := range board.Filters {
		style := tabStyle
		if f == v.Filter {
			style = activeTab
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n\n")

	if len(v.Items) == 0 {
		sb.WriteString(emptyStyle.Render(v.EmptyMessage))
		sb.WriteString("\n")
	}
	for i, item := range v.Items {
		sb.WriteString(m.renderItem(i, item))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "total %d  active %d  completed %d\n", v.Total, v.ActiveCount, v.CompletedCount)
	if v.ShowProgress {
		bar := progressBar(v.ProgressPercent, output.ProgressWidth)
		fmt.Fprintf(&sb, "%s %3d%%\n", bar, v.ProgressPercent)
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpView())
	return sb.String()
}

func (m Model) renderItem(i int, item view.Item) string {
	pointer := "  "
	if m.mode == modeList && i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	if item.Completed {
		return pointer + checkStyle.Render("[x]") + " " + doneStyle.Render(item.Text)
	}
	return pointer + "[ ] " + item.Text
}

func (m Model) counterView() string {
	c := m.sess.Counter
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("counter"))
	sb.WriteString("\n\n")
	sb.WriteString(counterStyle.Render(fmt.Sprintf("%d", c.Value())))
	sb.WriteString("\n\n")
	for _, msg := range c.Messages() {
		sb.WriteString(messageStyle.Render(msg))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.helpView())
	return sb.String()
}

func (m Model) helpView() string {
	bindings := m.keys.help(m.mode)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return "[" + progressStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled) + "]"
}
