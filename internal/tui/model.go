// Package tui is the demo application shell around the calendar widget: a
// status line, a help line, and a date prompt for programmatic selection.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/widget"
)

const dateLayout = "2006-01-02"

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// Options configures the demo shell.
type Options struct {
	Provider  style.Provider
	Annotator calsys.Annotator
	Holidays  func(w widget.Widget) widget.Widget
	NoColor   bool
}

// Run starts the interactive program.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = prog.Run()
	return err
}

type model struct {
	cal       widget.Widget
	input     textinput.Model
	entering  bool
	statusMsg string
	noColor   bool
	quit      key.Binding
	goTo      key.Binding
}

func newModel(opts Options) (model, error) {
	cal := widget.New()
	cal, err := cal.SetDelegate(opts.Provider)
	if err != nil {
		return model{}, err
	}
	if opts.Annotator != nil {
		cal = cal.SetAnnotator(opts.Annotator)
	}
	if opts.Holidays != nil {
		cal = opts.Holidays(cal)
	}

	ti := textinput.New()
	ti.Placeholder = dateLayout
	ti.CharLimit = 10
	ti.Prompt = "> "

	return model{
		cal:     cal,
		input:   ti,
		noColor: opts.NoColor,
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		goTo:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.cal.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.handleInputKey(msg)
		}
		switch {
		case key.Matches(msg, m.quit):
			return m, tea.Quit
		case key.Matches(msg, m.goTo):
			m.entering = true
			m.statusMsg = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.cal, cmd = m.cal.Update(msg)
	return m, cmd
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.entering = false
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	d, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		m.statusMsg = fmt.Sprintf("invalid date %q, expected %s", value, dateLayout)
		return
	}
	m.cal = m.cal.Select(d)
	m.entering = false
	m.statusMsg = ""
	m.input.Blur()
}

func (m model) View() string {
	if m.entering {
		label := fmt.Sprintf("enter date (%s, enter to confirm, esc to cancel)", dateLayout)
		if !m.noColor {
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		return label + "\n\n" + m.input.View()
	}

	sb := strings.Builder{}
	sb.WriteString(m.cal.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.helpLine())
	if m.statusMsg != "" {
		sb.WriteString("\n")
		if m.noColor {
			sb.WriteString(m.statusMsg)
		} else {
			sb.WriteString(statusStyle.Render(m.statusMsg))
		}
	}
	return sb.String()
}

func (m model) helpLine() string {
	parts := make([]string, 0, 8)
	for _, b := range m.cal.Keys().ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	parts = append(parts,
		m.goTo.Help().Key+" "+m.goTo.Help().Desc,
		"drag to swipe",
		m.quit.Help().Key+" "+m.quit.Help().Desc,
	)
	text := strings.Join(parts, "  ")
	if m.noColor {
		return text
	}
	return helpStyle.Render(text)
}
