// Package tui is the interactive picker opened by a bare `mask switch`
// on a terminal. It lists installed versions and writes the mask file
// when one is chosen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mask/internal/resolver"
)

// Service is the slice of the app service the picker needs.
type Service interface {
	List() ([]string, error)
	Current(resolver.Context) (resolver.Resolved, error)
	Switch(version string, maskfilePath string) error
}

type model struct {
	svc          Service
	rctx         resolver.Context
	maskfilePath string

	versions   []string
	active     string
	cursor     int
	listOffset int
	height     int

	busy      bool
	status    string
	lastError string
	spinner   spinner.Model
}

type versionsMsg struct {
	versions []string
	err      error
}

type currentMsg struct {
	version string
	err     error
}

type switchDoneMsg struct {
	version string
	err     error
}

func Run(svc Service, rctx resolver.Context, maskfilePath string) error {
	m := newModel(svc, rctx, maskfilePath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(svc Service, rctx resolver.Context, maskfilePath string) model {
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return model{
		svc:          svc,
		rctx:         rctx,
		maskfilePath: maskfilePath,
		busy:         true,
		status:       "Loading installed versions...",
		spinner:      spin,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadVersionsCmd(),
		m.loadCurrentCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.height = typed.Height
		m.ensureCursorVisible()
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case versionsMsg:
		m.busy = false
		if typed.err != nil {
			m.lastError = typed.err.Error()
			m.status = "Failed to load versions"
			return m, tea.Batch(cmds...)
		}
		m.versions = typed.versions
		if len(m.versions) == 0 {
			m.cursor = 0
			m.listOffset = 0
		} else if m.cursor >= len(m.versions) {
			m.cursor = len(m.versions) - 1
		}
		m.ensureCursorVisible()
		m.lastError = ""
		m.status = fmt.Sprintf("Loaded %d installed versions", len(m.versions))
	case currentMsg:
		if typed.err == nil {
			m.active = typed.version
		}
	case switchDoneMsg:
		m.busy = false
		if typed.err != nil {
			m.lastError = typed.err.Error()
			m.status = "Switch failed"
			return m, tea.Batch(cmds...)
		}
		m.active = typed.version
		m.lastError = ""
		m.status = fmt.Sprintf("Mask file %s now pins %s", m.maskfilePath, typed.version)
	}

	return m, tea.Batch(cmds...)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" || key == "esc" {
		return m, tea.Quit
	}

	if m.busy {
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	case "down", "j":
		if m.cursor < len(m.versions)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "home", "g":
		if len(m.versions) > 0 {
			m.cursor = 0
			m.ensureCursorVisible()
		}
	case "end", "G":
		if len(m.versions) > 0 {
			m.cursor = len(m.versions) - 1
			m.ensureCursorVisible()
		}
	case "r":
		m.busy = true
		m.status = "Refreshing..."
		return m, tea.Batch(m.spinner.Tick, m.loadVersionsCmd(), m.loadCurrentCmd())
	case "enter":
		if len(m.versions) == 0 {
			m.status = "No installed version selected"
			return m, nil
		}
		return m.startSwitch(m.versions[m.cursor])
	}

	return m, nil
}

func (m model) loadVersionsCmd() tea.Cmd {
	return func() tea.Msg {
		versions, err := m.svc.List()
		return versionsMsg{versions: versions, err: err}
	}
}

func (m model) loadCurrentCmd() tea.Cmd {
	return func() tea.Msg {
		resolved, err := m.svc.Current(m.rctx)
		if err != nil {
			return currentMsg{err: err}
		}
		return currentMsg{version: resolved.Version}
	}
}

func (m model) startSwitch(version string) (tea.Model, tea.Cmd) {
	m.busy = true
	m.lastError = ""
	m.status = fmt.Sprintf("Switching to %s...", version)

	switchCmd := func() tea.Msg {
		err := m.svc.Switch(version, m.maskfilePath)
		return switchDoneMsg{version: version, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, switchCmd)
}

func (m model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	activeCursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Underline(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	header := titleStyle.Render("Haxe versions")
	header += "\n"
	header += subtleStyle.Render("Enter: switch  r: refresh  q: quit")

	active := "none"
	if m.active != "" {
		active = m.active
	}
	meta := fmt.Sprintf("Mask file: %s  Active: %s", m.maskfilePath, active)

	list := m.versions
	if len(list) == 0 {
		list = []string{"<no versions installed>"}
	}

	pageSize := m.pageSize()
	start, end := m.visibleRange(pageSize, len(list))

	rows := make([]string, 0, end-start+2)
	if start > 0 {
		rows = append(rows, subtleStyle.Render("..."))
	}

	for i := start; i < end; i++ {
		version := list[i]
		prefix := "  "
		isCursor := i == m.cursor && len(m.versions) > 0
		isActive := version == m.active

		if isCursor {
			prefix = "> "
		}
		line := prefix + version
		if isActive {
			line += "  [active]"
		}

		switch {
		case isActive && isCursor:
			line = activeCursorStyle.Render(line)
		case isActive:
			line = activeStyle.Render(line)
		case isCursor:
			line = cursorStyle.Render(line)
		}

		rows = append(rows, line)
	}

	if end < len(list) {
		rows = append(rows, subtleStyle.Render("..."))
	}

	body := strings.Join(rows, "\n")

	status := subtleStyle.Render(m.status)
	if m.busy {
		status = fmt.Sprintf("%s %s", m.spinner.View(), subtleStyle.Render(m.status))
	}

	footer := status
	if m.lastError != "" {
		footer += "\n" + errorStyle.Render(m.lastError)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", header, meta, body, footer)
}

func (m *model) pageSize() int {
	if m.height <= 0 {
		return 15
	}

	size := m.height - 8
	if size < 5 {
		size = 5
	}

	return size
}

func (m *model) ensureCursorVisible() {
	if len(m.versions) == 0 {
		m.listOffset = 0
		return
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.versions) {
		m.cursor = len(m.versions) - 1
	}

	pageSize := m.pageSize()
	if m.listOffset > m.cursor {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+pageSize {
		m.listOffset = m.cursor - pageSize + 1
	}

	maxOffset := len(m.versions) - pageSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.listOffset > maxOffset {
		m.listOffset = maxOffset
	}
	if m.listOffset < 0 {
		m.listOffset = 0
	}
}

func (m model) visibleRange(pageSize int, total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}

	start := m.listOffset
	if start < 0 {
		start = 0
	}
	if start >= total {
		start = total - 1
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return start, end
}
