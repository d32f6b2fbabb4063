// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// logItem is one executed command in the operation log.
type logItem struct {
	entry LogEntry
}

func (i logItem) FilterValue() string { return i.entry.Line }
func (i logItem) Title() string       { return i.entry.Line }
func (i logItem) Description() string {
	if i.entry.Err != nil {
		return "✗ " + i.entry.Err.Error()
	}
	return "✓ " + firstLine(i.entry.Result)
}

type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	p := GetPalette()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipglossColor(p.BorderFocus)),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipglossColor(p.Border)),
		Title: lipgloss.NewStyle().
			Foreground(lipglossColor(p.Title)).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipglossColor(p.TextMuted)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipglossColor(p.TextMuted)),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipglossColor(p.Success)),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipglossColor(p.Error)).
			Bold(true),
	}
}

// Model is the explorer's bubbletea model.
type Model struct {
	session *Session

	input    textinput.Model
	tree     viewport.Model
	opLog    list.Model
	helpView viewport.Model

	glamourRenderer *glamour.TermRenderer
	styles          *Styles

	status    string
	statusErr bool
	showHelp  bool

	width, height int
	ready         bool
}

func InitialModel(session *Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 five, remove 5, check ..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	opLog := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	opLog.SetShowTitle(false)
	opLog.SetShowHelp(false)
	opLog.SetShowStatusBar(false)
	opLog.SetFilteringEnabled(false)

	treeView := viewport.New(0, 0)
	treeView.SetContent(session.Render())

	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		session:         session,
		input:           ti,
		tree:            treeView,
		opLog:           opLog,
		helpView:        helpView,
		glamourRenderer: glamourRenderer,
		styles:          NewStyles(),
		status:          "Type a command and press enter. F1 for help.",
	}
	m.helpView.SetContent(m.renderHelpText())
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "ctrl+y":
			if err := clipboard.WriteAll(m.session.Render()); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("📋 Copied tree to clipboard.", false)
			}
			return m, nil
		case "pgup":
			m.activeViewport().LineUp(m.activeViewport().Height)
			return m, nil
		case "pgdown":
			m.activeViewport().LineDown(m.activeViewport().Height)
			return m, nil
		case "home":
			m.activeViewport().GotoTop()
			return m, nil
		case "end":
			m.activeViewport().GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) activeViewport() *viewport.Model {
	if m.showHelp {
		return &m.helpView
	}
	return &m.tree
}

// execute runs a command line against the session and refreshes the panes.
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if op, err := ParseCommand(line); err == nil && op.Op == "help" {
		m.showHelp = true
		return
	}

	result, err := m.session.Exec(line)
	if err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(firstLine(result), false)
	}

	log := m.session.Log()
	items := make([]list.Item, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		items = append(items, logItem{entry: log[i]})
	}
	m.opLog.SetItems(items)

	m.tree.SetContent(m.session.Render())
	m.showHelp = false
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m Model) renderHelpText() string {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(commandReference); err == nil {
			return rendered
		}
	}
	return commandReference
}

func (m *Model) updateLayout() {
	inputHeight := 1
	bodyHeight := m.height - inputHeight - 8
	logWidth := m.width / 3
	treeWidth := m.width - logWidth - 4

	m.input.Width = m.width - len(m.input.Prompt) - 4
	m.opLog.SetSize(logWidth-2, bodyHeight)
	m.tree.Width = treeWidth - 2
	m.tree.Height = bodyHeight
	m.helpView.Width = treeWidth - 2
	m.helpView.Height = bodyHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	logWidth := m.width / 3
	treeWidth := m.width - logWidth - 4
	bodyHeight := m.height - 9

	t := m.session.Tree()
	treeTitle := fmt.Sprintf(" 🌳 Tree · %d keys, height %d ", t.Len(), t.Height())
	treeBody := m.tree.View()
	if m.showHelp {
		treeTitle = " 📖 Help "
		treeBody = m.helpView.View()
	}

	treeBox := m.styles.BorderFocused.
		Width(treeWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			treeBody,
		))

	logBox := m.styles.BorderBlurred.
		Width(logWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📋 Operations "),
			m.opLog.View(),
		))

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, treeBox, logBox),
		inputBox,
		statusStyle.Render(m.status),
		m.renderKeyHelp(),
	)
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "ctrl+y", "f1", "pgup/pgdown", "esc"}
	descs := []string{"run", "copy tree", "help", "scroll", "quit"}

	var out string
	for i := range keys {
		if i > 0 {
			out += m.styles.HelpDesc.Render(" • ")
		}
		out += m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return out
}

// runExplorer starts the interactive explorer on session.
func runExplorer(session *Session) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}
