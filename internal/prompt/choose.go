// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	listWidth  = 40
	listHeight = 12
)

// Styles holds the lipgloss styles for the chooser.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default chooser styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).MarginLeft(2),
		Item:     lipgloss.NewStyle().PaddingLeft(4),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170")),
		Help:     lipgloss.NewStyle().Faint(true).MarginLeft(2),
	}
}

type choiceItem string

// FilterValue implements list.Item.
func (i choiceItem) FilterValue() string { return string(i) }

type choiceDelegate struct {
	styles Styles
}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(choiceItem)
	if !ok {
		return
	}

	line := fmt.Sprintf("%d. %s", index+1, string(i))

	if index == m.Index() {
		fmt.Fprint(w, d.styles.Selected.Render("> "+line))
		return
	}

	fmt.Fprint(w, d.styles.Item.Render(line))
}

// chooseModel is the bubbletea model behind Choose.
type chooseModel struct {
	list    list.Model
	choice  int
	aborted bool
}

func newChooseModel(title string, options []string) chooseModel {
	styles := DefaultStyles()

	items := make([]list.Item, 0, len(options))
	for _, o := range options {
		items = append(items, choiceItem(o))
	}

	l := list.New(items, choiceDelegate{styles: styles}, listWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title
	l.Styles.HelpStyle = styles.Help

	return chooseModel{list: l, choice: -1}
}

// Init implements tea.Model.
func (m chooseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.choice = m.list.Index()
			return m, tea.Quit

		case "q", "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m chooseModel) View() string {
	if m.choice >= 0 || m.aborted {
		return ""
	}

	return "\n" + m.list.View()
}

// Choose displays a selectable list and returns the index and value of the
// chosen option. It returns ErrAborted if the user cancels. An empty option
// set is a caller bug and panics.
func Choose(title string, options []string) (int, string, error) {
	if len(options) == 0 {
		panic("prompt: Choose requires at least one option")
	}

	final, err := tea.NewProgram(newChooseModel(title, options)).Run()
	if err != nil {
		return -1, "", err
	}

	m, ok := final.(chooseModel)
	if !ok || m.aborted || m.choice < 0 {
		return -1, "", ErrAborted
	}

	return m.choice, options[m.choice], nil
}
