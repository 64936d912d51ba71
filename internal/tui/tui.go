// Package tui is an interactive Bubble Tea front end over a store.Store.
// Every key press maps to one store operation and the list is rebuilt from
// store.List afterwards, so what is shown is always what the store holds.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// listItem adapts a stored todo to bubbles/list.Item.
type listItem struct {
	todo *model.Todo
}

func (i listItem) Title() string       { return fmt.Sprintf("#%d %s", i.todo.ID, i.todo.Title) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box, text := mutedStyle.Render(boxUnchecked), it.Title()
	if it.todo.Completed {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type modelTUI struct {
	list  list.Model
	store *store.Store

	adding bool
	ti     textinput.Model
	addErr string

	status    string
	statusErr bool

	width, height int
}

func newModel(s *store.Store) modelTUI {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	bindings := func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	m := modelTUI{list: l, store: s, ti: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// Run starts the interactive list on s and blocks until the user quits.
func Run(s *store.Store) error {
	_, err := tea.NewProgram(newModel(s), tea.WithAltScreen()).Run()
	return err
}

// refresh rebuilds the list items and header from the store.
func (m *modelTUI) refresh() tea.Cmd {
	todos := m.store.List()
	items := make([]list.Item, 0, len(todos))
	done := 0
	for _, t := range todos {
		items = append(items, listItem{todo: t})
		if t.Completed {
			done++
		}
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(todos)-done,
		accentStyle.Render("Total"), len(todos),
	)
	return m.list.SetItems(items)
}

func (m *modelTUI) report(msg string, err error) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	m.status, m.statusErr = msg, false
}

func (m modelTUI) selected() (*model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil, false
	}
	return it.todo, true
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "esc":
		if m.list.FilterState() == list.FilterApplied {
			break
		}
		return m, tea.Quit
	case " ":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		_, err := m.store.Complete(t.ID)
		m.report(fmt.Sprintf("completed #%d", t.ID), err)
		return m, m.refresh()
	case "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		msg, err := m.store.Delete(t.ID)
		m.report(msg, err)
		return m, m.refresh()
	case "a":
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		return m, m.ti.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			t := m.store.Create(model.Draft{Title: title})
			m.report(fmt.Sprintf("added #%d", t.ID), nil)
			m.closeInput()
			return m, m.refresh()
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) View() string {
	listHeight := m.height - 5
	if m.adding {
		listHeight -= 4
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))

	parts := []string{m.list.View()}
	if m.status != "" {
		st := successStyle
		if m.statusErr {
			st = errorStyle
		}
		parts = append(parts, st.Render(m.status))
	}
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " — " + errorStyle.Render(m.addErr)
		}
		parts = append(parts, frameStyle.Render(title+"\n"+m.ti.View()))
	}
	return frameStyle.Render(strings.Join(parts, "\n"))
}
