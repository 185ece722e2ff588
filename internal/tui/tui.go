package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskpad/internal/model"
	"github.com/idilsaglam/taskpad/internal/store"
	"github.com/idilsaglam/taskpad/internal/store/jsonstore"
	"github.com/idilsaglam/taskpad/internal/ui"
)

// taskItem adapts a model.Task to bubbles/list.Item.
type taskItem struct {
	task model.Task
}

func (i taskItem) label() string {
	box := ui.BoxUnchecked
	if i.task.Completed {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.task.Text)
}

func (i taskItem) Title() string       { return i.label() }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.task.Text }

type editor struct {
	st    *jsonstore.Store
	tasks []model.Task // source of truth; the list view mirrors it
	list  list.Model

	// Inline add
	adding bool
	ti     textinput.Model // shared text input (add & edit)
	addErr string

	// Inline edit
	editing bool
	editID  string // id of the task being edited
	editErr string

	saveErr string // last failed write, shown in the footer

	width  int
	height int
}

// Custom delegate to control how items render (single line).
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(taskItem)

	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	text := it.task.Text
	if it.task.Completed {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the interactive list. Hydration happened before this call;
// every committed change is applied through the reducer and written out
// immediately, so quitting never loses state.
func Run(st *jsonstore.Store, tasks []model.Task) error {
	l := list.New(itemsFor(tasks), taskDelegate{}, 0, 0)
	l.Title = headerFor(tasks)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	// Extend help with Add / Edit / Toggle bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, toggleBind, deleteBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := editor{
		st:    st,
		tasks: tasks,
		list:  l,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func itemsFor(tasks []model.Task) []list.Item {
	li := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		li = append(li, taskItem{task: t})
	}
	return li
}

// headerFor renders the title line with the live incomplete count.
func headerFor(tasks []model.Task) string {
	d, p := store.Stats(tasks)
	return fmt.Sprintf("%s   %s %d  %s %d left  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), d,
		ui.PendingStyle.Render("•"), p,
		ui.AccentStyle.Render("Total"), len(tasks),
	)
}

// dispatch runs an action through the reducer, refreshes the view and
// persists the new state.
func (m *editor) dispatch(a store.Action) {
	m.tasks = store.Apply(m.tasks, a)
	m.list.SetItems(itemsFor(m.tasks))
	m.list.Title = headerFor(m.tasks)
	if i := m.list.Index(); i >= len(m.tasks) && len(m.tasks) > 0 {
		m.list.Select(len(m.tasks) - 1)
	}
	m.saveErr = ""
	if err := m.st.Save(m.tasks); err != nil {
		m.saveErr = err.Error()
	}
}

// selected returns the task under the cursor, if any.
func (m *editor) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m editor) Init() tea.Cmd { return nil }

func (m editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.addErr = "Text cannot be empty"
					return m, nil
				}
				m.dispatch(store.Add{Text: text})
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.editErr = "Text cannot be empty"
					return m, nil
				}
				m.dispatch(store.UpdateText{ID: m.editID, Text: text})
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				m.editErr = ""
				return m, nil
			case "esc":
				m.editing = false
				m.editErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if t, ok := m.selected(); ok {
				m.dispatch(store.Toggle{ID: t.ID})
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.dispatch(store.Delete{ID: t.ID})
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New task..."
			m.ti.Focus()
			return m, nil
		case "e":
			if t, ok := m.selected(); ok {
				m.editing = true
				m.editID = t.ID
				m.ti.SetValue(t.Text)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit task..."
				m.ti.Focus()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m editor) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add task"
		if m.editing {
			title = "Edit task"
		}
		if m.addErr != "" && m.adding {
			title += " - " + ui.ErrorStyle.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " - " + ui.ErrorStyle.Render(m.editErr)
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + bar.Render(inputLine)
	}
	if m.saveErr != "" {
		content = content + "\n" + ui.ErrorStyle.Render("save failed: "+m.saveErr)
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
