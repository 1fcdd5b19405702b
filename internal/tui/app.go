package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todocli/internal/api"
	"todocli/internal/model"
	"todocli/internal/ui"
)

// appModel is the single owner of the todo collection. Children (the
// list, the shared text input) only ever see copies; every mutation
// goes HTTP-first and the slice changes when the response arrives.
type appModel struct {
	client *api.Client
	items  []model.Item

	list    list.Model
	spinner spinner.Model

	loading bool   // initial load in flight
	loadErr string // persistent; shown instead of the list
	status  string // last mutation failure, cleared on next success

	// Inline add
	adding   bool
	creating bool            // create in flight; submit is locked
	ti       textinput.Model // shared text input model (used for add & edit)
	inputErr string          // last validation error

	// Inline edit
	editing  bool
	editID   model.ID
	editOrig string // title at the moment edit mode was entered
	renaming bool   // rename in flight; submit is locked

	width  int
	height int
}

func newAppModel(client *api.Client) appModel {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = listTitle(nil)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Title
	l.Styles.HelpStyle = ui.Help
	l.Styles.PaginationStyle = ui.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	extra := func() []key.Binding {
		return []key.Binding{addBind, editBind, toggleBind, delBind, reloadBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Accent

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	return appModel{
		client:  client,
		list:    l,
		spinner: sp,
		loading: true,
		ti:      ti,
	}
}

// Run starts the interactive list against the given backend.
func Run(client *api.Client) error {
	p := tea.NewProgram(newAppModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	// Exactly one load on startup; the spinner runs until it resolves.
	return tea.Batch(m.spinner.Tick, loadItems(m.client))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.loading = false
		m.loadErr = ""
		m.items = msg.items
		m.syncList()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err.Error()
		return m, nil

	case itemCreatedMsg:
		m.items = append(m.items, msg.item)
		m.creating = false
		m.adding = false
		m.inputErr = ""
		m.status = ""
		m.ti.SetValue("")
		m.ti.Blur()
		m.syncList()
		return m, nil

	case itemUpdatedMsg:
		for i := range m.items {
			if m.items[i].ID == msg.item.ID {
				// Take the whole server record, not just the changed
				// field; the backend may have side effects.
				m.items[i] = msg.item
				break
			}
		}
		m.renaming = false
		m.editing = false
		m.status = ""
		m.ti.SetValue("")
		m.ti.Blur()
		m.syncList()
		return m, nil

	case itemDeletedMsg:
		kept := m.items[:0]
		for _, it := range m.items {
			if it.ID != msg.id {
				kept = append(kept, it)
			}
		}
		m.items = kept
		m.status = ""
		m.syncList()
		return m, nil

	case requestFailedMsg:
		// Collection untouched; unlock whichever submit was pending so
		// the user can retry. The draft text is deliberately kept.
		m.creating = false
		m.renaming = false
		m.status = msg.err.Error()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateBrowsing(msg)
}

func (m appModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, isKey := msg.(tea.KeyMsg); isKey {
		switch x.String() {
		case "enter":
			if m.creating {
				return m, nil
			}
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			m.inputErr = ""
			m.creating = true
			return m, createItem(m.client, title)
		case "esc":
			if m.creating {
				return m, nil
			}
			m.adding = false
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m appModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, isKey := msg.(tea.KeyMsg); isKey {
		switch x.String() {
		case "enter":
			if m.renaming {
				return m, nil
			}
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if title == m.editOrig {
				// Nothing changed; leave edit mode without a request.
				m.editing = false
				m.inputErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
			m.inputErr = ""
			m.renaming = true
			return m, renameItem(m.client, m.editID, title)
		case "esc":
			if m.renaming {
				return m, nil
			}
			m.editing = false
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "q", "esc":
			return m, tea.Quit

		case " ":
			if it, idx := m.selected(); idx >= 0 {
				// Send the negation of the current prop value; the
				// checkbox stays as-is until the server answers.
				return m, toggleItem(m.client, it.ID, !it.Completed)
			}
			return m, nil

		case "d":
			if it, idx := m.selected(); idx >= 0 {
				return m, deleteItem(m.client, it.ID)
			}
			return m, nil

		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New item title..."
			m.ti.Focus()
			return m, nil

		case "e":
			if it, idx := m.selected(); idx >= 0 {
				m.editing = true
				m.editID = it.ID
				m.editOrig = it.Title
				m.inputErr = ""
				m.ti.SetValue(it.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit item title..."
				m.ti.Focus()
			}
			return m, nil

		case "r":
			m.loading = true
			m.loadErr = ""
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, loadItems(m.client))
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selected resolves the cursor to the authoritative record.
func (m appModel) selected() (model.Item, int) {
	it, isItem := m.list.SelectedItem().(listItem)
	if !isItem {
		return model.Item{}, -1
	}
	for i := range m.items {
		if m.items[i].ID == it.item.ID {
			return m.items[i], i
		}
	}
	return model.Item{}, -1
}

// syncList rebuilds the list rows from the owned collection.
func (m *appModel) syncList() {
	rows := make([]list.Item, 0, len(m.items))
	for _, it := range m.items {
		rows = append(rows, listItem{item: it})
	}
	m.list.SetItems(rows)
	m.list.Title = listTitle(m.items)
	if idx := m.list.Index(); idx >= len(rows) && len(rows) > 0 {
		m.list.Select(len(rows) - 1)
	}
}

func (m *appModel) resizeList() {
	h := m.height - 4
	if m.adding || m.editing {
		h = m.height - 6
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	m.list.SetSize(w, h)
}

// Header title with live counts
func listTitle(items []model.Item) string {
	done, pending := stats(items)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.Title.Render("Todos"),
		ui.Success.Render("✔"), done,
		ui.Pending.Render("•"), pending,
		ui.Accent.Render("Total"), len(items),
	)
}

func (m appModel) View() string {
	if m.loading {
		return ui.PanelString(m.spinner.View() + " loading todos...")
	}
	if m.loadErr != "" {
		return ui.PanelString(ui.Error.Render("✖ could not load todos") + "\n" +
			ui.Muted.Render(m.loadErr) + "\n\n" +
			ui.Help.Render("r reload • q quit"))
	}

	m.resizeList()
	content := m.list.View()

	if m.adding || m.editing {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.creating || m.renaming {
			title += " " + ui.Muted.Render("(saving...)")
		}
		if m.inputErr != "" {
			title += " — " + ui.Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}

	if m.status != "" {
		content += "\n" + ui.Error.Render("✖ "+m.status)
	}
	return ui.PanelString(content)
}

// small list stats used for the header
func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
