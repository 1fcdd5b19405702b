package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"todocli/internal/model"
	"todocli/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item. The list is keyed
// by the record id carried inside.
type listItem struct {
	item model.Item
}

// Implement list.Item interface
func (i listItem) Title() string {
	box := ui.BoxUnchecked
	if i.item.Completed {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Title)
}
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := ui.Muted.Render(ui.BoxUnchecked)
	text := it.item.Title
	if it.item.Completed {
		box = ui.Success.Render(ui.BoxChecked)
		text = ui.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}
