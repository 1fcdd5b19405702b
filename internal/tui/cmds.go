package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todocli/internal/api"
	"todocli/internal/model"
)

// One message per confirmed server response. The collection in appModel
// is only ever mutated while handling one of these, which is what makes
// every update pessimistic: nothing changes until the backend answered.
type (
	itemsLoadedMsg struct{ items []model.Item }
	loadFailedMsg  struct{ err error }

	itemCreatedMsg struct{ item model.Item }
	itemUpdatedMsg struct{ item model.Item }
	itemDeletedMsg struct{ id model.ID }

	requestFailedMsg struct{ err error }
)

func loadItems(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return itemsLoadedMsg{items: items}
	}
}

func createItem(c *api.Client, title string) tea.Cmd {
	return func() tea.Msg {
		created, err := c.Create(context.Background(), title)
		if err != nil {
			return requestFailedMsg{err: err}
		}
		return itemCreatedMsg{item: created}
	}
}

func toggleItem(c *api.Client, id model.ID, completed bool) tea.Cmd {
	return func() tea.Msg {
		updated, err := c.Update(context.Background(), id, api.Patch{Completed: &completed})
		if err != nil {
			return requestFailedMsg{err: err}
		}
		return itemUpdatedMsg{item: updated}
	}
}

func renameItem(c *api.Client, id model.ID, title string) tea.Cmd {
	return func() tea.Msg {
		updated, err := c.Update(context.Background(), id, api.Patch{Title: &title})
		if err != nil {
			return requestFailedMsg{err: err}
		}
		return itemUpdatedMsg{item: updated}
	}
}

func deleteItem(c *api.Client, id model.ID) tea.Cmd {
	return func() tea.Msg {
		if err := c.Remove(context.Background(), id); err != nil {
			return requestFailedMsg{err: err}
		}
		return itemDeletedMsg{id: id}
	}
}
