package cli

import (
	"fmt"

	"todocli/internal/model"
	"todocli/internal/ui"
)

func printList(items []model.Item, group bool) {
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.Title.Render("Todos"),
		ui.Success.Render("✔"), d,
		ui.Pending.Render("•"), p,
		ui.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
}

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

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.Muted.Render(ui.BoxUnchecked)
		if it.Completed {
			box = ui.Success.Render(ui.BoxChecked)
		}
		title := it.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.Muted.Render(idx), box, title))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
