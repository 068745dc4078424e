package tui

import (
	"fmt"
	"strings"

	"github.com/ndenisov/sketchkeep/internal/client"
	"github.com/ndenisov/sketchkeep/models"
)

func (m dashboardModel) View() string {
	if m.confirmDelete {
		return m.viewConfirmDelete()
	}
	if m.viewing {
		return m.viewNote()
	}
	return m.viewList()
}

func tabLabel(t client.Tab) string {
	switch t {
	case client.TabStarred:
		return "Starred"
	case client.TabArchived:
		return "Archived"
	default:
		return "All Notes"
	}
}

func (m dashboardModel) tabBar() string {
	parts := make([]string, 0, 3)
	for _, t := range []client.Tab{client.TabAll, client.TabStarred, client.TabArchived} {
		label := tabLabel(t)
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func noteMarkers(note models.Note) string {
	markers := " "
	if note.Starred {
		markers = starStyle.Render("*")
	}
	if note.Archived {
		markers += " [archived]"
	}
	return markers
}

func (m dashboardModel) viewList() string {
	out := m.tabBar() + "\n\n"

	if m.searching || m.search.Value() != "" {
		out += m.search.View() + "\n\n"
	}
	if m.creating {
		out += "New note title: " + m.createInput.View() + "\n\n"
	}
	if m.renaming {
		out += "Rename to: " + m.renameInput.View() + "\n\n"
	}

	notes := m.visible()
	if len(notes) == 0 {
		out += "No notes here\n"
	} else {
		out += "  Title                                │ Updated\n"
		out += "  ─────────────────────────────────────┼───────────────\n"
		for i, note := range notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-36s │ %-12s %s\n",
				cursor,
				fitText(note.Title, 36),
				relativeTime(note.UpdatedAt),
				noteMarkers(note),
			)
		}
	}

	if m.refreshing {
		out += "\nRefreshing...\n"
	}
	if m.offline {
		out += "\n" + errorStyle.Render("offline: showing last snapshot") + "\n"
	}
	out += m.statusLine()

	title := "sketchkeep"
	hotKeys := "n: new │ enter: open │ s: star │ a: archive │ r: rename │ d: delete │ c: copy id │ /: search │ tab: next tab │ R: refresh"
	return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
}

func (m dashboardModel) viewNote() string {
	summary := summarizeScene(m.open.Data)

	out := ""
	out += "Title     │ " + m.open.Title + "\n"
	out += "ID        │ " + m.open.ID + "\n"
	out += fmt.Sprintf("Elements  │ %d\n", summary.elementCount)
	out += fmt.Sprintf("Files     │ %d\n", summary.fileCount)
	if summary.theme != "" {
		out += "Theme     │ " + summary.theme + "\n"
	}
	out += fmt.Sprintf("Size      │ %d bytes\n", summary.byteSize)
	out += "Updated   │ " + m.open.UpdatedAt.Format("2006-01-02 15:04:05") + "\n"
	out += m.statusLine()

	hotKeys := "ctrl+s: save │ e: export │ c: copy id │ esc: close"
	return renderPage("NOTE: "+fitText(m.open.Title, 40), strings.TrimRight(out, "\n"), hotKeys)
}

func (m dashboardModel) viewConfirmDelete() string {
	note, ok := m.current()
	if !ok {
		return m.viewList()
	}

	out := "Delete \"" + fitText(note.Title, 40) + "\"?\n\n"
	out += "This cannot be undone.\n\n"
	out += "y: yes    n: no"
	return renderPage("DELETE NOTE", out, "")
}

func (m dashboardModel) statusLine() string {
	out := ""
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	return out
}
