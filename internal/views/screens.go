package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type InputData struct {
	TextView      string
	DateView      string
	TimeView      string
	Priority      string
	PriorityLabel string
	// ShakeOffset shifts the text field sideways while the input-error
	// animation runs.
	ShakeOffset int
}

type FilterTabsData struct {
	Labels []string
	Active int
}

type TaskRowData struct {
	ID            int64
	Text          string
	Priority      string
	PriorityLabel string
	Completed     bool
	Due           string
	Selected      bool
}

type TaskListData struct {
	Rows       []TaskRowData
	Empty      bool
	EmptyTitle string
	EmptyHint  string
}

const inputMargin = 2

func RenderInputs(data InputData, st Styles) string {
	margin := inputMargin + data.ShakeOffset
	if margin < 0 {
		margin = 0
	}
	text := lipgloss.NewStyle().MarginLeft(margin).Render(data.TextView)
	priority := st.PriorityStyle(data.Priority).Render(fmt.Sprintf("● %s", data.PriorityLabel))
	meta := lipgloss.NewStyle().MarginLeft(inputMargin).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, data.DateView, "  ", data.TimeView, "  ", priority),
	)
	return lipgloss.JoinVertical(lipgloss.Left, text, meta, "")
}

func RenderFilterTabs(data FilterTabsData, st Styles) string {
	tabs := make([]string, 0, len(data.Labels))
	for i, label := range data.Labels {
		if i == data.Active {
			tabs = append(tabs, st.ActiveTab.Render(label))
			continue
		}
		tabs = append(tabs, st.Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func RenderTaskList(data TaskListData, st Styles) string {
	if data.Empty {
		return strings.Join([]string{
			"",
			st.Muted.Render("  ☰"),
			st.Header.Render("  " + data.EmptyTitle),
			st.Muted.Render("  " + data.EmptyHint),
		}, "\n")
	}

	var b strings.Builder
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row, st))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderTaskRow(row TaskRowData, st Styles) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	check := "[ ]"
	if row.Completed {
		check = "[x]"
	}
	tag := st.PriorityStyle(row.Priority).Render("▌")

	text := row.Text
	if row.Completed {
		text = st.Completed.Render(text)
	} else if row.Selected {
		text = st.Selected.Render(text)
	}

	// the id is what the palette's toggle and delete commands take
	line := fmt.Sprintf("%s %s %s %s  %s", cursor, tag, check, text, st.Muted.Render(fmt.Sprintf("#%d", row.ID)))
	if row.Due != "" {
		line += "  " + st.Muted.Render("📅 "+row.Due)
	}
	return line
}
