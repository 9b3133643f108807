package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasklite/internal/model"
	"github.com/sandeepkv93/tasklite/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Focus != FocusList {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case AddTaskMsg:
		cmd, _ := m.addTask(typed)
		return m, cmd
	case ToggleTaskMsg:
		_ = m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		_ = m.deleteTask(typed.ID)
		return m, nil
	case SetFilterMsg:
		m.setFilter(typed.Filter)
		return m, nil
	case ShakeMsg:
		return m, m.advanceShake()
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.fail(typed.Err)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	}

	var cmd tea.Cmd
	m, cmd = m.updateFocusedInput(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd, _ := m.addTask(m.draftFromInputs())
		return m, cmd
	case "tab":
		return m, m.setFocus((m.Focus + 1) % (FocusList + 1))
	case "shift+tab":
		return m, m.setFocus((m.Focus + FocusList) % (FocusList + 1))
	case "esc":
		return m, m.setFocus(FocusList)
	case "ctrl+p":
		m.cyclePriority()
		return m, nil
	}
	var cmd tea.Cmd
	m, cmd = m.updateFocusedInput(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Palette:
		return m, m.openPalette()
	case m.Keys.DarkMode:
		m.toggleDarkMode()
		return m, nil
	case m.Keys.Theme:
		m.cycleColorTheme()
		return m, nil
	case "j", "down":
		m.setCursor(m.Cursor + 1)
	case "k", "up":
		m.setCursor(m.Cursor - 1)
	case "g", "home":
		m.setCursor(0)
	case "G", "end":
		m.setCursor(len(m.Projection.Tasks) - 1)
	case " ", "x", "enter":
		if t, ok := m.taskAtCursor(); ok {
			_ = m.toggleTask(t.ID)
		}
	case "d", "delete":
		if t, ok := m.taskAtCursor(); ok {
			_ = m.deleteTask(t.ID)
		}
	case "1":
		m.setFilter(model.FilterAll)
	case "2":
		m.setFilter(model.FilterActive)
	case "3":
		m.setFilter(model.FilterCompleted)
	case "f":
		m.setFilter(model.Filters[(filterIndex(m.Filter)+1)%len(model.Filters)])
	case "p", "ctrl+p":
		m.cyclePriority()
	case "i", "a", "tab":
		return m, m.setFocus(FocusText)
	case "shift+tab":
		return m, m.setFocus(FocusTime)
	}
	return m, nil
}

func (m *Model) cyclePriority() {
	m.Priority = m.Priority.Next()
	m.Status = StatusBar{Text: "priority: " + m.tr.Priority(m.Priority)}
}

func (m Model) draftFromInputs() AddTaskMsg {
	return AddTaskMsg{
		Text:     m.textInput.Value(),
		Priority: m.Priority,
		Date:     m.dateInput.Value(),
		Time:     m.timeInput.Value(),
	}
}

func (m *Model) setFocus(f FocusField) tea.Cmd {
	m.Focus = f
	m.textInput.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
	switch f {
	case FocusText:
		return m.textInput.Focus()
	case FocusDate:
		return m.dateInput.Focus()
	case FocusTime:
		return m.timeInput.Focus()
	}
	return nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case FocusText:
		m.textInput, cmd = m.textInput.Update(msg)
	case FocusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case FocusTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	}
	if m.Palette.Active {
		var paletteCmd tea.Cmd
		m.commandInput, paletteCmd = m.commandInput.Update(msg)
		cmd = tea.Batch(cmd, paletteCmd)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	st := m.theme().Styles()

	labels := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		labels = append(labels, m.tr.Filter(f))
	}

	inputs := views.RenderInputs(views.InputData{
		TextView:      m.textInput.View(),
		DateView:      m.dateInput.View(),
		TimeView:      m.timeInput.View(),
		Priority:      string(m.Priority),
		PriorityLabel: m.tr.Priority(m.Priority),
		ShakeOffset:   m.Shake.Offset(),
	}, st)
	if m.Palette.Active {
		inputs += "\n" + m.commandInput.View()
	}

	status := m.Status.Text
	if status != "" && m.Status.IsError {
		status = fmt.Sprintf("error: %s", status)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tasklite | filter: %s", m.tr.Filter(m.Filter)),
		Inputs:     inputs,
		Filters:    views.RenderFilterTabs(views.FilterTabsData{Labels: labels, Active: filterIndex(m.Filter)}, st),
		List:       views.RenderTaskList(m.taskListData(), st),
		Stats:      fmt.Sprintf("%s · %s", m.tr.Count("TaskCount", m.Stats.Total), m.tr.Count("CompletedCount", m.Stats.Completed)),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Help:       m.renderHelpIfVisible(),
		Footer:     m.renderShortHelp(),
	}, st)
}

// taskListData converts the visible window of the projection into rows.
func (m Model) taskListData() views.TaskListData {
	if m.Projection.Empty {
		return views.TaskListData{
			Empty:      true,
			EmptyTitle: m.tr.T("EmptyTitle"),
			EmptyHint:  m.tr.T("EmptyHint"),
		}
	}
	end := min(m.offset+m.listHeight, len(m.Projection.Tasks))
	rows := make([]views.TaskRowData, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		t := m.Projection.Tasks[i]
		rows = append(rows, views.TaskRowData{
			ID:            t.ID,
			Text:          t.Text,
			Priority:      string(t.Priority),
			PriorityLabel: m.tr.Priority(t.Priority),
			Completed:     t.Completed,
			Due:           m.tr.FormatDue(t.Date, t.Time),
			Selected:      m.Focus == FocusList && i == m.Cursor,
		})
	}
	return views.TaskListData{Rows: rows}
}
