package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasklite/internal/commands"
	"github.com/sandeepkv93/tasklite/internal/tasks"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m *Model) openPalette() tea.Cmd {
	m.Palette = CommandPaletteState{Active: true}
	m.commandInput.SetValue("")
	m.Status = StatusBar{Text: "command palette active"}
	return m.commandInput.Focus()
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			var err error
			followUp, err = m.addTask(AddTaskMsg{Text: a.Text, Priority: a.Priority, Date: a.Date, Time: a.Time})
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Text)}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			err := m.toggleTask(a.ID)
			if errors.Is(err, tasks.ErrTaskNotFound) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("task %d not found", a.ID)}
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			if err := m.deleteTask(a.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted task %d", a.ID)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			m.setFilter(a.Filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", a.Filter)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.closePalette()
	return m, followUp
}
