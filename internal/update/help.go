package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/tasklite/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Action: "next field"},
		{Key: "ctrl+p", Action: "cycle priority"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	if m.Focus != FocusList {
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "esc", Action: "go to list"},
		}
	}
	return []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle completed"},
		{Key: "d", Action: "delete task"},
		{Key: "1/2/3", Action: "all / active / completed"},
		{Key: "f", Action: "next filter"},
		{Key: "p", Action: "cycle priority"},
		{Key: m.Keys.DarkMode, Action: "dark / light mode"},
		{Key: m.Keys.Theme, Action: "next color theme"},
		{Key: "i", Action: "new task"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.focusBindings(), m.globalBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) renderShortHelp() string {
	bindings := m.helpBindings()
	return m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}})
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	for _, kb := range append(m.focusBindings(), m.globalBindings()...) {
		b.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	b.WriteString("\n# Commands\n\n")
	b.WriteString("- `add <text> [p:low|medium|high] [due:YYYY-MM-DD] [at:HH:MM]`\n")
	b.WriteString("- `toggle <id>`\n")
	b.WriteString("- `delete <id>`\n")
	b.WriteString("- `filter all|active|completed`\n")
	return views.RenderMarkdown(b.String(), m.theme().Mode())
}
