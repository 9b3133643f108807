package views

import "github.com/charmbracelet/lipgloss"

// Palette is one of the selectable accent color sets.
type Palette struct {
	Name        string
	Primary     lipgloss.Color
	PrimaryDark lipgloss.Color
	Secondary   lipgloss.Color
}

var Palettes = []Palette{
	{Name: "purple-blue", Primary: "#8a2be2", PrimaryDark: "#5f1d9e", Secondary: "#00c6fb"},
	{Name: "red-yellow", Primary: "#ff4d4d", PrimaryDark: "#d63031", Secondary: "#fdcb6e"},
	{Name: "green-blue", Primary: "#00b894", PrimaryDark: "#0984e3", Secondary: "#00cec9"},
	{Name: "purple-pink", Primary: "#6c5ce7", PrimaryDark: "#5649d2", Secondary: "#fd79e8"},
	{Name: "orange-yellow", Primary: "#e17055", PrimaryDark: "#d63031", Secondary: "#fdcb6e"},
}

// PaletteIndex returns the position of name in Palettes, or -1.
func PaletteIndex(name string) int {
	for i, p := range Palettes {
		if p.Name == name {
			return i
		}
	}
	return -1
}

type Theme struct {
	Dark    bool
	Palette Palette
}

func (t Theme) Mode() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

type Styles struct {
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Accent    lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Low       lipgloss.Style
	Medium    lipgloss.Style
	High      lipgloss.Style
}

func (t Theme) Styles() Styles {
	fg := lipgloss.Color("#222222")
	muted := lipgloss.Color("#777777")
	if t.Dark {
		fg = lipgloss.Color("#eeeeee")
		muted = lipgloss.Color("#888888")
	}
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(t.Palette.Primary),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Palette.PrimaryDark).Padding(0, 1),
		Accent:    lipgloss.NewStyle().Foreground(t.Palette.Secondary),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(fg).Background(t.Palette.PrimaryDark),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(fg).Background(t.Palette.Primary),
		Low:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00b894")),
		Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("#fdcb6e")),
		High:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4d4d")),
	}
}

func (s Styles) PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "low":
		return s.Low
	case "medium":
		return s.Medium
	default:
		return s.High
	}
}
