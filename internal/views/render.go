package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Inputs     string
	Filters    string
	List       string
	Stats      string
	StatusLine string
	IsError    bool
	Help       string
	Footer     string
}

func RenderApp(data AppData, st Styles) string {
	body := lipgloss.JoinVertical(lipgloss.Left, data.Inputs, data.Filters, data.List)

	lines := []string{
		st.Header.Render(data.Header),
		st.Panel.Width(72).Render(body),
		st.Accent.Render(data.Stats),
	}
	if data.StatusLine != "" {
		if data.IsError {
			lines = append(lines, st.Error.Render(data.StatusLine))
		} else {
			lines = append(lines, st.Status.Render(data.StatusLine))
		}
	}
	if data.Help != "" {
		lines = append(lines, st.Panel.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, st.Muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with the glamour style matching mode ("dark" or
// "light"). Rendering errors fall back to the raw markdown.
func RenderMarkdown(md string, mode string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, mode)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
