package update

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/sandeepkv93/tasklite/internal/storage"
	"github.com/sandeepkv93/tasklite/internal/views"
)

// loadDarkMode reads the stored preference. Dark is the default; only an
// explicit "false" selects light mode.
func (m Model) loadDarkMode() bool {
	if m.prefs == nil {
		return true
	}
	v, err := m.prefs.Get(context.Background(), storage.KeyDarkMode)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.Warn("read dark mode preference", zap.Error(err))
		}
		return true
	}
	return v != "false"
}

func (m *Model) toggleDarkMode() {
	m.DarkMode = !m.DarkMode
	if m.prefs != nil {
		if err := m.prefs.Set(context.Background(), storage.KeyDarkMode, strconv.FormatBool(m.DarkMode)); err != nil {
			m.logger.Warn("save dark mode preference", zap.Error(err))
			m.Status = StatusBar{Text: "could not save theme preference", IsError: true}
			return
		}
	}
	m.Status = StatusBar{Text: m.theme().Mode() + " mode"}
}

func (m *Model) cycleColorTheme() {
	m.ThemeIndex = (m.ThemeIndex + 1) % len(views.Palettes)
	m.Status = StatusBar{Text: "theme: " + views.Palettes[m.ThemeIndex].Name}
}

func (m Model) theme() views.Theme {
	return views.Theme{Dark: m.DarkMode, Palette: views.Palettes[m.ThemeIndex]}
}
