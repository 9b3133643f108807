package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// shakeOffsets is the sideways displacement of the text field per frame,
// two left-right swings ending at rest.
var shakeOffsets = []int{0, -2, 2, 0, -2, 2, 0}

const shakeInterval = 50 * time.Millisecond

func shakeTick() tea.Cmd {
	return tea.Tick(shakeInterval, func(time.Time) tea.Msg { return ShakeMsg{} })
}

// startShake restarts the animation. A shake already in flight keeps its
// tick chain, so only an idle animation schedules a new tick.
func (m *Model) startShake() tea.Cmd {
	wasActive := m.Shake.Active()
	m.Shake = ShakeState{}
	if wasActive {
		return nil
	}
	return shakeTick()
}

func (m *Model) advanceShake() tea.Cmd {
	if !m.Shake.Active() {
		return nil
	}
	m.Shake.Frame++
	if !m.Shake.Active() {
		return nil
	}
	return shakeTick()
}
