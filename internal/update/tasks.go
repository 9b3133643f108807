package update

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/tasklite/internal/model"
	"github.com/sandeepkv93/tasklite/internal/projector"
	"github.com/sandeepkv93/tasklite/internal/tasks"
)

// addTask runs the add command. A rejected draft starts the shake animation
// and leaves the inputs as they are; the returned error says why.
func (m *Model) addTask(msg AddTaskMsg) (tea.Cmd, error) {
	priority := msg.Priority
	if priority == "" {
		priority = m.Priority
	}
	_, err := m.store.Add(context.Background(), tasks.Draft{
		Text:     msg.Text,
		Priority: priority,
		Date:     msg.Date,
		Time:     msg.Time,
	})
	var ve *tasks.ValidationError
	switch {
	case errors.As(err, &ve):
		if !errors.Is(err, tasks.ErrEmptyText) {
			m.Status = StatusBar{Text: ve.Error(), IsError: true}
		}
		return m.startShake(), err
	case err != nil:
		m.fail(err)
		return nil, err
	}
	m.textInput.SetValue("")
	m.Cursor = 0
	m.offset = 0
	m.refresh()
	m.Status = StatusBar{Text: "task added"}
	return nil, nil
}

// toggleTask flips id. A missing id means the view was stale: it is logged,
// reported on the status line and returned as tasks.ErrTaskNotFound.
func (m *Model) toggleTask(id int64) error {
	collection, err := m.store.Toggle(context.Background(), id)
	if errors.Is(err, tasks.ErrTaskNotFound) {
		m.logger.Warn("toggle on stale view", zap.Int64("id", id))
		m.Status = StatusBar{Text: fmt.Sprintf("task %d not found", id), IsError: true}
		m.refresh()
		return err
	}
	if err != nil {
		m.fail(err)
		return err
	}
	m.refresh()
	if idx := collection.Index(id); idx >= 0 && collection[idx].Completed {
		m.Status = StatusBar{Text: "task completed"}
	} else {
		m.Status = StatusBar{Text: "task reopened"}
	}
	return nil
}

func (m *Model) deleteTask(id int64) error {
	if _, err := m.store.Remove(context.Background(), id); err != nil {
		m.fail(err)
		return err
	}
	m.refresh()
	m.Status = StatusBar{Text: "task deleted"}
	return nil
}

func (m *Model) setFilter(f model.Filter) {
	if !f.IsValid() {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown filter %q", f), IsError: true}
		return
	}
	m.Filter = f
	m.Cursor = 0
	m.offset = 0
	m.refresh()
}

// refresh recomputes the projection and counts from the store and keeps the
// cursor inside the visible rows.
func (m *Model) refresh() {
	snap := m.store.Snapshot()
	m.Projection = projector.Project(snap, m.Filter)
	m.Stats = projector.Summarize(snap)
	m.setCursor(m.Cursor)
}

func (m *Model) setCursor(value int) {
	size := len(m.Projection.Tasks)
	m.Cursor = clamp(value, 0, max(size-1, 0))
	if m.Cursor >= m.offset+m.listHeight {
		m.offset = m.Cursor - m.listHeight + 1
	}
	if m.Cursor < m.offset {
		m.offset = m.Cursor
	}
}

func (m Model) taskAtCursor() (model.Task, bool) {
	if m.Projection.Empty || m.Cursor >= len(m.Projection.Tasks) {
		return model.Task{}, false
	}
	return m.Projection.Tasks[m.Cursor], true
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.logger.Error("task operation failed", zap.Error(err))
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}
