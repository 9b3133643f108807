package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/tasklite/internal/model"
)

func TestEnglishMessages(t *testing.T) {
	tr, err := New(LanguageEn, nil)
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "No tasks yet!", tr.T("EmptyTitle"))
	assert.Equal(t, "Add your first task", tr.T("EmptyHint"))
	assert.Equal(t, "1 task", tr.Count("TaskCount", 1))
	assert.Equal(t, "3 tasks", tr.Count("TaskCount", 3))
	assert.Equal(t, "0 completed", tr.Count("CompletedCount", 0))
	assert.Equal(t, "Active", tr.Filter(model.FilterActive))
	assert.Equal(t, "High", tr.Priority(model.PriorityHigh))
}

func TestFrenchMessages(t *testing.T) {
	tr, err := New("fr-FR", nil)
	require.NoError(t, err)

	assert.Equal(t, "fr", tr.Language())
	assert.Equal(t, "Terminées", tr.Filter(model.FilterCompleted))
	assert.Equal(t, "2 tâches", tr.Count("TaskCount", 2))
	assert.Equal(t, "1 févr. 2024", tr.FormatDue("2024-02-01", ""))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr, err := New("not a tag!", nil)
	require.NoError(t, err)
	assert.Equal(t, "No tasks yet!", tr.T("EmptyTitle"))

	tr, err = New("ja", nil)
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Language())
}

func TestMissingMessageReturnsID(t *testing.T) {
	tr, err := New(LanguageEn, nil)
	require.NoError(t, err)
	assert.Equal(t, "NoSuchMessage", tr.T("NoSuchMessage"))
}

func TestFormatDue(t *testing.T) {
	tr, err := New(LanguageEn, nil)
	require.NoError(t, err)

	assert.Equal(t, "", tr.FormatDue("", "09:00"))
	assert.Equal(t, "1 Jan 2024", tr.FormatDue("2024-01-01", ""))
	assert.Equal(t, "1 Jan 2024 • 09:00", tr.FormatDue("2024-01-01", "09:00"))
	assert.Equal(t, "25 Dec 2025 • 18:30", tr.FormatDue("2025-12-25", "18:30"))
	assert.Equal(t, "someday • 09:00", tr.FormatDue("someday", "09:00"))
}
