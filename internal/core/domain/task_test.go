package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestTask_String(t *testing.T) {
	by := time.Date(2019, time.December, 2, 18, 0, 0, 0, time.Local)
	from := time.Date(2019, time.December, 2, 14, 0, 0, 0, time.Local)
	to := time.Date(2019, time.December, 2, 16, 30, 0, 0, time.Local)

	todo, err := domain.NewTodo("read book")
	require.NoError(t, err)
	deadline, err := domain.NewDeadline("return book", by)
	require.NoError(t, err)
	event, err := domain.NewEvent("project meeting", from, to)
	require.NoError(t, err)
	deadline.Mark()

	assert.Equal(t, "[T][ ] read book", todo.String())
	assert.Equal(t, "[D][X] return book (by: Dec 02 2019 18:00)", deadline.String())
	assert.Equal(t, "[E][ ] project meeting (from: Dec 02 2019 14:00 to: Dec 02 2019 16:30)", event.String())
}

func TestNewEvent_Validation(t *testing.T) {
	from := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		desc string
		from time.Time
		to   time.Time
	}{
		{"empty description", "", from, from.Add(time.Hour)},
		{"missing start", "standup", time.Time{}, from},
		{"missing end", "standup", from, time.Time{}},
		{"ends before start", "standup", from, from.Add(-time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewEvent(tt.desc, tt.from, tt.to)
			require.ErrorIs(t, err, domain.ErrIncompleteDescription)
		})
	}

	_, err := domain.NewEvent("zero length", from, from)
	require.NoError(t, err)
}

func TestNewDeadline_RequiresDate(t *testing.T) {
	_, err := domain.NewDeadline("return book", time.Time{})
	require.ErrorIs(t, err, domain.ErrIncompleteDescription)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "D", zErr.Metadata()["kind"])
}

func TestTask_StatusIcon(t *testing.T) {
	task, err := domain.NewTodo("x")
	require.NoError(t, err)

	assert.Equal(t, " ", task.StatusIcon())
	task.Mark()
	assert.Equal(t, "X", task.StatusIcon())
	task.Unmark()
	assert.Equal(t, " ", task.StatusIcon())
}
