package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/engine/parser"
	"go.trai.ch/zerr"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestParse_ValidCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Command
	}{
		{"bye", "bye", domain.Command{Action: domain.ActionExit}},
		{"list with padding", "   list  ", domain.Command{Action: domain.ActionList}},
		{"help", "help", domain.Command{Action: domain.ActionHelp}},
		{"mark", "mark 2", domain.Command{Action: domain.ActionMark, Index: 2}},
		{"unmark", "unmark 1", domain.Command{Action: domain.ActionUnmark, Index: 1}},
		{"delete", "delete 3", domain.Command{Action: domain.ActionDelete, Index: 3}},
		{"mark out of range still parses", "mark 0", domain.Command{Action: domain.ActionMark, Index: 0}},
		{"todo", "todo read book", domain.Command{Action: domain.ActionTodo, Description: "read book"}},
		{
			"todo keeps inner spacing",
			"todo read  the   book",
			domain.Command{Action: domain.ActionTodo, Description: "read  the   book"},
		},
		{
			"deadline",
			"deadline return book /by 2019-12-02 1800",
			domain.Command{Action: domain.ActionDeadline, Description: "return book", By: at(2019, time.December, 2, 18, 0)},
		},
		{
			"deadline with colon time",
			"deadline essay /by 2023-10-15 23:59",
			domain.Command{Action: domain.ActionDeadline, Description: "essay", By: at(2023, time.October, 15, 23, 59)},
		},
		{
			"deadline date only",
			"deadline taxes /by 2024-04-30",
			domain.Command{Action: domain.ActionDeadline, Description: "taxes", By: at(2024, time.April, 30, 0, 0)},
		},
		{
			"deadline day first",
			"deadline return book /by 2/12/2019 1800",
			domain.Command{Action: domain.ActionDeadline, Description: "return book", By: at(2019, time.December, 2, 18, 0)},
		},
		{
			"event",
			"event project meeting /from 2019-12-02 1400 /to 2019-12-02 1600",
			domain.Command{
				Action:      domain.ActionEvent,
				Description: "project meeting",
				From:        at(2019, time.December, 2, 14, 0),
				To:          at(2019, time.December, 2, 16, 0),
			},
		},
		{"find", "find book", domain.Command{Action: domain.ActionFind, Keyword: "book"}},
		{"find phrase", "find read book", domain.Command{Action: domain.ActionFind, Keyword: "read book"}},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"unknown keyword", "foobar", domain.ErrInvalidAction},
		{"empty line", "   ", domain.ErrInvalidAction},
		{"keyword is case sensitive", "LIST", domain.ErrInvalidAction},
		{"keyword prefix", "todos read", domain.ErrInvalidAction},
		{"mark without index", "mark", domain.ErrIndexOutOfRange},
		{"mark non numeric", "mark one", domain.ErrIndexOutOfRange},
		{"unmark float", "unmark 1.5", domain.ErrIndexOutOfRange},
		{"delete without index", "delete", domain.ErrIndexOutOfRange},
		{"todo empty", "todo", domain.ErrIncompleteDescription},
		{"todo blank", "todo    ", domain.ErrIncompleteDescription},
		{"deadline missing by", "deadline buy milk", domain.ErrIncompleteDescription},
		{"deadline empty description", "deadline /by 2019-12-02 1800", domain.ErrIncompleteDescription},
		{"deadline missing date", "deadline buy milk /by", domain.ErrIncompleteDescription},
		{"deadline bad date", "deadline buy milk /by tomorrow", domain.ErrIncompleteDescription},
		{"event missing from", "event party /to 2019-12-02 1800", domain.ErrIncompleteDescription},
		{"event missing to", "event party /from 2019-12-02 1800", domain.ErrIncompleteDescription},
		{"event to before from marker", "event party /to 2019-12-02 1800 /from 2019-12-02 1600", domain.ErrIncompleteDescription},
		{"event bad start", "event party /from soon /to 2019-12-02 1800", domain.ErrIncompleteDescription},
		{"event empty description", "event /from 2019-12-02 1600 /to 2019-12-02 1800", domain.ErrIncompleteDescription},
		{"find without keyword", "find", domain.ErrIncompleteDescription},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.line)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_FirstMarkerWins(t *testing.T) {
	p := parser.New()

	// "/by" inside the description splits there, leaving an unparsable date.
	_, err := p.Parse("deadline read /by the sea /by 2019-12-02 1800")
	require.ErrorIs(t, err, domain.ErrIncompleteDescription)

	got, err := p.Parse("deadline stand by /by 2019-12-02 1800")
	require.NoError(t, err)
	assert.Equal(t, "stand by", got.Description)
}

func TestParse_MarkersAreWholeWords(t *testing.T) {
	p := parser.New()
	by := at(2020, time.January, 1, 0, 0)
	from := at(2020, time.January, 1, 9, 0)
	to := at(2020, time.January, 1, 10, 0)

	tests := []struct {
		name string
		line string
		want domain.Command
	}{
		{
			name: "by inside a word",
			line: "deadline fix/bypass valve /by 2020-01-01",
			want: domain.Command{Action: domain.ActionDeadline, Description: "fix/bypass valve", By: by},
		},
		{
			name: "by as a word prefix",
			line: "deadline read /bylaws /by 2020-01-01",
			want: domain.Command{Action: domain.ActionDeadline, Description: "read /bylaws", By: by},
		},
		{
			name: "to inside a word",
			line: "event lunch w/tom /from 2020-01-01 0900 /to 2020-01-01 1000",
			want: domain.Command{Action: domain.ActionEvent, Description: "lunch w/tom", From: from, To: to},
		},
		{
			name: "from inside a word",
			line: "event sync data/from/db /from 2020-01-01 0900 /to 2020-01-01 1000",
			want: domain.Command{Action: domain.ActionEvent, Description: "sync data/from/db", From: from, To: to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Action, got.Action)
			assert.Equal(t, tt.want.Description, got.Description)
			assert.True(t, tt.want.By.Equal(got.By), "by: %v", got.By)
			assert.True(t, tt.want.From.Equal(got.From), "from: %v", got.From)
			assert.True(t, tt.want.To.Equal(got.To), "to: %v", got.To)
		})
	}
}

func TestParse_IndexErrorMetadata(t *testing.T) {
	p := parser.New()

	_, err := p.Parse("delete two")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "two", meta["argument"])
	assert.Equal(t, "delete", meta["action"])
}

func TestParse_ExtraLayouts(t *testing.T) {
	p := parser.New("02 Jan 2006 15:04")

	got, err := p.Parse("deadline submit report /by 05 Mar 2024 09:30")
	require.NoError(t, err)
	assert.Equal(t, at(2024, time.March, 5, 9, 30), got.By)

	got, err = p.Parse("deadline submit report /by 2024-03-05 0930")
	require.NoError(t, err)
	assert.Equal(t, at(2024, time.March, 5, 9, 30), got.By)
}
