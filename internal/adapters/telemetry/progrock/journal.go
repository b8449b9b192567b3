package progrock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

// JournalTimeLayout is the timestamp layout of journal lines.
const JournalTimeLayout = "2006-01-02T15:04:05"

// Journal is a progrock.Writer that appends a plain text line for every
// completed command and every line logged against it:
//
//	2024-03-05T09:30:00 ok   todo read book
//	2024-03-05T09:30:04 log  foobar | [WARN] unknown command: invalid action
//	2024-03-05T09:30:04 fail foobar | invalid action
type Journal struct {
	mu    sync.Mutex
	w     io.Writer
	names map[string]string
	now   func() time.Time
}

// NewJournal creates a Journal writing to w. w is closed with the journal
// when it implements io.Closer.
func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w, names: map[string]string{}, now: time.Now}
}

// OpenJournal appends to the journal file at path, creating it and its
// directory when needed.
func OpenJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal directory"), "path", path)
	}
	//nolint:gosec // path is provided by user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open journal"), "path", path)
	}
	return NewJournal(f), nil
}

// WriteStatus implements progrock.Writer.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var buf bytes.Buffer
	for _, l := range update.Logs {
		stamp := j.now().Format(JournalTimeLayout)
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			fmt.Fprintf(&buf, "%s log  %s | %s\n", stamp, j.names[l.Vertex], line)
		}
	}

	for _, v := range update.Vertexes {
		j.names[v.Id] = v.Name
		if v.Completed == nil {
			continue
		}

		stamp := v.Completed.AsTime().Local().Format(JournalTimeLayout)
		if v.Error != nil {
			fmt.Fprintf(&buf, "%s fail %s | %s\n", stamp, v.Name, *v.Error)
		} else {
			fmt.Fprintf(&buf, "%s ok   %s\n", stamp, v.Name)
		}
		delete(j.names, v.Id)
	}

	if buf.Len() == 0 {
		return nil
	}
	_, err := j.w.Write(buf.Bytes())
	return err
}

// Close closes the underlying writer.
func (j *Journal) Close() error {
	if c, ok := j.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
