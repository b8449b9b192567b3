// Package progrock records the commands of a session on a progrock tape or a journal file.
package progrock

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/spaceman/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq int
}

// New creates a new Recorder with an in-memory tape. Nothing outlives the session.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// Open creates a Recorder appending to the journal file at path.
func Open(path string) (*Recorder, error) {
	journal, err := OpenJournal(path)
	if err != nil {
		return nil, err
	}
	return NewRecorder(journal), nil
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for one command line. Repeated lines get distinct
// vertices because the digest includes the position in the session.
func (r *Recorder) Record(name string) ports.Vertex {
	r.seq++
	d := digest.FromString(fmt.Sprintf("%d:%s", r.seq, name))
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
