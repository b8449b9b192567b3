package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/spaceman/internal/adapters/telemetry/progrock"
	"go.trai.ch/spaceman/internal/core/domain"
)

// tapeWriter keeps every status update written to it.
type tapeWriter struct {
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *tapeWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.updates = append(w.updates, u)
	return nil
}

func (w *tapeWriter) Close() error {
	w.closed = true
	return nil
}

func (w *tapeWriter) vertices() map[string]*vprogrock.Vertex {
	out := map[string]*vprogrock.Vertex{}
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			out[v.Id] = v
		}
	}
	return out
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	vertex := recorder.Record("list")
	vertex.Log(domain.LogLevelDebug, "listed 0 tasks")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_RecordsCommands(t *testing.T) {
	w := &tapeWriter{}
	recorder := progrock.NewRecorder(w)

	recorder.Record("todo read book").Complete(nil)
	recorder.Record("todo read book").Complete(nil)
	recorder.Record("foobar").Complete(errors.New("invalid action"))

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)

	vertices := w.vertices()
	require.Len(t, vertices, 3, "repeated lines must be recorded as separate vertices")

	var failed, succeeded int
	for _, v := range vertices {
		require.NotNil(t, v.Completed, "vertex %q not completed", v.Name)
		if v.Error != nil {
			failed++
			assert.Equal(t, "foobar", v.Name)
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, succeeded)
}
