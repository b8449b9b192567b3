package console_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spaceman/internal/adapters/console"
)

func TestReader_ReadLine(t *testing.T) {
	r := console.NewReader(strings.NewReader("todo read book\r\n\nlist\nbye"))

	for _, want := range []string{"todo read book", "", "list", "bye"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	_, err = r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestReader_PropagatesReadErrors(t *testing.T) {
	r := console.NewReader(failingReader{})

	_, err := r.ReadLine()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "terminal gone")
}
