package console

import (
	"bufio"
	"io"
)

const maxLineSize = 1 << 20

// Reader implements ports.LineReader over any io.Reader.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader consuming r line by line.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Reader{scanner: scanner}
}

// ReadLine returns the next line without its terminator, or io.EOF at the end of input.
func (r *Reader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
