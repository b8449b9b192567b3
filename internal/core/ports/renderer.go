package ports

import "go.trai.ch/spaceman/internal/core/domain"

// Renderer defines the interface for showing feedback to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Welcome greets the user when a session starts.
	Welcome()
	// NoPreviousData tells the user that no task file existed yet.
	NoPreviousData()
	// Render shows the outcome of a command.
	Render(result domain.Result)
	// RenderError shows a failed command.
	RenderError(err error)
}

// LineReader defines the interface for reading raw command lines.
type LineReader interface {
	// ReadLine returns the next line without its terminator, or io.EOF once input is exhausted.
	ReadLine() (string, error)
}
