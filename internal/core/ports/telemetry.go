package ports

import "go.trai.ch/spaceman/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records every command of a session as a vertex.
type Telemetry interface {
	// Record starts a vertex for the given command line.
	Record(name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded command.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
