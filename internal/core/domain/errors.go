package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Sentinels are wrapped (never passed to zerr.With directly) so that errors.Is keeps matching.
var (
	// ErrInvalidAction is returned when a command keyword is not recognised.
	ErrInvalidAction = zerr.New("invalid action")

	// ErrIncompleteDescription is returned when a required description, keyword or date is missing or unparsable.
	ErrIncompleteDescription = zerr.New("incomplete description")

	// ErrIndexOutOfRange is returned when a task index is absent, non-numeric or outside the list.
	ErrIndexOutOfRange = zerr.New("index out of range")

	// ErrDataCorruption is returned when a storage record cannot be decoded.
	ErrDataCorruption = zerr.New("data corruption")

	// ErrStoreNotFound is returned when the task file does not exist yet.
	ErrStoreNotFound = zerr.New("task file not found")

	// ErrStoreReadFailed is returned when the task file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read task file")

	// ErrStoreWriteFailed is returned when the task file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write task file")

	// ErrStoreCreateFailed is returned when the task file or its directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create task file")

	// ErrConfigReadFailed is returned when the configuration file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

// UserMessage maps an error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAction):
		return "OOPS!!! I'm sorry, but I don't know what that means :-("
	case errors.Is(err, ErrIncompleteDescription):
		return "OOPS!!! The command is incomplete. Type `help` to see the expected format."
	case errors.Is(err, ErrIndexOutOfRange):
		return "OOPS!!! That task number does not exist in your list."
	case errors.Is(err, ErrDataCorruption):
		return "OOPS!!! The saved task file is corrupted and could not be read."
	case errors.Is(err, ErrStoreCreateFailed):
		return "OOPS!!! The task file could not be created."
	default:
		return "Something went wrong: " + err.Error()
	}
}
