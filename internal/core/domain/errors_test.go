package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid action", domain.ErrInvalidAction, "OOPS!!! I'm sorry, but I don't know what that means :-("},
		{
			"wrapped index error",
			zerr.With(zerr.Wrap(domain.ErrIndexOutOfRange, "no task 4"), "index", 4),
			"OOPS!!! That task number does not exist in your list.",
		},
		{
			"incomplete description",
			zerr.Wrap(domain.ErrIncompleteDescription, "missing /by"),
			"OOPS!!! The command is incomplete. Type `help` to see the expected format.",
		},
		{"corruption", domain.ErrDataCorruption, "OOPS!!! The saved task file is corrupted and could not be read."},
		{
			"create failure",
			zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, "permission denied"), "path", "/data/spaceman.txt"),
			"OOPS!!! The task file could not be created.",
		},
		{
			"write failure",
			zerr.Wrap(domain.ErrStoreWriteFailed, "disk full"),
			"Something went wrong: disk full: failed to write task file",
		},
		{"foreign error", errors.New("boom"), "Something went wrong: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.UserMessage(tt.err))
		})
	}
}
