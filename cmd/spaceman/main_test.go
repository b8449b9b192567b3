package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spaceman/internal/adapters/config"
	"go.trai.ch/spaceman/internal/adapters/console"
	"go.trai.ch/spaceman/internal/adapters/logger"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/core/ports"
)

// session runs the binary entry point against a data file in a temp dir and
// returns the exit code, the rendered output and the log output.
func session(t *testing.T, dataFile, input string, args ...string) (int, string, string) {
	t.Helper()

	cfg := domain.DefaultConfig()
	cfg.DataFile = dataFile
	cfg.JournalFile = journalFile(dataFile)
	cfg.Color = domain.ColorNever

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	lg := logger.New(domain.LogLevelWarn, domain.ColorNever)
	lg.SetOutput(logs)

	code := run(context.Background(), strings.NewReader(input), args,
		graft.DisableCache(),
		graft.PatchValue[*domain.Config](cfg),
		graft.PatchValue[ports.Renderer](console.New(out, domain.ColorNever)),
		graft.PatchValue[ports.Logger](lg),
	)
	return code, out.String(), logs.String()
}

func journalFile(dataFile string) string {
	return filepath.Join(filepath.Dir(dataFile), domain.DefaultJournalName)
}

func TestRun_FirstSessionCreatesFile(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "data", "spaceman.txt")

	code, out, logs := session(t, dataFile, "todo read book\nmark 1\nbye\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, logs)
	assert.Contains(t, out, "No previous data found /:")
	assert.Contains(t, out, "Got it. I've added this task:\n  [T][ ] read book\nNow you have 1 tasks in the list.")
	assert.Contains(t, out, "Nice! I've marked this task as done:\n  [T][X] read book")
	assert.Contains(t, out, "Bye. Hope to see you again soon!")

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, "T|1|read book\n", string(data))
}

func TestRun_SecondSessionSeesSavedTasks(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "spaceman.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte("D|0|return book|2019-12-02T18:00\n"), 0o600))

	code, out, _ := session(t, dataFile, "list\n")

	assert.Equal(t, 0, code)
	assert.NotContains(t, out, "No previous data found")
	assert.Contains(t, out, "1. [D][ ] return book (by: Dec 02 2019 18:00)")
	assert.Contains(t, out, "Bye. Hope to see you again soon!")
}

func TestRun_LongDescriptionSurvivesRestart(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "spaceman.txt")
	description := strings.Repeat("a", 70*1024)

	code, _, logs := session(t, dataFile, "todo "+description+"\nbye\n")
	require.Equal(t, 0, code, logs)

	code, out, logs := session(t, dataFile, "list\n")

	assert.Equal(t, 0, code, logs)
	assert.Contains(t, out, "1. [T][ ] "+description)
}

func TestRun_CorruptFileIsFatal(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "spaceman.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte("not a record\n"), 0o600))

	code, out, logs := session(t, dataFile, "list\n")

	assert.Equal(t, 1, code)
	assert.NotContains(t, out, "What can I do for you?")
	assert.Contains(t, logs, "data corruption")
}

func TestRun_Version(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "spaceman.txt")

	code, out, _ := session(t, dataFile, "", "version")

	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	for _, path := range []string{dataFile, journalFile(dataFile)} {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "version must not touch %s", path)
	}
}

func TestRun_VersionIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvJournal, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DefaultConfigFile), []byte("version: \"9\"\n"), 0o600))

	assert.Equal(t, 0, run(context.Background(), strings.NewReader(""), []string{"version"}, graft.DisableCache()))
	assert.Equal(t, 1, run(context.Background(), strings.NewReader("bye\n"), nil, graft.DisableCache()))
}

func TestRun_JournalRecordsCommands(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "spaceman.txt")

	code, _, _ := session(t, dataFile, "todo read book\nfoobar\nbye\n")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(journalFile(dataFile))
	require.NoError(t, err)

	journal := string(data)
	assert.Regexp(t, `(?m) ok   todo read book$`, journal)
	assert.Regexp(t, `(?m) log  foobar \| \[WARN\] .*invalid action`, journal)
	assert.Regexp(t, `(?m) fail foobar \| .*invalid action`, journal)
	assert.Regexp(t, `(?m) ok   bye$`, journal)
}
