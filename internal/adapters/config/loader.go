// Package config provides the configuration loader for spaceman.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvConfig   = "SPACEMAN_CONFIG"
	EnvDataFile = "SPACEMAN_DATA_FILE"
	EnvLogLevel = "SPACEMAN_LOG_LEVEL"
	EnvJournal  = "SPACEMAN_JOURNAL_FILE"
)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	// Filename is looked up in the working directory unless EnvConfig names a file.
	Filename string
	// LookupEnv reads the environment; os.LookupEnv when nil.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a Loader reading spaceman.yaml and the process environment.
func NewLoader() *Loader {
	return &Loader{
		Filename:  domain.DefaultConfigFile,
		LookupEnv: os.LookupEnv,
	}
}

// Load resolves the configuration for the given working directory.
// A missing spaceman.yaml yields the defaults; a missing file named by
// SPACEMAN_CONFIG is an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	explicit := false
	if p, ok := l.env(EnvConfig); ok {
		path = resolve(cwd, p)
		explicit = true
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := apply(cfg, data); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.Source = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.DataFile = resolve(cwd, cfg.DataFile)
	switch cfg.JournalFile {
	case "":
		cfg.JournalFile = filepath.Join(filepath.Dir(cfg.DataFile), domain.DefaultJournalName)
	case domain.JournalOff:
		cfg.JournalFile = ""
	default:
		cfg.JournalFile = resolve(cwd, cfg.JournalFile)
	}
	return cfg, nil
}

func (l *Loader) env(key string) (string, bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	if v, ok := l.env(EnvDataFile); ok {
		cfg.DataFile = v
	}
	if v, ok := l.env(EnvJournal); ok {
		cfg.JournalFile = v
	}
	if v, ok := l.env(EnvLogLevel); ok {
		level, err := domain.ParseLogLevel(v)
		if err != nil {
			return zerr.With(err, "env", EnvLogLevel)
		}
		cfg.LogLevel = level
	}
	return nil
}

// apply decodes a Spacefile and overlays its non-empty fields onto cfg.
func apply(cfg *domain.Config, data []byte) error {
	var file Spacefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	if file.Version != "" && file.Version != CurrentVersion {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported version"), "version", file.Version)
	}

	if file.DataFile != "" {
		cfg.DataFile = file.DataFile
	}
	if file.JournalFile != "" {
		cfg.JournalFile = strings.TrimSpace(file.JournalFile)
	}
	if file.LogLevel != "" {
		level, err := domain.ParseLogLevel(file.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}

	color, err := domain.ParseColorMode(file.Color)
	if err != nil {
		return err
	}
	cfg.Color = color

	for _, layout := range file.DateLayouts {
		if strings.TrimSpace(layout) == "" {
			return zerr.Wrap(domain.ErrConfigParseFailed, "empty date layout")
		}
		cfg.DateLayouts = append(cfg.DateLayouts, layout)
	}

	return nil
}

func resolve(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}
