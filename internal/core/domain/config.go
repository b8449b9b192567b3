package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultDataFile is where tasks are kept when nothing else is configured.
	DefaultDataFile = "./data/spaceman.txt"
	// DefaultConfigFile is the configuration file looked up in the working directory.
	DefaultConfigFile = "spaceman.yaml"
	// DefaultJournalName is the command journal kept next to the task file.
	DefaultJournalName = "spaceman.journal"
	// JournalOff disables the command journal when used as the journal file.
	JournalOff = "off"
	// FilePerm is the permission used for the task file.
	FilePerm = 0o600
	// DirPerm is the permission used for the task file directory.
	DirPerm = 0o750
)

// ColorMode controls whether console output is coloured.
type ColorMode string

const (
	// ColorAuto colours output unless NO_COLOR is set or the terminal cannot show it.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colours.
	ColorAlways ColorMode = "always"
	// ColorNever disables colours.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a configuration value into a ColorMode. An empty value means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, zerr.With(zerr.Wrap(ErrConfigParseFailed, "unknown color mode"), "color", s)
	}
}

// Config holds the runtime settings of the tracker.
type Config struct {
	DataFile string
	LogLevel LogLevel
	Color    ColorMode
	// DateLayouts are extra time layouts accepted for /by, /from and /to,
	// tried before the built-in ones.
	DateLayouts []string
	// JournalFile receives one line per executed command. Empty disables it.
	JournalFile string
	// Source is the configuration file that was read, empty when only defaults apply.
	Source string
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: LogLevelWarn,
		Color:    ColorAuto,
	}
}
