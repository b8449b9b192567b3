package config

// CurrentVersion is the only configuration schema version understood by the loader.
const CurrentVersion = "1"

// Spacefile represents the structure of the spaceman.yaml configuration file.
type Spacefile struct {
	Version     string   `yaml:"version"`
	DataFile    string   `yaml:"data_file"`
	LogLevel    string   `yaml:"log_level"`
	Color       string   `yaml:"color"`
	DateLayouts []string `yaml:"date_layouts"`
	JournalFile string   `yaml:"journal_file"`
}
