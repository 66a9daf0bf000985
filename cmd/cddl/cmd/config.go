package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults read from a .cddlrc.yaml file in the current
// directory, if one exists. Tree and Verbose can also be set via the
// --tree and --verbose flags, which always take precedence; Prelude is
// only read from the file.
type Config struct {
	Tree    bool     `yaml:"tree"`
	Verbose bool     `yaml:"verbose"`
	Prelude []string `yaml:"prelude"`
}

// LoadConfig reads .cddlrc.yaml from the current directory. A missing file
// is not an error; it just yields the zero Config.
func LoadConfig() (Config, error) {
	var cfg Config

	path := filepath.Join(".", ".cddlrc.yaml")
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
