// Package config loads the retriever's settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Settings holds everything one run needs: Space-Track credentials, the
// catalog IDs to fetch, connection limits and the output location. Loaded
// once at startup and never mutated.
type Settings struct {
	Username              string `yaml:"username"`
	Password              string `yaml:"password"`
	NoradIDs              []int  `yaml:"norad_ids"`
	ConnectionTimeout     int    `yaml:"connection_timeout"`
	ConnectionReadTimeout int    `yaml:"connection_read_timeout"`
	ConnectionRetries     int    `yaml:"connection_retries"`
	OutputDirectory       string `yaml:"output_directory"`
	OutputFilename        string `yaml:"output_filename"`
}

// Load reads and validates the settings file at path.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	return &s, nil
}

func (s *Settings) validate() error {
	switch {
	case s.Username == "":
		return fmt.Errorf("username is required")
	case s.Password == "":
		return fmt.Errorf("password is required")
	case len(s.NoradIDs) == 0:
		return fmt.Errorf("norad_ids must list at least one catalog ID")
	case s.ConnectionTimeout <= 0:
		return fmt.Errorf("connection_timeout must be positive")
	case s.ConnectionReadTimeout <= 0:
		return fmt.Errorf("connection_read_timeout must be positive")
	case s.ConnectionRetries < 0:
		return fmt.Errorf("connection_retries must not be negative")
	case s.OutputDirectory == "":
		return fmt.Errorf("output_directory is required")
	case s.OutputFilename == "":
		return fmt.Errorf("output_filename is required")
	}
	for _, id := range s.NoradIDs {
		if id <= 0 {
			return fmt.Errorf("norad_ids contains invalid catalog ID %d", id)
		}
	}
	return nil
}

// OutputPath joins the output directory and filename.
func (s *Settings) OutputPath() string {
	return filepath.Join(s.OutputDirectory, s.OutputFilename)
}
