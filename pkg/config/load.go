package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigFileCantBeRead when config file cannot be read.
	ErrConfigFileCantBeRead = errors.New("config file can't be read")
	// ErrConfigFileHaveInvalidFormat when config file has invalid format.
	ErrConfigFileHaveInvalidFormat = errors.New("config file have invalid format")
)

// load reads the project's config file into c. A missing file is not an
// error: defaults apply.
func (c *Config) load(project Project) error {
	bytes, err := os.ReadFile(project.ConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s - %w: %w", project.ConfigPath,
			ErrConfigFileCantBeRead, err)
	}
	if err = yaml.Unmarshal(bytes, c); err != nil {
		return fmt.Errorf("%s - %w: %w", project.ConfigPath,
			ErrConfigFileHaveInvalidFormat, err)
	}
	return nil
}
