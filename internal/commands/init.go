package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/sonar-select/internal/config"
)

// ErrConfigExists is returned by Init when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Init writes the config template to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}
	if err := os.WriteFile(path, []byte(config.Template), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
