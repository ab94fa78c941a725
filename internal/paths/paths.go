package paths

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the default config file name.
const ConfigFileName = "sonar-select.yaml"

// EnvConfig names an environment variable holding the config path.
const EnvConfig = "SONAR_SELECT_CONFIG"

// ConfigFile returns $SONAR_SELECT_CONFIG, or sonar-select.yaml in the
// working directory.
func ConfigFile() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(wd, ConfigFileName)
}
