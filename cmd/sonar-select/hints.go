package main

import (
	"errors"
	"net/url"
	"os"

	"github.com/ruminaider/sonar-select/internal/config"
	"github.com/ruminaider/sonar-select/internal/sonar"
)

// hintFor returns a suggestion for fixing err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "Run `sonar-select init` to create a config file, or pass --config."
	case errors.Is(err, config.ErrMissingConfig):
		return "Set sonar_url and token in the config file (or SONAR_URL / SONAR_TOKEN)."
	case errors.Is(err, config.ErrInvalidConfig):
		return "Fix the setting in the config file or flags; see `sonar-select init` for the format."
	case sonar.IsAuthError(err):
		return "Authentication failed. Check that the token is valid and has the \"Browse\" permission on the projects."
	default:
		var statusErr *sonar.StatusError
		var urlErr *url.Error
		if errors.As(err, &statusErr) || errors.As(err, &urlErr) {
			return "Check the SonarQube URL in the config file and your network connection."
		}
		return ""
	}
}
