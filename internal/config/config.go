package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/sonar-select/internal/catalog"
	"github.com/ruminaider/sonar-select/internal/colors"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
)

// TokenPlaceholder is the token value written by the config template.
const TokenPlaceholder = "PASTE_YOUR_TOKEN_HERE"

// Environment variables that override the file.
const (
	EnvURL   = "SONAR_URL"
	EnvToken = "SONAR_TOKEN"
)

var (
	// ErrMissingConfig means the connection settings are absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig means a setting has an unsupported value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents sonar-select.yaml.
type Config struct {
	SonarURL string             `yaml:"sonar_url"`
	Token    string             `yaml:"token"`
	Debug    bool               `yaml:"debug,omitempty"`
	Sort     catalog.SortPolicy `yaml:"sort,omitempty"`
	Locale   string             `yaml:"locale,omitempty"`
	Colors   colors.Table       `yaml:"colors,omitempty"`
	Projects []string           `yaml:"projects"`

	// Extra holds keys this tool does not know about so they survive a save.
	Extra map[string]any `yaml:",inline"`
}

// Parse parses config bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, replacing the whole file.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return writeAtomic(path, data)
}

// SaveProjects replaces only the projects list of the config file at path.
// Every other key, and the comments around them, is written back as it was.
func SaveProjects(path string, projects []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if len(doc.Content) == 0 {
		return Save(path, Config{Projects: projects})
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level must be a mapping")
	}

	if projects == nil {
		projects = []string{}
	}
	var value yaml.Node
	if err := value.Encode(projects); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "projects" {
			continue
		}
		old := root.Content[i+1]
		value.LineComment = old.LineComment
		value.FootComment = old.FootComment
		root.Content[i+1] = &value
		replaced = true
		break
	}
	if !replaced {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "projects"},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}

// writeAtomic replaces path with data: either the new content is fully
// written or the old file is left as it was.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides the URL and token with SONAR_URL and SONAR_TOKEN when
// they are set.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvURL); v != "" {
		cfg.SonarURL = v
	}
	if v := getenv(EnvToken); v != "" {
		cfg.Token = v
	}
}

// Validate checks that the config can be used to reach the server.
// Unknown colors are not an error: their rules leave labels plain.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.SonarURL) == "" {
		missing = append(missing, "sonar_url")
	}
	if strings.TrimSpace(c.Token) == "" || strings.Contains(c.Token, TokenPlaceholder) {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if _, err := catalog.ParseSortPolicy(string(c.Sort)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.LocaleTag(); err != nil {
		return err
	}
	return nil
}

// LocaleTag returns the collation locale, language.Und when unset.
func (c Config) LocaleTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}
