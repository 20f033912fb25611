package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"stylecomb.yml",
	"stylecomb.yaml",
	".stylecomb.yml",
	".stylecomb.yaml",
	".csscomb.json",
	".stylecomb.toml",
}

// Discover returns the first of configFileNames present in dir, or an
// empty string.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the config at configPath, or the one Discover finds in the
// working directory when configPath is empty. Without either it returns
// DefaultConfig.
//
// A config file lists every option to run; options it does not name are
// off, so the preset is not merged in.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg, err := Parse(data, formatOf(configPath))
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes a config document. JSON may carry comments and trailing
// commas.
func Parse(data []byte, format Format) (*Config, error) {
	raw := make(map[string]any)

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(jsonc.ToJSON(data), &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, err
	}

	return fromMap(raw)
}

func fromMap(raw map[string]any) (*Config, error) {
	cfg := &Config{Options: raw}

	value, ok := raw[ExcludeKey]
	if !ok {
		return cfg, nil
	}
	delete(raw, ExcludeKey)

	patterns, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of patterns, got %T", ExcludeKey, value)
	}
	for _, p := range patterns {
		s, ok := p.(string)
		if !ok {
			return nil, fmt.Errorf("%s: pattern %v is not a string", ExcludeKey, p)
		}
		cfg.Exclude = append(cfg.Exclude, s)
	}
	return cfg, nil
}
