package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file the CLI looks for in the working
// directory and its ancestors.
const DefaultFileName = ".mdstyle.yaml"

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the configuration to YAML with 2-space indentation.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Load reads a config file from an explicit path, or discovers
// DefaultFileName by walking from workDir toward the filesystem root.
// A missing file is not an error: the default config is returned along
// with an empty path.
func Load(explicitPath, workDir string) (*Config, string, error) {
	path := explicitPath
	if path == "" {
		path = discover(workDir)
	}
	if path == "" {
		return Default(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicitPath == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, "", fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, "", fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

// discover walks from dir toward the root looking for DefaultFileName.
func discover(dir string) string {
	for dir != "" {
		candidate := filepath.Join(dir, DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
