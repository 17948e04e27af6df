package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names tried in each search directory, in order.
var configNames = []string{"rabbit.yaml", "rabbit.yml", "rabbit.toml"}

// Load loads the rabbit tuning and reports which file it came from
// ("" for the embedded default).
// Search order: customPath -> ~/.rabbit/configs/ -> ./configs/ -> embedded default.
// Only an explicit customPath turns read or parse failures into errors;
// broken files on the search path are skipped.
func Load(customPath string) (RabbitConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	cfg, err := Parse(defaultRabbitYAML, ".yaml")
	if err != nil {
		return DefaultRabbitConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile reads and parses a single config file. The format is picked
// from the file extension.
func LoadFile(path string) (RabbitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRabbitConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or
// ".toml"). Keys missing from data keep their default values.
func Parse(data []byte, ext string) (RabbitConfig, error) {
	cfg := DefaultRabbitConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultRabbitConfig(), fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return DefaultRabbitConfig(), fmt.Errorf("toml decode: %w", err)
		}
	default:
		return DefaultRabbitConfig(), fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// FormatExtensions returns the supported config file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// searchDirs lists the directories scanned when no explicit path is given.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".rabbit", "configs"))
	}
	return append(dirs, "configs")
}
