// Config loading for the areactl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir  = "data_dir"
	cfgKeyCatalogs = "catalogs"

	// defaultCatalogFile is the starter catalog created by init and
	// used when neither --catalog nor config.yaml names any.
	defaultCatalogFile = "areas.yaml"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Areactl CLI configuration

# Catalog files to load, in override order (later wins).
# Defaults to areas.yaml next to this file.
# catalogs:
#   - /path/to/areas.yaml

# Registry data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// defaultCatalogYAML seeds areas.yaml with one worked example so a
// fresh install has something to list and show.
const defaultCatalogYAML = `# Areactl area catalog
ease_sh:
  description: Antarctic EASE grid
  projection:
    proj: laea
    lat_0: -90
    lon_0: 0
    a: 6371228.0
    units: m
  shape:
    height: 425
    width: 425
  area_extent:
    lower_left_xy: [-5326849.0625, -5326849.0625]
    upper_right_xy: [5326849.0625, 5326849.0625]
`

// loadConfig reads config.yaml from the resolved config directory
// using Viper. It creates the config directory and a default
// config.yaml on first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	return ensureFile(filepath.Join(configDir, configFileExt), defaultConfigYAML)
}

// ensureDefaultCatalogFile creates the starter areas.yaml if it does
// not exist in the config directory.
func ensureDefaultCatalogFile(configDir string) error {
	return ensureFile(filepath.Join(configDir, defaultCatalogFile), defaultCatalogYAML)
}

func ensureFile(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
