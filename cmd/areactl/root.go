// Root command for the areactl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/areagrid/internal/paths"
	"github.com/mesh-intelligence/areagrid/pkg/areagrid"
)

// Exit codes: 1 for user errors (bad input, unknown area), 2 for
// system errors (unreadable config, registry failures).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagCatalogs  []string
	flagJSON      bool
)

// Values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir  string
	configCatalogs []string
)

var rootCmd = &cobra.Command{
	Use:     "areactl",
	Short:   "Areactl resolves gridded area definitions from catalogs",
	Version: areagrid.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configCatalogs = cfg.GetStringSlice(cfgKeyCatalogs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "registry data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringArrayVar(&flagCatalogs, "catalog", nil, "catalog file to load (repeatable; later files override earlier ones)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(lookupCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > AREAGRID_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the registry data directory following the
// precedence chain: --data-dir flag > config.yaml data_dir >
// AREAGRID_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
