// Show command resolves named areas from the catalogs and prints them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/areagrid/pkg/area"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <name>...",
	Short: "Resolve named areas and print their definitions",
	Long: `Show resolves the named areas from the configured catalogs,
deriving any grid parameters the catalogs leave implicit, and prints
the resulting definitions.

Example:
  areactl show ease_sh
  areactl --json show ease_sh ease_nh`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	catalogs, err := resolveCatalogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, "show:", err)
		os.Exit(exitSysError)
	}

	defs, err := area.ParseAreaFile(catalogs, args...)
	if err != nil {
		if errors.Is(err, types.ErrAreaNotFound) {
			return err
		}
		return fmt.Errorf("resolve areas: %w", err)
	}
	return printDefinitions(defs)
}
