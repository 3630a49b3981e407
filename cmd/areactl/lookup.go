// Lookup command reads stored definitions back from the registry.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/areagrid/pkg/store"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [area_id]",
	Short: "Read definitions from the registry",
	Long: `Lookup reads a stored definition back from the registry by area
id. With no argument it prints every stored definition.

Example:
  areactl lookup ease_sh
  areactl --json lookup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lookup:", err)
		os.Exit(exitSysError)
	}
	defer reg.Close()

	var stored []*types.AreaDefinition
	if len(args) == 1 {
		def, err := reg.Get(args[0])
		if err != nil {
			if errors.Is(err, store.ErrDefinitionNotFound) {
				return err
			}
			fmt.Fprintln(os.Stderr, "lookup:", err)
			os.Exit(exitSysError)
		}
		stored = append(stored, def)
	} else {
		stored, err = reg.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, "lookup:", err)
			os.Exit(exitSysError)
		}
	}

	defs := make([]types.Definition, 0, len(stored))
	for _, def := range stored {
		defs = append(defs, def)
	}
	return printDefinitions(defs)
}
