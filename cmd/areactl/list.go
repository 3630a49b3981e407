// List command prints the area names found in the merged catalogs.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/areagrid/pkg/area"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List area names in the configured catalogs",
	Long: `List parses the configured catalog files and prints the name of
every area they define. Catalogs merge in order, later files
overriding earlier ones, so each name appears once.

Example:
  areactl list
  areactl --catalog base.yaml --catalog site.yaml list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	catalogs, err := resolveCatalogs()
	if err != nil {
		return err
	}

	defs, err := area.ParseAreaFile(catalogs)
	if err != nil {
		return fmt.Errorf("parse catalogs: %w", err)
	}

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.ID())
	}

	if flagJSON {
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal names: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
