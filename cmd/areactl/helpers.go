// Shared helpers for areactl CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/store"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// resolveCatalogs returns the catalog files to load, in override
// order: --catalog flags > config.yaml catalogs > areas.yaml in the
// config directory.
func resolveCatalogs() ([]string, error) {
	if len(flagCatalogs) > 0 {
		return flagCatalogs, nil
	}
	if len(configCatalogs) > 0 {
		return configCatalogs, nil
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return []string{filepath.Join(configDir, defaultCatalogFile)}, nil
}

// openRegistry resolves the data directory and opens the definition
// registry in it. The caller must defer Close().
func openRegistry() (*store.Registry, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	reg, err := store.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	return reg, nil
}

// definitionView is the output shape for show, store and lookup. The
// projection is rendered as a sorted PROJ string in both text and JSON
// output.
type definitionView struct {
	AreaID             string    `json:"area_id"`
	Kind               string    `json:"kind"`
	Description        string    `json:"description,omitempty"`
	ProjID             string    `json:"proj_id,omitempty"`
	Projection         string    `json:"projection"`
	Width              int       `json:"width,omitempty"`
	Height             int       `json:"height,omitempty"`
	Extent             []float64 `json:"area_extent,omitempty"`
	Rotation           float64   `json:"rotation,omitempty"`
	OptimizeProjection bool      `json:"optimize_projection,omitempty"`
}

func newDefinitionView(def types.Definition) definitionView {
	switch d := def.(type) {
	case *types.AreaDefinition:
		return definitionView{
			AreaID:      d.AreaID,
			Kind:        "static",
			Description: d.Description,
			ProjID:      d.ProjID,
			Projection:  proj.MapToString(d.Projection, true),
			Width:       d.Width,
			Height:      d.Height,
			Extent: []float64{
				d.Extent.Left(), d.Extent.Bottom(),
				d.Extent.Right(), d.Extent.Top(),
			},
			Rotation: d.Rotation,
		}
	case *types.DynamicAreaDefinition:
		v := definitionView{
			AreaID:             d.AreaID,
			Kind:               "dynamic",
			Description:        d.Description,
			Projection:         proj.MapToString(d.Projection, true),
			Width:              d.Width,
			Height:             d.Height,
			Rotation:           d.Rotation,
			OptimizeProjection: d.OptimizeProjection,
		}
		if d.Extent != nil {
			v.Extent = []float64{
				d.Extent.Left(), d.Extent.Bottom(),
				d.Extent.Right(), d.Extent.Top(),
			}
		}
		return v
	}
	return definitionView{AreaID: def.ID()}
}

// printDefinitions writes the definitions to stdout, as JSON when
// --json is set and as indented text otherwise.
func printDefinitions(defs []types.Definition) error {
	views := make([]definitionView, 0, len(defs))
	for _, def := range defs {
		views = append(views, newDefinitionView(def))
	}

	if flagJSON {
		out, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal definitions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, v := range views {
		fmt.Printf("%s (%s)\n", v.AreaID, v.Kind)
		if v.Description != "" && v.Description != v.AreaID {
			fmt.Println("  description:", v.Description)
		}
		fmt.Println("  projection: ", v.Projection)
		if v.Width > 0 || v.Height > 0 {
			fmt.Printf("  shape:       %d x %d (height x width)\n", v.Height, v.Width)
		}
		if len(v.Extent) == 4 {
			fmt.Printf("  area_extent: (%g, %g, %g, %g)\n",
				v.Extent[0], v.Extent[1], v.Extent[2], v.Extent[3])
		}
		if v.Rotation != 0 {
			fmt.Println("  rotation:   ", v.Rotation)
		}
	}
	return nil
}
