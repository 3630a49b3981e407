// Package catalog parses on-disk area catalogs into raw parameter
// records. Two formats are supported: the hierarchical YAML format
// (one mapping per area, multiple sources deep-merged) and the legacy
// block format (REGION ... { KEY: value ... };). The records feed the
// inference engine in pkg/area; this package never resolves grids
// itself.
package catalog
