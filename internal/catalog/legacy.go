package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// scanState is the legacy scanner's position relative to a region
// block.
type scanState int

const (
	outsideBlock scanState = iota
	insideBlock
)

// legacyKey matches the KEY: introducer of a legacy record field.
var legacyKey = regexp.MustCompile(`([A-Z][A-Z_0-9]*)\s*:`)

// ParseLegacy parses legacy block-format catalog sources. The scanner
// is a two-state machine: a line containing a REGION marker opens a
// block when its identifier is requested (or everything is), lines
// buffer while inside, and a }; marker closes the block and parses it.
// An unterminated block never produces an entry. A malformed block
// does not abort the scan; its error is joined into the returned error
// while other entries still parse. Requested names that remain
// unmatched after the scan fail with ErrAreaNotFound naming all of
// them.
func ParseLegacy(source any, names ...string) ([]types.Params, error) {
	texts, err := contents(source)
	if err != nil {
		return nil, err
	}

	selectAll := len(names) == 0
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var (
		params  []types.Params
		errs    []error
		matched = make(map[string]bool)
		state   = outsideBlock
		blockID string
		buf     []string
	)

	closeBlock := func() {
		state = outsideBlock
		matched[blockID] = true
		p, err := parseBlock(blockID, strings.Join(buf, "\n"))
		if err != nil {
			errs = append(errs, err)
			if selectAll {
				slog.Warn("skipping malformed legacy area block", "area", blockID, "error", err)
			}
			return
		}
		params = append(params, p)
	}

	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			switch state {
			case outsideBlock:
				idx := strings.Index(line, "REGION")
				if idx < 0 || !strings.Contains(line, "{") {
					continue
				}
				head, rest, _ := strings.Cut(line[idx+len("REGION"):], "{")
				id := strings.Trim(strings.TrimSpace(head), `:" `)
				if !selectAll && !wanted[id] {
					continue
				}
				state = insideBlock
				blockID = id
				buf = buf[:0]
				// Single-line records close on the same line.
				if body, _, closed := strings.Cut(rest, "};"); closed {
					buf = append(buf, body)
					closeBlock()
				} else if strings.TrimSpace(rest) != "" {
					buf = append(buf, rest)
				}
			case insideBlock:
				if body, _, closed := strings.Cut(line, "};"); closed {
					buf = append(buf, body)
					closeBlock()
				} else {
					buf = append(buf, line)
				}
			}
		}
	}

	if !selectAll {
		var missing []string
		for _, n := range names {
			if !matched[n] {
				missing = append(missing, strconv.Quote(n))
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("%w: %s not found in legacy catalog",
				types.ErrAreaNotFound, strings.Join(missing, ", ")))
		}
	}
	return params, errors.Join(errs...)
}

// parseBlock converts one buffered region block into a Params record.
// Fields are KEY: value pairs; the key grammar tolerates several pairs
// on one line.
func parseBlock(id, content string) (types.Params, error) {
	content = strings.NewReplacer("{", "", "}", "").Replace(content)

	record := make(map[string][]string)
	locs := legacyKey.FindAllStringSubmatchIndex(content, -1)
	for i, loc := range locs {
		key := content[loc[2]:loc[3]]
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		val := strings.TrimSpace(content[loc[1]:end])
		record[key] = append(record[key], val)
	}

	p := types.Params{AreaID: id}

	if names := record["NAME"]; len(names) > 0 {
		for i, n := range names {
			names[i] = strings.Trim(n, `"'`)
		}
		p.Description = strings.Join(names, ", ")
	}
	if ids := record["PCS_ID"]; len(ids) > 0 {
		p.ProjID = strings.Trim(ids[0], `"'`)
	}

	width, err := intField(record, "XSIZE", id)
	if err != nil {
		return p, err
	}
	height, err := intField(record, "YSIZE", id)
	if err != nil {
		return p, err
	}
	p.Shape = []float64{float64(height), float64(width)}

	if rot := record["ROTATION"]; len(rot) > 0 {
		r, err := strconv.ParseFloat(rot[0], 64)
		if err != nil {
			return p, fmt.Errorf("legacy area %q: ROTATION %q: %w", id, rot[0], types.ErrNotNumeric)
		}
		p.Rotation = r
	}

	extent, err := extentField(record, id)
	if err != nil {
		return p, err
	}
	p.AreaExtent = extent

	if defs := record["PCS_DEF"]; len(defs) > 0 {
		// Older files separate PROJ parameters with commas instead of
		// spaces.
		def := strings.ReplaceAll(strings.Trim(defs[0], `"'`), ",", " ")
		p.Projection = proj.StringToMap(def)
	}
	return p, nil
}

// intField parses a required integer record field.
func intField(record map[string][]string, key, id string) (int, error) {
	vals := record[key]
	if len(vals) == 0 {
		return 0, fmt.Errorf("legacy area %q: missing %s", id, key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(vals[0]))
	if err != nil {
		return 0, fmt.Errorf("legacy area %q: %s %q: %w", id, key, vals[0], types.ErrNotNumeric)
	}
	return n, nil
}

// extentField parses the parenthesized AREA_EXTENT 4-tuple. Components
// separate with commas or plain whitespace.
func extentField(record map[string][]string, id string) ([]float64, error) {
	vals := record["AREA_EXTENT"]
	if len(vals) == 0 {
		return nil, fmt.Errorf("legacy area %q: missing AREA_EXTENT", id)
	}
	raw := strings.TrimSpace(vals[0])
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")

	var fields []string
	if strings.Contains(raw, ",") {
		fields = strings.Split(raw, ",")
	} else {
		fields = strings.Fields(raw)
	}
	if len(fields) != 4 {
		return nil, fmt.Errorf("legacy area %q: AREA_EXTENT %q: %w", id, vals[0], types.ErrWrongLength)
	}
	extent := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("legacy area %q: AREA_EXTENT component %q: %w", id, f, types.ErrNotNumeric)
		}
		extent[i] = v
	}
	return extent, nil
}
