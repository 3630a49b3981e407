// Package store implements the SQLite-backed registry of resolved grid
// definitions. Downstream tools look fully resolved grids up by area
// id without re-parsing catalogs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// Registry lifecycle errors.
var (
	ErrClosed             = errors.New("store is closed")
	ErrDefinitionNotFound = errors.New("definition not found")
)

// dbFileName is the registry database file inside the data directory.
const dbFileName = "areagrid.db"

// Store is a registry of resolved area definitions. Only static
// definitions are storable; a dynamic definition has nothing stable to
// look up.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the data directory if needed and opens the registry
// database inside it, creating the schema on first use.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init registry schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. Further operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save upserts a definition keyed by its area id and returns the
// record id of the stored row.
func (s *Store) Save(def *types.AreaDefinition) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return "", ErrClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate record id: %w", err)
	}

	// An update keeps the existing record id, so the stored id comes
	// back through RETURNING rather than from the candidate uuid.
	var recordID string
	err = s.db.QueryRow(`INSERT INTO area_definitions
		(record_id, area_id, description, proj_id, projection,
		 width, height, ll_x, ll_y, ur_x, ur_y, rotation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(area_id) DO UPDATE SET
		 description = excluded.description,
		 proj_id = excluded.proj_id,
		 projection = excluded.projection,
		 width = excluded.width,
		 height = excluded.height,
		 ll_x = excluded.ll_x, ll_y = excluded.ll_y,
		 ur_x = excluded.ur_x, ur_y = excluded.ur_y,
		 rotation = excluded.rotation
		RETURNING record_id`,
		id.String(), def.AreaID, def.Description, def.ProjID,
		proj.MapToString(def.Projection, true),
		def.Width, def.Height,
		def.Extent.Left(), def.Extent.Bottom(), def.Extent.Right(), def.Extent.Top(),
		def.Rotation, time.Now().UTC().Format(time.RFC3339)).Scan(&recordID)
	if err != nil {
		return "", fmt.Errorf("save definition %q: %w", def.AreaID, err)
	}
	return recordID, nil
}

// Get looks a definition up by area id.
func (s *Store) Get(areaID string) (*types.AreaDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	row := s.db.QueryRow(`SELECT area_id, description, proj_id, projection,
		width, height, ll_x, ll_y, ur_x, ur_y, rotation
		FROM area_definitions WHERE area_id = ?`, areaID)
	def, err := scanDefinition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrDefinitionNotFound, areaID)
	}
	return def, err
}

// List returns every stored definition ordered by area id.
func (s *Store) List() ([]*types.AreaDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`SELECT area_id, description, proj_id, projection,
		width, height, ll_x, ll_y, ur_x, ur_y, rotation
		FROM area_definitions ORDER BY area_id`)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	defer rows.Close()

	var defs []*types.AreaDefinition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row rowScanner) (*types.AreaDefinition, error) {
	var (
		def                types.AreaDefinition
		projection         string
		llx, lly, urx, ury float64
	)
	err := row.Scan(&def.AreaID, &def.Description, &def.ProjID, &projection,
		&def.Width, &def.Height, &llx, &lly, &urx, &ury, &def.Rotation)
	if err != nil {
		return nil, err
	}
	def.Projection = proj.StringToMap(projection)
	def.Extent = orb.Bound{Min: orb.Point{llx, lly}, Max: orb.Point{urx, ury}}
	return &def, nil
}
