package store

// Schema DDL for the definition registry. The projection is stored as
// a sorted PROJ string so lookups round-trip through the codec.
const schemaSQL = `CREATE TABLE IF NOT EXISTS area_definitions (
    record_id TEXT PRIMARY KEY,
    area_id TEXT NOT NULL UNIQUE,
    description TEXT,
    proj_id TEXT,
    projection TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    ll_x REAL NOT NULL,
    ll_y REAL NOT NULL,
    ur_x REAL NOT NULL,
    ur_y REAL NOT NULL,
    rotation REAL NOT NULL,
    created_at TEXT NOT NULL
);`
