// Package registry tracks the hierarchy documents keptree has touched, so
// `keptree recent` can list them. It stores only tooling metadata (path,
// counts, timestamps); the hierarchy itself lives in its JSON document.
package registry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Document is one registry entry for a hierarchy JSON file.
type Document struct {
	Path     string
	RootName string
	Folders  int
	Tags     int
	AddedAt  time.Time
	LastUsed time.Time
}

// Registry manages known hierarchy documents in a sqlite database under
// the data directory.
type Registry struct {
	db      *sql.DB
	dataDir string
}

// NewRegistry opens (creating if needed) the document registry in dataDir.
func NewRegistry(dataDir string) (*Registry, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	r := &Registry{
		db:      db,
		dataDir: dataDir,
	}

	if err := r.init(); err != nil {
		return nil, fmt.Errorf("initialize registry: %w", err)
	}

	return r, nil
}

// init creates the database schema
func (r *Registry) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		root_name TEXT NOT NULL,
		folders INTEGER NOT NULL DEFAULT 0,
		tags INTEGER NOT NULL DEFAULT 0,
		added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Touch records a document as just used, inserting it if unknown and
// refreshing its counts and last-used timestamp otherwise.
func (r *Registry) Touch(path, rootName string, folders, tags int) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}

	query := `
	INSERT INTO documents (path, root_name, folders, tags, added_at, last_used)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(path) DO UPDATE SET
		root_name = excluded.root_name,
		folders = excluded.folders,
		tags = excluded.tags,
		last_used = excluded.last_used
	`

	now := time.Now()
	_, err = r.db.Exec(query, absPath, rootName, folders, tags, now, now)
	return err
}

// Get retrieves a document entry by path.
func (r *Registry) Get(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve document path: %w", err)
	}

	query := `
	SELECT path, root_name, folders, tags, added_at, last_used
	FROM documents WHERE path = ?
	`

	d := &Document{}
	err = r.db.QueryRow(query, absPath).Scan(
		&d.Path, &d.RootName, &d.Folders, &d.Tags,
		&d.AddedAt, &d.LastUsed,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document not registered: %s", path)
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// List returns all known documents, most recently used first.
func (r *Registry) List() ([]*Document, error) {
	query := `
	SELECT path, root_name, folders, tags, added_at, last_used
	FROM documents ORDER BY last_used DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		d := &Document{}
		err := rows.Scan(
			&d.Path, &d.RootName, &d.Folders, &d.Tags,
			&d.AddedAt, &d.LastUsed,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// Remove drops a document from the registry. The JSON file itself is left
// alone.
func (r *Registry) Remove(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	_, err = r.db.Exec("DELETE FROM documents WHERE path = ?", absPath)
	return err
}

// Close closes the registry database
func (r *Registry) Close() error {
	return r.db.Close()
}
