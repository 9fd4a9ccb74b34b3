package db

import (
	"database/sql"
	"fmt"
	"time"
)

// LoadDocument reads the whole JSON document for a namespace.
// Returns nil (no error) when the namespace has never been written.
func LoadDocument(db *sql.DB, namespace string) ([]byte, error) {
	var data string
	err := db.QueryRow(
		`SELECT data FROM documents WHERE namespace = ?`, namespace,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document %q: %w", namespace, err)
	}
	return []byte(data), nil
}

// SaveDocument replaces the whole JSON document for a namespace.
// Each store mutation funnels through here, so a crash between two
// mutations always leaves the last complete document on disk.
func SaveDocument(db *sql.DB, namespace string, data []byte) error {
	_, err := db.Exec(
		`INSERT INTO documents (namespace, schema_version, data, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET
		   schema_version = excluded.schema_version,
		   data           = excluded.data,
		   updated_at     = excluded.updated_at`,
		namespace, CurrentSchemaVersion, string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save document %q: %w", namespace, err)
	}
	return nil
}
