package datasource

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/neurolens/neurolens/pkg/model"
)

// SQLiteReader provides read access to a landmarks SQLite database with a
// `landmarks(name, x, y, z, r, g, b)` table.
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// NewSQLiteReader opens a SQLite database for reading.
func NewSQLiteReader(source DataSource) (*SQLiteReader, error) {
	if source.Type != SourceTypeSQLite {
		return nil, fmt.Errorf("source is not SQLite: %s", source.Type)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", source.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	return &SQLiteReader{db: db, path: source.Path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadPoints reads all landmark rows. Rows that fail to scan are skipped,
// matching the loader contract that malformed rows never reach the core.
func (r *SQLiteReader) LoadPoints() ([]model.Point, error) {
	rows, err := r.db.Query(`SELECT name, x, y, z, r, g, b FROM landmarks`)
	if err != nil {
		return nil, fmt.Errorf("query landmarks: %w", err)
	}
	defer rows.Close()

	var pts []model.Point
	for rows.Next() {
		var p model.Point
		if err := rows.Scan(&p.Name, &p.X, &p.Y, &p.Z, &p.R, &p.G, &p.B); err != nil {
			continue
		}
		if p.Name == "" {
			continue
		}
		pts = append(pts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating landmarks: %w", err)
	}
	return pts, nil
}

// CountPoints returns the number of landmark rows.
func (r *SQLiteReader) CountPoints() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM landmarks`).Scan(&count)
	return count, err
}
