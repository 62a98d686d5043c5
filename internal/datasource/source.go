// Package datasource loads the landmark dataset the viewer core consumes.
// It is the "dataset ingestion" collaborator: the core only ever sees
// already-valid points, and malformed rows are skipped here, silently.
package datasource

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceType identifies how a dataset path should be read.
type SourceType string

const (
	SourceTypeEmbedded SourceType = "embedded"
	SourceTypeCSV      SourceType = "csv"
	SourceTypeSQLite   SourceType = "sqlite"
)

// DataSource is a resolved dataset location.
type DataSource struct {
	Type SourceType
	Path string
}

// Detect resolves a user-supplied dataset path to a source. An empty path
// selects the embedded default dataset.
func Detect(path string) (DataSource, error) {
	if strings.TrimSpace(path) == "" {
		return DataSource{Type: SourceTypeEmbedded}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return DataSource{Type: SourceTypeCSV, Path: path}, nil
	case ".sqlite", ".sqlite3", ".db":
		return DataSource{Type: SourceTypeSQLite, Path: path}, nil
	default:
		return DataSource{}, fmt.Errorf("unsupported dataset extension %q (want .csv or .sqlite)", filepath.Ext(path))
	}
}
