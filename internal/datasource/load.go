package datasource

import (
	"fmt"

	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/store"
)

// Load resolves path and loads a point store from it, dispatching to the
// reader for the detected source type. An empty path loads the embedded
// default dataset.
func Load(path string) (*store.Store, error) {
	source, err := Detect(path)
	if err != nil {
		return nil, err
	}
	pts, err := LoadFromSource(source)
	if err != nil {
		return nil, err
	}
	return store.New(pts), nil
}

// LoadFromSource loads points from a specific DataSource.
func LoadFromSource(source DataSource) ([]model.Point, error) {
	switch source.Type {
	case SourceTypeEmbedded:
		return LoadEmbedded(), nil

	case SourceTypeCSV:
		return LoadCSVFile(source.Path)

	case SourceTypeSQLite:
		reader, err := NewSQLiteReader(source)
		if err != nil {
			return nil, fmt.Errorf("open SQLite source %s: %w", source.Path, err)
		}
		defer reader.Close()
		return reader.LoadPoints()

	default:
		return nil, fmt.Errorf("unknown source type: %s", source.Type)
	}
}
