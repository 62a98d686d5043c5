package datasource

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/neurolens/neurolens/pkg/model"
)

// landmarksCSV is the bundled default dataset: one row per landmark,
// name,x,y,z,r,g,b with color channels in [0, 1] and no header line.
//
//go:embed landmarks.csv
var landmarksCSV []byte

// csvFields is the expected column count of a dataset row.
const csvFields = 7

// LoadEmbedded parses the bundled dataset.
func LoadEmbedded() []model.Point {
	// The embedded dataset is well-formed by construction, so the reader
	// error can only be io.EOF here.
	pts, _ := ParseCSV(bytes.NewReader(landmarksCSV))
	return pts
}

// LoadCSVFile reads a dataset from a CSV file on disk.
func LoadCSVFile(path string) ([]model.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads landmark rows from r. Rows with the wrong field count or
// unparsable numbers are skipped; only a reader-level failure is an error.
func ParseCSV(r io.Reader) ([]model.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length validated below so bad rows skip
	cr.TrimLeadingSpace = true

	var pts []model.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed quoted field yields a *csv.ParseError; skip the
			// row and keep reading.
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return pts, err
		}
		if p, ok := parseRow(rec); ok {
			pts = append(pts, p)
		}
	}
	return pts, nil
}

func parseRow(rec []string) (model.Point, bool) {
	if len(rec) != csvFields {
		return model.Point{}, false
	}
	if rec[0] == "" || rec[0] == "name" {
		// Empty name or a stray header line.
		return model.Point{}, false
	}
	vals := make([]float32, csvFields-1)
	for i, s := range rec[1:] {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return model.Point{}, false
		}
		vals[i] = float32(f)
	}
	return model.Point{
		Name: rec[0],
		X:    vals[0], Y: vals[1], Z: vals[2],
		R: vals[3], G: vals[4], B: vals[5],
	}, true
}
