// Package source loads point series from tabular files.
//
// Every format is read as columns x, y and an optional z. Empty cells and
// null values become chart.Missing.
package source

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	chart "github.com/kofi-q/chart-go"
	"github.com/kofi-q/chart-go/internal/slogx"
)

// Format names a supported file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatXLSX    Format = "xlsx"
)

// ErrUnknownFormat indicates a file extension with no reader.
var ErrUnknownFormat = errors.New("unknown format")

// ErrColumns indicates a row with fewer than two columns.
var ErrColumns = errors.New("row needs x and y columns")

// LoadError reports a failure to load a file.
type LoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options configures loading.
type Options struct {
	// Sheet is the worksheet read from xlsx files. The first sheet is used
	// when empty.
	Sheet string
	// Header skips the first row of csv and xlsx files.
	Header bool
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slogx.Discard()
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatCSV, FormatParquet, FormatXLSX:
		return Format(ext), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Load reads the points stored in path, picking the reader from the file
// extension.
func Load(path string, opts Options) (*chart.PointPairList, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var pts *chart.PointPairList
	switch format {
	case FormatCSV:
		pts, err = ReadCSVFile(path, opts)
	case FormatParquet:
		pts, err = ReadParquetFile(path)
	case FormatXLSX:
		pts, err = ReadXLSXFile(path, opts)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Format: format, Err: err}
	}

	opts.logger().Debug("loaded points",
		"path", path, "format", string(format), "count", pts.Len())
	return pts, nil
}

// parseCell parses a numeric cell. Blank cells are Missing.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return chart.Missing, nil
	}
	return strconv.ParseFloat(s, 64)
}

// recordsToPoints converts rows of cells to points. Blank rows are
// skipped; rows with a single cell are rejected.
func recordsToPoints(rows [][]string, opts Options) (*chart.PointPairList, error) {
	if opts.Header && len(rows) > 0 {
		rows = rows[1:]
	}

	pts := chart.NewPointPairList()
	for i, row := range rows {
		line := i + 1
		if opts.Header {
			line++
		}
		if isBlank(row) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: %w", line, ErrColumns)
		}

		var p chart.Point
		cells := []*float64{&p.X, &p.Y, &p.Z}
		for j, dst := range cells {
			if j >= len(row) {
				break
			}
			v, err := parseCell(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", line, j+1, err)
			}
			*dst = v
		}
		pts.Add(p)
	}
	return pts, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
