package source

import (
	"encoding/csv"
	"io"
	"os"

	chart "github.com/kofi-q/chart-go"
)

// ReadCSV reads comma separated x,y[,z] records from r.
func ReadCSV(r io.Reader, opts Options) (*chart.PointPairList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return recordsToPoints(rows, opts)
}

// ReadCSVFile reads the csv file at path.
func ReadCSVFile(path string, opts Options) (*chart.PointPairList, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	return ReadCSV(fl, opts)
}
