package source

import (
	"fmt"

	chart "github.com/kofi-q/chart-go"
	"github.com/xuri/excelize/v2"
)

// ReadXLSXFile reads x, y and z from the first three columns of a worksheet.
func ReadXLSXFile(path string, opts Options) (*chart.PointPairList, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return recordsToPoints(rows, opts)
}
