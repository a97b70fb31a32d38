package source

import (
	chart "github.com/kofi-q/chart-go"
	"github.com/parquet-go/parquet-go"
)

// pointRow is the parquet schema of a point. Null columns are Missing.
type pointRow struct {
	X *float64 `parquet:"x,optional"`
	Y *float64 `parquet:"y,optional"`
	Z *float64 `parquet:"z,optional"`
}

func fromNullable(v *float64) float64 {
	if v == nil {
		return chart.Missing
	}
	return *v
}

func toNullable(v float64) *float64 {
	if v == chart.Missing {
		return nil
	}
	return &v
}

// ReadParquetFile reads the points stored in the parquet file at path.
func ReadParquetFile(path string) (*chart.PointPairList, error) {
	rows, err := parquet.ReadFile[pointRow](path)
	if err != nil {
		return nil, err
	}

	pts := chart.NewPointPairList()
	for _, row := range rows {
		pts.Add(chart.Point{
			X: fromNullable(row.X),
			Y: fromNullable(row.Y),
			Z: fromNullable(row.Z),
		})
	}
	return pts, nil
}

// WriteParquetFile stores pts in a parquet file at path. Missing values are
// written as nulls.
func WriteParquetFile(path string, pts chart.PointList) error {
	rows := make([]pointRow, pts.Len())
	for i := range rows {
		p := pts.At(i)
		rows[i] = pointRow{
			X: toNullable(p.X),
			Y: toNullable(p.Y),
			Z: toNullable(p.Z),
		}
	}
	return parquet.WriteFile(path, rows)
}
