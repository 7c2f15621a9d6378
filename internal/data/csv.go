package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNoNumericColumn is returned when no column of the uploaded file parses
// as numbers.
var ErrNoNumericColumn = errors.New("no numeric column found in load file")

// ParseLoadColumn extracts the raw hourly load sequence from CSV bytes.
// The first column that parses as a number (checked on the first data row,
// header rows are skipped) is taken; everything else is ignored. Which
// column to prefer is a presentation concern, so there is no column
// selection knob here.
func ParseLoadColumn(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	col := -1
	var values []float64

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read load file: %w", err)
		}

		if col < 0 {
			// Still hunting for the first numeric column; rows where
			// nothing parses (headers) are skipped.
			for i, field := range record {
				if v, perr := strconv.ParseFloat(field, 64); perr == nil {
					col = i
					values = append(values, v)
					break
				}
			}
			continue
		}

		if col >= len(record) {
			continue
		}
		v, perr := strconv.ParseFloat(record[col], 64)
		if perr != nil {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrNoNumericColumn
	}
	return values, nil
}

// ReadLoadFile reads the raw load sequence from a CSV file on disk.
func ReadLoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open load file: %w", err)
	}
	defer f.Close()
	return ParseLoadColumn(f)
}
