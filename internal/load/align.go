package load

import (
	"errors"
	"fmt"
)

// ErrEmptySeries is returned when the uploaded load sequence has no values.
var ErrEmptySeries = errors.New("load series is empty")

// Align maps a raw load sequence of arbitrary length onto exactly n hourly
// slots:
//
//   - len(raw) >= n: truncate to the first n values
//   - len(raw) <  n: cyclically tile the sequence and truncate to n
//
// Tiling repeats the original order as-is. Hour-of-day stays aligned across
// tiles only when n is an exact multiple of len(raw); otherwise day
// boundaries phase-shift from one tile to the next. That matches the
// upstream behavior and is left uncorrected on purpose.
func Align(raw []float64, n int) ([]float64, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySeries
	}
	if n < 1 {
		return nil, fmt.Errorf("target length must be >= 1, got %d", n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = raw[i%len(raw)]
	}
	return out, nil
}
