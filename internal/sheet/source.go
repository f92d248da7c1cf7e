package sheet

import (
	"context"
	"errors"
)

// ErrNoSheet means the backing data source is absent (file, sheet or table
// missing). The API surfaces it as a structured 404 instead of calling the
// normalizer.
var ErrNoSheet = errors.New("sheet: data source not found")

// Source supplies the tabular input: row 0 is the header row, the rest are
// data rows of heterogeneous cell values, fully materialized in memory.
type Source interface {
	Load(ctx context.Context) ([][]any, error)
}
