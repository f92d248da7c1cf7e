package sheet

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "lifelist.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestExcelSourceLoad(t *testing.T) {
	path := writeFixture(t, [][]any{
		{"id", "title", "completed"},
		{"1", "see the northern lights", "true"},
		{"2", "run a marathon", ""},
	})

	src := NewExcelSource(path, "Sheet1")
	rows, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []any{"id", "title", "completed"}, rows[0])
	assert.Equal(t, "see the northern lights", rows[1][1])
	assert.Equal(t, "2", rows[2][0])
}

func TestExcelSourceMissingFile(t *testing.T) {
	src := NewExcelSource(filepath.Join(t.TempDir(), "nope.xlsx"), "Sheet1")

	_, err := src.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoSheet))
}

func TestExcelSourceMissingSheet(t *testing.T) {
	path := writeFixture(t, [][]any{{"id"}, {"1"}})

	src := NewExcelSource(path, "Does Not Exist")
	_, err := src.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoSheet))
}

func TestExcelSourceDefaultSheetName(t *testing.T) {
	path := writeFixture(t, [][]any{{"id"}, {"1"}})

	src := NewExcelSource(path, "")
	rows, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
