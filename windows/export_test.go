package windows

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFruit(t *testing.T) arrow.Table {
	t.Helper()
	path := writeFile(t, t.TempDir(), "fruit.csv", "name,qty\npear,3\napple,12\nfig,7\n")
	tbl, err := LoadDataFile(path, 0)
	require.NoError(t, err)
	t.Cleanup(tbl.Release)
	return tbl
}

func names(t *testing.T, tbl arrow.Table) []string {
	t.Helper()
	tr := array.NewTableReader(tbl, max(tbl.NumRows(), 1))
	defer tr.Release()

	var out []string
	for tr.Next() {
		col := tr.Record().Column(0).(*array.String)
		for i := 0; i < col.Len(); i++ {
			out = append(out, col.Value(i))
		}
	}
	return out
}

func TestExportFormat(t *testing.T) {
	assert.Equal(t, "Parquet", FormatParquet.String())
	assert.Equal(t, ".csv", FormatCSV.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, "", ExportFormat(9).Extension())
	assert.Error(t, Export(loadFruit(t), ExportFormat(9), filepath.Join(t.TempDir(), "x")))
}

func TestExportToCSV(t *testing.T) {
	tbl := loadFruit(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Export(tbl, FormatCSV, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,qty\npear,3\napple,12\nfig,7\n", string(content))
}

func TestExportToJSON(t *testing.T) {
	tbl := loadFruit(t)
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Export(tbl, FormatJSON, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(content, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "apple", rows[1]["name"])
	assert.Equal(t, float64(12), rows[1]["qty"])
}

func TestExportToParquet(t *testing.T) {
	tbl := loadFruit(t)
	path := filepath.Join(t.TempDir(), "out.parquet")
	require.NoError(t, Export(tbl, FormatParquet, path))

	back, err := LoadDataFile(path, 5)
	require.NoError(t, err)
	defer back.Release()

	assert.Equal(t, int64(3), back.NumRows())
	assert.Equal(t, []string{"pear", "apple", "fig"}, names(t, back))
	assert.Equal(t, "qty", back.Schema().Field(1).Name)
}
