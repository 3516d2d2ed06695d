package windows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"data.csv", FileTypeCSV},
		{"DATA.CSV", FileTypeCSV},
		{"/tmp/x.tsv", FileTypeCSV},
		{"table.parquet", FileTypeParquet},
		{"notes.txt", FileTypeUnknown},
		{"noext", FileTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.path))
		})
	}
}

func TestDetectCSVSeparator(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n", '\t'},
		{"pipe", "a|b\n", '|'},
		{"single column", "a\n1\n", ','},
		{"empty", "", ','},
		{"tie", "a,b;c\n", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".csv", tt.content)
			sep, err := detectCSVSeparator(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sep)
		})
	}

	_, err := detectCSVSeparator(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestGetSeparatorName(t *testing.T) {
	assert.Equal(t, "semicolon", getSeparatorName(';'))
	assert.Equal(t, "tab", getSeparatorName('\t'))
	assert.Equal(t, "#", getSeparatorName('#'))
}

func TestLoadDataFile_CSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fruit.csv", "name;qty\npear;3\napple;12\nfig;\n")

	tbl, err := LoadDataFile(path, 0)
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(3), tbl.NumRows())
	require.Equal(t, 2, tbl.Schema().NumFields())
	assert.Equal(t, "name", tbl.Schema().Field(0).Name)
	assert.Equal(t, arrow.PrimitiveTypes.Int64, tbl.Schema().Field(1).Type)
}

func TestLoadDataFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDataFile(writeFile(t, dir, "notes.txt", "hello"), 0)
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = LoadDataFile(filepath.Join(dir, "missing.csv"), 0)
	assert.Error(t, err)

	_, err = LoadDataFile(writeFile(t, dir, "broken.parquet", "not parquet"), 1)
	assert.Error(t, err)
}
