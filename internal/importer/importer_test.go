package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareParse(t *testing.T) {
	input := `Date,Time,Category,Item,Qty,Price Point Name,Net Sales
2024-01-02,10:15,Ann (20),Print,1,Regular,$100.00
2024-01-01,14:30,None,Misc,1,Regular,$10
`
	p := &SquareParser{}
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-02", rows[0].Date)
	assert.Equal(t, "Print", rows[0].Item)
	assert.Equal(t, "1", rows[0].Qty)
	assert.Equal(t, "$100.00", rows[0].NetSales)
	assert.Equal(t, "Ann (20)", rows[0].Category)

	// Extra columns (Time, Price Point Name) are dropped.
	assert.Equal(t, "None", rows[1].Category)
}

func TestSquareParse_MissingColumns(t *testing.T) {
	input := `Date,Item,Qty
2024-01-02,Print,1
`
	p := &SquareParser{}
	rows, err := p.Parse(strings.NewReader(input))
	assert.Nil(t, rows)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Category", "Net Sales"}, schemaErr.Missing)
	assert.Contains(t, schemaErr.Error(), "Category, Net Sales")
}

func TestSquareParse_ColumnNamesAreCaseSensitive(t *testing.T) {
	input := "date,item,qty,category,net sales\n"
	p := &SquareParser{}
	_, err := p.Parse(strings.NewReader(input))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Missing, 5)
}

func TestSquareParse_Empty(t *testing.T) {
	p := &SquareParser{}
	rows, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestSquareParse_HeaderOnly(t *testing.T) {
	p := &SquareParser{}
	rows, err := p.Parse(strings.NewReader("Date,Item,Qty,Category,Net Sales\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSquareParse_ShortRow(t *testing.T) {
	input := "Date,Item,Qty,Category,Net Sales\n2024-01-01,Print\n"
	p := &SquareParser{}
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Category)
	assert.Empty(t, rows[0].NetSales)
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "café", DecodeText([]byte("café")))

	// 0xE9 is é in Latin-1 but invalid UTF-8 on its own.
	latin1 := []byte{'c', 'a', 'f', 0xE9}
	assert.Equal(t, "café", DecodeText(latin1))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("square"))
	assert.NotNil(t, r.Get("SQUARE"), "format lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feb.CSV"), []byte("xy"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(strings.ToLower(f.Name), ".csv"))
		assert.NotZero(t, f.Size)
	}
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}
