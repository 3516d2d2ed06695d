package arrowadapter

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-closuretable/closuretable"
)

var fruitSchema = arrow.NewSchema([]arrow.Field{
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "qty", Type: arrow.PrimitiveTypes.Int64},
	{Name: "price", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
}, nil)

func fruitRecord(t *testing.T, names []string, qty []int64, price []float64, valid []bool) arrow.Record {
	t.Helper()
	b := array.NewRecordBuilder(memory.NewGoAllocator(), fruitSchema)
	defer b.Release()

	b.Field(0).(*array.StringBuilder).AppendValues(names, nil)
	b.Field(1).(*array.Int64Builder).AppendValues(qty, nil)
	b.Field(2).(*array.Float64Builder).AppendValues(price, valid)
	return b.NewRecord()
}

// fruitTable has two record batches.
func fruitTable(t *testing.T) arrow.Table {
	t.Helper()
	first := fruitRecord(t, []string{"pear", "apple", "fig"}, []int64{3, 12, 7}, []float64{1.5, 0.25, 0}, []bool{true, true, false})
	defer first.Release()
	second := fruitRecord(t, []string{"kiwi", "banana"}, []int64{40, 5}, []float64{0.1, 2}, nil)
	defer second.Release()

	return array.NewTableFromRecords(fruitSchema, []arrow.Record{first, second})
}

func TestNewFromArrowTable(t *testing.T) {
	_, err := NewFromArrowTable(nil)
	assert.ErrorIs(t, err, ErrNoTable)

	tbl := fruitTable(t)
	defer tbl.Release()

	s, err := NewFromArrowTable(tbl)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, 5, s.RowCount())
	assert.Equal(t, 3, s.ColumnCount())

	rows := s.Items()
	for i, r := range rows {
		assert.Equal(t, i, r.Ordinal)
	}
	assert.Equal(t, "banana", rows[4].Value(0))
	assert.Equal(t, "12", rows[1].Value(1))
	assert.Equal(t, "0.25", rows[1].Value(2))
	assert.Equal(t, "", rows[2].Value(2), "null is empty")
	assert.Equal(t, "", rows[0].Value(9))
}

func TestSource_Columns(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
	}, nil)
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	b.Field(0).(*array.Int32Builder).Append(1)
	b.Field(1).(*array.Int32Builder).Append(2)
	rec := b.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	s, err := NewFromArrowTable(tbl)
	require.NoError(t, err)
	defer s.Release()

	columns := s.Columns()
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Referral)
	assert.Equal(t, "id_1", columns[1].Referral)
	assert.Equal(t, "id", columns[1].Header())
	assert.False(t, columns[0].Editable())

	row := s.Items()[0]
	assert.Equal(t, "1", columns[0].Display(row))
	assert.Equal(t, "2", columns[1].Display(row))
}

func TestSource_BindAndSort(t *testing.T) {
	tbl := fruitTable(t)
	defer tbl.Release()
	s, err := NewFromArrowTable(tbl)
	require.NoError(t, err)
	defer s.Release()

	table := closuretable.NewArrayTable[Row](nil)
	s.Bind(table)
	require.Len(t, table.Columns(), 3)
	assert.Equal(t, 5, table.RowCount())

	table.SortChanged([]closuretable.SortDescriptor{{Key: "name", Ascending: true}})

	var got []string
	for _, r := range s.Items() {
		got = append(got, r.Value(0))
	}
	assert.Equal(t, []string{"apple", "banana", "fig", "kiwi", "pear"}, got)

	// qty sorts on its text
	table.SortChanged([]closuretable.SortDescriptor{{Key: "qty", Ascending: true}})
	got = got[:0]
	for _, r := range s.Items() {
		got = append(got, r.Value(1))
	}
	assert.Equal(t, []string{"12", "3", "40", "5", "7"}, got)
}

func TestSource_Table(t *testing.T) {
	tbl := fruitTable(t)
	defer tbl.Release()
	s, err := NewFromArrowTable(tbl)
	require.NoError(t, err)
	defer s.Release()

	table := closuretable.NewArrayTable[Row](nil)
	s.Bind(table)
	table.SortChanged([]closuretable.SortDescriptor{{Key: "name", Ascending: false}})

	out, err := s.Table()
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, int64(5), out.NumRows())
	assert.True(t, out.Schema().Equal(fruitSchema))

	names := out.Column(0).Data().Chunk(0).(*array.String)
	assert.Equal(t, "pear", names.Value(0))
	assert.Equal(t, "apple", names.Value(4))

	prices := out.Column(2).Data().Chunk(0).(*array.Float64)
	// fig is the third row in descending order and has no price
	assert.True(t, prices.IsNull(2))
	assert.Equal(t, 1.5, prices.Value(0))
}

func TestSource_TableEmpty(t *testing.T) {
	tbl := fruitTable(t)
	defer tbl.Release()
	s, err := NewFromArrowTable(tbl)
	require.NoError(t, err)
	defer s.Release()

	s.SetItems(nil)
	_, err = s.Table()
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestFormatValue(t *testing.T) {
	pool := memory.NewGoAllocator()

	db := array.NewDate32Builder(pool)
	defer db.Release()
	db.Append(arrow.Date32FromTime(mustDate(t, "2025-03-14")))
	dates := db.NewArray()
	defer dates.Release()
	assert.Equal(t, "2025-03-14", FormatValue(dates, 0))
	assert.Equal(t, "", FormatValue(dates, 3))

	bb := array.NewBooleanBuilder(pool)
	defer bb.Release()
	bb.AppendValues([]bool{true}, nil)
	bools := bb.NewArray()
	defer bools.Release()
	assert.Equal(t, "true", FormatValue(bools, 0))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
