// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arrowadapter shows Apache Arrow tables in closure driven tables.
package arrowadapter

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/magpierre/fyne-closuretable/closuretable"
)

// Row is one row of an Arrow table.
type Row struct {
	rec   arrow.Record
	index int

	// Ordinal is the position of the row in the loaded table.
	Ordinal int
}

// Value returns the formatted value of column col.
func (r Row) Value(col int) string {
	if r.rec == nil || col < 0 || col >= int(r.rec.NumCols()) {
		return ""
	}
	return FormatValue(r.rec.Column(col), r.index)
}

// Source holds the rows of an Arrow table in display order. Items and
// SetItems are the array and mutation closures of a table adapter.
type Source struct {
	schema  *arrow.Schema
	records []arrow.Record
	rows    []Row
}

// NewFromArrowTable creates a source over every row of tbl. The record
// batches are retained until Release.
func NewFromArrowTable(tbl arrow.Table) (*Source, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}

	s := &Source{schema: tbl.Schema()}

	tr := array.NewTableReader(tbl, max(tbl.NumRows(), 1))
	defer tr.Release()

	ordinal := 0
	for tr.Next() {
		rec := tr.Record()
		rec.Retain()
		s.records = append(s.records, rec)

		for i := 0; i < int(rec.NumRows()); i++ {
			s.rows = append(s.rows, Row{rec: rec, index: i, Ordinal: ordinal})
			ordinal++
		}
	}
	if err := tr.Err(); err != nil {
		s.Release()
		return nil, fmt.Errorf("failed to read arrow table: %w", err)
	}

	return s, nil
}

// Schema returns the schema of the loaded table.
func (s *Source) Schema() *arrow.Schema {
	return s.schema
}

// RowCount returns the number of rows.
func (s *Source) RowCount() int {
	return len(s.rows)
}

// ColumnCount returns the number of columns.
func (s *Source) ColumnCount() int {
	return s.schema.NumFields()
}

// Items returns a copy of the rows in display order.
func (s *Source) Items() []Row {
	return slices.Clone(s.rows)
}

// SetItems replaces the rows, for example after a sort or a removal.
func (s *Source) SetItems(rows []Row) {
	s.rows = rows
}

// Columns returns one read-only column per field. Fields sharing a name
// get their index appended to keep referrals unique.
func (s *Source) Columns() []*closuretable.Column[Row] {
	fields := s.schema.Fields()
	columns := make([]*closuretable.Column[Row], len(fields))
	seen := make(map[string]bool)

	for i, field := range fields {
		referral := field.Name
		if seen[referral] {
			referral = fmt.Sprintf("%s_%d", field.Name, i)
		}
		seen[referral] = true

		c := closuretable.NewColumn[Row](referral)
		c.Title = field.Name
		c.Display = func(r Row) string {
			return r.Value(i)
		}
		columns[i] = c
	}
	return columns
}

// Bind attaches the columns and closures of the source to t.
func (s *Source) Bind(t *closuretable.ArrayTable[Row]) {
	for _, c := range s.Columns() {
		t.AttachColumn(c)
	}
	t.Items = s.Items
	t.OnChanged = s.SetItems
}

// Table builds an Arrow table holding the rows in display order. The
// caller releases it.
func (s *Source) Table() (arrow.Table, error) {
	if len(s.rows) == 0 {
		return nil, ErrEmptyData
	}

	pool := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(pool, s.schema)
	defer builder.Release()

	for _, r := range s.rows {
		for col := 0; col < s.schema.NumFields(); col++ {
			if err := appendValue(builder.Field(col), r.rec.Column(col), r.index); err != nil {
				return nil, fmt.Errorf("failed to copy column %s: %w", s.schema.Field(col).Name, err)
			}
		}
	}

	rec := builder.NewRecord()
	defer rec.Release()

	return array.NewTableFromRecords(s.schema, []arrow.Record{rec}), nil
}

// Release releases the retained record batches.
func (s *Source) Release() {
	for _, rec := range s.records {
		rec.Release()
	}
	s.records = nil
	s.rows = nil
}
