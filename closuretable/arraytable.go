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

package closuretable

import (
	"slices"
	"strings"
)

// ArrayTable binds an array of items owned by the application to a table.
//
// The adapter never keeps the array. Items is called before every read or
// mutation, the returned slice is cloned before it is modified, and every
// structural change is handed back through OnChanged.
type ArrayTable[T any] struct {
	// Items returns the array to show. Optional.
	Items func() []T

	// NewItem creates the item appended by AddItem. Optional.
	NewItem func() T

	// OnSelected receives the primary selected row, or -1. Optional.
	OnSelected func(row int)

	// OnChanged receives the full replacement array after add, remove
	// and sort. Optional.
	OnChanged func(items []T)

	columns  []*Column[T]
	view     View
	add      Control
	subtract Control
}

// NewArrayTable creates an adapter driven by view. A nil view has no
// selection and ignores reloads.
func NewArrayTable[T any](view View) *ArrayTable[T] {
	return &ArrayTable[T]{view: view}
}

// SetView replaces the host view.
func (t *ArrayTable[T]) SetView(view View) {
	t.view = view
}

// AttachColumn appends a column to the table.
func (t *ArrayTable[T]) AttachColumn(c *Column[T]) {
	if c == nil {
		return
	}
	t.columns = append(t.columns, c)
}

// Columns returns the attached columns in order.
func (t *ArrayTable[T]) Columns() []*Column[T] {
	return t.columns
}

// Column returns the column at index i, or nil.
func (t *ArrayTable[T]) Column(i int) *Column[T] {
	if i < 0 || i >= len(t.columns) {
		return nil
	}
	return t.columns[i]
}

// FindColumn returns the column with the given referral, or nil.
func (t *ArrayTable[T]) FindColumn(referral string) *Column[T] {
	if referral == "" {
		return nil
	}
	for _, c := range t.columns {
		if c.Referral == referral {
			return c
		}
	}
	return nil
}

// SetColumn replaces the closures of the column with the given referral.
// Nothing happens when no such column is attached.
func (t *ArrayTable[T]) SetColumn(referral string, display func(T) string, edit func(T, string)) {
	c := t.FindColumn(referral)
	if c == nil {
		return
	}
	c.SetBinding(display, edit)
}

// RowCount returns the number of items, or 0 without an Items closure.
func (t *ArrayTable[T]) RowCount() int {
	if t.Items == nil {
		return 0
	}
	return len(t.Items())
}

// CellValue returns the text of a cell. ok is false when the table has no
// items closure, the column has no display closure or row is out of range.
func (t *ArrayTable[T]) CellValue(row int, c *Column[T]) (text string, ok bool) {
	if t.Items == nil || c == nil || c.Display == nil {
		return "", false
	}
	items := t.Items()
	if row < 0 || row >= len(items) {
		return "", false
	}
	return c.Display(items[row]), true
}

// ShouldEdit reports whether cells of the column can be edited.
func (t *ArrayTable[T]) ShouldEdit(c *Column[T]) bool {
	return c.Editable()
}

// CommitEdit passes an edited cell text to the column's edit closure. The
// array is left alone; the closure applies the change.
func (t *ArrayTable[T]) CommitEdit(row int, c *Column[T], text string) {
	if t.Items == nil || !c.Editable() {
		return
	}
	items := t.Items()
	if row < 0 || row >= len(items) {
		return
	}
	c.Edit(items[row], text)
}

// SortChanged sorts the array by the first descriptor. Later descriptors
// are ignored. The sort is stable and compares the display strings of the
// resolved column byte by byte.
func (t *ArrayTable[T]) SortChanged(descriptors []SortDescriptor) {
	if t.OnChanged == nil || len(descriptors) == 0 || t.Items == nil {
		return
	}
	sd := descriptors[0]
	c := t.FindColumn(sd.Key)
	if c == nil || c.Display == nil {
		return
	}

	items := t.Items()
	keys := make([]string, len(items))
	order := make([]int, len(items))
	for i, item := range items {
		keys[i] = c.Display(item)
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if sd.Ascending {
			return strings.Compare(keys[a], keys[b])
		}
		return strings.Compare(keys[b], keys[a])
	})

	sorted := make([]T, len(items))
	for i, n := range order {
		sorted[i] = items[n]
	}

	t.OnChanged(sorted)
	t.reload()
}

// AddItem appends a new item at the end of the array.
func (t *ArrayTable[T]) AddItem() {
	if t.Items == nil || t.NewItem == nil || t.OnChanged == nil {
		return
	}
	items := slices.Clone(t.Items())
	items = append(items, t.NewItem())

	t.OnChanged(items)
	t.reload()
}

// RemoveSelected removes the selected rows from the array. Rows are
// removed from the highest index down so earlier removals do not shift
// later ones.
func (t *ArrayTable[T]) RemoveSelected() {
	if t.Items == nil || t.OnChanged == nil {
		return
	}
	items := slices.Clone(t.Items())

	rows := slices.Clone(t.selectedRows())
	slices.Sort(rows)
	rows = slices.Compact(rows)
	for i := len(rows) - 1; i >= 0; i-- {
		n := rows[i]
		if n < 0 || n >= len(items) {
			continue
		}
		items = slices.Delete(items, n, n+1)
	}

	t.OnChanged(items)
	t.reload()
}

// BindAddControl makes the control trigger AddItem.
func (t *ArrayTable[T]) BindAddControl(c Control) {
	if c == nil {
		return
	}
	t.add = c
	c.SetAction(t.AddItem)
}

// BindSubtractControl makes the control trigger RemoveSelected and
// updates its enabled state.
func (t *ArrayTable[T]) BindSubtractControl(c Control) {
	if c == nil {
		return
	}
	t.subtract = c
	c.SetAction(t.RemoveSelected)

	t.RefreshSelectionState()
}

// RefreshSelectionState enables the subtract control if at least one row
// is selected.
func (t *ArrayTable[T]) RefreshSelectionState() {
	if t.subtract == nil {
		return
	}
	t.subtract.SetEnabled(len(t.selectedRows()) > 0)
}

// SelectionChanged is called by the host after the selection changed.
func (t *ArrayTable[T]) SelectionChanged() {
	t.RefreshSelectionState()

	if t.OnSelected == nil {
		return
	}
	t.OnSelected(t.selectedRow())
}

func (t *ArrayTable[T]) selectedRow() int {
	if t.view == nil {
		return -1
	}
	return t.view.SelectedRow()
}

func (t *ArrayTable[T]) selectedRows() []int {
	if t.view == nil {
		return nil
	}
	return t.view.SelectedRows()
}

func (t *ArrayTable[T]) reload() {
	if t.view != nil {
		t.view.Reload()
	}
}
