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

package widget

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-closuretable/closuretable"
	"github.com/magpierre/fyne-closuretable/internal/selection"
)

// ArrayTable is a table widget showing an application owned array
// through a closuretable.ArrayTable adapter.
type ArrayTable[T any] struct {
	widget.BaseWidget

	adapter   *closuretable.ArrayTable[T]
	table     *widget.Table
	config    Config
	selection selection.Set
	sort      []closuretable.SortDescriptor
	editing   *widget.TableCellID
}

var _ closuretable.View = (*ArrayTable[any])(nil)

// NewArrayTable creates an empty table. Configure it through Adapter.
func NewArrayTable[T any](config Config) *ArrayTable[T] {
	t := &ArrayTable[T]{config: config}
	t.adapter = closuretable.NewArrayTable[T](t)

	t.table = widget.NewTable(t.length, t.createCell, t.updateCell)
	t.table.ShowHeaderRow = config.ShowHeaderRow
	t.table.CreateHeader = t.createHeader
	t.table.UpdateHeader = t.updateHeader
	t.table.OnSelected = t.cellTapped

	t.ExtendBaseWidget(t)
	return t
}

// Adapter returns the adapter holding the table closures.
func (t *ArrayTable[T]) Adapter() *closuretable.ArrayTable[T] {
	return t.adapter
}

// AddColumn attaches a column to the adapter and sizes it.
func (t *ArrayTable[T]) AddColumn(c *closuretable.Column[T]) {
	t.adapter.AttachColumn(c)
	t.applyColumnWidths()
}

// CreateRenderer implements fyne.Widget.
func (t *ArrayTable[T]) CreateRenderer() fyne.WidgetRenderer {
	t.applyColumnWidths()
	return widget.NewSimpleRenderer(t.table)
}

// SelectedRow implements closuretable.View.
func (t *ArrayTable[T]) SelectedRow() int {
	return t.selection.Primary()
}

// SelectedRows implements closuretable.View.
func (t *ArrayTable[T]) SelectedRows() []int {
	return t.selection.Rows()
}

// Reload implements closuretable.View. Selected rows past the end of the
// array are dropped.
func (t *ArrayTable[T]) Reload() {
	t.editing = nil
	t.applyColumnWidths()
	t.table.Refresh()

	if t.selection.Prune(t.adapter.RowCount()) {
		t.adapter.SelectionChanged()
		return
	}
	t.adapter.RefreshSelectionState()
}

// SelectRows replaces the selection. The last row is the primary one.
func (t *ArrayTable[T]) SelectRows(rows ...int) {
	t.selection.Set(rows...)
	t.selection.Prune(t.adapter.RowCount())
	t.editing = nil
	t.table.Refresh()
	t.adapter.SelectionChanged()
}

// ClearSelection unselects every row.
func (t *ArrayTable[T]) ClearSelection() {
	t.SelectRows()
}

// SortDescriptors returns the active sort, primary first.
func (t *ArrayTable[T]) SortDescriptors() []closuretable.SortDescriptor {
	return slices.Clone(t.sort)
}

// SetSortDescriptors replaces the active sort and sorts the array.
func (t *ArrayTable[T]) SetSortDescriptors(descriptors []closuretable.SortDescriptor) {
	t.sort = slices.Clone(descriptors)
	t.table.Refresh()
	t.adapter.SortChanged(t.sort)
}

// BeginEdit opens the editor on a cell. It reports false when the column
// does not accept edits or row is out of range.
func (t *ArrayTable[T]) BeginEdit(row, col int) bool {
	if row < 0 || row >= t.adapter.RowCount() || !t.adapter.ShouldEdit(t.adapter.Column(col)) {
		return false
	}
	t.editing = &widget.TableCellID{Row: row, Col: col}
	t.table.Refresh()
	return true
}

// Editing reports whether an editor is open.
func (t *ArrayTable[T]) Editing() bool {
	return t.editing != nil
}

func (t *ArrayTable[T]) commit(id widget.TableCellID, text string) {
	t.adapter.CommitEdit(id.Row, t.adapter.Column(id.Col), text)
	t.Reload()
}

func (t *ArrayTable[T]) length() (rows int, cols int) {
	return t.adapter.RowCount(), len(t.adapter.Columns())
}

func (t *ArrayTable[T]) createCell() fyne.CanvasObject {
	return newCell()
}

func (t *ArrayTable[T]) updateCell(id widget.TableCellID, o fyne.CanvasObject) {
	c := o.(*cell)
	column := t.adapter.Column(id.Col)
	text, _ := t.adapter.CellValue(id.Row, column)

	if t.editing != nil && *t.editing == id {
		c.edit(id, text, func(s string) {
			t.commit(id, s)
		})
		return
	}
	c.show(text, t.selection.Contains(id.Row))
}

func (t *ArrayTable[T]) createHeader() fyne.CanvasObject {
	b := widget.NewButton("", nil)
	b.Importance = widget.LowImportance
	b.Alignment = widget.ButtonAlignLeading
	b.IconPlacement = widget.ButtonIconTrailingText
	return b
}

func (t *ArrayTable[T]) updateHeader(id widget.TableCellID, o fyne.CanvasObject) {
	b := o.(*widget.Button)
	column := t.adapter.Column(id.Col)
	if column == nil {
		b.SetText("")
		b.SetIcon(nil)
		b.OnTapped = nil
		return
	}

	b.SetText(column.Header())
	b.SetIcon(nil)
	if len(t.sort) > 0 && t.sort[0].Key == column.Referral {
		if t.sort[0].Ascending {
			b.SetIcon(theme.MoveUpIcon())
		} else {
			b.SetIcon(theme.MoveDownIcon())
		}
	}

	col := id.Col
	b.OnTapped = func() {
		t.headerTapped(col)
	}
}

// headerTapped sorts by the tapped column. A new column sorts ascending,
// the current primary column flips direction.
func (t *ArrayTable[T]) headerTapped(col int) {
	column := t.adapter.Column(col)
	if !t.config.SortableHeaders || column == nil {
		return
	}

	next := closuretable.SortDescriptor{Key: column.Referral, Ascending: true}
	if len(t.sort) > 0 && t.sort[0].Key == column.Referral {
		next = t.sort[0].Reversed()
	}

	descriptors := []closuretable.SortDescriptor{next}
	for _, sd := range t.sort {
		if sd.Key != next.Key {
			descriptors = append(descriptors, sd)
		}
	}
	t.SetSortDescriptors(descriptors)
}

// cellTapped handles a tap on a data cell. The Fyne selection is cleared
// right away so every tap is reported; row selection is kept here.
func (t *ArrayTable[T]) cellTapped(id widget.TableCellID) {
	if id.Row < 0 || id.Col < 0 {
		return
	}
	defer t.table.Unselect(id)

	if t.config.EditOnSecondTap && t.selection.Len() == 1 && t.selection.Primary() == id.Row {
		if t.BeginEdit(id.Row, id.Col) {
			return
		}
	}

	t.editing = nil
	if t.config.MultipleSelection {
		t.selection.Toggle(id.Row)
	} else {
		t.selection.Replace(id.Row)
	}
	t.table.Refresh()
	t.adapter.SelectionChanged()
}

func (t *ArrayTable[T]) applyColumnWidths() {
	for i, c := range t.adapter.Columns() {
		t.table.SetColumnWidth(i, t.config.columnWidth(c.Referral))
	}
}
