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
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-closuretable/closuretable"
)

// rowItem is a list label that supports both tap and double tap.
type rowItem struct {
	widget.Label
	list *SimpleList
	id   widget.ListItemID
}

func newRowItem(list *SimpleList) *rowItem {
	item := &rowItem{list: list, id: -1}
	item.Truncation = fyne.TextTruncateEllipsis
	item.ExtendBaseWidget(item)
	return item
}

// Tapped selects the row.
func (r *rowItem) Tapped(*fyne.PointEvent) {
	if r.id >= 0 {
		r.list.list.Select(r.id)
	}
}

// DoubleTapped reports the row under the pointer.
func (r *rowItem) DoubleTapped(*fyne.PointEvent) {
	if r.id >= 0 {
		r.list.adapter.DoubleClicked(r.id)
	}
}

// SimpleList is a read-only, single selection list driven by a
// closuretable.SimpleTable adapter.
type SimpleList struct {
	widget.BaseWidget

	adapter  *closuretable.SimpleTable
	list     *widget.List
	selected widget.ListItemID
}

// NewSimpleList creates an empty list. Configure it through Adapter.
func NewSimpleList() *SimpleList {
	l := &SimpleList{
		adapter:  &closuretable.SimpleTable{},
		selected: -1,
	}
	l.list = widget.NewList(l.adapter.RowCount, l.createItem, l.updateItem)
	l.list.OnSelected = func(id widget.ListItemID) {
		l.selected = id
		l.adapter.SelectionChanged(id)
	}
	l.list.OnUnselected = func(id widget.ListItemID) {
		if l.selected == id {
			l.selected = -1
		}
	}
	l.ExtendBaseWidget(l)
	return l
}

// Adapter returns the adapter holding the list closures.
func (l *SimpleList) Adapter() *closuretable.SimpleTable {
	return l.adapter
}

// CreateRenderer implements fyne.Widget.
func (l *SimpleList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.list)
}

// SelectedRow returns the selected row, or -1.
func (l *SimpleList) SelectedRow() int {
	return l.selected
}

// Select selects a row. Out of range rows are ignored.
func (l *SimpleList) Select(row int) {
	l.list.Select(row)
}

// ClearSelection unselects the selected row and reports -1.
func (l *SimpleList) ClearSelection() {
	if l.selected < 0 {
		return
	}
	l.list.UnselectAll()
	l.selected = -1
	l.adapter.SelectionChanged(-1)
}

// Reload redraws the list after the data changed.
func (l *SimpleList) Reload() {
	if l.selected >= l.adapter.RowCount() {
		l.ClearSelection()
	}
	l.list.Refresh()
}

func (l *SimpleList) createItem() fyne.CanvasObject {
	return newRowItem(l)
}

func (l *SimpleList) updateItem(id widget.ListItemID, o fyne.CanvasObject) {
	item := o.(*rowItem)
	item.id = id
	text, _ := l.adapter.CellText(id)
	item.SetText(text)
}
