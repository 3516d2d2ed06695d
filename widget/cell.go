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
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// cell shows a label, or an entry while the cell is being edited.
type cell struct {
	widget.BaseWidget
	label *widget.Label
	entry *widget.Entry

	// editing is the cell the entry was filled for
	editing widget.TableCellID
}

func newCell() *cell {
	c := &cell{
		label:   widget.NewLabel(""),
		entry:   widget.NewEntry(),
		editing: widget.TableCellID{Row: -1, Col: -1},
	}
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.entry.Hide()
	c.ExtendBaseWidget(c)
	return c
}

func (c *cell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.label, c.entry))
}

func (c *cell) show(text string, selected bool) {
	c.editing = widget.TableCellID{Row: -1, Col: -1}
	c.entry.OnSubmitted = nil
	c.entry.Hide()

	c.label.TextStyle = fyne.TextStyle{Bold: selected}
	c.label.SetText(text)
	c.label.Show()
}

// edit shows the entry for id. The text is only set when the entry was
// not already open for id, so typing survives a refresh.
func (c *cell) edit(id widget.TableCellID, text string, submit func(string)) {
	if c.editing != id || !c.entry.Visible() {
		c.entry.SetText(text)
	}
	c.editing = id
	c.entry.OnSubmitted = submit
	c.label.Hide()
	c.entry.Show()
}
