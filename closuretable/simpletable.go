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

// SimpleTable is a read-only single column adapter.
type SimpleTable struct {
	// Count returns the number of rows. Takes precedence over Items.
	Count func() int

	// Text returns the text of a row. Takes precedence over Items.
	Text func(row int) string

	// Items returns the rows. Only string elements are shown.
	Items func() []any

	// OnSelected receives the selected row, or -1.
	OnSelected func(row int)

	// OnDoubleClicked receives the row under the pointer.
	OnDoubleClicked func(row int)
}

// RowCount returns Count, the length of Items, or 0.
func (t *SimpleTable) RowCount() int {
	if t.Count != nil {
		return t.Count()
	}
	if t.Items != nil {
		return len(t.Items())
	}
	return 0
}

// CellText returns the text of a row. Without a Text closure the element
// of Items is used if it is a string.
func (t *SimpleTable) CellText(row int) (string, bool) {
	if t.Text != nil {
		return t.Text(row), true
	}
	if t.Items == nil {
		return "", false
	}
	items := t.Items()
	if row < 0 || row >= len(items) {
		return "", false
	}
	s, ok := items[row].(string)
	return s, ok
}

// SelectionChanged forwards the selected row.
func (t *SimpleTable) SelectionChanged(row int) {
	if t.OnSelected != nil {
		t.OnSelected(row)
	}
}

// DoubleClicked forwards the double clicked row.
func (t *SimpleTable) DoubleClicked(row int) {
	if t.OnDoubleClicked != nil {
		t.OnDoubleClicked(row)
	}
}
