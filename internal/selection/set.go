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

// Package selection tracks the selected rows of a table.
package selection

import "slices"

// Set holds selected row indexes in the order they were selected.
// The zero value is an empty selection.
type Set struct {
	rows []int
}

// Len returns the number of selected rows.
func (s *Set) Len() int {
	return len(s.rows)
}

// Contains reports whether row is selected.
func (s *Set) Contains(row int) bool {
	return slices.Contains(s.rows, row)
}

// Primary returns the most recently selected row, or -1.
func (s *Set) Primary() int {
	if len(s.rows) == 0 {
		return -1
	}
	return s.rows[len(s.rows)-1]
}

// Rows returns the selected rows in ascending order.
func (s *Set) Rows() []int {
	rows := slices.Clone(s.rows)
	slices.Sort(rows)
	return rows
}

// Replace makes row the only selected row. Negative rows clear the set.
func (s *Set) Replace(row int) {
	s.rows = s.rows[:0]
	if row >= 0 {
		s.rows = append(s.rows, row)
	}
}

// Toggle adds row to the selection, or removes it if already selected.
func (s *Set) Toggle(row int) {
	if row < 0 {
		return
	}
	if i := slices.Index(s.rows, row); i >= 0 {
		s.rows = slices.Delete(s.rows, i, i+1)
		return
	}
	s.rows = append(s.rows, row)
}

// Set replaces the selection. The last row becomes the primary one.
// Negative rows and duplicates are dropped.
func (s *Set) Set(rows ...int) {
	s.rows = s.rows[:0]
	for _, row := range rows {
		if row < 0 || slices.Contains(s.rows, row) {
			continue
		}
		s.rows = append(s.rows, row)
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.rows = s.rows[:0]
}

// Prune drops rows at or beyond count. It reports whether anything was
// dropped.
func (s *Set) Prune(count int) bool {
	n := len(s.rows)
	s.rows = slices.DeleteFunc(s.rows, func(row int) bool {
		return row >= count
	})
	return len(s.rows) != n
}
