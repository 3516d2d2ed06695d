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

// Column identifies one table column and holds its closures.
type Column[T any] struct {
	// Referral identifies the column and must be unique within a table.
	Referral string

	// Title is the header text. Empty means Referral is shown.
	Title string

	// Display converts an item into the cell text. Optional.
	Display func(item T) string

	// Edit receives an item and the text the user entered. Optional.
	Edit func(item T, text string)
}

// NewColumn creates a column with the given referral.
func NewColumn[T any](referral string) *Column[T] {
	return &Column[T]{Referral: referral}
}

// SetBinding replaces both closures of the column.
func (c *Column[T]) SetBinding(display func(T) string, edit func(T, string)) {
	c.Display = display
	c.Edit = edit
}

// Header returns the text shown in the column header.
func (c *Column[T]) Header() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Referral
}

// Editable reports whether the column accepts edits.
func (c *Column[T]) Editable() bool {
	return c != nil && c.Edit != nil
}
