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

// Package closuretable binds table widgets to application data through
// closures instead of data source implementations.
//
// The package has no toolkit dependency. A host widget drives an adapter
// by calling its methods from UI callbacks, and the adapter answers by
// invoking the closures the application registered. Every operation is
// fail-soft: a missing closure, column or index turns the call into a
// no-op or a neutral return value.
package closuretable

import "fmt"

// View is the host table as seen by an adapter.
type View interface {
	// SelectedRow returns the primary selected row, or -1 if there is none.
	SelectedRow() int

	// SelectedRows returns every selected row index.
	SelectedRows() []int

	// Reload asks the host to redraw after the backing array changed.
	Reload()
}

// Control is an external button bound to an adapter action.
type Control interface {
	SetAction(action func())
	SetEnabled(enabled bool)
}

// SortDescriptor describes one active sort of a table.
type SortDescriptor struct {
	// Key is the referral of the sorted column.
	Key string
	// Ascending is false for descending order.
	Ascending bool
}

// String returns the descriptor as "key ↑" or "key ↓".
func (sd SortDescriptor) String() string {
	direction := "↑"
	if !sd.Ascending {
		direction = "↓"
	}
	return fmt.Sprintf("%s %s", sd.Key, direction)
}

// Reversed returns the descriptor with the opposite direction.
func (sd SortDescriptor) Reversed() SortDescriptor {
	return SortDescriptor{Key: sd.Key, Ascending: !sd.Ascending}
}
