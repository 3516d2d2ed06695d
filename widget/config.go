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

// Package widget provides Fyne widgets driven by closuretable adapters.
package widget

// Config holds the configuration of an ArrayTable widget.
type Config struct {
	// ShowHeaderRow shows the column titles above the rows.
	ShowHeaderRow bool

	// SortableHeaders makes a header tap sort by that column.
	SortableHeaders bool

	// MultipleSelection makes a row tap toggle the row in the selection
	// instead of replacing it.
	MultipleSelection bool

	// EditOnSecondTap opens an editor when the only selected row is
	// tapped again on an editable column.
	EditOnSecondTap bool

	// MinColumnWidth is the width of columns without an explicit width.
	MinColumnWidth float32

	// ColumnWidths maps column referrals to widths.
	ColumnWidths map[string]float32
}

// DefaultConfig returns the default widget configuration.
func DefaultConfig() Config {
	return Config{
		ShowHeaderRow:     true,
		SortableHeaders:   true,
		MultipleSelection: true,
		EditOnSecondTap:   true,
		MinColumnWidth:    120,
	}
}

func (c Config) columnWidth(referral string) float32 {
	if w, ok := c.ColumnWidths[referral]; ok && w > 0 {
		return w
	}
	return c.MinColumnWidth
}
