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
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-closuretable/closuretable"
)

type buttonControl struct {
	button *widget.Button
}

// Button adapts a Fyne button so it can be bound to a table action.
// A nil button gives a nil control, which adapters ignore.
func Button(b *widget.Button) closuretable.Control {
	if b == nil {
		return nil
	}
	return &buttonControl{button: b}
}

func (c *buttonControl) SetAction(action func()) {
	c.button.OnTapped = action
}

func (c *buttonControl) SetEnabled(enabled bool) {
	if enabled {
		c.button.Enable()
	} else {
		c.button.Disable()
	}
}
