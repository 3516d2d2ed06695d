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

package windows

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/domonda/go-retable"

	structadapter "github.com/magpierre/fyne-closuretable/adapters/structs"
	ctwidget "github.com/magpierre/fyne-closuretable/widget"
)

// Contact is one entry of the contact book.
type Contact struct {
	Name  string `col:"Name"`
	Email string `col:"E-Mail"`
	City  string
}

// ContactBook owns the contacts shown in the contacts tab. The table only
// reads Contacts and writes back through Replace.
type ContactBook struct {
	contacts []*Contact
}

// NewContactBook creates a book with a few sample contacts.
func NewContactBook() *ContactBook {
	return &ContactBook{contacts: []*Contact{
		{Name: "Ada Lovelace", Email: "ada@example.com", City: "London"},
		{Name: "Grace Hopper", Email: "grace@example.com", City: "Arlington"},
		{Name: "Edsger Dijkstra", Email: "edsger@example.com", City: "Nuenen"},
		{Name: "Barbara Liskov", Email: "barbara@example.com", City: "Cambridge"},
	}}
}

// Contacts returns the current contacts.
func (b *ContactBook) Contacts() []*Contact {
	return b.contacts
}

// Replace stores a new contact list.
func (b *ContactBook) Replace(contacts []*Contact) {
	b.contacts = contacts
}

// ContactsTab is the tab editing a ContactBook.
type ContactsTab struct {
	book     *ContactBook
	table    *ctwidget.ArrayTable[*Contact]
	add      *widget.Button
	subtract *widget.Button
	tab      *container.TabItem
	status   func(string)
}

// NewContactsTab wires a contact book to an editable table with add and
// remove buttons.
func NewContactsTab(book *ContactBook, config ctwidget.Config, status func(string)) *ContactsTab {
	ct := &ContactsTab{
		book:   book,
		table:  ctwidget.NewArrayTable[*Contact](config),
		status: status,
	}

	for _, c := range structadapter.Columns[*Contact](&retable.DefaultStructFieldNaming) {
		ct.table.AddColumn(c)
	}

	adapter := ct.table.Adapter()
	adapter.SetColumn("Name",
		func(c *Contact) string { return c.Name },
		func(c *Contact, s string) { c.Name = strings.TrimSpace(s) })
	adapter.SetColumn("Email",
		func(c *Contact) string { return c.Email },
		func(c *Contact, s string) { c.Email = strings.ToLower(strings.TrimSpace(s)) })

	adapter.Items = book.Contacts
	adapter.NewItem = func() *Contact {
		return &Contact{Name: fmt.Sprintf("Contact %d", len(book.Contacts())+1)}
	}
	adapter.OnChanged = func(contacts []*Contact) {
		book.Replace(contacts)
		ct.setStatus(fmt.Sprintf("%d contacts", len(contacts)))
	}
	adapter.OnSelected = ct.selectionChanged

	ct.add = widget.NewButtonWithIcon("", theme.ContentAddIcon(), nil)
	ct.subtract = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), nil)
	adapter.BindAddControl(ctwidget.Button(ct.add))
	adapter.BindSubtractControl(ctwidget.Button(ct.subtract))

	buttons := container.NewHBox(ct.add, ct.subtract)
	help := widget.NewLabel("Tap a selected cell again to edit it, press Enter to commit.")
	help.TextStyle.Italic = true

	content := container.NewBorder(nil, container.NewBorder(nil, nil, buttons, nil, help), nil, nil, ct.table)
	ct.tab = container.NewTabItemWithIcon("Contacts", theme.AccountIcon(), content)
	return ct
}

// Tab returns the tab item to add to a tab container.
func (ct *ContactsTab) Tab() *container.TabItem {
	return ct.tab
}

func (ct *ContactsTab) selectionChanged(row int) {
	contacts := ct.book.Contacts()
	switch {
	case row < 0 || row >= len(contacts):
		ct.setStatus("No contact selected")
	case len(ct.table.SelectedRows()) > 1:
		ct.setStatus(fmt.Sprintf("%d contacts selected", len(ct.table.SelectedRows())))
	default:
		ct.setStatus("Selected: " + contacts[row].Name)
	}
}

func (ct *ContactsTab) setStatus(message string) {
	if ct.status != nil {
		ct.status(message)
	}
}
