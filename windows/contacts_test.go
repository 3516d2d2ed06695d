package windows

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-closuretable/closuretable"
	ctwidget "github.com/magpierre/fyne-closuretable/widget"
)

func newContactsTab(t *testing.T) (*ContactsTab, *ContactBook, *string) {
	t.Helper()
	test.NewTempApp(t)

	status := new(string)
	book := NewContactBook()
	ct := NewContactsTab(book, ctwidget.DefaultConfig(), func(s string) { *status = s })
	return ct, book, status
}

func TestContactsTab_AddAndRemove(t *testing.T) {
	ct, book, status := newContactsTab(t)
	require.Len(t, book.Contacts(), 4)
	assert.False(t, ct.add.Disabled())
	assert.True(t, ct.subtract.Disabled(), "nothing selected")

	test.Tap(ct.add)
	require.Len(t, book.Contacts(), 5)
	assert.Equal(t, "Contact 5", book.Contacts()[4].Name)
	assert.Equal(t, "5 contacts", *status)

	ct.table.SelectRows(0, 2)
	assert.False(t, ct.subtract.Disabled())
	assert.Equal(t, "2 contacts selected", *status)

	test.Tap(ct.subtract)
	var got []string
	for _, c := range book.Contacts() {
		got = append(got, c.Name)
	}
	assert.Equal(t, []string{"Grace Hopper", "Barbara Liskov", "Contact 5"}, got)
	assert.Equal(t, "3 contacts", *status)
	// rows still in range stay selected
	assert.Equal(t, []int{0, 2}, ct.table.SelectedRows())
	assert.False(t, ct.subtract.Disabled())
}

func TestContactsTab_SortAndEdit(t *testing.T) {
	ct, book, status := newContactsTab(t)
	adapter := ct.table.Adapter()

	ct.table.SetSortDescriptors([]closuretable.SortDescriptor{{Key: "City", Ascending: true}})
	assert.Equal(t, "Arlington", book.Contacts()[0].City)
	assert.Equal(t, "Nuenen", book.Contacts()[3].City)

	adapter.CommitEdit(0, adapter.FindColumn("Email"), "  Grace@Navy.mil ")
	assert.Equal(t, "grace@navy.mil", book.Contacts()[0].Email)

	ct.table.SelectRows(1)
	assert.Equal(t, "Selected: "+book.Contacts()[1].Name, *status)

	ct.table.ClearSelection()
	assert.Equal(t, "No contact selected", *status)
	assert.NotNil(t, ct.Tab())

	adapter.CommitEdit(2, adapter.FindColumn("City"), "Boston")
	assert.Equal(t, "Boston", book.Contacts()[2].City)
	assert.Equal(t, "E-Mail", adapter.FindColumn("Email").Header())
}
