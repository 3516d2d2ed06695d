package closuretable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumn_Header(t *testing.T) {
	c := NewColumn[int]("qty")
	assert.Equal(t, "qty", c.Header())

	c.Title = "Quantity"
	assert.Equal(t, "Quantity", c.Header())
}

func TestColumn_SetBinding(t *testing.T) {
	c := NewColumn[int]("qty")
	assert.False(t, c.Editable())

	var edited int
	c.SetBinding(func(i int) string { return "n" }, func(i int, s string) { edited = i })
	assert.True(t, c.Editable())
	assert.Equal(t, "n", c.Display(1))
	c.Edit(3, "x")
	assert.Equal(t, 3, edited)

	c.SetBinding(nil, nil)
	assert.Nil(t, c.Display)
	assert.False(t, c.Editable())

	var missing *Column[int]
	assert.False(t, missing.Editable())
}

func TestSortDescriptor(t *testing.T) {
	sd := SortDescriptor{Key: "name", Ascending: true}
	assert.Equal(t, "name ↑", sd.String())
	assert.Equal(t, "name ↓", sd.Reversed().String())
	assert.True(t, sd.Reversed().Reversed().Ascending)
}
