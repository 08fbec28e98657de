package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cartEntry(id string, qty int) Entry {
	return Entry{ID: id, Name: "Product " + id, Price: 500, Quantity: qty}
}

func TestCollection_CartAdd(t *testing.T) {
	tests := []struct {
		name          string
		ops           func(c *Collection)
		expectedIDs   []string
		expectedTotal int
	}{
		{
			name: "adding the same product twice merges into one line",
			ops: func(c *Collection) {
				c.Add(cartEntry("1", 1))
				c.Add(cartEntry("1", 1))
			},
			expectedIDs:   []string{"1"},
			expectedTotal: 2,
		},
		{
			name: "insertion order is display order",
			ops: func(c *Collection) {
				c.Add(cartEntry("3", 1))
				c.Add(cartEntry("1", 2))
				c.Add(cartEntry("2", 1))
			},
			expectedIDs:   []string{"3", "1", "2"},
			expectedTotal: 4,
		},
		{
			name: "zero quantity defaults to one",
			ops: func(c *Collection) {
				c.Add(cartEntry("1", 0))
			},
			expectedIDs:   []string{"1"},
			expectedTotal: 1,
		},
		{
			name: "empty key is ignored",
			ops: func(c *Collection) {
				c.Add(cartEntry("", 1))
			},
			expectedIDs:   nil,
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection(ModeCart)
			tt.ops(c)

			var ids []string
			for _, e := range c.Entries() {
				ids = append(ids, e.ID)
				assert.GreaterOrEqual(t, e.Quantity, 1)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedTotal, c.TotalCount())
		})
	}
}

func TestCollection_CartInvariants(t *testing.T) {
	c := NewCollection(ModeCart)
	c.Add(cartEntry("1", 2))
	c.Add(cartEntry("2", 1))
	c.Add(cartEntry("1", 3))
	c.UpdateQuantity("2", 5)
	c.Remove("missing")
	c.Add(cartEntry("3", 1))
	c.UpdateQuantity("3", 0)

	seen := map[string]bool{}
	for _, e := range c.Entries() {
		assert.False(t, seen[e.ID], "duplicate key %s", e.ID)
		seen[e.ID] = true
		assert.GreaterOrEqual(t, e.Quantity, 1)
	}
	assert.Equal(t, 10, c.TotalCount())
	assert.False(t, c.Contains("3"), "quantity 0 must delete the line")
}

func TestCollection_UpdateQuantity(t *testing.T) {
	c := NewCollection(ModeCart)
	c.Add(cartEntry("1", 2))

	c.UpdateQuantity("1", 7)
	assert.Equal(t, 7, c.TotalCount())

	c.UpdateQuantity("1", -1)
	assert.False(t, c.Contains("1"))
	assert.Equal(t, 0, c.TotalCount())
}

func TestCollection_WishlistSetSemantics(t *testing.T) {
	c := NewCollection(ModeWishlist)
	c.Add(cartEntry("1", 1))
	c.Add(cartEntry("1", 1))

	assert.Equal(t, 1, c.TotalCount(), "wishlist add must be idempotent")
}

func TestCollection_ToggleInvolution(t *testing.T) {
	c := NewCollection(ModeWishlist)
	c.Add(cartEntry("1", 1))
	before := c.Entries()

	added := c.Toggle(cartEntry("2", 1))
	assert.True(t, added)
	assert.True(t, c.Contains("2"))

	removed := c.Toggle(cartEntry("2", 1))
	assert.False(t, removed)
	assert.Equal(t, before, c.Entries(), "double toggle must restore the collection")
}

func TestCollection_ClearAndTotals(t *testing.T) {
	c := NewCollection(ModeCart)
	c.Add(Entry{ID: "1", Price: 100, Quantity: 2})
	c.Add(Entry{ID: "2", Price: 300, Quantity: 1})

	assert.Equal(t, int64(500), c.TotalPrice())

	c.Clear()
	assert.Equal(t, 0, c.TotalCount())
	assert.Empty(t, c.Entries())
}

func TestNewCollectionFrom_DropsMalformedEntries(t *testing.T) {
	entries := []Entry{
		{ID: "1", Quantity: 2},
		{ID: "", Quantity: 1},
		{ID: "1", Quantity: 5},
		{ID: "2", Quantity: 0},
		{ID: "3", Quantity: 1},
	}
	c := newCollectionFrom(ModeCart, entries)

	var ids []string
	for _, e := range c.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Equal(t, 3, c.TotalCount())
}
