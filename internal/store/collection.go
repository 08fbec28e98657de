package store

// Mode selects the mutation semantics of a Collection.
type Mode int

const (
	// ModeCart keeps one quantity-bearing line per product; adding an
	// existing product increments its quantity.
	ModeCart Mode = iota
	// ModeWishlist keeps set semantics; adds are idempotent and Toggle
	// flips membership.
	ModeWishlist
)

// Entry is one cart line or wishlist entry. Display fields are denormalized
// from the product at the time of add. Quantity is only meaningful in cart
// mode and is always >= 1 for a stored entry.
type Entry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
}

// Collection is an ordered set of entries keyed by Entry.ID. Insertion order
// is display order. It holds no locks; one collection belongs to one session.
type Collection struct {
	mode    Mode
	entries []Entry
}

func NewCollection(mode Mode) *Collection {
	return &Collection{mode: mode}
}

// newCollectionFrom drops malformed entries (empty key, duplicate key,
// non-positive cart quantity) so a damaged persisted payload can never
// violate the collection invariants.
func newCollectionFrom(mode Mode, entries []Entry) *Collection {
	c := NewCollection(mode)
	for _, e := range entries {
		if e.ID == "" || c.Contains(e.ID) {
			continue
		}
		if c.mode == ModeCart && e.Quantity < 1 {
			continue
		}
		if c.mode == ModeWishlist {
			e.Quantity = 0
		}
		c.entries = append(c.entries, e)
	}
	return c
}

func (c *Collection) Mode() Mode { return c.mode }

// Add appends the entry, or in cart mode merges it into an existing line by
// incrementing the quantity. A wishlist add of a present key is a no-op.
func (c *Collection) Add(e Entry) {
	if e.ID == "" {
		return
	}
	if i := c.index(e.ID); i >= 0 {
		if c.mode == ModeCart {
			c.entries[i].Quantity += normalizeQty(e.Quantity)
		}
		return
	}
	if c.mode == ModeCart {
		e.Quantity = normalizeQty(e.Quantity)
	} else {
		e.Quantity = 0
	}
	c.entries = append(c.entries, e)
}

// Remove deletes the entry with the given key; absent keys are a no-op.
func (c *Collection) Remove(id string) {
	if i := c.index(id); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}
}

// UpdateQuantity sets a cart line's quantity. A quantity below 1 removes the
// line; a zero-or-negative quantity is never stored.
func (c *Collection) UpdateQuantity(id string, quantity int) {
	if c.mode != ModeCart {
		return
	}
	if quantity < 1 {
		c.Remove(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.entries[i].Quantity = quantity
	}
}

// Toggle removes the entry when present, otherwise adds it. It reports
// whether the entry is present afterwards. Wishlist mode only.
func (c *Collection) Toggle(e Entry) bool {
	if c.mode != ModeWishlist {
		return c.Contains(e.ID)
	}
	if c.Contains(e.ID) {
		c.Remove(e.ID)
		return false
	}
	c.Add(e)
	return true
}

func (c *Collection) Clear() {
	c.entries = nil
}

func (c *Collection) Contains(id string) bool {
	return c.index(id) >= 0
}

// TotalCount is the sum of quantities in cart mode and the entry count in
// wishlist mode.
func (c *Collection) TotalCount() int {
	if c.mode == ModeWishlist {
		return len(c.entries)
	}
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice is the cart subtotal in minor units.
func (c *Collection) TotalPrice() int64 {
	var total int64
	for _, e := range c.entries {
		qty := e.Quantity
		if c.mode == ModeWishlist {
			qty = 1
		}
		total += e.Price * int64(qty)
	}
	return total
}

// Entries returns a copy; callers cannot bypass the mutation invariants.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Collection) index(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func normalizeQty(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
