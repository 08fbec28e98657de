package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// Slots persists collections as JSON arrays, one redis key per named slot
// (for example "cart:42"). The slot is the durable mirror of a session's
// cart or wishlist and has no TTL.
type Slots struct {
	rdb *redis.Client
}

func NewSlots(rdb *redis.Client) *Slots {
	return &Slots{rdb: rdb}
}

// Load reads a slot into a collection. A missing or unreadable slot yields an
// empty collection rather than an error: a corrupt mirror must never lock a
// customer out of their cart.
func (s *Slots) Load(ctx context.Context, slot string, mode Mode) *Collection {
	raw, err := s.rdb.Get(ctx, slot).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("slot %s: load failed, starting empty: %v", slot, err)
		}
		return NewCollection(mode)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("slot %s: corrupt payload discarded: %v", slot, err)
		return NewCollection(mode)
	}
	return newCollectionFrom(mode, entries)
}

// Save mirrors the collection to its slot. It is called after every mutation;
// a failed save is reported but the in-memory collection stays valid.
func (s *Slots) Save(ctx context.Context, slot string, c *Collection) error {
	raw, err := json.Marshal(c.Entries())
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, slot, raw, 0).Err()
}

// Delete drops the slot entirely, used when a cart is cleared at checkout.
func (s *Slots) Delete(ctx context.Context, slot string) error {
	return s.rdb.Del(ctx, slot).Err()
}
