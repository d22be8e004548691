package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mobileking0827/VossShop/internal/domain"
	"github.com/mobileking0827/VossShop/internal/money"
)

// ErrIndexOutOfRange is returned when a position is outside the cart.
var ErrIndexOutOfRange = errors.New("cart index out of range")

// Entry is one line in the cart. Adding the same product twice creates
// two independent entries; the cart carries no quantity notion.
type Entry struct {
	LineID  string
	Product domain.Product
	AddedAt time.Time
}

// Cart is an ordered in-memory collection of entries. The app shell owns
// it; screens hold it by pointer and never manage its lifetime. The guard
// keeps it safe for command goroutines even though the update loop is the
// only mutator while the cart screen is visible.
type Cart struct {
	mu      sync.RWMutex
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add appends a product as a new entry and returns the created entry.
func (c *Cart) Add(p domain.Product) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := Entry{
		LineID:  uuid.New().String(),
		Product: p,
		AddedAt: time.Now(),
	}
	c.entries = append(c.entries, e)
	return e
}

// Count reports the number of entries.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// ProductAt returns the product at position i.
func (c *Cart) ProductAt(i int) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i < 0 || i >= len(c.entries) {
		return domain.Product{}, ErrIndexOutOfRange
	}
	return c.entries[i].Product, nil
}

// TotalPrice sums the prices of all entries. An empty cart totals zero.
func (c *Cart) TotalPrice() money.Money {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total money.Money
	for _, e := range c.entries {
		total += e.Product.Price
	}
	return total
}

// RemoveAt removes and returns the entry at position i. The relative
// order of the remaining entries is preserved.
func (c *Cart) RemoveAt(i int) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.entries) {
		return Entry{}, ErrIndexOutOfRange
	}

	e := c.entries[i]
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return e, nil
}

// Snapshot is a point-in-time copy of the cart, captured when a session
// ends at checkout so whatever processes the order sees consistent data.
type Snapshot struct {
	Entries    []Entry
	Total      money.Money
	CapturedAt time.Time
}

// TakeSnapshot captures the entries and the total under one lock.
func (c *Cart) TakeSnapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)

	var total money.Money
	for _, e := range c.entries {
		total += e.Product.Price
	}

	return Snapshot{
		Entries:    entries,
		Total:      total,
		CapturedAt: time.Now(),
	}
}

// Entries returns a snapshot copy of the current entries in order.
func (c *Cart) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clear removes every entry.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
}
