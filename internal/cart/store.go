// Package cart owns the shopping cart state: an ordered list of line items
// keyed by product id plus aggregates recomputed after every mutation.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/cyclegear/storefront/internal/logging"
	"github.com/cyclegear/storefront/internal/models"
	"github.com/cyclegear/storefront/internal/notify"
)

// Line is one product-id-keyed entry in the cart.
type Line struct {
	models.Product
	Quantity int `json:"quantity"`
}

// State is a consistent snapshot of the cart. ItemCount and Total are a
// pure function of Items, never set independently of it.
type State struct {
	Items     []Line  `json:"items"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

type Store struct {
	mu        sync.Mutex
	lines     []Line
	itemCount int
	total     float64

	events notify.Events
}

func New(events notify.Events) *Store {
	if events == nil {
		events = notify.Noop{}
	}
	return &Store{events: events}
}

// Add puts one unit of the product in the cart: an existing line is
// incremented by 1, otherwise a new line with quantity 1 goes at the end.
func (s *Store) Add(ctx context.Context, p models.Product) {
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	}
	s.recompute()
	s.mu.Unlock()

	s.publish(ctx, map[string]any{
		"type":      "cart_item_added",
		"productID": p.ID,
	})
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity
// of zero or less removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, id)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if changed {
		s.recompute()
	}
	s.mu.Unlock()

	if changed {
		s.publish(ctx, map[string]any{
			"type":         "cart_quantity_updated",
			"productID":    id,
			"new_quantity": quantity,
		})
	}
}

// Remove deletes the line with the given product id, keeping the order of
// the remaining lines. Unknown ids are a no-op.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	removed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.recompute()
	}
	s.mu.Unlock()

	if removed {
		s.publish(ctx, map[string]any{
			"type":         "cart_item_removed",
			"deleted_item": id,
		})
	}
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.recompute()
	s.mu.Unlock()

	s.publish(ctx, map[string]any{"type": "cart_cleared"})
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Line, len(s.lines))
	copy(items, s.lines)
	return State{Items: items, ItemCount: s.itemCount, Total: s.total}
}

// recompute rebuilds the aggregates from the lines. Callers hold s.mu.
func (s *Store) recompute() {
	count := 0
	total := 0.0
	for _, l := range s.lines {
		count += l.Quantity
		total += l.Price * float64(l.Quantity)
	}
	s.itemCount = count
	s.total = total
}

func (s *Store) publish(ctx context.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.events.PublishEvent(ctx, notify.TopicCartEvents, "cart", event); err != nil {
		logging.FromContext(ctx).Error("cart event publish failed", "error", err)
	}
}
