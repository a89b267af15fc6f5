// Package cart maintains the per-tenant shopping cart aggregate and keeps
// it durable through a kv.Store. Operations never mutate the cart they are
// given; they return the next state and persist it as a side effect.
// Persistence failures degrade to an empty cart rather than surfacing.
package cart

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"vitrine/internal/kv"
	applog "vitrine/internal/log"
)

// DefaultNamespace is the fixed key prefix carts are stored under.
const DefaultNamespace = "vitrine_cart"

// LineItem is one cart entry. An empty VariantID means the base product
// with no variant selected; it is still part of the line's identity.
type LineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	VariantID   string          `json:"variantId,omitempty"`
	VariantName string          `json:"variantName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	MaxQuantity int             `json:"maxQuantity"`
}

// State is the cart aggregate. Subtotal and ItemCount are always derived
// from Items; they are recomputed on every mutation and on load.
type State struct {
	Items     []LineItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

func Empty() State {
	return State{Items: []LineItem{}, Subtotal: decimal.Zero}
}

// Store binds cart operations to one kv backend and namespace. At most one
// line exists per (productId, variantId) pair within a tenant's cart.
type Store struct {
	kv        kv.Store
	namespace string
}

func NewStore(store kv.Store, namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{kv: store, namespace: namespace}
}

// Key is the storage key for a tenant's cart.
func (s *Store) Key(tenantID string) string {
	return s.namespace + "_" + tenantID
}

// Load returns the persisted cart for the tenant. Absent, unreadable or
// corrupt data all yield an empty cart; Load never fails.
func (s *Store) Load(ctx context.Context, tenantID string) State {
	raw, ok, err := s.kv.Get(ctx, s.Key(tenantID))
	if err != nil {
		applog.Error(nil, "cart.load", err, map[string]any{"tenant": tenantID})
		return Empty()
	}
	if !ok {
		return Empty()
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		applog.Error(nil, "cart.load.decode", err, map[string]any{"tenant": tenantID})
		return Empty()
	}
	// Re-derive totals so tampered or stale stored values cannot drift
	// from the item list.
	return withTotals(st.Items)
}

// AddItem merges the candidate into the cart. An existing line for the same
// (productId, variantId) grows by qty, clamped to that line's MaxQuantity;
// otherwise the candidate is appended with its quantity clamped to
// [0, MaxQuantity]. Excess is dropped silently.
func (s *Store) AddItem(ctx context.Context, tenantID string, cur State, item LineItem, qty int) State {
	if qty < 1 {
		qty = 1
	}

	items := make([]LineItem, len(cur.Items))
	copy(items, cur.Items)

	if i := findLine(items, item.ProductID, item.VariantID); i >= 0 {
		items[i].Quantity = clampQty(items[i].Quantity+qty, items[i].MaxQuantity)
	} else {
		item.Quantity = clampQty(qty, item.MaxQuantity)
		items = append(items, item)
	}

	next := withTotals(items)
	s.save(ctx, tenantID, next)
	return next
}

// UpdateQuantity sets the line's quantity to min(qty, MaxQuantity), or
// removes the line entirely when qty <= 0. A missing line is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, tenantID string, cur State, productID, variantID string, qty int) State {
	items := make([]LineItem, 0, len(cur.Items))
	for _, it := range cur.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			if qty <= 0 {
				continue
			}
			it.Quantity = clampQty(qty, it.MaxQuantity)
		}
		items = append(items, it)
	}

	next := withTotals(items)
	s.save(ctx, tenantID, next)
	return next
}

// RemoveItem drops the matching line. Removing an absent line is a no-op,
// so the operation is idempotent.
func (s *Store) RemoveItem(ctx context.Context, tenantID string, cur State, productID, variantID string) State {
	items := make([]LineItem, 0, len(cur.Items))
	for _, it := range cur.Items {
		if it.ProductID == productID && it.VariantID == variantID {
			continue
		}
		items = append(items, it)
	}

	next := withTotals(items)
	s.save(ctx, tenantID, next)
	return next
}

// Clear deletes all persisted cart data for the tenant; a subsequent Load
// returns the empty cart.
func (s *Store) Clear(ctx context.Context, tenantID string) {
	if err := s.kv.Delete(ctx, s.Key(tenantID)); err != nil {
		applog.Error(nil, "cart.clear", err, map[string]any{"tenant": tenantID})
	}
}

func (s *Store) save(ctx context.Context, tenantID string, st State) {
	raw, err := json.Marshal(st)
	if err != nil {
		applog.Error(nil, "cart.save.encode", err, map[string]any{"tenant": tenantID})
		return
	}
	if err := s.kv.Set(ctx, s.Key(tenantID), raw); err != nil {
		applog.Error(nil, "cart.save", err, map[string]any{"tenant": tenantID})
	}
}

func findLine(items []LineItem, productID, variantID string) int {
	for i, it := range items {
		if it.ProductID == productID && it.VariantID == variantID {
			return i
		}
	}
	return -1
}

func clampQty(n, max int) int {
	if max < 0 {
		max = 0
	}
	if n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	return n
}

// withTotals is the single reducer every mutation goes through: subtotal is
// the sum of unitPrice*quantity, itemCount the sum of quantities.
func withTotals(items []LineItem) State {
	if items == nil {
		items = []LineItem{}
	}
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	return State{Items: items, Subtotal: subtotal, ItemCount: count}
}
