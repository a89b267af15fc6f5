// Package variant maps shopper attribute selections onto concrete product
// variants. Selections arrive one attribute at a time, so resolution
// prefers an exact match and falls back to the first variant consistent
// with the partial selection.
//
// Data-quality precondition: no two variants of one product should carry an
// identical attribute mapping. If upstream data violates this, resolution
// deterministically picks the first in list order.
package variant

import (
	"sort"

	"github.com/shopspring/decimal"

	"vitrine/internal/domain"
)

// SelectionState tracks how far along a shopper's selection is on a
// product-detail view.
type SelectionState int

const (
	NoSelection SelectionState = iota
	PartialSelection
	FullSelection
)

// FindMatching resolves selected attributes to a variant. An exact match
// (same keys, same values) wins; otherwise the first variant containing
// every selected pair is returned; nil means the selection is incomplete
// or contradicts every variant.
func FindMatching(variants []domain.ProductVariant, selected map[string]string) *domain.ProductVariant {
	if len(variants) == 0 {
		return nil
	}

	for i := range variants {
		if len(variants[i].Attributes) == len(selected) && containsAll(variants[i].Attributes, selected) {
			return &variants[i]
		}
	}

	for i := range variants {
		if containsAll(variants[i].Attributes, selected) {
			return &variants[i]
		}
	}

	return nil
}

func containsAll(attrs, selected map[string]string) bool {
	for k, v := range selected {
		if attrs[k] != v {
			return false
		}
	}
	return true
}

// ByID returns the variant with the given id, or nil.
func ByID(variants []domain.ProductVariant, id string) *domain.ProductVariant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}

// AttributeNames lists the attribute dimensions across all variants:
// variants in list order, keys within one variant sorted, duplicates
// dropped. Sorting inside a variant keeps the order deterministic since Go
// maps are unordered.
func AttributeNames(variants []domain.ProductVariant) []string {
	seen := make(map[string]bool)
	var names []string
	for _, v := range variants {
		keys := make([]string, 0, len(v.Attributes))
		for k := range v.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	return names
}

// AvailableValues returns the distinct values the attribute takes across
// all variants, in list order.
func AvailableValues(variants []domain.ProductVariant, name string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, v := range variants {
		val, ok := v.Attributes[name]
		if !ok || val == "" || seen[val] {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}
	return values
}

// IsSelectable reports whether any in-stock variant carries the value for
// the attribute, regardless of the rest of the shopper's selection. It is
// looser than the exact-match stock check used for add-to-cart.
func IsSelectable(variants []domain.ProductVariant, name, value string) bool {
	for _, v := range variants {
		if v.Attributes[name] == value && v.Quantity > 0 {
			return true
		}
	}
	return false
}

// SelectionAvailable reports whether picking value for the attribute, on
// top of the current selection, still resolves to an in-stock variant.
func SelectionAvailable(variants []domain.ProductVariant, selected map[string]string, name, value string) bool {
	merged := make(map[string]string, len(selected)+1)
	for k, v := range selected {
		merged[k] = v
	}
	merged[name] = value

	m := FindMatching(variants, merged)
	return m != nil && m.Quantity > 0
}

// ChooseDefault picks the variant shown when a product first loads: the
// first with stock, or the first in the list when everything is sold out.
func ChooseDefault(variants []domain.ProductVariant) *domain.ProductVariant {
	if len(variants) == 0 {
		return nil
	}
	for i := range variants {
		if variants[i].Quantity > 0 {
			return &variants[i]
		}
	}
	return &variants[0]
}

// StateOf classifies the selection against the product's attribute
// dimensions.
func StateOf(variants []domain.ProductVariant, selected map[string]string) SelectionState {
	if len(selected) == 0 {
		return NoSelection
	}
	if len(selected) < len(AttributeNames(variants)) {
		return PartialSelection
	}
	return FullSelection
}

// Price is the display price for the current selection: the variant's
// override when present and positive, otherwise the product's base price.
func Price(p *domain.WebsiteProduct, v *domain.ProductVariant) decimal.Decimal {
	if v != nil && v.SellingPrice != nil && v.SellingPrice.IsPositive() {
		return *v.SellingPrice
	}
	return p.SellingPrice
}

// Stock is the available quantity for the current selection, falling back
// to the product's total stock when no variant is resolved.
func Stock(p *domain.WebsiteProduct, v *domain.ProductVariant) int {
	if v != nil {
		return v.Quantity
	}
	return p.TotalStock
}

// Image prefers the variant's image override, then the product gallery,
// then the single legacy image field.
func Image(p *domain.WebsiteProduct, v *domain.ProductVariant) string {
	if v != nil && v.ImageURL != "" {
		return v.ImageURL
	}
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return p.ImageURL
}
