package catalog

import (
	"sort"
	"strings"

	"vitrine/internal/domain"
)

type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
)

func ParseSort(s string) SortOption {
	switch SortOption(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return SortOption(s)
	default:
		return SortDefault
	}
}

// Filter narrows the product list by category and a free-text query over
// name, description and category name.
func Filter(products []domain.WebsiteProduct, categoryID, query string) []domain.WebsiteProduct {
	out := make([]domain.WebsiteProduct, 0, len(products))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, p := range products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p domain.WebsiteProduct, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.CategoryName), q)
}

// Sort orders a copy of the product list. The default ordering is by name;
// newest compares RFC 3339 createdAt stamps, which order lexicographically.
func Sort(products []domain.WebsiteProduct, opt SortOption) []domain.WebsiteProduct {
	out := make([]domain.WebsiteProduct, len(products))
	copy(out, products)

	switch opt {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SellingPrice.LessThan(out[j].SellingPrice)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].SellingPrice.LessThan(out[i].SellingPrice)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// Featured returns the products flagged for the storefront hero section.
func Featured(products []domain.WebsiteProduct) []domain.WebsiteProduct {
	var out []domain.WebsiteProduct
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}
