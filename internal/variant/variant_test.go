package variant_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"vitrine/internal/domain"
	"vitrine/internal/variant"
)

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// shirtVariants is the fixture most tests share: one color/size grid with a
// sold-out small red.
func shirtVariants() []domain.ProductVariant {
	return []domain.ProductVariant{
		{ID: "v1", Name: "Red / S", Attributes: map[string]string{"Color": "Red", "Size": "S"}, Quantity: 0},
		{ID: "v2", Name: "Red / M", Attributes: map[string]string{"Color": "Red", "Size": "M"}, Quantity: 4},
		{ID: "v3", Name: "Blue / M", Attributes: map[string]string{"Color": "Blue", "Size": "M"}, Quantity: 2},
		{ID: "v4", Name: "Blue / L", Attributes: map[string]string{"Color": "Blue", "Size": "L"}, Quantity: 7},
	}
}

func TestFindMatchingExactWinsOverPartial(t *testing.T) {
	variants := []domain.ProductVariant{
		{ID: "loose", Attributes: map[string]string{"Color": "Red", "Size": "M"}},
		{ID: "tight", Attributes: map[string]string{"Color": "Red"}},
	}
	got := variant.FindMatching(variants, map[string]string{"Color": "Red"})
	if got == nil || got.ID != "tight" {
		t.Fatalf("exact key-set match must win, got %+v", got)
	}
}

func TestFindMatchingPartial(t *testing.T) {
	got := variant.FindMatching(shirtVariants(), map[string]string{"Color": "Blue"})
	if got == nil || got.ID != "v3" {
		t.Fatalf("partial match picks first consistent variant in list order, got %+v", got)
	}
}

func TestFindMatchingFull(t *testing.T) {
	got := variant.FindMatching(shirtVariants(), map[string]string{"Color": "Red", "Size": "M"})
	if got == nil || got.ID != "v2" {
		t.Fatalf("want v2, got %+v", got)
	}

	// Resolution ignores stock; a sold-out exact match is still the match.
	got = variant.FindMatching(shirtVariants(), map[string]string{"Color": "Red", "Size": "S"})
	if got == nil || got.ID != "v1" || got.Quantity != 0 {
		t.Fatalf("want sold-out v1, got %+v", got)
	}
}

func TestFindMatchingContradiction(t *testing.T) {
	if got := variant.FindMatching(shirtVariants(), map[string]string{"Color": "Green"}); got != nil {
		t.Fatalf("contradictory selection must resolve to nil, got %+v", got)
	}
	if got := variant.FindMatching(shirtVariants(), map[string]string{"Color": "Red", "Size": "L"}); got != nil {
		t.Fatalf("no Red/L variant exists, got %+v", got)
	}
}

func TestFindMatchingNoVariants(t *testing.T) {
	if got := variant.FindMatching(nil, map[string]string{"Color": "Red"}); got != nil {
		t.Fatalf("want nil for variantless product, got %+v", got)
	}
}

func TestFindMatchingEmptySelection(t *testing.T) {
	// An empty selection is trivially contained by every variant; the first
	// one in list order wins.
	got := variant.FindMatching(shirtVariants(), map[string]string{})
	if got == nil || got.ID != "v1" {
		t.Fatalf("want first variant, got %+v", got)
	}
}

func TestByID(t *testing.T) {
	got := variant.ByID(shirtVariants(), "v3")
	if got == nil || got.Name != "Blue / M" {
		t.Fatalf("want Blue / M, got %+v", got)
	}
	if variant.ByID(shirtVariants(), "nope") != nil {
		t.Fatal("unknown id must return nil")
	}
}

func TestAttributeNamesDeterministic(t *testing.T) {
	variants := []domain.ProductVariant{
		{Attributes: map[string]string{"Size": "S", "Color": "Red"}},
		{Attributes: map[string]string{"Material": "Cotton", "Color": "Blue"}},
	}
	want := []string{"Color", "Size", "Material"}
	for i := 0; i < 50; i++ {
		if got := variant.AttributeNames(variants); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: got %v want %v", i, got, want)
		}
	}
}

func TestAvailableValues(t *testing.T) {
	got := variant.AvailableValues(shirtVariants(), "Size")
	if want := []string{"S", "M", "L"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := variant.AvailableValues(shirtVariants(), "Material"); len(got) != 0 {
		t.Fatalf("unknown attribute must yield no values, got %v", got)
	}
}

func TestIsSelectable(t *testing.T) {
	vs := shirtVariants()
	// S only exists as sold-out Red/S.
	if variant.IsSelectable(vs, "Size", "S") {
		t.Fatal("S has no stock anywhere, must not be selectable")
	}
	if !variant.IsSelectable(vs, "Size", "M") {
		t.Fatal("M is in stock, must be selectable")
	}
}

func TestSelectionAvailable(t *testing.T) {
	vs := shirtVariants()
	// Red is selectable in general, but Red on top of Size=S hits the
	// sold-out variant.
	if variant.SelectionAvailable(vs, map[string]string{"Size": "S"}, "Color", "Red") {
		t.Fatal("Red/S is sold out")
	}
	if !variant.SelectionAvailable(vs, map[string]string{"Size": "M"}, "Color", "Red") {
		t.Fatal("Red/M is in stock")
	}
	if variant.SelectionAvailable(vs, map[string]string{"Size": "L"}, "Color", "Red") {
		t.Fatal("Red/L does not exist")
	}
}

func TestChooseDefault(t *testing.T) {
	got := variant.ChooseDefault(shirtVariants())
	if got == nil || got.ID != "v2" {
		t.Fatalf("default is first variant with stock, got %+v", got)
	}

	soldOut := []domain.ProductVariant{
		{ID: "a", Quantity: 0},
		{ID: "b", Quantity: 0},
	}
	got = variant.ChooseDefault(soldOut)
	if got == nil || got.ID != "a" {
		t.Fatalf("all sold out falls back to first, got %+v", got)
	}

	if variant.ChooseDefault(nil) != nil {
		t.Fatal("no variants means no default")
	}
}

func TestStateOf(t *testing.T) {
	vs := shirtVariants()
	if got := variant.StateOf(vs, nil); got != variant.NoSelection {
		t.Fatalf("want NoSelection, got %v", got)
	}
	if got := variant.StateOf(vs, map[string]string{"Color": "Red"}); got != variant.PartialSelection {
		t.Fatalf("want PartialSelection, got %v", got)
	}
	if got := variant.StateOf(vs, map[string]string{"Color": "Red", "Size": "M"}); got != variant.FullSelection {
		t.Fatalf("want FullSelection, got %v", got)
	}
}

func TestPriceFallback(t *testing.T) {
	p := &domain.WebsiteProduct{SellingPrice: decimal.NewFromInt(30)}

	if got := variant.Price(p, nil); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("no variant uses base price, got %s", got)
	}
	v := &domain.ProductVariant{SellingPrice: dec(25)}
	if got := variant.Price(p, v); !got.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("variant override wins, got %s", got)
	}
	zero := &domain.ProductVariant{SellingPrice: dec(0)}
	if got := variant.Price(p, zero); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("non-positive override falls back to base price, got %s", got)
	}
	noPrice := &domain.ProductVariant{}
	if got := variant.Price(p, noPrice); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("nil override falls back to base price, got %s", got)
	}
}

func TestStockFallback(t *testing.T) {
	p := &domain.WebsiteProduct{TotalStock: 12}
	if got := variant.Stock(p, nil); got != 12 {
		t.Fatalf("want product stock 12, got %d", got)
	}
	if got := variant.Stock(p, &domain.ProductVariant{Quantity: 3}); got != 3 {
		t.Fatalf("want variant stock 3, got %d", got)
	}
	// A resolved variant's zero counts, even when the product has stock.
	if got := variant.Stock(p, &domain.ProductVariant{Quantity: 0}); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}

func TestImageFallback(t *testing.T) {
	p := &domain.WebsiteProduct{ImageURLs: []string{"gallery-1.jpg", "gallery-2.jpg"}, ImageURL: "legacy.jpg"}

	if got := variant.Image(p, &domain.ProductVariant{ImageURL: "variant.jpg"}); got != "variant.jpg" {
		t.Fatalf("variant image wins, got %q", got)
	}
	if got := variant.Image(p, &domain.ProductVariant{}); got != "gallery-1.jpg" {
		t.Fatalf("gallery is next, got %q", got)
	}
	bare := &domain.WebsiteProduct{ImageURL: "legacy.jpg"}
	if got := variant.Image(bare, nil); got != "legacy.jpg" {
		t.Fatalf("legacy field is last, got %q", got)
	}
}
