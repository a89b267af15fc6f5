package validate_test

import (
	"strings"
	"testing"

	"vitrine/internal/validate"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"acme", true},
		{"acme-store-2", true},
		{"a", true},
		{"  acme  ", true},
		{"", false},
		{"Acme", false},
		{"-leading", false},
		{"has space", false},
		{"semi;colon", false},
		{strings.Repeat("a", 64), false},
	}
	for _, tc := range cases {
		if _, ok := validate.Slug(tc.in); ok != tc.ok {
			t.Errorf("Slug(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestID(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"p1", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"var_42", true},
		{"", false},
		{"../etc/passwd", false},
		{strings.Repeat("x", 65), false},
	}
	for _, tc := range cases {
		if _, ok := validate.ID(tc.in); ok != tc.ok {
			t.Errorf("ID(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"amira@example.com", true},
		{"a.b+tag@sub.domain.tn", true},
		{"", false},
		{"not-an-email", false},
		{"@missing.local", false},
		{strings.Repeat("x", 75) + "@toolong.com", false},
	}
	for _, tc := range cases {
		if _, ok := validate.Email(tc.in); ok != tc.ok {
			t.Errorf("Email(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestPhoneOptional(t *testing.T) {
	if _, ok := validate.Phone(""); !ok {
		t.Fatal("empty phone must pass")
	}
	if _, ok := validate.Phone("+216 22 123 456"); !ok {
		t.Fatal("international format must pass")
	}
	if _, ok := validate.Phone("call me"); ok {
		t.Fatal("garbage must fail")
	}
}

func TestQty(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"1", 1},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
		{"500", 99},
	}
	for _, tc := range cases {
		if got := validate.Qty(tc.in); got != tc.want {
			t.Errorf("Qty(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestUpdateQty(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"0", 0},
		{"-5", 0},
		{"abc", 0},
		{"500", 99},
	}
	for _, tc := range cases {
		if got := validate.UpdateQty(tc.in); got != tc.want {
			t.Errorf("UpdateQty(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPostal(t *testing.T) {
	if _, ok := validate.Postal(""); !ok {
		t.Fatal("empty postal must pass")
	}
	if _, ok := validate.Postal("1002"); !ok {
		t.Fatal("4-digit postal must pass")
	}
	if _, ok := validate.Postal("12"); ok {
		t.Fatal("too-short postal must fail")
	}
	if _, ok := validate.Postal("AB-1002"); ok {
		t.Fatal("letters must fail")
	}
}

func TestNotesTruncates(t *testing.T) {
	long := strings.Repeat("n", 600)
	if got := validate.Notes(long); len(got) != 500 {
		t.Fatalf("want 500 chars, got %d", len(got))
	}
	if got := validate.Notes("  keep me  "); got != "keep me" {
		t.Fatalf("got %q", got)
	}
}
