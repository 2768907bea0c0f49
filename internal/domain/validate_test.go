package domain_test

import (
	"math"
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

func TestIsNonEmptyString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want bool
	}{
		{"plain", "Widget", 100, true},
		{"empty", "", 100, false},
		{"whitespace only", "   ", 100, false},
		{"trimmed to limit", strings.Repeat("a", 100), 100, true},
		{"over limit", strings.Repeat("a", 101), 100, false},
		{"padded", "  Ana  ", 100, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.IsNonEmptyString(tc.in, tc.max); got != tc.want {
				t.Fatalf("IsNonEmptyString(%q, %d) = %v, want %v", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ana@x.com", true},
		{"  ana@x.com  ", true},
		{"a.b@sub.domain.org", true},
		{"no-at-sign", false},
		{"two@@x.com", false},
		{"a@b", false},
		{"@x.com", false},
		{"a@.com", false},
		{"with space@x.com", false},
		{strings.Repeat("a", 150) + "@x.com", false},
	}
	for _, tc := range cases {
		if got := domain.IsEmail(tc.in); got != tc.want {
			t.Fatalf("IsEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want bool
	}{
		{0, true},
		{999999.99, true},
		{-0.01, false},
		{1000000.00, false},
		{19.99, true},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tc := range cases {
		if got := domain.IsPrice(tc.in); got != tc.want {
			t.Fatalf("IsPrice(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsOptionalBoundedString(t *testing.T) {
	long := strings.Repeat("x", 256)
	ok := "555-1234"
	if !domain.IsOptionalBoundedString(nil, 30) {
		t.Fatal("nil must be accepted")
	}
	if !domain.IsOptionalBoundedString(&ok, 30) {
		t.Fatalf("%q must be accepted", ok)
	}
	if domain.IsOptionalBoundedString(&long, 255) {
		t.Fatal("over-limit string must be rejected")
	}
}

func TestIsPositiveIntOrNull(t *testing.T) {
	one := int64(1)
	zero := int64(0)
	neg := int64(-5)
	if !domain.IsPositiveIntOrNull(nil) {
		t.Fatal("nil must be accepted")
	}
	if !domain.IsPositiveIntOrNull(&one) {
		t.Fatal("1 must be accepted")
	}
	if domain.IsPositiveIntOrNull(&zero) {
		t.Fatal("0 must be rejected")
	}
	if domain.IsPositiveIntOrNull(&neg) {
		t.Fatal("-5 must be rejected")
	}
}

func TestIsNonNegativeInt(t *testing.T) {
	if !domain.IsNonNegativeInt(0) || !domain.IsNonNegativeInt(5) {
		t.Fatal("0 and 5 must be accepted")
	}
	if domain.IsNonNegativeInt(-1) {
		t.Fatal("-1 must be rejected")
	}
}

func TestIsCurrencyCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"EUR", true},
		{"usd", true},
		{" GBP ", true},
		{"EURO", false},
		{"E1R", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := domain.IsCurrencyCode(tc.in); got != tc.want {
			t.Fatalf("IsCurrencyCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
