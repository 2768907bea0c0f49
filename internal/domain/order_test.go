package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2025, time.December, 7, 10, 30, 0, 0, time.UTC)
	got := domain.NewOrderNumber(now)

	pattern := regexp.MustCompile(`^ORD-2025-12-07-\d{6}$`)
	if !pattern.MatchString(got) {
		t.Fatalf("order number %q does not match ORD-YYYY-MM-DD-NNNNNN", got)
	}
}

func TestNewOrderNumberSuffixFromMillis(t *testing.T) {
	// 1765103400123 мс -> суффикс 400123.
	now := time.UnixMilli(1765103400123).UTC()
	got := domain.NewOrderNumber(now)
	if got[len(got)-6:] != "400123" {
		t.Fatalf("suffix %s, want 400123", got[len(got)-6:])
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusPending, domain.OrderStatusPaid, domain.OrderStatusShipped,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled,
	} {
		if !s.Valid() {
			t.Fatalf("status %q must be valid", s)
		}
	}
	if domain.OrderStatus("reserved").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []domain.PaymentMethod{
		domain.PaymentMethodCreditCard, domain.PaymentMethodPayPal,
		domain.PaymentMethodBankTransfer, domain.PaymentMethodCash,
	} {
		if !m.Valid() {
			t.Fatalf("payment method %q must be valid", m)
		}
	}
	if domain.PaymentMethod("bitcoin").Valid() {
		t.Fatal("unknown payment method must be invalid")
	}
}
