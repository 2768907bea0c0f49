package domain

import (
	"fmt"
	"time"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, оплата ещё не выполнена.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid — оплата подтверждена.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusCompleted — заказ завершён.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid проверяет членство в допустимом наборе статусов.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod описывает способ оплаты заказа.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

// Valid проверяет членство в допустимом наборе способов оплаты.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal,
		PaymentMethodBankTransfer, PaymentMethodCash:
		return true
	}
	return false
}

// Order агрегирует состояние заказа.
type Order struct {
	ID int64 `json:"id"`
	// OrderNumber — уникальный токен заказа; генерируется, если не задан клиентом.
	OrderNumber string `json:"order_number"`
	// ClientID ссылается на клиента; ссылочную целостность обеспечивает хранилище.
	ClientID int64 `json:"client_id"`
	// Status — один из статусов жизненного цикла, по умолчанию pending.
	Status OrderStatus `json:"order_status"`
	// PaymentMethod по умолчанию credit_card.
	PaymentMethod PaymentMethod `json:"payment_method"`
	// CurrencyCode — трёхбуквенный код валюты, по умолчанию EUR.
	CurrencyCode string `json:"currency_code"`
	// DiscountAmount — скидка на заказ, по умолчанию 0.
	DiscountAmount  float64   `json:"discount_amount"`
	ShippingAddress *string   `json:"shipping_address"`
	BillingAddress  *string   `json:"billing_address"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	ID int64 `json:"id"`
	// OrderID привязывает позицию ровно к одному заказу.
	OrderID int64 `json:"order_id"`
	// ProductID — ссылка на товар; существование процессом не проверяется.
	ProductID int64 `json:"product_id"`
	// Quantity — строго положительное количество единиц.
	Quantity int64 `json:"quantity"`
	// UnitPrice фиксируется в момент добавления и не пересчитывается
	// из текущей цены товара.
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrderNumber строит номер заказа вида ORD-YYYY-MM-DD-NNNNNN,
// где суффикс — последние шесть цифр unix-времени в миллисекундах.
// Гарантия уникальности слабая: два заказа в один миллисекундный тик
// получат одинаковый суффикс.
func NewOrderNumber(now time.Time) string {
	suffix := now.UnixMilli() % 1000000
	return fmt.Sprintf("ORD-%04d-%02d-%02d-%06d",
		now.Year(), int(now.Month()), now.Day(), suffix)
}
