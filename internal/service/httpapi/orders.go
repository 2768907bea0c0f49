package httpapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

type orderPayload struct {
	OrderNumber     OptString `json:"order_number"`
	ClientID        OptInt    `json:"client_id"`
	OrderStatus     OptString `json:"order_status"`
	PaymentMethod   OptString `json:"payment_method"`
	CurrencyCode    OptString `json:"currency_code"`
	DiscountAmount  OptFloat  `json:"discount_amount"`
	ShippingAddress OptString `json:"shipping_address"`
	BillingAddress  OptString `json:"billing_address"`
	Notes           OptString `json:"notes"`
}

func (s *Server) listOrders(c *fiber.Ctx) error {
	orders, err := s.orders.List()
	if err != nil {
		return s.internalError(c, "list orders", err)
	}
	return c.JSON(orders)
}

func (s *Server) getOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	order, err := s.orders.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "get order", err)
	}
	return c.JSON(order)
}

func (s *Server) createOrder(c *fiber.Ctx) error {
	var p orderPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	// Значения по умолчанию применяются до валидации.
	status := domain.OrderStatusPending
	if p.OrderStatus.Value != nil {
		status = domain.OrderStatus(*p.OrderStatus.Value)
	}
	method := domain.PaymentMethodCreditCard
	if p.PaymentMethod.Value != nil {
		method = domain.PaymentMethod(*p.PaymentMethod.Value)
	}
	currency := "EUR"
	if p.CurrencyCode.Value != nil {
		currency = *p.CurrencyCode.Value
	}
	discount := 0.0
	if p.DiscountAmount.Value != nil {
		discount = *p.DiscountAmount.Value
	}

	if p.ClientID.Value == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid client_id")
	}
	if !status.Valid() {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order_status")
	}
	if !method.Valid() {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid payment_method")
	}
	if !domain.IsCurrencyCode(currency) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid currency_code")
	}
	if !domain.IsOptionalBoundedString(p.ShippingAddress.Value, domain.MaxAddressLen) ||
		!domain.IsOptionalBoundedString(p.BillingAddress.Value, domain.MaxAddressLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid address")
	}

	// Номер заказа: присланный непустой токен уважается, иначе
	// генерируется из текущего времени.
	number := ""
	if p.OrderNumber.Value != nil {
		number = strings.TrimSpace(*p.OrderNumber.Value)
	}
	if number == "" {
		number = domain.NewOrderNumber(time.Now())
	}

	created, err := s.orders.Create(domain.Order{
		OrderNumber:     number,
		ClientID:        *p.ClientID.Value,
		Status:          status,
		PaymentMethod:   method,
		CurrencyCode:    strings.ToUpper(strings.TrimSpace(currency)),
		DiscountAmount:  discount,
		ShippingAddress: trimmedOrNil(p.ShippingAddress.Value),
		BillingAddress:  trimmedOrNil(p.BillingAddress.Value),
		Notes:           p.Notes.Value,
	})
	if err != nil {
		if domain.IsConflict(err) {
			return errorJSON(c, fiber.StatusConflict, "Order number already exists")
		}
		return s.internalError(c, "create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p orderPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	if p.OrderStatus.Set && (p.OrderStatus.Value == nil || !domain.OrderStatus(*p.OrderStatus.Value).Valid()) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order_status")
	}
	if p.PaymentMethod.Set && (p.PaymentMethod.Value == nil || !domain.PaymentMethod(*p.PaymentMethod.Value).Valid()) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid payment_method")
	}
	if p.CurrencyCode.Set && (p.CurrencyCode.Value == nil || !domain.IsCurrencyCode(*p.CurrencyCode.Value)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid currency_code")
	}
	if p.ShippingAddress.Set && !domain.IsOptionalBoundedString(p.ShippingAddress.Value, domain.MaxAddressLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid shipping_address")
	}
	if p.BillingAddress.Set && !domain.IsOptionalBoundedString(p.BillingAddress.Value, domain.MaxAddressLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid billing_address")
	}

	existing, err := s.orders.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "load order", err)
	}

	// Read-merge-write; номер заказа и клиент через обновление не меняются.
	merged := existing
	if p.OrderStatus.Set {
		merged.Status = domain.OrderStatus(*p.OrderStatus.Value)
	}
	if p.PaymentMethod.Set {
		merged.PaymentMethod = domain.PaymentMethod(*p.PaymentMethod.Value)
	}
	if p.CurrencyCode.Set {
		merged.CurrencyCode = strings.ToUpper(strings.TrimSpace(*p.CurrencyCode.Value))
	}
	if p.DiscountAmount.Set && p.DiscountAmount.Value != nil {
		merged.DiscountAmount = *p.DiscountAmount.Value
	}
	if p.ShippingAddress.Set {
		merged.ShippingAddress = trimmedOrNil(p.ShippingAddress.Value)
	}
	if p.BillingAddress.Set {
		merged.BillingAddress = trimmedOrNil(p.BillingAddress.Value)
	}
	if p.Notes.Set {
		merged.Notes = p.Notes.Value
	}

	updated, err := s.orders.Update(id, merged)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "update order", err)
	}

	return c.JSON(updated)
}

func (s *Server) deleteOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := s.orders.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "delete order", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
