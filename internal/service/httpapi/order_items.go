package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

type orderItemPayload struct {
	ProductID OptInt   `json:"product_id"`
	Quantity  OptInt   `json:"quantity"`
	UnitPrice OptFloat `json:"unit_price"`
}

func (s *Server) listOrderItems(c *fiber.Ctx) error {
	orderID, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order id")
	}

	if err := s.requireOrder(orderID); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "load order", err)
	}

	items, err := s.orders.ListItems(orderID)
	if err != nil {
		return s.internalError(c, "list order items", err)
	}
	return c.JSON(items)
}

func (s *Server) addOrderItem(c *fiber.Ctx) error {
	orderID, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var p orderItemPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	if p.ProductID.Value == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid product_id")
	}
	if p.Quantity.Value == nil || *p.Quantity.Value <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid quantity")
	}
	if p.UnitPrice.Value == nil || *p.UnitPrice.Value < 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid unit_price")
	}

	if err := s.requireOrder(orderID); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "load order", err)
	}

	// unit_price фиксируется по значению из запроса; текущая цена
	// товара не перечитывается.
	created, err := s.orders.AddItem(domain.OrderItem{
		OrderID:   orderID,
		ProductID: *p.ProductID.Value,
		Quantity:  *p.Quantity.Value,
		UnitPrice: *p.UnitPrice.Value,
	})
	if err != nil {
		return s.internalError(c, "add order item", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) removeOrderItem(c *fiber.Ctx) error {
	orderID, okOrder := parseID(c, "id")
	itemID, okItem := parseID(c, "itemId")
	if !okOrder || !okItem {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := s.orders.RemoveItem(orderID, itemID); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "remove order item", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requireOrder проверяет существование родительского заказа.
func (s *Server) requireOrder(orderID int64) error {
	_, err := s.orders.Get(orderID)
	return err
}
