package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

type productPayload struct {
	Name        OptString `json:"name"`
	Description OptString `json:"description"`
	Price       OptFloat  `json:"price"`
	Stock       OptInt    `json:"stock"`
	ProviderID  OptInt    `json:"provider_id"`
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	products, err := s.products.List()
	if err != nil {
		return s.internalError(c, "list products", err)
	}
	return c.JSON(products)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	product, err := s.products.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "get product", err)
	}
	return c.JSON(product)
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var p productPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	if p.Name.Value == nil || !domain.IsNonEmptyString(*p.Name.Value, domain.MaxProductNameLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid name")
	}
	if p.Price.Value == nil || !domain.IsPrice(*p.Price.Value) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid price")
	}
	if p.Stock.Value == nil || !domain.IsNonNegativeInt(*p.Stock.Value) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid stock")
	}
	if !domain.IsPositiveIntOrNull(p.ProviderID.Value) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid provider_id")
	}

	created, err := s.products.Create(domain.Product{
		Name:        strings.TrimSpace(*p.Name.Value),
		Description: p.Description.Value,
		Price:       *p.Price.Value,
		Stock:       *p.Stock.Value,
		ProviderID:  p.ProviderID.Value,
	})
	if err != nil {
		return s.internalError(c, "create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p productPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	if p.Name.Set && (p.Name.Value == nil || !domain.IsNonEmptyString(*p.Name.Value, domain.MaxProductNameLen)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid name")
	}
	if p.Price.Set && (p.Price.Value == nil || !domain.IsPrice(*p.Price.Value)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid price")
	}
	if p.Stock.Set && (p.Stock.Value == nil || !domain.IsNonNegativeInt(*p.Stock.Value)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid stock")
	}
	if p.ProviderID.Set && !domain.IsPositiveIntOrNull(p.ProviderID.Value) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid provider_id")
	}

	existing, err := s.products.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "load product", err)
	}

	merged := existing
	if p.Name.Set {
		merged.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.Description.Set {
		merged.Description = p.Description.Value
	}
	if p.Price.Set {
		merged.Price = *p.Price.Value
	}
	if p.Stock.Set {
		merged.Stock = *p.Stock.Value
	}
	if p.ProviderID.Set {
		merged.ProviderID = p.ProviderID.Value
	}

	updated, err := s.products.Update(id, merged)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "update product", err)
	}

	return c.JSON(updated)
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := s.products.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "delete product", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
