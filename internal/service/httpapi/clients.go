package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

// clientPayload покрывает и создание, и частичное обновление клиента:
// опциональные типы отличают непереданное поле от null и значения.
type clientPayload struct {
	Name    OptString `json:"name"`
	Email   OptString `json:"email"`
	Phone   OptString `json:"phone"`
	Address OptString `json:"address"`
}

func (s *Server) listClients(c *fiber.Ctx) error {
	clients, err := s.clients.List()
	if err != nil {
		return s.internalError(c, "list clients", err)
	}
	return c.JSON(clients)
}

func (s *Server) getClient(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	client, err := s.clients.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "get client", err)
	}
	return c.JSON(client)
}

func (s *Server) createClient(c *fiber.Ctx) error {
	var p clientPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	// Валидация fail-fast: отказ на первом невалидном поле.
	if p.Name.Value == nil || !domain.IsNonEmptyString(*p.Name.Value, domain.MaxClientNameLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid name")
	}
	if p.Email.Value == nil || !domain.IsEmail(*p.Email.Value) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid email")
	}
	if !domain.IsOptionalBoundedString(p.Phone.Value, domain.MaxPhoneLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid phone")
	}
	if !domain.IsOptionalBoundedString(p.Address.Value, domain.MaxAddressLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid address")
	}

	created, err := s.clients.Create(domain.Client{
		Name:    strings.TrimSpace(*p.Name.Value),
		Email:   strings.TrimSpace(*p.Email.Value),
		Phone:   trimmedOrNil(p.Phone.Value),
		Address: trimmedOrNil(p.Address.Value),
	})
	if err != nil {
		if domain.IsConflict(err) {
			return errorJSON(c, fiber.StatusConflict, "Email already exists")
		}
		return s.internalError(c, "create client", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateClient(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p clientPayload
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid body")
	}

	// Валидируются только присланные поля.
	if p.Name.Set && (p.Name.Value == nil || !domain.IsNonEmptyString(*p.Name.Value, domain.MaxClientNameLen)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid name")
	}
	if p.Email.Set && (p.Email.Value == nil || !domain.IsEmail(*p.Email.Value)) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid email")
	}
	if p.Phone.Set && !domain.IsOptionalBoundedString(p.Phone.Value, domain.MaxPhoneLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid phone")
	}
	if p.Address.Set && !domain.IsOptionalBoundedString(p.Address.Value, domain.MaxAddressLen) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid address")
	}

	existing, err := s.clients.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "load client", err)
	}

	// Read-merge-write: присланные поля перекрывают текущие, остальные
	// сохраняются. Слияние не изолировано от конкурентной записи —
	// это осознанно унаследованное ограничение.
	merged := existing
	if p.Name.Set {
		merged.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.Email.Set {
		merged.Email = strings.TrimSpace(*p.Email.Value)
	}
	if p.Phone.Set {
		merged.Phone = trimmedOrNil(p.Phone.Value)
	}
	if p.Address.Set {
		merged.Address = trimmedOrNil(p.Address.Value)
	}

	updated, err := s.clients.Update(id, merged)
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		case domain.IsConflict(err):
			return errorJSON(c, fiber.StatusConflict, "Email already exists")
		}
		return s.internalError(c, "update client", err)
	}

	return c.JSON(updated)
}

func (s *Server) deleteClient(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := s.clients.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Not found")
		}
		return s.internalError(c, "delete client", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
