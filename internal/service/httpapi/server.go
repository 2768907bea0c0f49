package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
	"github.com/vladislavdragonenkov/commerce-api/internal/metrics"
)

// Server связывает HTTP-маршруты с репозиториями сущностей.
// Состояние между запросами не разделяется: каждый запрос заново
// читает данные из хранилища.
type Server struct {
	clients  domain.ClientRepository
	products domain.ProductRepository
	orders   domain.OrderRepository
	metrics  *metrics.HTTPMetrics
	logger   *log.Entry
}

// NewServer конструирует сервер с зависимостями.
func NewServer(
	clients domain.ClientRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	httpMetrics *metrics.HTTPMetrics,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Server{
		clients:  clients,
		products: products,
		orders:   orders,
		metrics:  httpMetrics,
		logger:   logger,
	}
}

// App собирает fiber-приложение с middleware и таблицей маршрутов.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "commerce-api",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	app.Use(cors.New())
	app.Use(s.requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/clients", s.listClients)
	app.Get("/clients/:id", s.getClient)
	app.Post("/clients", s.createClient)
	app.Put("/clients/:id", s.updateClient)
	app.Delete("/clients/:id", s.deleteClient)

	app.Get("/products", s.listProducts)
	app.Get("/products/:id", s.getProduct)
	app.Post("/products", s.createProduct)
	app.Put("/products/:id", s.updateProduct)
	app.Delete("/products/:id", s.deleteProduct)

	app.Get("/orders", s.listOrders)
	app.Get("/orders/:id", s.getOrder)
	app.Post("/orders", s.createOrder)
	app.Put("/orders/:id", s.updateOrder)
	app.Delete("/orders/:id", s.deleteOrder)

	app.Get("/orders/:id/products", s.listOrderItems)
	app.Post("/orders/:id/products", s.addOrderItem)
	app.Delete("/orders/:id/products/:itemId", s.removeOrderItem)

	return app
}

// errorHandler приводит ошибки fiber (404 по маршруту, 405 и т.п.)
// к единому JSON-виду {"error": ...}.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", c.Path()).Error("unhandled http error")
		return errorJSON(c, code, "Internal server error")
	}
	return errorJSON(c, code, err.Error())
}

// errorJSON отправляет тело ошибки в формате {"error": <сообщение>}.
func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// parseID разбирает целочисленный ключ из сегмента пути.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// internalError логирует исходную ошибку хранилища и возвращает
// непрозрачный ответ 500: деталь сбоя наружу не утекает.
func (s *Server) internalError(c *fiber.Ctx, op string, err error) error {
	s.logger.WithError(err).WithFields(log.Fields{
		"op":   op,
		"path": c.Path(),
	}).Error("persistence failure")
	return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
}

// trimmedOrNil нормализует опциональную строку: обрезает пробелы,
// пустой результат сохраняется как NULL.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
