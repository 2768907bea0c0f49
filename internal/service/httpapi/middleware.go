package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// requestLogger назначает запросу идентификатор, пишет access-лог
// и снимает HTTP-метрики.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDHeader, requestID)

		if s.metrics != nil {
			s.metrics.RecordInFlightStarted()
		}

		err := c.Next()

		if s.metrics != nil {
			s.metrics.RecordInFlightFinished()
		}

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		route := c.Route().Path
		duration := time.Since(start)
		if s.metrics != nil {
			s.metrics.RecordRequest(c.Method(), route, strconv.Itoa(status), duration)
		}

		entry := s.logger.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"duration":   duration.String(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}

		return err
	}
}
