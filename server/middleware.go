package server

import (
	"github.com/NextMind-AI/shopbot-go/signature"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"
)

const (
	headerSignature       = "X-Hub-Signature"
	headerSignatureSHA256 = "X-Hub-Signature-256"
)

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(logger.New())
}

// verifySignature rejects webhook deliveries whose body was not signed with
// the app secret before next runs. The check uses the raw body, before
// anything parses it.
func (s *Server) verifySignature(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(headerSignatureSHA256)
		if header == "" {
			header = c.Get(headerSignature)
		}

		if err := signature.Verify(c.Body(), header, s.config.AppSecret); err != nil {
			log.Warn().
				Err(err).
				Str("ip", c.IP()).
				Msg("Rejecting webhook delivery")
			return c.SendStatus(fiber.StatusForbidden)
		}

		return next(c)
	}
}
