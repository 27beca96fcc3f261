package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/NextMind-AI/shopbot-go/processor"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	queryMode        = "hub.mode"
	queryVerifyToken = "hub.verify_token"
	queryChallenge   = "hub.challenge"

	modeSubscribe = "subscribe"
)

func (s *Server) verifyWebhookHandler(c fiber.Ctx) error {
	if c.Query(queryMode) != modeSubscribe || c.Query(queryVerifyToken) != s.config.ValidationToken {
		log.Warn().
			Str("mode", c.Query(queryMode)).
			Msg("Failed webhook validation")
		return c.SendStatus(fiber.StatusForbidden)
	}

	log.Info().Msg("Webhook validated")
	return c.SendString(c.Query(queryChallenge))
}

func (s *Server) webhookHandler(c fiber.Ctx) error {
	deliveryID := uuid.NewString()
	logger := log.With().Str("delivery_id", deliveryID).Logger()

	var delivery processor.Delivery
	if err := c.Bind().JSON(&delivery); err != nil {
		logger.Error().Err(err).Msg("Error parsing JSON")
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing JSON")
	}

	events := 0
	for _, entry := range delivery.Entry {
		events += len(entry.Messaging)
	}
	logger.Info().
		Str("object", delivery.Object).
		Int("entries", len(delivery.Entry)).
		Int("events", events).
		Msg("Received webhook delivery")

	go s.messageProcessor.HandleDelivery(s.taskContext(logger), delivery)

	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) statusHandler(c fiber.Ctx) error {
	return c.SendString("Status: OK")
}

func (s *Server) productImageHandler(c fiber.Ctx) error {
	productID := c.Params("productId")

	data, err := s.images.GetProductImage(s.ctx, productID)
	if err != nil {
		log.Error().
			Err(err).
			Str("product_id", productID).
			Msg("Error fetching product image")
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "image unavailable"})
	}

	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	return c.Send(data)
}

func (s *Server) finishHandler(c fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" && c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		var request FinishRequest
		if err := c.Bind().JSON(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
		}
		userID = request.UserID
	}
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "user_id is required"})
	}

	// Query values point into the request buffer, which is reused after
	// the handler returns.
	userID = strings.Clone(userID)
	logger := log.With().Str("callback", "finish").Str("user_id", userID).Logger()
	logger.Info().Msg("Payment callback received")

	go s.messageProcessor.Finish(s.taskContext(logger), userID)

	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) notificationHandler(c fiber.Ctx) error {
	var notification processor.ProductNotification
	if err := c.Bind().JSON(&notification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if notification.Product == "" || notification.SenderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "product and senderId are required"})
	}

	logger := log.With().
		Str("callback", "notification").
		Str("product", notification.Product).
		Logger()
	logger.Info().Msg("Product notification received")

	go s.messageProcessor.ProductAvailable(s.taskContext(logger), notification)

	return c.SendStatus(fiber.StatusOK)
}

// taskContext derives the context of work running after the response, with
// logger attached.
func (s *Server) taskContext(logger zerolog.Logger) context.Context {
	return logger.WithContext(s.ctx)
}
