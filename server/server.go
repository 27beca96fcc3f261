package server

import (
	"context"

	"github.com/NextMind-AI/shopbot-go/processor"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// Processor runs conversation work after a request was acknowledged.
type Processor interface {
	HandleDelivery(ctx context.Context, delivery processor.Delivery)
	Finish(ctx context.Context, userID string)
	ProductAvailable(ctx context.Context, notification processor.ProductNotification)
}

// ImageSource returns the raw image bytes of a catalog product.
type ImageSource interface {
	GetProductImage(ctx context.Context, productID string) ([]byte, error)
}

type Config struct {
	AppSecret       string
	ValidationToken string
}

type Server struct {
	app              *fiber.App
	config           Config
	messageProcessor Processor
	images           ImageSource

	// ctx is the parent of the work started after a response; it outlives
	// every request.
	ctx    context.Context
	cancel context.CancelFunc
}

func New(config Config, messageProcessor Processor, images ImageSource) *Server {
	app := fiber.New()
	ctx, cancel := context.WithCancel(context.Background())

	server := &Server{
		app:              app,
		config:           config,
		messageProcessor: messageProcessor,
		images:           images,
		ctx:              ctx,
		cancel:           cancel,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("Starting shopbot server")

	return s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

// Shutdown stops accepting requests and cancels background work.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.cancel()
	return s.app.ShutdownWithContext(ctx)
}
