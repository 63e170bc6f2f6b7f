package server

import (
	"context"

	"github.com/NextMind-AI/whatsapp-webhook/processor"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app              *fiber.App
	messageProcessor *processor.MessageProcessor
}

func New(messageProcessor *processor.MessageProcessor, appName string) *Server {
	app := fiber.New(fiber.Config{
		AppName: appName,
	})

	server := &Server{
		app:              app,
		messageProcessor: messageProcessor,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// Start blocks serving HTTP on port until the server is shut down.
func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("Starting webhook server")

	return s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down webhook server")
	return s.app.ShutdownWithContext(ctx)
}
