package server

import (
	"errors"

	"github.com/NextMind-AI/whatsapp-webhook/processor"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const indexPage = `<pre>Nothing to see here.
WhatsApp Webhook is running.
Checkout README.md to start.</pre>
`

func (s *Server) indexHandler(c fiber.Ctx) error {
	c.Type("html")
	return c.Status(fiber.StatusOK).SendString(indexPage)
}

func (s *Server) verifyWebhookHandler(c fiber.Ctx) error {
	challenge, err := s.messageProcessor.Verify(processor.VerificationRequest{
		Mode:      c.Query("hub.mode"),
		Token:     c.Query("hub.verify_token"),
		Challenge: c.Query("hub.challenge"),
	})

	switch {
	case errors.Is(err, processor.ErrVerificationIncomplete):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Missing mode or token"))
	case err != nil:
		return c.Status(fiber.StatusForbidden).JSON(errorResponse("Verification token mismatch"))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// inboundWebhookHandler acknowledges a message delivery once it has been answered.
// Only an unparsable payload or missing message data yields a non-200 status; provider
// failures are absorbed so the platform does not redeliver.
func (s *Server) inboundWebhookHandler(c fiber.Ctx) error {
	body := c.Body()
	logPayload(body)

	delivery, err := processor.ParseDelivery(body)
	if err != nil {
		log.Error().Err(err).Msg("Error parsing webhook payload structure")
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Malformed payload"))
	}

	if err := s.messageProcessor.ProcessDelivery(c.Context(), delivery); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Missing message data"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse())
}

func logPayload(body []byte) {
	payload := string(body)
	if gjson.ValidBytes(body) {
		payload = string(pretty.Pretty(body))
	}

	log.Info().Str("payload", payload).Msg("Incoming webhook message")
}
