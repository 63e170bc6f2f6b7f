package processor

import (
	"context"
	"errors"

	"github.com/NextMind-AI/whatsapp-webhook/whatsapp"
	"github.com/rs/zerolog/log"
)

type MessageProcessor struct {
	completionProvider CompletionProvider
	messageRelay       MessageRelay
	verifyToken        string
}

func NewMessageProcessor(completionProvider CompletionProvider, messageRelay MessageRelay, verifyToken string) *MessageProcessor {
	return &MessageProcessor{
		completionProvider: completionProvider,
		messageRelay:       messageRelay,
		verifyToken:        verifyToken,
	}
}

// ProcessDelivery answers a parsed webhook delivery: it asks the completion provider
// for a reply, sends it, then marks the inbound message as read.
//
// Deliveries without a text message are ignored. The only error returned is
// ErrMissingRequiredField, before any outbound call is made; relay failures are
// logged and never returned.
func (mp *MessageProcessor) ProcessDelivery(ctx context.Context, delivery InboundDelivery) error {
	if !delivery.IsText() {
		log.Info().
			Bool("has_message", delivery.HasMessage).
			Str("message_type", delivery.MessageType).
			Msg("Ignoring delivery without a text message")
		return nil
	}

	if err := delivery.Validate(); err != nil {
		log.Error().
			Err(err).
			Str("message_id", delivery.MessageID).
			Msg("Missing essential message data")
		return err
	}

	log.Info().
		Str("message_id", delivery.MessageID).
		Str("from", delivery.From).
		Str("text", delivery.TextBody).
		Msg("Processing user message")

	reply := mp.completionProvider.GetCompletion(ctx, delivery.TextBody)

	log.Info().
		Str("message_id", delivery.MessageID).
		Str("reply", reply).
		Msg("Received AI reply")

	mp.sendReply(ctx, delivery, reply)
	mp.markAsRead(ctx, delivery)

	return nil
}

func (mp *MessageProcessor) sendReply(ctx context.Context, delivery InboundDelivery, reply string) {
	response, err := mp.messageRelay.SendReplyMessage(
		ctx,
		delivery.PhoneNumberID,
		delivery.From,
		reply,
		delivery.MessageID,
	)
	if err != nil {
		logRelayError(err, delivery, "Error sending reply message")
		return
	}

	log.Info().
		Str("message_id", delivery.MessageID).
		Str("reply_id", response.MessageID()).
		Str("to", delivery.From).
		Msg("Reply sent successfully")
}

func (mp *MessageProcessor) markAsRead(ctx context.Context, delivery InboundDelivery) {
	if err := mp.messageRelay.MarkMessageAsRead(ctx, delivery.PhoneNumberID, delivery.MessageID); err != nil {
		logRelayError(err, delivery, "Error marking message as read")
		return
	}

	log.Info().
		Str("message_id", delivery.MessageID).
		Msg("Message marked as read")
}

func logRelayError(err error, delivery InboundDelivery, msg string) {
	event := log.Error().
		Err(err).
		Str("message_id", delivery.MessageID).
		Str("phone_number_id", delivery.PhoneNumberID)

	var apiErr *whatsapp.APIError
	if errors.As(err, &apiErr) {
		event = event.
			Int("status_code", apiErr.StatusCode).
			Str("response_body", apiErr.Body)
	}

	event.Msg(msg)
}
