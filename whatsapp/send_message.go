package whatsapp

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SendReplyMessage sends text to a user as a reply to the message with messageID.
// An empty messageID sends a plain message with no reply context.
func (c *Client) SendReplyMessage(ctx context.Context, phoneNumberID, to, text, messageID string) (*MessageResponse, error) {
	var replyContext *Context
	if messageID != "" {
		replyContext = &Context{MessageID: messageID}
	}

	message := ReplyMessage{
		MessagingProduct: messagingProduct,
		To:               to,
		Text:             Text{Body: text},
		Context:          replyContext,
	}

	log.Debug().
		Str("phone_number_id", phoneNumberID).
		Str("to", to).
		Str("message_id", messageID).
		Msg("Sending WhatsApp reply")

	endpoint, err := c.messagesURL(phoneNumberID)
	if err != nil {
		return nil, err
	}

	var response MessageResponse
	if err := c.sendJSONRequest(ctx, http.MethodPost, endpoint, message, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
