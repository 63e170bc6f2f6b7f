package whatsapp

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

func (c *Client) MarkMessageAsRead(ctx context.Context, phoneNumberID, messageID string) error {
	log.Debug().
		Str("phone_number_id", phoneNumberID).
		Str("message_id", messageID).
		Msg("Marking message as read")

	payload := MarkAsReadPayload{
		MessagingProduct: messagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}

	endpoint, err := c.messagesURL(phoneNumberID)
	if err != nil {
		return err
	}

	_, err = c.sendRequest(ctx, http.MethodPost, endpoint, payload)
	return err
}
