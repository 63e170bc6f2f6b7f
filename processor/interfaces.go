//go:generate go tool mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks
package processor

import (
	"context"

	"github.com/NextMind-AI/whatsapp-webhook/whatsapp"
)

// CompletionProvider generates the reply text for a user message. Implementations
// handle their own failures and always return a non-empty reply.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, userMessage string) string
}

// MessageRelay delivers replies and read receipts back to the messaging platform.
type MessageRelay interface {
	SendReplyMessage(ctx context.Context, phoneNumberID, to, text, messageID string) (*whatsapp.MessageResponse, error)
	MarkMessageAsRead(ctx context.Context, phoneNumberID, messageID string) error
}
