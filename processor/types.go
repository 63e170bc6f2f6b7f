package processor

import (
	"fmt"
	"strings"
)

const textMessageType = "text"

// InboundDelivery is the part of a WhatsApp webhook delivery needed to answer a message.
type InboundDelivery struct {
	PhoneNumberID string
	MessageID     string
	From          string
	MessageType   string
	TextBody      string

	// HasMessage is false for deliveries without a message object, such as status updates.
	HasMessage bool
}

// IsText reports whether the delivery carries a text message.
func (d InboundDelivery) IsText() bool {
	return d.HasMessage && d.MessageType == textMessageType
}

// Validate checks that every field needed to answer the message is present.
func (d InboundDelivery) Validate() error {
	var missing []string

	if d.PhoneNumberID == "" {
		missing = append(missing, "phone_number_id")
	}
	if d.TextBody == "" {
		missing = append(missing, "text.body")
	}
	if d.From == "" {
		missing = append(missing, "from")
	}
	if d.MessageID == "" {
		missing = append(missing, "id")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}

	return nil
}

// VerificationRequest holds the hub.* query parameters of a subscription handshake.
type VerificationRequest struct {
	Mode      string
	Token     string
	Challenge string
}
