package whatsapp

const messagingProduct = "whatsapp"

type Config struct {
	AccessToken string
	GraphAPIURL string
	APIVersion  string
}

type Text struct {
	Body string `json:"body"`
}

type Context struct {
	MessageID string `json:"message_id"`
}

// ReplyMessage is a text message threaded onto an earlier inbound message.
type ReplyMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Text             Text     `json:"text"`
	Context          *Context `json:"context,omitempty"`
}

type MarkAsReadPayload struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

type MessageResponse struct {
	MessagingProduct string            `json:"messaging_product"`
	Contacts         []ResponseContact `json:"contacts"`
	Messages         []ResponseMessage `json:"messages"`
}

type ResponseContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type ResponseMessage struct {
	ID string `json:"id"`
}

// MessageID returns the id Graph assigned to the sent message, or "" if none was returned.
func (r *MessageResponse) MessageID() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}
