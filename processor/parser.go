package processor

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseDelivery extracts an InboundDelivery from a WhatsApp Cloud API webhook body.
//
// The expected shape is entry[0].changes[0].value, holding messages[0] and metadata.
// Missing keys are read as empty defaults, so a delivery with no message (for example
// a status update) parses successfully with HasMessage false. Keys that are present
// with the wrong JSON type, or arrays with no first element, make the whole payload
// malformed.
func ParseDelivery(body []byte) (InboundDelivery, error) {
	if !gjson.ValidBytes(body) {
		return InboundDelivery{}, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return InboundDelivery{}, fmt.Errorf("%w: body is not an object", ErrMalformedPayload)
	}

	entry, err := firstElement(root, "entry")
	if err != nil {
		return InboundDelivery{}, err
	}

	change, err := firstElement(entry, "changes")
	if err != nil {
		return InboundDelivery{}, err
	}

	value, err := object(change, "value")
	if err != nil {
		return InboundDelivery{}, err
	}

	message, err := firstElement(value, "messages")
	if err != nil {
		return InboundDelivery{}, err
	}

	metadata, err := object(value, "metadata")
	if err != nil {
		return InboundDelivery{}, err
	}

	text, err := object(message, "text")
	if err != nil {
		return InboundDelivery{}, err
	}

	var delivery InboundDelivery
	fields := []struct {
		parent gjson.Result
		key    string
		dst    *string
	}{
		{metadata, "phone_number_id", &delivery.PhoneNumberID},
		{message, "id", &delivery.MessageID},
		{message, "from", &delivery.From},
		{message, "type", &delivery.MessageType},
		{text, "body", &delivery.TextBody},
	}
	for _, f := range fields {
		if *f.dst, err = str(f.parent, f.key); err != nil {
			return InboundDelivery{}, err
		}
	}

	delivery.HasMessage = hasKeys(message)

	return delivery, nil
}

// firstElement descends into parent[key][0]. An absent key yields an empty default.
func firstElement(parent gjson.Result, key string) (gjson.Result, error) {
	field := parent.Get(key)
	if !field.Exists() {
		return gjson.Result{}, nil
	}

	if !field.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: %s is not an array", ErrMalformedPayload, key)
	}

	elements := field.Array()
	if len(elements) == 0 {
		return gjson.Result{}, fmt.Errorf("%w: %s is empty", ErrMalformedPayload, key)
	}

	if !elements[0].IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: %s[0] is not an object", ErrMalformedPayload, key)
	}

	return elements[0], nil
}

// object descends into parent[key]. An absent key yields an empty default.
func object(parent gjson.Result, key string) (gjson.Result, error) {
	field := parent.Get(key)
	if !field.Exists() {
		return gjson.Result{}, nil
	}

	if !field.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: %s is not an object", ErrMalformedPayload, key)
	}

	return field, nil
}

// str reads parent[key] as a string. Absent and null both read as "".
func str(parent gjson.Result, key string) (string, error) {
	field := parent.Get(key)

	switch field.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return field.Str, nil
	default:
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedPayload, key)
	}
}

func hasKeys(obj gjson.Result) bool {
	found := false
	obj.ForEach(func(_, _ gjson.Result) bool {
		found = true
		return false
	})
	return found
}
