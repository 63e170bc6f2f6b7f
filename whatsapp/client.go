// Package whatsapp sends messages and read receipts through the WhatsApp Cloud API
// (Graph API) on behalf of a business phone number.
package whatsapp

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrInvalidPhoneNumberID is returned when a phone number id cannot be used as a
// single URL path segment.
var ErrInvalidPhoneNumberID = errors.New("invalid phone number id")

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(accessToken, graphAPIURL, apiVersion string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		config: Config{
			AccessToken: accessToken,
			GraphAPIURL: strings.TrimRight(graphAPIURL, "/"),
			APIVersion:  apiVersion,
		},
		httpClient: httpClient,
	}
}

// messagesURL is the send endpoint for a business phone number; both replies and
// read receipts are posted to it. The id is escaped so it always stays one path segment.
func (c *Client) messagesURL(phoneNumberID string) (string, error) {
	switch phoneNumberID {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumberID, phoneNumberID)
	}

	return fmt.Sprintf("%s/%s/%s/messages", c.config.GraphAPIURL, c.config.APIVersion, url.PathEscape(phoneNumberID)), nil
}
