// Package mailer sends contact-form notification emails through an
// external email microservice over HTTP. Delivery is best effort: the
// contact pipeline persists the submission first and treats a failed
// notification as a logged warning, never a request failure.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the email microservice URL used when none is configured.
const DefaultEndpoint = "https://email-microservice-delusion.vercel.app/api/send-email"

// DefaultRecipient receives contact notifications when the contact section
// has no receiver address saved yet.
const DefaultRecipient = "anurag.tiwari@example.com"

// Client talks to the email microservice.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
}

// New creates a mailer client. An empty token disables sending — Send
// becomes a no-op so local development works without email credentials.
func New(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the client has a token and will actually send.
func (c *Client) Enabled() bool {
	return c.token != ""
}

// sendRequest is the JSON payload the microservice expects.
type sendRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Send posts an email to the microservice. Returns nil without sending
// when no token is configured.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	if !c.Enabled() {
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("mailer marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mailer request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailer http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailer API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
