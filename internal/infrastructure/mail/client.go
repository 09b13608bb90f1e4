package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.brevo.com/v3"

// Client sends transactional email through the Brevo (Sendinblue) REST API.
type Client struct {
	apiKey      string
	senderName  string
	senderEmail string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new mail client
func NewClient(apiKey, senderName, senderEmail string) *Client {
	return &Client{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendEmailRequest struct {
	Sender      recipient         `json:"sender"`
	To          []recipient       `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	Params      map[string]string `json:"params,omitempty"`
}

// Send delivers a single transactional email. Delivery failures are returned
// to the caller, never swallowed.
func (c *Client) Send(ctx context.Context, toEmail, toName, subject, content string) error {
	body := sendEmailRequest{
		Sender:      recipient{Name: c.senderName, Email: c.senderEmail},
		To:          []recipient{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HTMLContent: "<html><body><h1>{{params.content}}</h1></body></html>",
		Params:      map[string]string{"content": content},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smtp/email", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail send failed: provider returned %d", resp.StatusCode)
	}
	return nil
}
