package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vehicle-leasing/pkg/utils"

	"go.uber.org/zap"
)

// BrevoNotifier delivers transactional email through the Brevo REST API.
type BrevoNotifier struct {
	config utils.EmailConfig
	client *http.Client
	log    *zap.Logger
}

func NewBrevoNotifier(config utils.EmailConfig, log *zap.Logger) *BrevoNotifier {
	return &BrevoNotifier{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("notifier", "brevo")),
	}
}

type brevoParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	TextContent string       `json:"textContent"`
}

func (n *BrevoNotifier) SendWelcome(ctx context.Context, email, name string) error {
	if n.config.APIKey == "" {
		return fmt.Errorf("brevo API key not configured")
	}

	payload := brevoSendRequest{
		Sender: brevoParty{
			Email: n.config.SenderEmail,
			Name:  n.config.SenderName,
		},
		To:      []brevoParty{{Email: email, Name: name}},
		Subject: "Welcome to the marketplace!",
		HTMLContent: fmt.Sprintf(
			`<html><body><h1>Welcome, %s!</h1>`+
				`<p>We're thrilled to have you on board. Browse available cars or list your own.</p>`+
				`<p><a href="%s/dashboard">Explore the dashboard</a></p>`+
				`<p>Happy leasing!</p></body></html>`,
			name, n.config.AppURL),
		TextContent: fmt.Sprintf(
			"Welcome, %s!\nBrowse available cars or list your own: %s/dashboard\nHappy leasing!",
			name, n.config.AppURL),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal welcome email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.APIBaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build welcome email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", n.config.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send welcome email: unexpected status %d", resp.StatusCode)
	}

	n.log.Info("Welcome email sent", zap.String("email", email))
	return nil
}
