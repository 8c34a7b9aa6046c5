// Package service implements the transactional email relay. Sends go
// out through an EmailJS-style template API; the submission pipeline
// calls SendAsync and never waits for, or hears about, the result.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"utsav_backend/internals/configs"
)

// Email types accepted by the relay.
const (
	TypeEvent    = "event"
	TypeDelegate = "delegate"
	TypeConcert  = "concert"
	TypeMerch    = "merch"
)

// Per-category coordinator inboxes for event confirmations. Anything
// unmapped falls through to the default desk.
var categoryRecipients = map[string]string{
	"Music":     "music@utsavfest.in",
	"Dance":     "dance@utsavfest.in",
	"Literary":  "literary@utsavfest.in",
	"Fine Arts": "finearts@utsavfest.in",
	"Gaming":    "gaming@utsavfest.in",
}

const DefaultRecipient = "registrations@utsavfest.in"

// RecipientForCategory returns the coordinator inbox for a category,
// falling back to the registrations desk.
func RecipientForCategory(category string) string {
	if addr, ok := categoryRecipients[category]; ok {
		return addr
	}
	return DefaultRecipient
}

type Mailer struct {
	HTTP      *http.Client
	Endpoint  string
	ServiceID string
	UserID    string
	AccessKey string
	Templates map[string]string
}

func NewMailerFromEnv() *Mailer {
	return &Mailer{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		Endpoint:  configs.GetEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
		ServiceID: configs.EmailJSServiceID,
		UserID:    configs.EmailJSUserID,
		AccessKey: configs.EmailJSPrivateKey,
		Templates: map[string]string{
			TypeEvent:    configs.GetEnv("EMAILJS_TEMPLATE_EVENT"),
			TypeDelegate: configs.GetEnv("EMAILJS_TEMPLATE_DELEGATE"),
			TypeConcert:  configs.GetEnv("EMAILJS_TEMPLATE_CONCERT"),
			TypeMerch:    configs.GetEnv("EMAILJS_TEMPLATE_MERCH"),
		},
	}
}

type sendPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send dispatches one template email. For event-type sends the
// coordinator recipient is resolved from the category name in params.
func (m *Mailer) Send(ctx context.Context, emailType string, params map[string]string) error {
	tpl, ok := m.Templates[emailType]
	if !ok {
		return fmt.Errorf("unknown email type %q", emailType)
	}
	if m.ServiceID == "" || m.UserID == "" || tpl == "" {
		return fmt.Errorf("mailer not configured for type %q", emailType)
	}

	if params == nil {
		params = map[string]string{}
	}
	if emailType == TypeEvent {
		params["to_coordinator"] = RecipientForCategory(params["category_name"])
	}

	body, err := json.Marshal(sendPayload{
		ServiceID:      m.ServiceID,
		TemplateID:     tpl,
		UserID:         m.UserID,
		AccessToken:    m.AccessKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("email relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("email relay: upstream %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

// SendAsync fires Send in the background. Best effort, at most once.
// Failures are logged and never reach the submitter.
func (m *Mailer) SendAsync(emailType string, params map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := m.Send(ctx, emailType, params); err != nil {
			log.Printf("[MAIL] %s send failed: %v", emailType, err)
		}
	}()
}
