package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hireflow/models"
)

// WebhookNotificationService posts booking payloads to the agency's mailer
// webhook. Used directly when no queue is configured, and by the async
// worker when one is.
type WebhookNotificationService struct {
	URL    string
	Client *http.Client
}

func NewWebhookNotificationService(url string) *WebhookNotificationService {
	return &WebhookNotificationService{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookNotificationService) SendBookingNotification(ctx context.Context, booking *models.InterviewBooking) error {
	return s.SendPayload(ctx, PayloadFor(booking))
}

// SendPayload delivers one notification payload to the webhook.
func (s *WebhookNotificationService) SendPayload(ctx context.Context, payload models.BookingNotifyPayload) error {
	if s.URL == "" {
		return fmt.Errorf("no notification webhook configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("notification webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	return nil
}
