package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/rs/zerolog"
)

// BookingNotifier is told about every booking that was actually stored.
type BookingNotifier interface {
	BookingCreated(b *models.Booking)
}

// NopNotifier is used when SMS confirmations are switched off.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(*models.Booking) {}

// SMSNotifier sends booking confirmations through the Textbelt API.
type SMSNotifier struct {
	url    string
	apiKey string
	client *http.Client
	logger zerolog.Logger
}

func NewSMSNotifier(url, apiKey string, logger zerolog.Logger) *SMSNotifier {
	return &SMSNotifier{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With().Str("component", "sms").Logger(),
	}
}

// BookingCreated sends the confirmation in the background so the API
// response never waits on the SMS gateway.
func (s *SMSNotifier) BookingCreated(b *models.Booking) {
	if b.Phone == "" {
		s.logger.Debug().Msg("SMS not sent: booking has no phone number")
		return
	}
	go func() {
		if err := s.Send(context.Background(), b.Phone, confirmationText(b)); err != nil {
			s.logger.Warn().Err(err).Str("phone", b.Phone).Msg("failed to send booking confirmation")
		}
	}()
}

func confirmationText(b *models.Booking) string {
	name := b.PatientName
	if name == "" {
		name = b.Patient
	}
	return fmt.Sprintf("Appointment Confirmed: %s for %s on %s at %s.", b.Treatment, name, b.Date, b.Slot)
}

// Send delivers one SMS and reports gateway rejections as errors.
func (s *SMSNotifier) Send(ctx context.Context, phone, message string) error {
	postBody, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(postBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("textbelt request: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt rejected message: %s", result.Error)
	}
	s.logger.Info().Str("phone", phone).Msg("sent booking confirmation")
	return nil
}
