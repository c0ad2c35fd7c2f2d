package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/rs/zerolog"
)

func TestSMSNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	n := NewSMSNotifier(srv.URL, "key-1", zerolog.Nop())
	if err := n.Send(context.Background(), "+100", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["phone"] != "+100" || got["message"] != "hello" || got["key"] != "key-1" {
		t.Errorf("unexpected payload %v", got)
	}
}

func TestSMSNotifier_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"Out of quota"}`))
	}))
	defer srv.Close()

	err := NewSMSNotifier(srv.URL, "", zerolog.Nop()).Send(context.Background(), "+100", "hello")
	if err == nil || !strings.Contains(err.Error(), "Out of quota") {
		t.Fatalf("expected gateway error, got %v", err)
	}
}

func TestConfirmationText(t *testing.T) {
	msg := confirmationText(&models.Booking{Treatment: "Teeth Cleaning", Patient: "a@x.com", Date: "May 1, 2022", Slot: "08.00 AM - 08.30 AM"})
	for _, want := range []string{"Teeth Cleaning", "a@x.com", "May 1, 2022", "08.00 AM - 08.30 AM"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}
