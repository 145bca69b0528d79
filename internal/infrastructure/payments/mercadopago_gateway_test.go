package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		if err != nil || g == nil {
			t.Fatalf("expected mock gateway, got %v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	g.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10.5,"external_reference":"inv-1"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if resp["external_reference"] != "inv-1" || resp["transaction_amount"] != 10.5 {
		t.Fatalf("request fields not echoed: %v", resp)
	}
	if resp["date_approved"] != "2024-01-01T12:00:00Z" {
		t.Fatalf("unexpected date_approved %v", resp["date_approved"])
	}
}

func TestMercadoPagoGateway_MockPaymentIDsAreUnique(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"id":"client-supplied"}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate payment id %q on call %d", id, i)
		}
		seen[id] = true

		var resp map[string]any
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if resp["id"] != id {
			t.Fatalf("response id %v does not match %q", resp["id"], id)
		}
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
