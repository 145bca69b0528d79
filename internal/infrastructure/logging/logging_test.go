package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestConfigure(t *testing.T) {
	defer func() {
		_ = Configure("info", "json")
		SetOutput(os.Stdout)
	}()

	if err := Configure("verbose", "json"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if err := Configure("debug", "xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if err := Configure("warn", "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger().GetLevel().String() != "warning" {
		t.Fatalf("expected warning level, got %s", Logger().GetLevel())
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	_ = Configure("info", "json")

	LogError("invoice", "record-payment", "gateway", map[string]string{"invoice_id": "inv-1"}, errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if entry["msg"] != "boom" || entry["module"] != "invoice" || entry["op"] != "record-payment" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}
