package app_test

import (
	"testing"

	"github.com/vladislavdragonenkov/checkout/internal/app"
)

func TestDefaultConfig(t *testing.T) {
	cfg := app.DefaultConfig()

	if cfg.JournalPath != "orders.txt" {
		t.Fatalf("expected journal path orders.txt, got %q", cfg.JournalPath)
	}
	if cfg.DefaultStock <= 0 {
		t.Fatalf("expected positive default stock, got %d", cfg.DefaultStock)
	}
}
