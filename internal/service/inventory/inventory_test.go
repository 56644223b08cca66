package inventory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/service/inventory"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

func TestInventory_ReserveDecrements(t *testing.T) {
	svc := inventory.NewService(memory.NewCatalog(), 2)

	if err := svc.Reserve(1, 1); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	remaining, err := svc.Remaining(1)
	if err != nil {
		t.Fatalf("remaining failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 remaining, got %d", remaining)
	}
}

func TestInventory_ReserveOutOfStock(t *testing.T) {
	svc := inventory.NewService(memory.NewCatalog(), 1)

	if err := svc.Reserve(1, 1); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := svc.Reserve(1, 1); !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
	// Неудачный резерв не трогает остаток.
	if remaining, _ := svc.Remaining(1); remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", remaining)
	}
}

func TestInventory_UnknownProduct(t *testing.T) {
	svc := inventory.NewService(memory.NewCatalog(), 1)

	if err := svc.Reserve(99, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := svc.Release(99, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInventory_ReleaseRestores(t *testing.T) {
	svc := inventory.NewService(memory.NewCatalog(), 1)

	if err := svc.Reserve(2, 1); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := svc.Release(2, 1); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := svc.Reserve(2, 1); err != nil {
		t.Fatalf("reserve after release failed: %v", err)
	}
}
