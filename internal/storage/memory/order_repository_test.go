package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

func newOrder(id int) domain.Order {
	return domain.Order{
		ID:     id,
		Method: "Cash",
		Amount: decimal.NewFromInt(899),
		PaidAt: time.Now().UTC(),
	}
}

func TestOrderRepository_AddGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(domain.FirstOrderID)

	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID || stored.Method != order.Method {
		t.Fatalf("expected %+v, got %+v", order, stored)
	}
}

func TestOrderRepository_AddConflict(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder(domain.FirstOrderID)

	if err := repo.Add(order); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(order); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := memory.NewOrderRepository()

	_, err := repo.Get(domain.FirstOrderID)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListSortedByID(t *testing.T) {
	repo := memory.NewOrderRepository()
	for _, id := range []int{1003, 1001, 1002} {
		if err := repo.Add(newOrder(id)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	orders := repo.List()
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []int{1001, 1002, 1003} {
		if orders[i].ID != want {
			t.Fatalf("expected id %d at position %d, got %d", want, i, orders[i].ID)
		}
	}
}
