package inventory

import (
	"sync"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// Service — учёт остатков в рамках одной сессии кассы.
// Остатки живут только в памяти процесса; межсессионный склад вне скоупа.
type Service struct {
	mu    sync.Mutex
	stock map[int]int
}

// NewService заполняет остатки по каталогу: defaultStock единиц на товар.
func NewService(catalog domain.Catalog, defaultStock int) *Service {
	stock := make(map[int]int)
	for _, p := range catalog.List() {
		stock[p.ID] = defaultStock
	}
	return &Service{stock: stock}
}

// Reserve списывает qty единиц товара под корзину.
func (s *Service) Reserve(productID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, ok := s.stock[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if remaining < qty {
		return domain.ErrOutOfStock
	}
	s.stock[productID] = remaining - qty
	return nil
}

// Release возвращает qty единиц обратно на остаток (компенсация).
func (s *Service) Release(productID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stock[productID]; !ok {
		return domain.ErrProductNotFound
	}
	s.stock[productID] += qty
	return nil
}

// Remaining возвращает текущий остаток товара (для диагностики и тестов).
func (s *Service) Remaining(productID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, ok := s.stock[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return remaining, nil
}

var _ domain.InventoryService = (*Service)(nil)
