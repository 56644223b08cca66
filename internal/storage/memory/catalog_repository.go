package memory

import (
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// catalogInMemory — фиксированный каталог витрины; read-only после конструирования.
type catalogInMemory struct {
	products []domain.Product
}

// NewCatalog возвращает каталог с пятью товарами демо-витрины.
func NewCatalog() domain.Catalog {
	return &catalogInMemory{
		products: []domain.Product{
			{ID: 1, Name: "Keyboard", Price: decimal.NewFromInt(899)},
			{ID: 2, Name: "Mouse", Price: decimal.NewFromInt(599)},
			{ID: 3, Name: "Monitor", Price: decimal.NewFromInt(5999)},
			{ID: 4, Name: "USB Cable", Price: decimal.NewFromInt(199)},
			{ID: 5, Name: "Webcam", Price: decimal.NewFromInt(1499)},
		},
	}
}

// List возвращает копию списка товаров в порядке идентификаторов.
func (c *catalogInMemory) List() []domain.Product {
	result := make([]domain.Product, len(c.products))
	copy(result, c.products)
	return result
}

// FindByID возвращает товар или ErrProductNotFound, если его нет.
func (c *catalogInMemory) FindByID(id int) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

var _ domain.Catalog = (*catalogInMemory)(nil)
