package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога.
// После конструирования товар неизменяем; идентичность определяется по ID.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

// Validate проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) Validate() []error {
	var errs []error

	if p.ID <= 0 {
		errs = append(errs, ErrProductIDInvalid)
	}
	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price.IsNegative() {
		errs = append(errs, ErrProductPriceNegative)
	}

	return errs
}
