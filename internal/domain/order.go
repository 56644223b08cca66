package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FirstOrderID — начальное значение последовательности номеров заказов.
const FirstOrderID = 1001

// Order описывает завершённый заказ текущей сессии.
// Объект эфемерен: между запусками сохраняется только строка журнала.
type Order struct {
	ID     int
	Method string
	Amount decimal.Decimal
	PaidAt time.Time
}

// Validate проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) Validate() []error {
	var errs []error

	if o.ID < FirstOrderID {
		errs = append(errs, ErrOrderIDInvalid)
	}
	if o.Method == "" {
		errs = append(errs, ErrPaymentMethodRequired)
	}
	if o.Amount.IsNegative() {
		errs = append(errs, ErrAmountNegative)
	}

	return errs
}
