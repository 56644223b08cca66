package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// Варианты способов оплаты. Набор закрыт: на кассе доступны ровно три метода,
// различающиеся только названием в подтверждении и журнале.

// CashMethod — оплата наличными.
type CashMethod struct{}

func (CashMethod) Label() string { return "Cash" }

func (m CashMethod) Pay(amount decimal.Decimal) string { return confirmation(amount, m.Label()) }

// CardMethod — оплата банковской картой.
type CardMethod struct{}

func (CardMethod) Label() string { return "Credit/Debit Card" }

func (m CardMethod) Pay(amount decimal.Decimal) string { return confirmation(amount, m.Label()) }

// WalletMethod — оплата через электронный кошелёк GCash.
type WalletMethod struct{}

func (WalletMethod) Label() string { return "GCash" }

func (m WalletMethod) Pay(amount decimal.Decimal) string { return confirmation(amount, m.Label()) }

// confirmation форматирует текст подтверждения оплаты.
func confirmation(amount decimal.Decimal, label string) string {
	return fmt.Sprintf("Paid %s using %s.", amount.String(), label)
}

// FromChoice возвращает способ оплаты по пункту меню кассы (1..3).
func FromChoice(choice int) (domain.PaymentMethod, error) {
	switch choice {
	case 1:
		return CashMethod{}, nil
	case 2:
		return CardMethod{}, nil
	case 3:
		return WalletMethod{}, nil
	default:
		return nil, domain.ErrUnknownPaymentMethod
	}
}

var (
	_ domain.PaymentMethod = CashMethod{}
	_ domain.PaymentMethod = CardMethod{}
	_ domain.PaymentMethod = WalletMethod{}
)
