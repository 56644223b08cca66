package domain

import "github.com/shopspring/decimal"

// PaymentMethod описывает способ оплаты, выбираемый на кассе.
// Набор реализаций фиксирован: наличные, карта и электронный кошелёк.
type PaymentMethod interface {
	// Label возвращает название метода для подтверждения и журнала заказов.
	Label() string
	// Pay проводит оплату указанной суммы и возвращает текст подтверждения.
	// Реальные деньги не двигаются: все методы — заглушки.
	Pay(amount decimal.Decimal) string
}
