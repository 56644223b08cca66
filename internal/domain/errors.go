package domain

import "errors"

var (
	// Ошибка некорректного идентификатора товара (<= 0).
	ErrProductIDInvalid = errors.New("product id must be greater than zero")
	// Ошибка отсутствующего названия товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка номера заказа вне последовательности.
	ErrOrderIDInvalid = errors.New("order id is below the sequence seed")
	// Ошибка отсутствующего названия способа оплаты.
	ErrPaymentMethodRequired = errors.New("payment method label is required")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("order amount must be non-negative")
	// ErrProductNotFound возвращается, если товара нет в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartEmpty возвращается при попытке оформить пустую корзину.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrUnknownPaymentMethod возвращается при выборе способа оплаты вне 1..3.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	// ErrOutOfStock — товар закончился в рамках текущей сессии.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrOrderExists сигнализирует о конфликте номеров в истории заказов.
	ErrOrderExists = errors.New("order already recorded")
	// ErrOrderNotFound возвращается, если заказа нет в истории сессии.
	ErrOrderNotFound = errors.New("order not found")
)

// IsNotFound проверяет, является ли ошибка отсутствием товара в каталоге.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
