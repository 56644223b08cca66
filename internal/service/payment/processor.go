package payment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// Processor — диспетчер оплат без состояния: просто передаёт сумму выбранному
// методу. Оригинальная версия оформляла его синглтоном, но мутабельного
// состояния между вызовами нет, поэтому достаточно обычного сервиса.
type Processor struct {
	logger *log.Entry
}

// NewProcessor создаёт диспетчер оплат.
func NewProcessor(logger *log.Entry) *Processor {
	if logger == nil {
		logger = log.New().WithField("component", "payment")
	}
	return &Processor{logger: logger}
}

// Process проводит оплату через выбранный метод и возвращает подтверждение.
// Каждый вызов получает собственный транзакционный идентификатор для трассировки.
func (p *Processor) Process(method domain.PaymentMethod, amount decimal.Decimal) string {
	txnID := uuid.NewString()
	result := method.Pay(amount)
	p.logger.WithFields(log.Fields{
		"txn_id": txnID,
		"method": method.Label(),
		"amount": amount.String(),
	}).Debug("платёж обработан")
	return result
}
