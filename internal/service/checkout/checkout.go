package checkout

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/service/payment"
)

// Service оформляет заказ: считает сумму, проводит оплату, пишет журнал и
// историю сессии. Владеет последовательностью номеров заказов.
type Service struct {
	processor *payment.Processor
	journal   domain.OrderJournal
	orders    domain.OrderRepository
	logger    *log.Entry
	nextID    int
}

// NewService создаёт сервис оформления; нумерация заказов начинается с 1001.
func NewService(
	processor *payment.Processor,
	journal domain.OrderJournal,
	orders domain.OrderRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Service{
		processor: processor,
		journal:   journal,
		orders:    orders,
		logger:    logger,
		nextID:    domain.FirstOrderID,
	}
}

// NextOrderID возвращает номер, который получит следующий заказ.
func (s *Service) NextOrderID() int {
	return s.nextID
}

// Checkout проводит оплату корзины выбранным методом и возвращает заказ вместе
// с текстом подтверждения. Последовательность номеров сдвигается только при
// успехе; корзина после успешного оформления очищается.
//
// Запись журнала — best-effort: её сбой логируется, но уже проведённую оплату
// не отменяет (журнал и оплата — независимые шаги, компенсаций между ними нет).
func (s *Service) Checkout(cart *domain.Cart, method domain.PaymentMethod) (domain.Order, string, error) {
	if cart.IsEmpty() {
		return domain.Order{}, "", domain.ErrCartEmpty
	}

	total := cart.Total()
	result := s.processor.Process(method, total)

	order := domain.Order{
		ID:     s.nextID,
		Method: method.Label(),
		Amount: total,
		PaidAt: time.Now().UTC(),
	}
	if errs := order.Validate(); len(errs) != 0 {
		s.logger.WithField("order_id", order.ID).Warnf("order invariants violated: %v", errs)
	}

	if err := s.journal.Record(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("журнал заказов недоступен, оплата не отменяется")
	}
	if err := s.orders.Add(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("не удалось сохранить заказ в историю сессии")
	}

	s.nextID++
	cart.Clear()

	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"method":   order.Method,
		"amount":   order.Amount.String(),
	}).Info("заказ оформлен")

	return order, result, nil
}
