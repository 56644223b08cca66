package app

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/cli"
	"github.com/vladislavdragonenkov/checkout/internal/domain"
	checkoutsvc "github.com/vladislavdragonenkov/checkout/internal/service/checkout"
	"github.com/vladislavdragonenkov/checkout/internal/service/inventory"
	"github.com/vladislavdragonenkov/checkout/internal/service/payment"
	"github.com/vladislavdragonenkov/checkout/internal/storage/file"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
	"github.com/vladislavdragonenkov/checkout/internal/version"
)

// Config описывает минимальные настройки запуска кассы.
type Config struct {
	// JournalPath — путь к append-only журналу заказов.
	JournalPath string
	// DefaultStock — стартовый остаток каждого товара на сессию.
	DefaultStock int
}

// DefaultConfig возвращает настройки, совпадающие с поведением оригинала.
func DefaultConfig() Config {
	return Config{
		JournalPath:  "orders.txt",
		DefaultStock: 20,
	}
}

// Run собирает зависимости кассы и крутит интерактивный цикл на stdin/stdout
// до выбора пункта Exit или отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	logger.WithField("version", version.String()).Debug("сборка зависимостей")

	catalog := memory.NewCatalog()
	cart := domain.NewCart()
	inventorySvc := inventory.NewService(catalog, cfg.DefaultStock)
	journal := file.NewOrderJournal(cfg.JournalPath)
	orders := memory.NewOrderRepository()

	processor := payment.NewProcessor(logger.WithField("component", "payment"))
	checkoutSvc := checkoutsvc.NewService(processor, journal, orders, logger.WithField("component", "checkout"))

	loop := cli.New(catalog, cart, inventorySvc, checkoutSvc,
		os.Stdin, os.Stdout, logger.WithField("component", "cli"))

	err := loop.Run(ctx)

	// Итог сессии: сколько заказов дошло до журнала.
	logger.WithField("orders_completed", len(orders.List())).Info("сессия кассы завершена")
	return err
}
