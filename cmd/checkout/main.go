package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/app"
)

// setupLogger настраивает формат и уровень диагностических логов кассы.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	// Пользовательский диалог идёт в stdout; диагностику уводим в stderr.
	log.SetOutput(os.Stderr)
}

// readConfig формирует конфигурацию, позволяя переопределить значения
// через переменные окружения (и .env, если он есть рядом).
func readConfig() app.Config {
	_ = godotenv.Load()

	cfg := app.DefaultConfig()
	if v := os.Getenv("CHECKOUT_ORDERS_FILE"); v != "" {
		cfg.JournalPath = v
	}
	if v := os.Getenv("CHECKOUT_DEFAULT_STOCK"); v != "" {
		if stock, err := strconv.Atoi(v); err == nil && stock > 0 {
			cfg.DefaultStock = stock
		} else {
			log.WithField("value", v).Warn("CHECKOUT_DEFAULT_STOCK игнорируется: ожидается положительное число")
		}
	}
	return cfg
}

func main() {
	setupLogger()
	cfg := readConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"journal_path":  cfg.JournalPath,
		"default_stock": cfg.DefaultStock,
	}).Info("запускаем кассу")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("касса завершилась с ошибкой")
	}

	log.Info("касса остановлена")
}
