package file_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/storage/file"
)

func journalOrder(id int, method string, amount int64) domain.Order {
	return domain.Order{
		ID:     id,
		Method: method,
		Amount: decimal.NewFromInt(amount),
		PaidAt: time.Now().UTC(),
	}
}

func TestOrderJournal_RecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	journal := file.NewOrderJournal(path)

	err := journal.Record(journalOrder(1001, "Credit/Debit Card", 11998))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"[LOG] -> Order ID: 1001 has been successfully checked out and paid using Credit/Debit Card.\n",
		string(content))
}

func TestOrderJournal_AppendsOneLinePerOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	journal := file.NewOrderJournal(path)

	require.NoError(t, journal.Record(journalOrder(1001, "Cash", 899)))
	require.NoError(t, journal.Record(journalOrder(1002, "GCash", 599)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"[LOG] -> Order ID: 1001 has been successfully checked out and paid using Cash.\n"+
			"[LOG] -> Order ID: 1002 has been successfully checked out and paid using GCash.\n",
		string(content))
}

func TestOrderJournal_OpenFailureIsReturned(t *testing.T) {
	// Путь внутри несуществующего каталога: открытие обязано провалиться,
	// а ошибка — дойти до вызывающего, который решает, что с ней делать.
	path := filepath.Join(t.TempDir(), "missing", "orders.txt")
	journal := file.NewOrderJournal(path)

	err := journal.Record(journalOrder(1001, "Cash", 899))
	require.Error(t, err)
}
