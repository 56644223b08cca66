package file

import (
	"fmt"
	"os"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// journalLineFormat — формат строки журнала; по одной строке на заказ.
const journalLineFormat = "[LOG] -> Order ID: %d has been successfully checked out and paid using %s.\n"

// orderJournalFile пишет журнал заказов в append-only текстовый файл.
// Файл открывается и закрывается на каждую запись: записей мало, зато строка
// гарантированно видна после завершения процесса.
type orderJournalFile struct {
	path string
}

// NewOrderJournal возвращает журнал, пишущий в файл по указанному пути.
// Файл создаётся при первой записи, если его ещё нет.
func NewOrderJournal(path string) domain.OrderJournal {
	return &orderJournalFile{path: path}
}

// Record дописывает строку о заказе в конец файла.
func (j *orderJournalFile) Record(order domain.Order) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal %s: %w", j.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, journalLineFormat, order.ID, order.Method); err != nil {
		return fmt.Errorf("append journal %s: %w", j.path, err)
	}
	return nil
}

var _ domain.OrderJournal = (*orderJournalFile)(nil)
