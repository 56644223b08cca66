package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/service/checkout"
	"github.com/vladislavdragonenkov/checkout/internal/service/payment"
)

// Loop — интерактивный цикл кассы: главное меню, витрина, корзина и
// оформление заказа. Весь пользовательский текст живёт здесь; источник ввода
// и приёмник вывода внедряются, чтобы цикл можно было прогонять в тестах.
type Loop struct {
	catalog   domain.Catalog
	cart      *domain.Cart
	inventory domain.InventoryService
	checkout  *checkout.Service
	scanner   *bufio.Scanner
	out       io.Writer
	logger    *log.Entry
}

// New создаёт цикл кассы поверх указанных ввода и вывода.
// Ввод разбивается по словам, как в исходной консольной версии.
func New(
	catalog domain.Catalog,
	cart *domain.Cart,
	inventory domain.InventoryService,
	checkoutSvc *checkout.Service,
	in io.Reader,
	out io.Writer,
	logger *log.Entry,
) *Loop {
	if logger == nil {
		logger = log.New().WithField("component", "cli")
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Loop{
		catalog:   catalog,
		cart:      cart,
		inventory: inventory,
		checkout:  checkoutSvc,
		scanner:   scanner,
		out:       out,
		logger:    logger,
	}
}

// Run крутит главное меню до выбора пункта Exit, отмены контекста или конца
// ввода. Некорректный ввод пользователя никогда не завершает цикл.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(l.out, "\nMENU:\n1. View Products\n2. View Shopping Cart\n3. Exit\nEnter your choice: ")
		token, ok := l.next()
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			// Нераспознанный выбор — молчаливый no-op, меню печатается заново.
			continue
		}

		switch choice {
		case 1:
			if !l.browse() {
				return nil
			}
		case 2:
			if !l.viewCart() {
				return nil
			}
		case 3:
			l.logger.Debug("выбран выход из меню")
			return nil
		}
	}
}

// browse печатает витрину и крутит подцикл добавления товаров в корзину.
// Возвращает false, если ввод закончился.
func (l *Loop) browse() bool {
	fmt.Fprint(l.out, "\nProducts:\nID\tName\t\tPrice\n")
	for _, p := range l.catalog.List() {
		fmt.Fprintf(l.out, "%d\t%s\t\t%s\n", p.ID, p.Name, p.Price.String())
	}

	for {
		fmt.Fprint(l.out, "Enter the ID of the product to add to cart: ")
		token, ok := l.next()
		if !ok {
			return false
		}
		l.addToCart(token)

		fmt.Fprint(l.out, "Do you want to add another product? (Y/N): ")
		answer, ok := l.next()
		if !ok {
			return false
		}
		if !isYes(answer) {
			return true
		}
	}
}

// addToCart резервирует единицу товара и кладёт её в корзину.
func (l *Loop) addToCart(token string) {
	id, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprint(l.out, "Invalid Product ID!\n")
		return
	}

	p, err := l.catalog.FindByID(id)
	if err != nil {
		fmt.Fprint(l.out, "Invalid Product ID!\n")
		return
	}

	if err := l.inventory.Reserve(p.ID, 1); err != nil {
		fmt.Fprint(l.out, "Product is out of stock!\n")
		l.logger.WithError(err).WithField("product_id", p.ID).Debug("резерв не выполнен")
		return
	}

	l.cart.AddProduct(p)
	fmt.Fprint(l.out, "Product added successfully!\n")
}

// viewCart показывает корзину и при согласии пользователя оформляет заказ.
// Возвращает false, если ввод закончился.
func (l *Loop) viewCart() bool {
	if l.cart.IsEmpty() {
		fmt.Fprint(l.out, "\nCart is empty!\n")
		return true
	}

	fmt.Fprint(l.out, "\nShopping Cart:\nID\tName\t\tPrice\tQty\n")
	for _, line := range l.cart.Lines() {
		fmt.Fprintf(l.out, "%d\t%s\t\t%s\t%d\n",
			line.Product.ID, line.Product.Name, line.Product.Price.String(), line.Qty)
	}

	fmt.Fprint(l.out, "\nDo you want to check out all the products? (Y/N): ")
	answer, ok := l.next()
	if !ok {
		return false
	}
	if !isYes(answer) {
		return true
	}

	fmt.Fprintf(l.out, "Total Amount: %s\n", l.cart.Total().String())
	fmt.Fprint(l.out, "Select Payment Method: 1. Cash 2. Credit/Debit Card 3. GCash\nChoice: ")
	token, ok := l.next()
	if !ok {
		return false
	}

	method, err := paymentFromToken(token)
	if err != nil {
		// Отмена оформления: без оплаты, без журнала, без сдвига номера.
		fmt.Fprint(l.out, "Invalid choice!\n")
		return true
	}

	_, result, err := l.checkout.Checkout(l.cart, method)
	if err != nil {
		l.logger.WithError(err).Warn("оформление не выполнено")
		return true
	}

	fmt.Fprintf(l.out, "%s\n", result)
	fmt.Fprint(l.out, "You have successfully checked out the products!\n")
	return true
}

// paymentFromToken разбирает пункт меню оплаты.
func paymentFromToken(token string) (domain.PaymentMethod, error) {
	choice, err := strconv.Atoi(token)
	if err != nil {
		return nil, domain.ErrUnknownPaymentMethod
	}
	return payment.FromChoice(choice)
}

// next возвращает следующее слово ввода; false — ввод исчерпан.
func (l *Loop) next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	return l.scanner.Text(), true
}

// isYes трактует только Y/y как согласие; любой другой ответ — отказ.
func isYes(answer string) bool {
	return answer == "Y" || answer == "y"
}
