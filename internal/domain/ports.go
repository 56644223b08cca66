package domain

// Catalog описывает доступ к фиксированному каталогу товаров.
// Каталог конструируется один раз и в течение работы не мутирует.
type Catalog interface {
	// List возвращает все товары в порядке их идентификаторов.
	List() []Product
	// FindByID возвращает товар или ErrProductNotFound.
	FindByID(id int) (Product, error)
}

// InventoryService описывает учёт остатков в рамках текущей сессии.
type InventoryService interface {
	// Reserve списывает qty единиц товара под корзину.
	Reserve(productID, qty int) error
	// Release возвращает qty единиц обратно (компенсация).
	Release(productID, qty int) error
}

// OrderJournal пишет одну строку на каждый оформленный заказ.
// Запись — best-effort: ошибка журнала не должна отменять оплату.
type OrderJournal interface {
	Record(order Order) error
}

// OrderRepository хранит заказы, завершённые за текущую сессию.
type OrderRepository interface {
	Add(order Order) error
	Get(id int) (Order, error)
	List() []Order
}
