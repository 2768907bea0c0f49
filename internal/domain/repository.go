package domain

// ClientRepository описывает требования к хранилищу клиентов.
type ClientRepository interface {
	// List возвращает всех клиентов в порядке убывания ID.
	List() ([]Client, error)
	// Get возвращает клиента по ID или ErrNotFound.
	Get(id int64) (Client, error)
	// Create вставляет клиента и возвращает свежепрочитанную строку.
	// Возвращает ErrConflict при конфликте уникальности email.
	Create(client Client) (Client, error)
	// Update перезаписывает все колонки строки слитым набором полей.
	// Возвращает ErrNotFound, если строки нет, и ErrConflict при конфликте.
	Update(id int64, client Client) (Client, error)
	// Delete удаляет клиента или возвращает ErrNotFound.
	Delete(id int64) error
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	List() ([]Product, error)
	Get(id int64) (Product, error)
	Create(product Product) (Product, error)
	Update(id int64, product Product) (Product, error)
	Delete(id int64) error
}

// OrderRepository описывает требования к хранилищу заказов и их позиций.
// Операции с позициями доступны только через ключ родительского заказа.
type OrderRepository interface {
	List() ([]Order, error)
	Get(id int64) (Order, error)
	Create(order Order) (Order, error)
	Update(id int64, order Order) (Order, error)
	Delete(id int64) error

	// ListItems возвращает позиции заказа в порядке возрастания ID.
	ListItems(orderID int64) ([]OrderItem, error)
	// AddItem вставляет позицию и возвращает свежепрочитанную строку.
	AddItem(item OrderItem) (OrderItem, error)
	// RemoveItem удаляет позицию строго в рамках её заказа.
	RemoveItem(orderID, itemID int64) error
}
