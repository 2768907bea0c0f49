package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository
// вместе с позициями заказов.
type orderRepositoryInMemory struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	orders     map[int64]domain.Order
	items      map[int64]domain.OrderItem
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		orders: make(map[int64]domain.Order),
		items:  make(map[int64]domain.OrderItem),
	}
}

// List возвращает все заказы в порядке убывания ID.
func (r *orderRepositoryInMemory) List() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// Get возвращает заказ или ErrNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return order, nil
}

// Create назначает ID и сохраняет заказ, проверяя уникальность номера.
func (r *orderRepositoryInMemory) Create(order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.OrderNumber == order.OrderNumber {
			return domain.Order{}, domain.ErrConflict
		}
	}

	now := time.Now().UTC()
	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.ID] = order
	return order, nil
}

// Update перезаписывает изменяемые поля заказа слитым набором значений.
func (r *orderRepositoryInMemory) Update(id int64, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}

	order.ID = id
	order.OrderNumber = current.OrderNumber
	order.ClientID = current.ClientID
	order.CreatedAt = current.CreatedAt
	order.UpdatedAt = time.Now().UTC()
	r.orders[id] = order
	return order, nil
}

// Delete удаляет заказ вместе с его позициями (в PostgreSQL это делает
// каскад на уровне схемы).
func (r *orderRepositoryInMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	for itemID, item := range r.items {
		if item.OrderID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

// ListItems возвращает позиции заказа в порядке возрастания ID.
func (r *orderRepositoryInMemory) ListItems(orderID int64) ([]domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.OrderItem, 0)
	for _, item := range r.items {
		if item.OrderID == orderID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// AddItem назначает ID и сохраняет позицию заказа.
func (r *orderRepositoryInMemory) AddItem(item domain.OrderItem) (domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextItemID++
	item.ID = r.nextItemID
	item.CreatedAt = time.Now().UTC()
	r.items[item.ID] = item
	return item, nil
}

// RemoveItem удаляет позицию строго в рамках её заказа.
func (r *orderRepositoryInMemory) RemoveItem(orderID, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.OrderID != orderID {
		return domain.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
