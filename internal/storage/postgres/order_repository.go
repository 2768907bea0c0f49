package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

const orderColumns = `id, order_number, client_id, order_status, payment_method,
	currency_code, discount_amount, shipping_address, billing_address, notes,
	created_at, updated_at`

func (r *orderRepository) List() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Get(id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.get(ctx, id)
}

func (r *orderRepository) Create(order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_number, client_id, order_status, payment_method,
			currency_code, discount_amount, shipping_address, billing_address, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		order.OrderNumber, order.ClientID, string(order.Status), string(order.PaymentMethod),
		order.CurrencyCode, order.DiscountAmount, order.ShippingAddress,
		order.BillingAddress, order.Notes,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			// Уникален order_number; слабая временная схема генерации
			// может столкнуться в пределах одного тика.
			return domain.Order{}, domain.ErrConflict
		}
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	return r.get(ctx, id)
}

func (r *orderRepository) Update(id int64, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET order_status = $1,
		    payment_method = $2,
		    currency_code = $3,
		    discount_amount = $4,
		    shipping_address = $5,
		    billing_address = $6,
		    notes = $7,
		    updated_at = NOW()
		WHERE id = $8
	`,
		string(order.Status), string(order.PaymentMethod), order.CurrencyCode,
		order.DiscountAmount, order.ShippingAddress, order.BillingAddress,
		order.Notes, id,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Order{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Order{}, domain.ErrNotFound
	}

	return r.get(ctx, id)
}

func (r *orderRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *orderRepository) ListItems(orderID int64) ([]domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, created_at
		FROM order_products
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) AddItem(item domain.OrderItem) (domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO order_products (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&id)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("insert order item: %w", err)
	}

	var created domain.OrderItem
	err = r.db.QueryRowContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, created_at
		FROM order_products
		WHERE id = $1
	`, id).Scan(
		&created.ID, &created.OrderID, &created.ProductID,
		&created.Quantity, &created.UnitPrice, &created.CreatedAt,
	)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("select order item: %w", err)
	}

	return created, nil
}

func (r *orderRepository) RemoveItem(orderID, itemID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// Удаление строго в рамках родительского заказа.
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM order_products WHERE order_id = $1 AND id = $2
	`, orderID, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *orderRepository) get(ctx context.Context, id int64) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
		method string
	)
	if err := row.Scan(
		&order.ID, &order.OrderNumber, &order.ClientID, &status, &method,
		&order.CurrencyCode, &order.DiscountAmount, &order.ShippingAddress,
		&order.BillingAddress, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("scan order row: %w", err)
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentMethod = domain.PaymentMethod(method)
	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
