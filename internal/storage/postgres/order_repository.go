package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

const orderColumns = `id, customer_name, address, payment_method, note, items_text, total, status, created_at, updated_at`

// Create пишет заказ и его позиции в одной транзакции.
func (r *orderRepository) Create(ctx context.Context, order domain.Order) (err error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		order.ID, order.CustomerName, order.Address, string(order.PaymentMethod), order.Note,
		order.ItemsText, order.Total, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderAlreadyExists
		}
		return storageErr("insert order", err)
	}

	for i, item := range order.Items {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, name, price)
			VALUES ($1,$2,$3,$4)
		`, order.ID, i, item.Name, item.Price); err != nil {
			return storageErr("insert order item", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return storageErr("commit create order", err)
	}

	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, storageErr("select order", err)
	}

	items, err := r.loadItems(ctx, []string{order.ID})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items[order.ID]

	return order, nil
}

// List строит запрос из заполненных полей фильтра; позиции догружаются одним запросом.
func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if !filter.Since.IsZero() {
		add("created_at > $%d", filter.Since)
	}
	if !filter.From.IsZero() {
		add("created_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("created_at < $%d", filter.To)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	defer rows.Close()

	var (
		result []domain.Order
		ids    []string
	)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, storageErr("scan order", err)
		}
		result = append(result, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate orders", err)
	}
	if len(ids) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}

	return result, nil
}

// MarkDelivered обновляет updated_at только при реальной смене статуса.
func (r *orderRepository) MarkDelivered(ctx context.Context, id string, at time.Time) (domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(opCtx, `
		UPDATE orders
		SET status = $2,
		    updated_at = CASE WHEN status <> $2 THEN $3 ELSE updated_at END
		WHERE id = $1
	`, id, string(domain.OrderStatusDelivered), at)
	if err != nil {
		return domain.Order{}, storageErr("mark order delivered", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Order{}, storageErr("rows affected for delivered", err)
	}
	if affected == 0 {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	return r.Get(ctx, id)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete order", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected for delete", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	// Один параметр-массив: число плейсхолдеров не растёт с размером страницы.
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, name, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, orderIDs)
	if err != nil {
		return nil, storageErr("select order items", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.Name, &item.Price); err != nil {
			return nil, storageErr("scan order item", err)
		}
		result[orderID] = append(result[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate order items", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order   domain.Order
		payment string
		status  string
	)
	if err := row.Scan(
		&order.ID, &order.CustomerName, &order.Address, &payment, &order.Note,
		&order.ItemsText, &order.Total, &status, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.PaymentMethod = domain.PaymentMethod(payment)
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
