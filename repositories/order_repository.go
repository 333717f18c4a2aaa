package repositories

import (
	"context"
	"fmt"

	"thai-kitchen/models"
)

type OrderRepository struct {
	db Store
}

func NewOrderRepository(db Store) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListActive reads the active_orders view: every order not yet served or
// cancelled, with its item count, oldest first.
func (r *OrderRepository) ListActive(ctx context.Context) ([]models.ActiveOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_number, session_id, table_id, total_amount, queue_number, status, special_instructions, item_count, created_at
		 FROM active_orders`)
	if err != nil {
		return nil, fmt.Errorf("query active orders: %w", err)
	}
	defer rows.Close()

	orders := []models.ActiveOrder{}
	for rows.Next() {
		var order models.ActiveOrder
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.SessionID, &order.TableID, &order.TotalAmount,
			&order.QueueNumber, &order.Status, &order.SpecialInstructions, &order.ItemCount, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan active order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read active order rows: %w", err)
	}

	return orders, nil
}
