package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"thai-kitchen/config"
	"thai-kitchen/models"
	"thai-kitchen/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmptyOrder is the only caller-attributable failure: the item list was
// missing or empty. Everything else that goes wrong during submission is a
// persistence failure and stays generic toward the caller.
var ErrEmptyOrder = errors.New("order must include items")

// Store is the slice of the pgx pool the order service needs. *pgxpool.Pool
// satisfies it, and so does a pgxmock pool in tests.
type Store interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Store = (*pgxpool.Pool)(nil)

// OrderService owns the order-creation transaction: one order header plus
// its items are written as a single atomic unit, and the header's total is
// updated to the item sum before commit.
type OrderService struct {
	db             Store
	defaults       config.OrderDefaults
	newOrderNumber func() string
}

func NewOrderService(db Store, defaults config.OrderDefaults) *OrderService {
	return &OrderService{
		db:             db,
		defaults:       defaults,
		newOrderNumber: utils.NewOrderNumber,
	}
}

// Create validates and persists one order. The transaction spans the header
// insert, every item insert in input order, and the total update; any error
// on any step rolls the whole thing back via the deferred Rollback, so no
// partial order is ever visible. Item existence, price sanity, and quantity
// bounds are deliberately not checked here.
func (s *OrderService) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderReceipt, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderNumber := s.newOrderNumber()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.defaults.SessionPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	tableID := req.TableID
	if tableID == 0 {
		tableID = s.defaults.TableID
	}
	queueNumber := req.QueueNumber
	if queueNumber == "" {
		queueNumber = s.defaults.QueueNumber
	}

	// Header goes in with a zero total; item prices are only finalized
	// while the items are inserted, so the real total is written last.
	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, session_id, table_id, total_amount, queue_number, special_instructions)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		orderNumber, sessionID, tableID, 0, queueNumber, req.SpecialInstructions,
	).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("insert order header: %w", err)
	}

	orderTotal := 0.0
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = models.DefaultQuantity
		}
		proteinChoice := item.ProteinChoice
		if proteinChoice == "" {
			proteinChoice = models.DefaultProteinChoice
		}

		// Client-supplied total wins over the computed one.
		totalPrice := item.UnitPrice * float64(quantity)
		if item.TotalPrice != nil {
			totalPrice = *item.TotalPrice
		}
		orderTotal += totalPrice

		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, customer_id, menu_item_id, quantity, unit_price, total_price, spicy_level, protein_choice, special_notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			orderID, item.CustomerID, item.MenuItemID, quantity, item.UnitPrice, totalPrice,
			item.SpicyLevel, proteinChoice, item.SpecialNotes)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `UPDATE orders SET total_amount = $1 WHERE id = $2`, orderTotal, orderID)
	if err != nil {
		return nil, fmt.Errorf("update order total: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	return &models.OrderReceipt{OrderID: orderID, OrderNumber: orderNumber}, nil
}
