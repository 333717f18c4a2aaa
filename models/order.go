package models

import "time"

// Item-level fallbacks applied during order creation.
const (
	DefaultQuantity      = 1
	DefaultProteinChoice = "Original"
)

type Order struct {
	ID                  int         `json:"id"`
	OrderNumber         string      `json:"order_number"`
	SessionID           string      `json:"session_id"`
	TableID             int         `json:"table_id"`
	TotalAmount         float64     `json:"total_amount"`
	QueueNumber         string      `json:"queue_number"`
	SpecialInstructions *string     `json:"special_instructions,omitempty"`
	Status              string      `json:"status"`
	Items               []OrderItem `json:"items,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID            int     `json:"id"`
	OrderID       int     `json:"order_id"`
	MenuItemID    int     `json:"menu_item_id"`
	CustomerID    *int    `json:"customer_id,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	SpicyLevel    int     `json:"spicy_level"`
	ProteinChoice string  `json:"protein_choice"`
	SpecialNotes  *string `json:"special_notes,omitempty"`
}

// ActiveOrder is one row of the active_orders view.
type ActiveOrder struct {
	ID                  int       `json:"id"`
	OrderNumber         string    `json:"order_number"`
	SessionID           string    `json:"session_id"`
	TableID             int       `json:"table_id"`
	TotalAmount         float64   `json:"total_amount"`
	QueueNumber         string    `json:"queue_number"`
	Status              string    `json:"status"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
	ItemCount           int       `json:"item_count"`
	CreatedAt           time.Time `json:"created_at"`
}

type OrderItemRequest struct {
	MenuItemID    int      `json:"menu_item_id"`
	CustomerID    *int     `json:"customer_id,omitempty"`
	Quantity      int      `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
	SpicyLevel    int      `json:"spicy_level"`
	ProteinChoice string   `json:"protein_choice"`
	SpecialNotes  *string  `json:"special_notes,omitempty"`
}

type CreateOrderRequest struct {
	Items               []OrderItemRequest `json:"items"`
	SessionID           string             `json:"session_id"`
	TableID             int                `json:"table_id"`
	QueueNumber         string             `json:"queue_number"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
}

// OrderReceipt is what the caller gets back after a successful submission.
type OrderReceipt struct {
	OrderID     int    `json:"order_id"`
	OrderNumber string `json:"order_number"`
}
