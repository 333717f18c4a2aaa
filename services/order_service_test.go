package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"thai-kitchen/config"
	"thai-kitchen/models"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	svc  *OrderService
	ctx  context.Context
}

func (s *OrderServiceTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock

	s.svc = NewOrderService(mock, config.OrderDefaults{
		TableID:       1,
		QueueNumber:   "A00",
		SessionPrefix: "S",
	})
	s.svc.newOrderNumber = func() string { return "ORD-0A1B2C3D" }
	s.ctx = context.Background()
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mock.Close()
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) TestCreate_SingleItemComputedTotal() {
	req := &models.CreateOrderRequest{
		SessionID: "sess-77",
		Items: []models.OrderItemRequest{
			{MenuItemID: 5, UnitPrice: 12.50, Quantity: 2},
		},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", "sess-77", 1, 0, "A00", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(42, (*int)(nil), 5, 2, 12.50, 25.00, 0, "Original", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`UPDATE orders SET total_amount`).
		WithArgs(25.00, 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	receipt, err := s.svc.Create(s.ctx, req)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 42, receipt.OrderID)
	assert.Equal(s.T(), "ORD-0A1B2C3D", receipt.OrderNumber)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_EmptyItems() {
	receipt, err := s.svc.Create(s.ctx, &models.CreateOrderRequest{Items: []models.OrderItemRequest{}})
	assert.ErrorIs(s.T(), err, ErrEmptyOrder)
	assert.Nil(s.T(), receipt)

	receipt, err = s.svc.Create(s.ctx, nil)
	assert.ErrorIs(s.T(), err, ErrEmptyOrder)
	assert.Nil(s.T(), receipt)

	// Nothing may reach the store when validation fails.
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_ClientTotalOverrideWins() {
	override := 99.99
	notes := "extra basil"
	customer := 3
	req := &models.CreateOrderRequest{
		SessionID:   "sess-1",
		TableID:     7,
		QueueNumber: "B12",
		Items: []models.OrderItemRequest{
			{MenuItemID: 2, UnitPrice: 5.00, Quantity: 3, TotalPrice: &override, SpicyLevel: 2, ProteinChoice: "Tofu", CustomerID: &customer},
			{MenuItemID: 9, UnitPrice: 8.25, Quantity: 2, SpecialNotes: &notes},
		},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", "sess-1", 7, 0, "B12", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(7, &customer, 2, 3, 5.00, 99.99, 2, "Tofu", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(7, (*int)(nil), 9, 2, 8.25, 16.50, 0, "Original", &notes).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`UPDATE orders SET total_amount`).
		WithArgs(99.99+16.50, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	receipt, err := s.svc.Create(s.ctx, req)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 7, receipt.OrderID)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_DefaultsApplied() {
	special := "no cilantro"
	req := &models.CreateOrderRequest{
		SpecialInstructions: &special,
		Items: []models.OrderItemRequest{
			{MenuItemID: 11, UnitPrice: 9.00},
		},
	}

	s.mock.ExpectBegin()
	// Session id falls back to a timestamp-derived value, table to 1,
	// queue to "A00".
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", pgxmock.AnyArg(), 1, 0, "A00", &special).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
	// Quantity 1, spicy 0, protein "Original" when unspecified.
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(3, (*int)(nil), 11, 1, 9.00, 9.00, 0, "Original", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`UPDATE orders SET total_amount`).
		WithArgs(9.00, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit()

	_, err := s.svc.Create(s.ctx, req)
	require.NoError(s.T(), err)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_ItemInsertFailureRollsBack() {
	req := &models.CreateOrderRequest{
		SessionID: "sess-2",
		Items: []models.OrderItemRequest{
			{MenuItemID: 1, UnitPrice: 4.00, Quantity: 1},
			{MenuItemID: 2, UnitPrice: 6.00, Quantity: 1},
		},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", "sess-2", 1, 0, "A00", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(10, (*int)(nil), 1, 1, 4.00, 4.00, 0, "Original", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(10, (*int)(nil), 2, 1, 6.00, 6.00, 0, "Original", (*string)(nil)).
		WillReturnError(errors.New("foreign key violation"))
	s.mock.ExpectRollback()

	receipt, err := s.svc.Create(s.ctx, req)
	require.Error(s.T(), err)
	assert.Nil(s.T(), receipt)
	assert.Contains(s.T(), err.Error(), "insert order item")
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_HeaderInsertFailureRollsBack() {
	req := &models.CreateOrderRequest{
		SessionID: "sess-3",
		Items:     []models.OrderItemRequest{{MenuItemID: 1, UnitPrice: 4.00}},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", "sess-3", 1, 0, "A00", (*string)(nil)).
		WillReturnError(errors.New("connection reset"))
	s.mock.ExpectRollback()

	_, err := s.svc.Create(s.ctx, req)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "insert order header")
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_BeginFailure() {
	s.mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := s.svc.Create(s.ctx, &models.CreateOrderRequest{
		Items: []models.OrderItemRequest{{MenuItemID: 1, UnitPrice: 1.00}},
	})
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "begin order transaction")
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *OrderServiceTestSuite) TestCreate_CommitFailure() {
	req := &models.CreateOrderRequest{
		SessionID: "sess-4",
		Items:     []models.OrderItemRequest{{MenuItemID: 6, UnitPrice: 3.50, Quantity: 2}},
	}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("ORD-0A1B2C3D", "sess-4", 1, 0, "A00", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
	s.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(5, (*int)(nil), 6, 2, 3.50, 7.00, 0, "Original", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.mock.ExpectExec(`UPDATE orders SET total_amount`).
		WithArgs(7.00, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := s.svc.Create(s.ctx, req)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "commit order")
}

func (s *OrderServiceTestSuite) TestOrderNumbersDistinctAcrossOrders() {
	svc := NewOrderService(s.mock, config.OrderDefaults{TableID: 1, QueueNumber: "A00", SessionPrefix: "S"})

	format := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := svc.newOrderNumber()
		assert.Regexp(s.T(), format, n)
		assert.False(s.T(), seen[n], "order number %q repeated", n)
		seen[n] = true
	}
}
