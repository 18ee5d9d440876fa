package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

func price(v float64) *float64 { return &v }

func newOrderFixture() (*CreateOrderHandler, *fakeProductRepo, *fakeOrderRepo, *fakePublisher) {
	products := newFakeProductRepo(
		&productdomain.Product{ID: 1, Code: "SP000001", Name: "Coffee", Price: price(9.5), CurrentBalance: 10},
		&productdomain.Product{ID: 2, Code: "SP000002", Name: "Tea", Price: price(4.0), CurrentBalance: 3},
		&productdomain.Product{ID: 3, Code: "SP000003", Name: "Unpriced", CurrentBalance: 5},
	)
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo(&domain.Customer{ID: 7, Code: "KH000001", Name: "Alice"})
	publisher := &fakePublisher{}
	tx := &fakeTxRunner{products: products, orders: orders}
	handler := NewCreateOrderHandler(tx, orders, customers, products, publisher)
	return handler, products, orders, publisher
}

func TestCreateOrderDeductsEveryItem(t *testing.T) {
	handler, products, _, publisher := newOrderFixture()

	order, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 9.5*4+4.0*3, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 6, products.balance(1))
	assert.Equal(t, 0, products.balance(2))

	require.Len(t, publisher.created, 1)
	assert.Equal(t, order.Code, publisher.created[0].OrderCode)
}

func TestCreateOrderPrefersContextGate(t *testing.T) {
	products := newFakeProductRepo(
		&productdomain.Product{ID: 1, Code: "SP000001", Name: "Coffee", Price: price(9.5), CurrentBalance: 10},
		&productdomain.Product{ID: 2, Code: "SP000002", Name: "Tea", Price: price(4.0), CurrentBalance: 3},
	)
	gated := &ctxGateRepo{fakeProductRepo: products}
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo(&domain.Customer{ID: 7, Code: "KH000001", Name: "Alice"})
	tx := &fakeTxRunner{products: products, orders: orders}
	handler := NewCreateOrderHandler(tx, orders, customers, gated, nil)

	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, gated.ctxCalls, "each item deduction goes through the context gate")
	assert.Equal(t, 6, products.balance(1))
	assert.Equal(t, 0, products.balance(2))
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	handler, products, orders, _ := newOrderFixture()

	order, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items:      []OrderItemRequest{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.5, order.Items[0].Price)

	// A later price change must not touch the stored line.
	products.products[1].Price = price(99.0)
	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.5, stored.Items[0].Price)
	assert.Equal(t, 19.0, stored.Total)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	handler, products, orders, publisher := newOrderFixture()

	// Second item overdraws: the first item's deduction must not survive.
	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 5},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, productdomain.ErrInsufficientStock))

	assert.Equal(t, 10, products.balance(1))
	assert.Equal(t, 3, products.balance(2))

	count, _ := orders.Count()
	assert.Zero(t, count)
	assert.Empty(t, publisher.created)
}

func TestCreateOrderExactBalanceSucceeds(t *testing.T) {
	handler, products, _, _ := newOrderFixture()

	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items:      []OrderItemRequest{{ProductID: 2, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, products.balance(2))

	// The next unit is one too many.
	_, err = handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items:      []OrderItemRequest{{ProductID: 2, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, productdomain.ErrInsufficientStock))
}

func TestCreateOrderValidation(t *testing.T) {
	handler, products, _, _ := newOrderFixture()

	_, err := handler.Handle(context.Background(), CreateOrderCommand{CustomerID: 99})
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))

	_, err = handler.Handle(context.Background(), CreateOrderCommand{CustomerID: 7})
	assert.True(t, errors.Is(err, domain.ErrNoItems))

	_, err = handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items:      []OrderItemRequest{{ProductID: 1, Quantity: 0}},
	})
	assert.True(t, errors.Is(err, productdomain.ErrInvalidQuantity))

	_, err = handler.Handle(context.Background(), CreateOrderCommand{
		CustomerID: 7,
		Items:      []OrderItemRequest{{ProductID: 3, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrPriceMissing))

	// Nothing above may have touched stock.
	assert.Equal(t, 10, products.balance(1))
	assert.Equal(t, 5, products.balance(3))
}
