package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

func newDeleteFixture(status domain.OrderStatus) (*DeleteOrderHandler, *fakeProductRepo, *fakeOrderRepo) {
	products := newFakeProductRepo(
		&productdomain.Product{ID: 1, Code: "SP000001", Name: "Coffee", Price: price(9.5), CurrentBalance: 10},
	)
	orders := newFakeOrderRepo()
	orders.orders[1] = domain.Order{
		ID:     1,
		Code:   "DH000001",
		Status: status,
		Items:  []domain.OrderItem{{OrderID: 1, ProductID: 1, Quantity: 3, Price: 9.5, Subtotal: 28.5}},
	}
	orders.nextID = 2
	tx := &fakeTxRunner{products: products, orders: orders}
	return NewDeleteOrderHandler(tx, orders, products), products, orders
}

func TestDeleteDeductedOrderRestocks(t *testing.T) {
	handler, products, orders := newDeleteFixture(domain.StatusPending)

	require.NoError(t, handler.Handle(DeleteOrderCommand{ID: 1}))

	assert.Equal(t, 13, products.balance(1))
	_, err := orders.FindByID(1)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestDeleteRestockedOrderLeavesStock(t *testing.T) {
	handler, products, orders := newDeleteFixture(domain.StatusCancelled)

	require.NoError(t, handler.Handle(DeleteOrderCommand{ID: 1}))

	assert.Equal(t, 10, products.balance(1))
	_, err := orders.FindByID(1)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestDeleteOrderUnknownStatusRefused(t *testing.T) {
	handler, products, orders := newDeleteFixture("archived")

	err := handler.Handle(DeleteOrderCommand{ID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownStatus))

	assert.Equal(t, 10, products.balance(1))
	_, err = orders.FindByID(1)
	assert.NoError(t, err)
}

func TestDeleteMissingOrder(t *testing.T) {
	handler, _, _ := newDeleteFixture(domain.StatusPending)
	err := handler.Handle(DeleteOrderCommand{ID: 42})
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func TestDeleteCustomerRefusedWhileOrdersExist(t *testing.T) {
	customers := newFakeCustomerRepo(&domain.Customer{ID: 7, Code: "KH000001", Name: "Alice"})
	orders := newFakeOrderRepo()
	orders.orders[1] = domain.Order{ID: 1, Code: "DH000001", CustomerID: 7, Status: domain.StatusPending}
	handler := NewDeleteCustomerHandler(customers, orders)

	err := handler.Handle(DeleteCustomerCommand{ID: 7})
	assert.True(t, errors.Is(err, domain.ErrCustomerInUse))

	delete(orders.orders, 1)
	require.NoError(t, handler.Handle(DeleteCustomerCommand{ID: 7}))
}
