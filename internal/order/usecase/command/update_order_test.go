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

func newUpdateFixture(status domain.OrderStatus, balance int) (*UpdateOrderHandler, *fakeProductRepo, *fakeOrderRepo, *fakePublisher) {
	products := newFakeProductRepo(
		&productdomain.Product{ID: 1, Code: "SP000001", Name: "Coffee", Price: price(9.5), CurrentBalance: balance},
	)
	orders := newFakeOrderRepo()
	orders.orders[1] = domain.Order{
		ID:         1,
		Code:       "DH000001",
		CustomerID: 7,
		Status:     status,
		Total:      19.0,
		Items:      []domain.OrderItem{{OrderID: 1, ProductID: 1, Quantity: 2, Price: 9.5, Subtotal: 19.0}},
	}
	orders.nextID = 2
	publisher := &fakePublisher{}
	tx := &fakeTxRunner{products: products, orders: orders}
	return NewUpdateOrderHandler(tx, orders, products, publisher), products, orders, publisher
}

func statusOf(s domain.OrderStatus) *domain.OrderStatus { return &s }

func TestUpdateOrderWithinPartitionLeavesStock(t *testing.T) {
	handler, products, _, publisher := newUpdateFixture(domain.StatusPending, 10)

	order, err := handler.Handle(context.Background(), UpdateOrderCommand{
		ID:     1,
		Status: statusOf(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.Equal(t, 10, products.balance(1))

	require.Len(t, publisher.statusChanges, 1)
	assert.Equal(t, "pending", publisher.statusChanges[0].OldStatus)
	assert.Equal(t, "completed", publisher.statusChanges[0].NewStatus)
}

func TestUpdateOrderLeavingDeductedPartitionRestocks(t *testing.T) {
	handler, products, _, _ := newUpdateFixture(domain.StatusShipping, 10)

	order, err := handler.Handle(context.Background(), UpdateOrderCommand{
		ID:     1,
		Status: statusOf(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)
	assert.Equal(t, 12, products.balance(1))
}

func TestUpdateOrderEnteringDeductedPartitionRededucts(t *testing.T) {
	handler, products, _, _ := newUpdateFixture(domain.StatusCancelled, 10)

	order, err := handler.Handle(context.Background(), UpdateOrderCommand{
		ID:     1,
		Status: statusOf(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	assert.Equal(t, 8, products.balance(1))
}

func TestUpdateOrderRedeductFailureAbortsStatusChange(t *testing.T) {
	// Reactivating needs 2 units but only 1 remains.
	handler, products, orders, publisher := newUpdateFixture(domain.StatusCancelled, 1)

	_, err := handler.Handle(context.Background(), UpdateOrderCommand{
		ID:     1,
		Status: statusOf(domain.StatusPending),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, productdomain.ErrInsufficientStock))

	stored, err := orders.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, 1, products.balance(1))
	assert.Empty(t, publisher.statusChanges)
}

func TestUpdateOrderRoundTripRestoresBalance(t *testing.T) {
	handler, products, _, _ := newUpdateFixture(domain.StatusPending, 10)

	_, err := handler.Handle(context.Background(), UpdateOrderCommand{ID: 1, Status: statusOf(domain.StatusCancelled)})
	require.NoError(t, err)
	_, err = handler.Handle(context.Background(), UpdateOrderCommand{ID: 1, Status: statusOf(domain.StatusPending)})
	require.NoError(t, err)

	assert.Equal(t, 10, products.balance(1))
}

func TestUpdateOrderUnknownStatusFailsClosed(t *testing.T) {
	handler, products, _, _ := newUpdateFixture(domain.StatusPending, 10)

	_, err := handler.Handle(context.Background(), UpdateOrderCommand{
		ID:     1,
		Status: statusOf("archived"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownStatus))
	assert.Equal(t, 10, products.balance(1))
}

func TestUpdateOrderNotesOnly(t *testing.T) {
	handler, products, orders, publisher := newUpdateFixture(domain.StatusPending, 10)

	notes := "leave at the door"
	order, err := handler.Handle(context.Background(), UpdateOrderCommand{ID: 1, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, order.Notes)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 10, products.balance(1))
	assert.Empty(t, publisher.statusChanges)

	stored, _ := orders.FindByID(1)
	assert.Equal(t, notes, stored.Notes)
}
