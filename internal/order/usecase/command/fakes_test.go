package command

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/kafka"
)

// fakeTxRunner snapshots the in-memory stores before the callback and
// restores them when it fails, mirroring a database rollback.
type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func (r *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	var balances map[uint]int
	var orders map[uint]domain.Order
	if r.products != nil {
		balances = r.products.snapshotBalances()
	}
	if r.orders != nil {
		orders = r.orders.snapshot()
	}

	if err := fc(nil); err != nil {
		if r.products != nil {
			r.products.restoreBalances(balances)
		}
		if r.orders != nil {
			r.orders.restore(orders)
		}
		return err
	}
	return nil
}

type fakeProductRepo struct {
	products map[uint]*productdomain.Product
}

func newFakeProductRepo(products ...*productdomain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uint]*productdomain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*productdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) FindByCode(code string) (*productdomain.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, productdomain.ErrProductNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]productdomain.Product, error) {
	var out []productdomain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) AdjustBalance(tx *gorm.DB, productID uint, quantity int, direction productdomain.StockDirection) error {
	if quantity <= 0 {
		return productdomain.ErrInvalidQuantity
	}
	p, ok := r.products[productID]
	if !ok {
		return productdomain.ErrProductNotFound
	}

	delta := quantity
	if direction == productdomain.StockDecrease {
		delta = -quantity
	}
	if p.CurrentBalance+delta < 0 {
		return productdomain.ErrInsufficientStock
	}
	p.CurrentBalance += delta
	return nil
}

func (r *fakeProductRepo) WithTx(tx *gorm.DB) productdomain.ProductRepository {
	return r
}

// ctxGateRepo also implements productdomain.ContextGate.
type ctxGateRepo struct {
	*fakeProductRepo
	ctxCalls int
}

func (r *ctxGateRepo) AdjustBalanceWithContext(ctx context.Context, tx *gorm.DB, productID uint, quantity int, direction productdomain.StockDirection) error {
	r.ctxCalls++
	return r.fakeProductRepo.AdjustBalance(tx, productID, quantity, direction)
}

func (r *fakeProductRepo) balance(id uint) int {
	return r.products[id].CurrentBalance
}

func (r *fakeProductRepo) snapshotBalances() map[uint]int {
	snap := make(map[uint]int, len(r.products))
	for id, p := range r.products {
		snap[id] = p.CurrentBalance
	}
	return snap
}

func (r *fakeProductRepo) restoreBalances(snap map[uint]int) {
	for id, balance := range snap {
		if p, ok := r.products[id]; ok {
			p.CurrentBalance = balance
		}
	}
}

type fakeOrderRepo struct {
	orders map[uint]domain.Order
	nextID uint

	failCreate error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]domain.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *domain.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := order
	return &copied, nil
}

func (r *fakeOrderRepo) FindByCode(code string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.Code == code {
			copied := order
			return &copied, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindAll(limit, offset int) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *domain.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) Delete(order *domain.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, order.ID)
	return nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) WithTx(tx *gorm.DB) domain.OrderRepository {
	return r
}

func (r *fakeOrderRepo) snapshot() map[uint]domain.Order {
	snap := make(map[uint]domain.Order, len(r.orders))
	for id, order := range r.orders {
		snap[id] = order
	}
	return snap
}

func (r *fakeOrderRepo) restore(snap map[uint]domain.Order) {
	r.orders = snap
}

type fakeCustomerRepo struct {
	customers map[uint]*domain.Customer
	nextID    uint
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[uint]*domain.Customer), nextID: 1}
	for _, c := range customers {
		repo.customers[c.ID] = c
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (r *fakeCustomerRepo) Create(c *domain.Customer) error {
	c.ID = r.nextID
	r.nextID++
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) FindByID(id uint) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindByCode(code string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindAll(limit, offset int) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *domain.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) Count() (int64, error) {
	return int64(len(r.customers)), nil
}

type fakePublisher struct {
	created       []kafka.OrderCreatedEvent
	statusChanges []kafka.OrderStatusChangedEvent
}

func (p *fakePublisher) PublishOrderCreated(ctx context.Context, event kafka.OrderCreatedEvent) error {
	p.created = append(p.created, event)
	return nil
}

func (p *fakePublisher) PublishOrderStatusChanged(ctx context.Context, event kafka.OrderStatusChangedEvent) error {
	p.statusChanges = append(p.statusChanges, event)
	return nil
}
