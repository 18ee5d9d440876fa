package command

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

// fakeTxRunner snapshots the in-memory stores before the callback and
// restores them when it fails, mirroring a database rollback.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	balances := r.products.snapshotBalances()
	movements := r.movements.snapshot()

	if err := fc(nil); err != nil {
		r.products.restoreBalances(balances)
		r.movements.restore(movements)
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

type fakeMovementRepo struct {
	movements map[uint]domain.StockMovement
	nextID    uint
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: make(map[uint]domain.StockMovement), nextID: 1}
}

func (r *fakeMovementRepo) Create(m *domain.StockMovement) error {
	m.ID = r.nextID
	r.nextID++
	r.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) FindByID(id uint) (*domain.StockMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, domain.ErrMovementNotFound
	}
	copied := m
	return &copied, nil
}

func (r *fakeMovementRepo) FindByCode(code string) (*domain.StockMovement, error) {
	for _, m := range r.movements {
		if m.Code == code {
			copied := m
			return &copied, nil
		}
	}
	return nil, domain.ErrMovementNotFound
}

func (r *fakeMovementRepo) FindAll(direction domain.MovementDirection, limit, offset int) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	for _, m := range r.movements {
		if direction == "" || m.Direction == direction {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Update(m *domain.StockMovement) error {
	if _, ok := r.movements[m.ID]; !ok {
		return domain.ErrMovementNotFound
	}
	r.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) Delete(id uint) error {
	if _, ok := r.movements[id]; !ok {
		return domain.ErrMovementNotFound
	}
	delete(r.movements, id)
	return nil
}

func (r *fakeMovementRepo) Count(direction domain.MovementDirection) (int64, error) {
	var count int64
	for _, m := range r.movements {
		if direction == "" || m.Direction == direction {
			count++
		}
	}
	return count, nil
}

func (r *fakeMovementRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (r *fakeMovementRepo) SumByProduct(productID uint, direction domain.MovementDirection) (int64, error) {
	var sum int64
	for _, m := range r.movements {
		if m.ProductID == productID && m.Direction == direction {
			sum += int64(m.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeMovementRepo) WithTx(tx *gorm.DB) domain.MovementRepository {
	return r
}

func (r *fakeMovementRepo) snapshot() map[uint]domain.StockMovement {
	snap := make(map[uint]domain.StockMovement, len(r.movements))
	for id, m := range r.movements {
		snap[id] = m
	}
	return snap
}

func (r *fakeMovementRepo) restore(snap map[uint]domain.StockMovement) {
	r.movements = snap
}
