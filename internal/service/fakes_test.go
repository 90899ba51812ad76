package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/entity"
	"ecommerce-backend/internal/repository"
)

// In-memory fakes for the repository interfaces. They return copies so tests
// cannot mutate stored rows through returned pointers.

type fakeUserRepo struct {
	users  map[int]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error) {
	for _, u := range r.users {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	copied := *user
	copied.ID = r.nextID
	r.nextID++
	r.users[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeProductRepo struct {
	products map[int]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) add(p entity.Product) *entity.Product {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = &p
	return &p
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetActiveByID(ctx context.Context, id int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetActiveByIDForProvider(ctx context.Context, id, providerID int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted || p.ProviderID != providerID {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) ListByProvider(ctx context.Context, providerID int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ProviderID == providerID && !p.IsDeleted {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created := r.add(*product)
	copied := *created
	return &copied, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	p, ok := r.products[product.ID]
	if !ok || p.IsDeleted {
		return sql.ErrNoRows
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) SoftDelete(ctx context.Context, id, providerID int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted || p.ProviderID != providerID {
		return false, nil
	}
	p.IsDeleted = true
	return true, nil
}

func (r *fakeProductRepo) quantity(id int) int {
	return r.products[id].Quantity
}

type fakeOrderRepo struct {
	orders   map[int]*entity.Order
	products *fakeProductRepo
	nextID   int

	// failNextCreate simulates losing the guarded decrement race: the
	// pre-check saw stock, but the transaction found none left.
	failNextCreate bool
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int]*entity.Order{}, products: products, nextID: 1}
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) GetByIDForProvider(ctx context.Context, id, providerID int) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	p, pok := r.products.products[o.ProductID]
	if !pok || p.ProviderID != providerID {
		return nil, sql.ErrNoRows
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByProvider(ctx context.Context, providerID int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if p, ok := r.products.products[o.ProductID]; ok && p.ProviderID == providerID {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CreateWithStockDecrement(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if r.failNextCreate {
		r.failNextCreate = false
		return nil, repository.ErrOutOfStock
	}
	p, ok := r.products.products[order.ProductID]
	if !ok || p.IsDeleted || p.Quantity <= 0 {
		return nil, repository.ErrOutOfStock
	}
	p.Quantity--

	copied := *order
	copied.ID = r.nextID
	r.nextID++
	if copied.Status == "" {
		copied.Status = entity.StatusPending
	}
	r.orders[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id int, status entity.OrderStatus, createdAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = status
	o.CreatedAt = createdAt
	return nil
}

func (r *fakeOrderRepo) DeleteRestoringStock(ctx context.Context, id, productID int) error {
	if _, ok := r.orders[id]; !ok {
		return sql.ErrNoRows
	}
	if p, ok := r.products.products[productID]; ok && !p.IsDeleted {
		p.Quantity++
	}
	delete(r.orders, id)
	return nil
}

type fakeWishlistRepo struct {
	items    []entity.WishlistItem
	products *fakeProductRepo
	nextID   int
}

func newFakeWishlistRepo(products *fakeProductRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{products: products, nextID: 1}
}

func (r *fakeWishlistRepo) ListByUser(ctx context.Context, userID int) ([]*entity.WishlistEntry, error) {
	var out []*entity.WishlistEntry
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		p, ok := r.products.products[item.ProductID]
		if !ok {
			continue
		}
		out = append(out, &entity.WishlistEntry{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}
	return out, nil
}

func (r *fakeWishlistRepo) Exists(ctx context.Context, userID, productID int) (bool, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWishlistRepo) Create(ctx context.Context, item *entity.WishlistItem) (*entity.WishlistItem, error) {
	copied := *item
	copied.ID = r.nextID
	r.nextID++
	r.items = append(r.items, copied)
	return &copied, nil
}

func (r *fakeWishlistRepo) Delete(ctx context.Context, userID, productID int) (bool, error) {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) ListByProvider(ctx context.Context, providerID int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.ProviderID == providerID {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	copied := *n
	copied.ID = r.nextID
	r.nextID++
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	r.notifications = append(r.notifications, &copied)
	result := copied
	return &result, nil
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Generate(identity string, role entity.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + identity, nil
}

type fakeInvoiceRenderer struct {
	path  string
	err   error
	calls int
}

func (f *fakeInvoiceRenderer) GenerateForOrder(ctx context.Context, orderID int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.path != "" {
		return f.path, nil
	}
	return fmt.Sprintf("static/invoices/customer_1/invoice_%d.pdf", orderID), nil
}

var errRendererBroken = errors.New("renderer broken")
