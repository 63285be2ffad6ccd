package repositories

import (
	"gorm.io/gorm"
)

// Store bundles every repository behind one handle and provides a
// transactional scope. InTransaction hands the callback a Store whose
// repositories all share one database transaction; if the callback returns an
// error every write made through that Store is rolled back.
type Store interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Carts() CartRepository
	CartItems() CartItemRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	InTransaction(fn func(Store) error) error
}

// GORMStore is a GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db: db,
	}
}

// Users returns the user repository bound to this store's connection.
func (s *GORMStore) Users() UserRepository {
	return NewGORMUserRepository(s.db)
}

// Categories returns the category repository bound to this store's connection.
func (s *GORMStore) Categories() CategoryRepository {
	return NewGORMCategoryRepository(s.db)
}

// Products returns the product repository bound to this store's connection.
func (s *GORMStore) Products() ProductRepository {
	return NewGORMProductRepository(s.db)
}

// Carts returns the cart repository bound to this store's connection.
func (s *GORMStore) Carts() CartRepository {
	return NewGORMCartRepository(s.db)
}

// CartItems returns the cart item repository bound to this store's connection.
func (s *GORMStore) CartItems() CartItemRepository {
	return NewGORMCartItemRepository(s.db)
}

// Orders returns the order repository bound to this store's connection.
func (s *GORMStore) Orders() OrderRepository {
	return NewGORMOrderRepository(s.db)
}

// OrderItems returns the order item repository bound to this store's connection.
func (s *GORMStore) OrderItems() OrderItemRepository {
	return NewGORMOrderItemRepository(s.db)
}

// InTransaction runs fn inside one database transaction. All repositories of
// the Store passed to fn share that transaction; a non-nil error from fn rolls
// everything back.
func (s *GORMStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}
