package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mtdstore-backend/internal/models"
)

// Collection file names under the data directory
const (
	productsFile = "products.json"
	ordersFile   = "orders.json"
	usersFile    = "users.json"
	upiFile      = "upi_mapping.json"
)

// Sentinel errors returned by store operations
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDemoUser          = errors.New("cannot delete demo users")
)

// Store is the in-memory mirror of the four JSON collection files. All
// collections are loaded once at construction and held for the process
// lifetime; every mutation rewrites the owning file before returning.
// A single mutex serializes read-modify-write cycles, so concurrent
// requests cannot drop each other's updates.
type Store struct {
	mu      sync.Mutex
	dataDir string

	products   []models.Product
	orders     []models.Order
	users      []models.User
	upiMapping map[string]string
}

// New creates the store, loading all collections from dataDir. An empty
// product collection is seeded with the sample catalog and persisted
// immediately.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dataDir:    dataDir,
		products:   loadJSON(filepath.Join(dataDir, productsFile), []models.Product{}),
		orders:     loadJSON(filepath.Join(dataDir, ordersFile), []models.Order{}),
		users:      loadJSON(filepath.Join(dataDir, usersFile), []models.User{}),
		upiMapping: loadJSON(filepath.Join(dataDir, upiFile), map[string]string{}),
	}
	if s.upiMapping == nil {
		s.upiMapping = map[string]string{}
	}

	if len(s.products) == 0 {
		s.products = sampleProducts()
		if err := s.saveProductsLocked(); err != nil {
			return nil, fmt.Errorf("failed to persist sample catalog: %w", err)
		}
	}

	return s, nil
}

func (s *Store) saveProductsLocked() error {
	return saveJSON(filepath.Join(s.dataDir, productsFile), s.products)
}

func (s *Store) saveOrdersLocked() error {
	return saveJSON(filepath.Join(s.dataDir, ordersFile), s.orders)
}

func (s *Store) saveUsersLocked() error {
	return saveJSON(filepath.Join(s.dataDir, usersFile), s.users)
}

func (s *Store) saveUPILocked() error {
	return saveJSON(filepath.Join(s.dataDir, upiFile), s.upiMapping)
}

// Products returns a snapshot of the product collection
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// AddProduct appends a product, assigning the next id as the current
// count plus one. Ids are not reused in a stable way: deleting and
// re-adding items can produce an id that existed before.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = len(s.products) + 1
	s.products = append(s.products, p)
	if err := s.saveProductsLocked(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct applies a partial update to the product with the given
// id; nil fields keep their current values
func (s *Store) UpdateProduct(id int, update models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.Price != nil {
			p.Price = update.Price.Float64()
		}
		if update.Quantity != nil {
			p.Quantity = update.Quantity.Int()
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if err := s.saveProductsLocked(); err != nil {
			return models.Product{}, err
		}
		return *p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// DeleteProduct removes the product with the given id
func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.products) {
		return ErrProductNotFound
	}
	s.products = kept
	return s.saveProductsLocked()
}

// Orders returns a snapshot of the order collection
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersByBuyer returns the orders placed by a buyer
func (s *Store) OrdersByBuyer(username string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.Buyer == username {
			out = append(out, o)
		}
	}
	return out
}

// OrdersBySeller returns the orders addressed to a seller
func (s *Store) OrdersBySeller(sellerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.Seller == sellerID {
			out = append(out, o)
		}
	}
	return out
}

// CreateOrder appends an order, assigning the next id as the current
// count plus one (same non-stable policy as products)
func (s *Store) CreateOrder(o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = len(s.orders) + 1
	s.orders = append(s.orders, o)
	if err := s.saveOrdersLocked(); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// CompletePayment marks an order paid and decrements the referenced
// product's quantity by the order quantity. There is no floor check:
// overselling drives the quantity negative. A missing order or product
// silently no-ops, but both collections are persisted regardless.
func (s *Store) CompletePayment(orderID int, transactionID string, commission, sellerAmount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		o := &s.orders[i]
		o.PaymentStatus = models.PaymentStatusCompleted
		o.TransactionID = transactionID
		o.Commission = commission
		o.SellerAmount = sellerAmount
		o.PaymentDate = now.Format(models.TimestampLayout)
		o.ExpectedDelivery = now.Add(24 * time.Hour).Format(models.TimestampLayout)
		o.Status = models.OrderStatusProcessing

		for j := range s.products {
			if s.products[j].ID == o.ProductID {
				s.products[j].Quantity -= o.Quantity
				break
			}
		}
		break
	}

	if err := s.saveOrdersLocked(); err != nil {
		return err
	}
	return s.saveProductsLocked()
}

// TotalCommission sums the commission over completed orders
func (s *Store) TotalCommission() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, o := range s.orders {
		if o.PaymentStatus == models.PaymentStatusCompleted {
			total += o.Commission
		}
	}
	return total
}

// UPI returns a seller's payment address, or the empty string when none
// has been set
func (s *Store) UPI(sellerID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upiMapping[sellerID]
}

// SetUPI upserts a seller's payment address. Last write wins; no
// history is kept.
func (s *Store) SetUPI(sellerID, upiID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upiMapping[sellerID] = upiID
	return s.saveUPILocked()
}

// Users returns a snapshot of the stored (non-built-in) users
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Authenticate checks credentials against the built-in accounts first,
// then the stored users. Comparison is against the stored plaintext.
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	for _, u := range models.MainUsers() {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser appends a user after checking the username against both the
// built-in accounts and the stored set
func (s *Store) AddUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.IsDemoUser(u.Username) {
		return models.User{}, ErrDuplicateUsername
	}
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	s.users = append(s.users, u)
	if err := s.saveUsersLocked(); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DeleteUser removes a stored user. The built-in demo accounts can
// never be deleted.
func (s *Store) DeleteUser(username string) error {
	if models.IsDemoUser(username) {
		return ErrDemoUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(s.users) {
		return ErrUserNotFound
	}
	s.users = kept
	return s.saveUsersLocked()
}

// Stats computes the aggregate admin counters. Buyer and seller totals
// count stored users of that role plus the one built-in account each;
// revenue sums order totals over completed payments.
func (s *Store) Stats() models.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.AdminStats{
		TotalBuyers:  1,
		TotalSellers: 1,
		TotalOrders:  len(s.orders),
	}
	for _, u := range s.users {
		switch u.Role {
		case models.UserRoleBuyer:
			stats.TotalBuyers++
		case models.UserRoleSeller:
			stats.TotalSellers++
		}
	}
	for _, o := range s.orders {
		if o.PaymentStatus == models.PaymentStatusCompleted {
			stats.TotalRevenue += o.Total
		}
	}
	return stats
}
