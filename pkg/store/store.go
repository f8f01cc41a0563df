// Package store holds the storefront's process-wide state: the product
// catalog, per-user carts, submitted orders and user records. All state
// is volatile; a restart discards everything. The stores are safe for
// concurrent use, but multi-step flows built on top of them (checkout)
// are not atomic across stores.
package store

import "github.com/example/storefront/pkg/ident"

// Store bundles the four stores behind one handle. It is constructed
// once at process start and passed to every component that needs it;
// nothing reaches it through a global.
type Store struct {
	Catalog *Catalog
	Cart    *Cart
	Orders  *Orders
	Users   *Users
}

// New wires the stores together. The cart resolves products through
// the catalog's read-only lookup surface.
func New(ids ident.Generator) *Store {
	catalog := NewCatalog(ids)
	return &Store{
		Catalog: catalog,
		Cart:    NewCart(catalog),
		Orders:  NewOrders(ids),
		Users:   NewUsers(ids),
	}
}
