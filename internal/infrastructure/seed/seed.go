// Package seed provides the built-in demo datasets used when a screen is not
// backed by the API.
package seed

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

func load[T any](name string) ([]T, error) {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return rows, nil
}

// Products returns the demo catalog with stock levels classified.
func Products() ([]inventory.Product, error) {
	rows, err := load[inventory.Product]("products.yaml")
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].StockStatus == "" {
			rows[i].StockStatus = inventory.StockStatusFor(rows[i].Stock)
		}
	}
	return rows, nil
}

// PurchaseOrders returns the demo purchase orders.
func PurchaseOrders() ([]inventory.PurchaseOrder, error) {
	return load[inventory.PurchaseOrder]("purchase_orders.yaml")
}

// Orders returns the demo customer orders.
func Orders() ([]inventory.Order, error) {
	return load[inventory.Order]("orders.yaml")
}

// Stores returns the demo stores with display fields derived at now.
func Stores(now time.Time) ([]inventory.Store, error) {
	rows, err := load[inventory.Store]("stores.yaml")
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i] = rows[i].WithDerived(now)
	}
	return rows, nil
}

// ProductSource is a read-only source over the demo catalog.
func ProductSource() (*usecase.StaticSource[inventory.Product, struct{}], error) {
	rows, err := Products()
	if err != nil {
		return nil, err
	}
	return usecase.NewStaticSource[inventory.Product, struct{}](rows, nil), nil
}

// PurchaseOrderSource is a read-only source over the demo purchase orders.
func PurchaseOrderSource() (*usecase.StaticSource[inventory.PurchaseOrder, struct{}], error) {
	rows, err := PurchaseOrders()
	if err != nil {
		return nil, err
	}
	return usecase.NewStaticSource[inventory.PurchaseOrder, struct{}](rows, nil), nil
}

// OrderSource is a read-only source over the demo customer orders.
func OrderSource() (*usecase.StaticSource[inventory.Order, struct{}], error) {
	rows, err := Orders()
	if err != nil {
		return nil, err
	}
	return usecase.NewStaticSource[inventory.Order, struct{}](rows, nil), nil
}

// StoreSource is an in-memory store source that accepts new stores. Codes
// are unique, compared case-insensitively.
func StoreSource(now func() time.Time) (*usecase.StaticSource[inventory.Store, inventory.StoreInput], error) {
	if now == nil {
		now = time.Now
	}
	rows, err := Stores(now())
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	codes := make(map[string]struct{}, len(rows))
	for _, s := range rows {
		codes[strings.ToUpper(s.Code)] = struct{}{}
	}
	build := func(in inventory.StoreInput) (inventory.Store, error) {
		in = in.Trimmed()
		key := strings.ToUpper(in.Code)
		mu.Lock()
		defer mu.Unlock()
		if _, taken := codes[key]; taken {
			return inventory.Store{}, fmt.Errorf("store code %s already exists", in.Code)
		}
		codes[key] = struct{}{}
		s := inventory.Store{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Code:      in.Code,
			Manager:   in.Manager,
			Email:     in.Email,
			Phone:     in.Phone,
			Address:   in.Address,
			City:      in.City,
			State:     in.State,
			ZipCode:   in.ZipCode,
			Country:   in.Country,
			Timezone:  in.Timezone,
			IsActive:  in.IsActive,
			UpdatedAt: now(),
		}
		return s.WithDerived(now()), nil
	}
	return usecase.NewStaticSource(rows, build), nil
}
