package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

// RowFetcher loads every row of one kind.
type RowFetcher[R any] interface {
	FetchAll(ctx context.Context) ([]R, error)
}

// Stats are the dashboard's headline numbers.
type Stats struct {
	Products       int
	LowStock       int
	OutOfStock     int
	OpenOrders     int
	OpenOrderValue float64
	Stores         int
	ActiveStores   int
	Sales          int
	Revenue        float64
}

// Dashboard is the data shown on the dashboard screen.
type Dashboard struct {
	Stats        Stats
	RecentOrders []inventory.PurchaseOrder
	RecentSales  []inventory.Order
	// Partial lists the sections that failed to load.
	Partial []string
}

// DashboardService aggregates the list sources into dashboard figures.
type DashboardService struct {
	Products       RowFetcher[inventory.Product]
	PurchaseOrders RowFetcher[inventory.PurchaseOrder]
	Stores         RowFetcher[inventory.Store]
	Orders         RowFetcher[inventory.Order]
	RecentLimit    int
	Logger         *zap.Logger
}

// Load fetches every source concurrently. A failing section is reported in
// Dashboard.Partial; Load only fails when every section failed.
func (s DashboardService) Load(ctx context.Context) (Dashboard, error) {
	var (
		products []inventory.Product
		orders   []inventory.PurchaseOrder
		stores   []inventory.Store
		sales    []inventory.Order
		errs     [4]error
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.Products != nil {
		g.Go(func() error {
			products, errs[0] = s.Products.FetchAll(gctx)
			return nil
		})
	}
	if s.PurchaseOrders != nil {
		g.Go(func() error {
			orders, errs[1] = s.PurchaseOrders.FetchAll(gctx)
			return nil
		})
	}
	if s.Stores != nil {
		g.Go(func() error {
			stores, errs[2] = s.Stores.FetchAll(gctx)
			return nil
		})
	}
	if s.Orders != nil {
		g.Go(func() error {
			sales, errs[3] = s.Orders.FetchAll(gctx)
			return nil
		})
	}
	_ = g.Wait()

	var (
		d        Dashboard
		firstErr error
	)
	for i, name := range []string{"products", "purchase orders", "stores", "sales"} {
		if errs[i] == nil {
			continue
		}
		if firstErr == nil {
			firstErr = errs[i]
		}
		d.Partial = append(d.Partial, name)
		s.logger().Warn("dashboard section failed", zap.String("section", name), zap.Error(errs[i]))
	}
	if firstErr != nil && len(d.Partial) == s.configured() {
		return Dashboard{}, &FetchError{Err: fmt.Errorf("dashboard unavailable: %w", firstErr)}
	}

	d.Stats = computeStats(products, orders, stores)
	for _, o := range sales {
		if o.Status != inventory.OrderCancelled {
			d.Stats.Sales++
			d.Stats.Revenue += o.Total
		}
	}
	d.RecentOrders = recentOrders(orders, s.recentLimit())
	d.RecentSales = recentSales(sales, s.recentLimit())
	return d, nil
}

func computeStats(products []inventory.Product, orders []inventory.PurchaseOrder, stores []inventory.Store) Stats {
	st := Stats{Products: len(products), Stores: len(stores)}
	for _, p := range products {
		switch p.StockStatus {
		case inventory.StockLow:
			st.LowStock++
		case inventory.StockOut:
			st.OutOfStock++
		}
	}
	for _, o := range orders {
		if o.Open() {
			st.OpenOrders++
			st.OpenOrderValue += o.Amount
		}
	}
	for _, store := range stores {
		if store.IsActive {
			st.ActiveStores++
		}
	}
	return st
}

// recentOrders returns the newest orders first. ISO dates sort as text.
func recentOrders(orders []inventory.PurchaseOrder, limit int) []inventory.PurchaseOrder {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b inventory.PurchaseOrder) int {
		return strings.Compare(b.OrderDate, a.OrderDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func recentSales(sales []inventory.Order, limit int) []inventory.Order {
	out := slices.Clone(sales)
	slices.SortStableFunc(out, func(a, b inventory.Order) int {
		return b.PlacedAt.Compare(a.PlacedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s DashboardService) configured() int {
	n := 0
	if s.Products != nil {
		n++
	}
	if s.PurchaseOrders != nil {
		n++
	}
	if s.Stores != nil {
		n++
	}
	if s.Orders != nil {
		n++
	}
	return n
}

func (s DashboardService) recentLimit() int {
	if s.RecentLimit > 0 {
		return s.RecentLimit
	}
	return 5
}

func (s DashboardService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
