package api

import (
	"context"

	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"go.uber.org/zap"
)

const (
	productsPath       = "/products"
	purchaseOrdersPath = "/purchase-orders"
)

type productDTO struct {
	ID           flexString `json:"id"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku"`
	Brand        string     `json:"brand"`
	Category     string     `json:"category"`
	Subcategory  string     `json:"subcategory"`
	UnitPrice    *float64   `json:"unitPrice"`
	UnitCost     *float64   `json:"unitCost"`
	SalePrice    *float64   `json:"salePrice"`
	CostPrice    *float64   `json:"costPrice"`
	CasePackSize *int       `json:"casePackSize"`
	PackSize     *int       `json:"packSize"`
	SupplierName string     `json:"supplierName"`
	Supplier     string     `json:"supplier"`
	Stock        *int       `json:"stock"`
	StockStatus  string     `json:"stockStatus"`
	Status       string     `json:"status"`
}

func (d productDTO) toProduct() inventory.Product {
	p := inventory.Product{
		ID:          string(d.ID),
		Name:        d.Name,
		SKU:         d.SKU,
		Brand:       d.Brand,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		SalePrice:   firstFloat(d.SalePrice, d.UnitPrice),
		CostPrice:   firstFloat(d.CostPrice, d.UnitCost),
		PackSize:    firstInt(d.PackSize, d.CasePackSize),
		Supplier:    firstString(d.Supplier, d.SupplierName),
		StockStatus: d.StockStatus,
		Status:      d.Status,
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
		if p.StockStatus == "" {
			p.StockStatus = inventory.StockStatusFor(p.Stock)
		}
	}
	return p
}

type purchaseOrderDTO struct {
	ID           flexString `json:"id"`
	PONumber     string     `json:"poNumber"`
	ItemCount    int        `json:"itemCount"`
	SupplierName string     `json:"supplierName"`
	Supplier     string     `json:"supplier"`
	StoreName    string     `json:"storeName"`
	Store        string     `json:"store"`
	TotalAmount  *float64   `json:"totalAmount"`
	Amount       *float64   `json:"amount"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	OrderDate    string     `json:"orderDate"`
}

func (d purchaseOrderDTO) toPurchaseOrder() inventory.PurchaseOrder {
	return inventory.PurchaseOrder{
		ID:        string(d.ID),
		PONumber:  d.PONumber,
		ItemCount: d.ItemCount,
		Supplier:  firstString(d.Supplier, d.SupplierName),
		Store:     firstString(d.Store, d.StoreName),
		Amount:    firstFloat(d.Amount, d.TotalAmount),
		Status:    d.Status,
		Priority:  d.Priority,
		OrderDate: d.OrderDate,
	}
}

// ProductSource reads the product catalog. Creating products is not offered
// by the console.
type ProductSource struct {
	client *Client
}

// NewProductSource creates a product source.
func NewProductSource(client *Client) *ProductSource {
	return &ProductSource{client: client}
}

// FetchAll returns every product.
func (s *ProductSource) FetchAll(ctx context.Context) ([]inventory.Product, error) {
	return fetchList(ctx, s.client, productsPath, productDTO.toProduct)
}

// CreateOne always fails with usecase.ErrCreateUnsupported.
func (s *ProductSource) CreateOne(context.Context, struct{}) (inventory.Product, error) {
	return inventory.Product{}, usecase.ErrCreateUnsupported
}

// PurchaseOrderSource reads purchase orders.
type PurchaseOrderSource struct {
	client *Client
}

// NewPurchaseOrderSource creates a purchase order source.
func NewPurchaseOrderSource(client *Client) *PurchaseOrderSource {
	return &PurchaseOrderSource{client: client}
}

// FetchAll returns every purchase order.
func (s *PurchaseOrderSource) FetchAll(ctx context.Context) ([]inventory.PurchaseOrder, error) {
	return fetchList(ctx, s.client, purchaseOrdersPath, purchaseOrderDTO.toPurchaseOrder)
}

// CreateOne always fails with usecase.ErrCreateUnsupported.
func (s *PurchaseOrderSource) CreateOne(context.Context, struct{}) (inventory.PurchaseOrder, error) {
	return inventory.PurchaseOrder{}, usecase.ErrCreateUnsupported
}

func fetchList[D, R any](ctx context.Context, client *Client, path string, convert func(D) R) ([]R, error) {
	body, err := client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	page := Normalize(body)
	if page.Malformed {
		client.logger.Warn("unexpected list response shape", zap.String("path", path), zap.Int("bytes", len(body)))
	}
	dtos := decodeItems[D](page.Items, client.logger)
	rows := make([]R, 0, len(dtos))
	for _, d := range dtos {
		rows = append(rows, convert(d))
	}
	return rows, nil
}

func firstFloat(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstInt(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	_ usecase.Source[inventory.Store, inventory.StoreInput] = (*StoreSource)(nil)
	_ usecase.Source[inventory.Product, struct{}]           = (*ProductSource)(nil)
	_ usecase.Source[inventory.PurchaseOrder, struct{}]     = (*PurchaseOrderSource)(nil)
)
