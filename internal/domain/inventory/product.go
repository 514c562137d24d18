// Package inventory defines the retail entities shown by the console.
package inventory

// Stock levels used by Product.StockStatus.
const (
	StockIn    = "IN_STOCK"
	StockLow   = "LOW_STOCK"
	StockOut   = "OUT_OF_STOCK"
	lowStockAt = 10
)

// Product statuses.
const (
	ProductActive       = "ACTIVE"
	ProductInactive     = "INACTIVE"
	ProductDiscontinued = "DISCONTINUED"
)

// Product is one catalog entry.
type Product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	SKU         string  `yaml:"sku"`
	Brand       string  `yaml:"brand"`
	Category    string  `yaml:"category"`
	Subcategory string  `yaml:"subcategory"`
	SalePrice   float64 `yaml:"sale_price"`
	CostPrice   float64 `yaml:"cost_price"`
	PackSize    int     `yaml:"pack_size"`
	Supplier    string  `yaml:"supplier"`
	Stock       int     `yaml:"stock"`
	StockStatus string  `yaml:"stock_status"`
	Status      string  `yaml:"status"`
}

// Field implements table.Record.
func (p Product) Field(key string) any {
	switch key {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "sku":
		return p.SKU
	case "brand":
		return p.Brand
	case "category":
		return p.Category
	case "subcategory":
		return p.Subcategory
	case "salePrice":
		return p.SalePrice
	case "costPrice":
		return p.CostPrice
	case "margin":
		return p.Margin()
	case "packSize":
		return p.PackSize
	case "supplier":
		return p.Supplier
	case "stock":
		return p.Stock
	case "stockStatus":
		return p.StockStatus
	case "status":
		return p.Status
	default:
		return nil
	}
}

// Margin returns the gross margin as a fraction of the sale price.
func (p Product) Margin() float64 {
	if p.SalePrice <= 0 {
		return 0
	}
	return (p.SalePrice - p.CostPrice) / p.SalePrice
}

// StockStatusFor classifies a stock count.
func StockStatusFor(stock int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock < lowStockAt:
		return StockLow
	default:
		return StockIn
	}
}
