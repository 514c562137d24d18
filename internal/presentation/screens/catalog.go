package screens

import (
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"go.uber.org/zap"
)

// ProductList configures the products screen.
func ProductList(logger *zap.Logger) usecase.ListConfig[inventory.Product, struct{}] {
	return usecase.ListConfig[inventory.Product, struct{}]{
		Columns: []table.Column[inventory.Product]{
			{Key: "sku", Label: "SKU", Width: 12},
			{Key: "name", Label: "Name", Width: 22},
			{Key: "brand", Label: "Brand", Width: 12},
			{Key: "category", Label: "Category", Width: 12, Render: Enum},
			{Key: "subcategory", Label: "Subcategory", Width: 12},
			{Key: "salePrice", Label: "Price", Width: 10, Render: Currency},
			{Key: "costPrice", Label: "Cost", Width: 10, Render: Currency},
			{Key: "margin", Label: "Margin", Width: 8, Render: Percent},
			{Key: "packSize", Label: "Pack", Width: 5},
			{Key: "supplier", Label: "Supplier", Width: 18},
			{Key: "stock", Label: "Stock", Width: 7, Render: Count},
			{Key: "stockStatus", Label: "Stock Status", Width: 13, Render: Enum},
			{Key: "status", Label: "Status", Width: 12, Render: Enum},
		},
		SearchKeys: []string{"name", "sku", "brand", "supplier"},
		Filters: []table.Filter[inventory.Product]{
			table.NewFilter("category", "Category", table.FieldEquals[inventory.Product]("category"),
				options("TOPS", "BOTTOMS", "OUTERWEAR", "ACCESSORIES", "FOOTWEAR")...),
			table.NewFilter("status", "Status", table.FieldEquals[inventory.Product]("status"),
				options(inventory.ProductActive, inventory.ProductInactive, inventory.ProductDiscontinued)...),
			table.NewFilter("stockStatus", "Stock", table.FieldEquals[inventory.Product]("stockStatus"),
				options(inventory.StockIn, inventory.StockLow, inventory.StockOut)...),
		},
		Logger: logger,
	}
}

// ProductActions lists the controls for a product row.
func ProductActions(p inventory.Product) []table.Action {
	actions := []table.Action{
		{Key: ActionDetails, Label: "View details"},
		{Key: FilterAction("category", p.Category), Label: "Show " + Enum(p.Category) + " only"},
		{Key: SearchAction(p.Brand), Label: "Search brand " + p.Brand},
	}
	if p.StockStatus != inventory.StockIn {
		actions = append(actions, table.Action{Key: FilterAction("stockStatus", p.StockStatus), Label: "Show " + Enum(p.StockStatus) + " only"})
	}
	return actions
}

// PurchaseOrderList configures the purchase orders screen.
func PurchaseOrderList(logger *zap.Logger) usecase.ListConfig[inventory.PurchaseOrder, struct{}] {
	return usecase.ListConfig[inventory.PurchaseOrder, struct{}]{
		Columns: []table.Column[inventory.PurchaseOrder]{
			{Key: "poNumber", Label: "PO #", Width: 14},
			{Key: "supplier", Label: "Supplier", Width: 18},
			{Key: "store", Label: "Store", Width: 20},
			{Key: "itemCount", Label: "Items", Width: 6},
			{Key: "amount", Label: "Amount", Width: 12, Render: Currency},
			{Key: "status", Label: "Status", Width: 17, Render: Enum},
			{Key: "priority", Label: "Priority", Width: 9, Render: Enum},
			{Key: "orderDate", Label: "Order Date", Width: 13, Render: Date},
		},
		SearchKeys: []string{"poNumber", "supplier", "store"},
		Filters: []table.Filter[inventory.PurchaseOrder]{
			table.NewFilter("status", "Status", table.FieldEquals[inventory.PurchaseOrder]("status"),
				options(inventory.POStatusDraft, inventory.POStatusPending, inventory.POStatusApproved,
					inventory.POStatusSent, inventory.POStatusReceived, inventory.POStatusCancelled)...),
			table.NewFilter("priority", "Priority", table.FieldEquals[inventory.PurchaseOrder]("priority"),
				options(inventory.PriorityLow, inventory.PriorityNormal, inventory.PriorityHigh, inventory.PriorityUrgent)...),
		},
		Logger: logger,
	}
}

// PurchaseOrderActions lists the controls for a purchase order row.
func PurchaseOrderActions(o inventory.PurchaseOrder) []table.Action {
	return []table.Action{
		{Key: ActionDetails, Label: "View details"},
		{Key: FilterAction("status", o.Status), Label: "Show " + Enum(o.Status) + " only"},
		{Key: FilterAction("priority", o.Priority), Label: "Show " + Enum(o.Priority) + " priority only"},
		{Key: SearchAction(o.Store), Label: "Search store " + o.Store},
	}
}

// OrderList configures the customer orders screen.
func OrderList(logger *zap.Logger) usecase.ListConfig[inventory.Order, struct{}] {
	return usecase.ListConfig[inventory.Order, struct{}]{
		Columns: []table.Column[inventory.Order]{
			{Key: "orderNumber", Label: "Order #", Width: 10},
			{Key: "customer", Label: "Customer", Width: 18},
			{Key: "store", Label: "Store", Width: 20},
			{Key: "total", Label: "Total", Width: 10, Render: Currency},
			{Key: "status", Label: "Status", Width: 10, Render: Enum},
			{Key: "placedAt", Label: "Placed", Width: 13, Render: DateTime},
		},
		SearchKeys: []string{"orderNumber", "customer", "store"},
		Filters: []table.Filter[inventory.Order]{
			table.NewFilter("status", "Status", table.FieldEquals[inventory.Order]("status"),
				options(inventory.OrderPending, inventory.OrderPaid, inventory.OrderShipped, inventory.OrderCancelled)...),
		},
		Logger: logger,
	}
}

// OrderActions lists the controls for a customer order row.
func OrderActions(o inventory.Order) []table.Action {
	return []table.Action{
		{Key: ActionDetails, Label: "View details"},
		{Key: SearchAction(o.Customer), Label: "Search customer " + o.Customer},
	}
}
