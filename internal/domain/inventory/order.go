package inventory

import "time"

// Order statuses.
const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderCancelled = "CANCELLED"
)

// Order is a customer sales order shown on the dashboard.
type Order struct {
	ID          string    `yaml:"id"`
	OrderNumber string    `yaml:"order_number"`
	Customer    string    `yaml:"customer"`
	Store       string    `yaml:"store"`
	Total       float64   `yaml:"total"`
	Status      string    `yaml:"status"`
	PlacedAt    time.Time `yaml:"placed_at"`
}

// Field implements table.Record.
func (o Order) Field(key string) any {
	switch key {
	case "id":
		return o.ID
	case "orderNumber":
		return o.OrderNumber
	case "customer":
		return o.Customer
	case "store":
		return o.Store
	case "total":
		return o.Total
	case "status":
		return o.Status
	case "placedAt":
		return o.PlacedAt
	default:
		return nil
	}
}
