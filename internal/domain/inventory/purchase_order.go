package inventory

// Purchase order statuses.
const (
	POStatusDraft     = "DRAFT"
	POStatusPending   = "PENDING_APPROVAL"
	POStatusApproved  = "APPROVED"
	POStatusSent      = "SENT"
	POStatusReceived  = "RECEIVED"
	POStatusCancelled = "CANCELLED"
)

// Purchase order priorities.
const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// PurchaseOrder is a replenishment order placed with a supplier.
type PurchaseOrder struct {
	ID        string  `yaml:"id"`
	PONumber  string  `yaml:"po_number"`
	ItemCount int     `yaml:"item_count"`
	Supplier  string  `yaml:"supplier"`
	Store     string  `yaml:"store"`
	Amount    float64 `yaml:"amount"`
	Status    string  `yaml:"status"`
	Priority  string  `yaml:"priority"`
	// OrderDate is an ISO 8601 date (YYYY-MM-DD).
	OrderDate string `yaml:"order_date"`
}

// Field implements table.Record.
func (o PurchaseOrder) Field(key string) any {
	switch key {
	case "id":
		return o.ID
	case "poNumber":
		return o.PONumber
	case "itemCount":
		return o.ItemCount
	case "supplier":
		return o.Supplier
	case "store":
		return o.Store
	case "amount":
		return o.Amount
	case "status":
		return o.Status
	case "priority":
		return o.Priority
	case "orderDate":
		return o.OrderDate
	default:
		return nil
	}
}

// Open reports whether the order still awaits delivery.
func (o PurchaseOrder) Open() bool {
	switch o.Status {
	case POStatusReceived, POStatusCancelled:
		return false
	default:
		return true
	}
}
