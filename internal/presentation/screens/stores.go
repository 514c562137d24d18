package screens

import (
	"strings"

	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"go.uber.org/zap"
)

// StoreList configures the stores screen. Creating a store is validated
// locally before it reaches the source.
func StoreList(logger *zap.Logger) usecase.ListConfig[inventory.Store, inventory.StoreInput] {
	return usecase.ListConfig[inventory.Store, inventory.StoreInput]{
		Columns: []table.Column[inventory.Store]{
			{Key: "code", Label: "Code", Width: 6},
			{Key: "name", Label: "Name", Width: 20},
			{Key: "manager", Label: "Manager", Width: 16},
			{Key: "city", Label: "City", Width: 12},
			{Key: "state", Label: "State", Width: 6},
			{Key: "country", Label: "Country", Width: 14},
			{Key: "email", Label: "Email", Width: 26},
			{Key: "phone", Label: "Phone", Width: 16},
			{Key: "timezone", Label: "Timezone", Width: 16},
			{Key: "statusLabel", Label: "Status", Width: 9},
			{Key: "lastUpdated", Label: "Updated", Width: 14},
		},
		SearchKeys: []string{"name", "code", "manager", "city", "email"},
		Filters: []table.Filter[inventory.Store]{
			table.NewFilter("status", "Status", func(s inventory.Store, v string) bool {
				return ActiveLabel(s.IsActive) == Enum(v)
			}, table.Option{Value: "active", Label: "Active"}, table.Option{Value: "inactive", Label: "Inactive"}),
		},
		Validate: func(in inventory.StoreInput) error { return in.Validate() },
		Logger:   logger,
	}
}

// StoreActions lists the controls for a store row.
func StoreActions(s inventory.Store) []table.Action {
	return []table.Action{
		{Key: ActionDetails, Label: "View details"},
		{Key: SearchAction(s.City), Label: "Search city " + s.City},
		{Key: FilterAction("status", strings.ToLower(ActiveLabel(s.IsActive))), Label: "Show " + ActiveLabel(s.IsActive) + " only"},
	}
}

// StoreFormFields are the create form inputs in display order.
var StoreFormFields = []FormField{
	{Key: "name", Label: "Name", Required: true},
	{Key: "code", Label: "Code", Required: true},
	{Key: "manager", Label: "Manager"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "address", Label: "Address"},
	{Key: "city", Label: "City"},
	{Key: "state", Label: "State"},
	{Key: "zipCode", Label: "Zip code"},
	{Key: "country", Label: "Country"},
	{Key: "timezone", Label: "Timezone"},
	{Key: "isActive", Label: "Active (y/n)"},
}

// FormField is one input of a create form.
type FormField struct {
	Key      string
	Label    string
	Required bool
}

// StoreInputFrom builds create input from form values keyed by field key.
func StoreInputFrom(values map[string]string) inventory.StoreInput {
	return inventory.StoreInput{
		Name:     values["name"],
		Code:     values["code"],
		Manager:  values["manager"],
		Email:    values["email"],
		Phone:    values["phone"],
		Address:  values["address"],
		City:     values["city"],
		State:    values["state"],
		ZipCode:  values["zipCode"],
		Country:  values["country"],
		Timezone: values["timezone"],
		IsActive: parseYes(values["isActive"]),
	}
}

func parseYes(raw string) bool {
	switch Enum(raw) {
	case "", "Y", "Yes", "True", "Active", "1":
		return true
	default:
		return false
	}
}
