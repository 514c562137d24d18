package inventory

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Store is a physical retail location.
type Store struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Code      string    `yaml:"code"`
	Manager   string    `yaml:"manager"`
	Email     string    `yaml:"email"`
	Phone     string    `yaml:"phone"`
	Address   string    `yaml:"address"`
	City      string    `yaml:"city"`
	State     string    `yaml:"state"`
	ZipCode   string    `yaml:"zip_code"`
	Country   string    `yaml:"country"`
	Timezone  string    `yaml:"timezone"`
	IsActive  bool      `yaml:"is_active"`
	UpdatedAt time.Time `yaml:"updated_at"`

	// Display-only fields filled by WithDerived.
	LastUpdated string `yaml:"-"`
	StatusLabel string `yaml:"-"`
}

// Field implements table.Record.
func (s Store) Field(key string) any {
	switch key {
	case "id":
		return s.ID
	case "name":
		return s.Name
	case "code":
		return s.Code
	case "manager":
		return s.Manager
	case "email":
		return s.Email
	case "phone":
		return s.Phone
	case "address":
		return s.Address
	case "city":
		return s.City
	case "state":
		return s.State
	case "zipCode":
		return s.ZipCode
	case "country":
		return s.Country
	case "timezone":
		return s.Timezone
	case "isActive":
		return s.IsActive
	case "updatedAt":
		return s.UpdatedAt
	case "lastUpdated":
		return s.LastUpdated
	case "statusLabel":
		return s.StatusLabel
	default:
		return nil
	}
}

// WithDerived returns a copy with the display-only fields computed from the
// source fields. It depends only on s and now.
func (s Store) WithDerived(now time.Time) Store {
	s.StatusLabel = StatusLabel(s.IsActive)
	if s.UpdatedAt.IsZero() {
		s.LastUpdated = "Never"
	} else {
		s.LastUpdated = humanize.RelTime(s.UpdatedAt, now, "ago", "from now")
	}
	return s
}

// StatusLabel maps the active flag to its label.
func StatusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
