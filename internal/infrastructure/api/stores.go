package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"go.uber.org/zap"
)

const storesPath = "/stores"

// Layouts the backend uses for updatedAt.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

type storeDTO struct {
	ID        flexString `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Manager   string     `json:"manager"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	ZipCode   string     `json:"zipCode"`
	Country   string     `json:"country"`
	Timezone  string     `json:"timezone"`
	IsActive  *bool      `json:"isActive"`
	Status    string     `json:"status"`
	UpdatedAt string     `json:"updatedAt"`
}

func (d storeDTO) toStore(now time.Time) inventory.Store {
	active := strings.EqualFold(d.Status, "ACTIVE")
	if d.IsActive != nil {
		active = *d.IsActive
	}
	s := inventory.Store{
		ID:        string(d.ID),
		Name:      d.Name,
		Code:      d.Code,
		Manager:   d.Manager,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
		Timezone:  d.Timezone,
		IsActive:  active,
		UpdatedAt: parseTimestamp(d.UpdatedAt),
	}
	return s.WithDerived(now)
}

type storeCreateRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Manager  string `json:"manager,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
	Country  string `json:"country,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	IsActive bool   `json:"isActive"`
	Status   string `json:"status"`
}

func newStoreCreateRequest(in inventory.StoreInput) storeCreateRequest {
	in = in.Trimmed()
	status := "INACTIVE"
	if in.IsActive {
		status = "ACTIVE"
	}
	return storeCreateRequest{
		Name:     in.Name,
		Code:     in.Code,
		Manager:  in.Manager,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Country:  in.Country,
		Timezone: in.Timezone,
		IsActive: in.IsActive,
		Status:   status,
	}
}

// StoreSource reads and creates stores through the backend.
type StoreSource struct {
	client *Client
	now    func() time.Time
	logger *zap.Logger
}

// NewStoreSource creates a store source. now defaults to time.Now.
func NewStoreSource(client *Client, now func() time.Time) *StoreSource {
	if now == nil {
		now = time.Now
	}
	return &StoreSource{client: client, now: now, logger: client.logger}
}

// FetchAll returns every store with its display fields derived.
func (s *StoreSource) FetchAll(ctx context.Context) ([]inventory.Store, error) {
	body, err := s.client.Get(ctx, storesPath)
	if err != nil {
		return nil, err
	}
	page := Normalize(body)
	if page.Malformed {
		s.logger.Warn("unexpected stores response shape", zap.Int("bytes", len(body)))
	}
	now := s.now()
	dtos := decodeItems[storeDTO](page.Items, s.logger)
	stores := make([]inventory.Store, 0, len(dtos))
	for _, d := range dtos {
		stores = append(stores, d.toStore(now))
	}
	return stores, nil
}

// CreateOne creates a store and returns the row the backend stored.
func (s *StoreSource) CreateOne(ctx context.Context, in inventory.StoreInput) (inventory.Store, error) {
	body, err := s.client.Post(ctx, storesPath, newStoreCreateRequest(in))
	if err != nil {
		return inventory.Store{}, err
	}
	var d storeDTO
	if err := json.Unmarshal(body, &d); err != nil {
		return inventory.Store{}, &Error{Message: "The server returned an unexpected response.", Err: err}
	}
	return d.toStore(s.now()), nil
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
