package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/", WithToken("tkn"), WithTimeout(2*time.Second))
}

func TestClientSendsHeaders(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.Get(context.Background(), "stores")
	require.NoError(t, err)
}

func TestClientRejectsOversizedBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"s-1","name":"Downtown"}]`)
	})
	client.maxBody = 16

	_, err := client.Get(context.Background(), "stores")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "response too large", apiErr.Message)
}

func TestClientAcceptsBodyAtLimit(t *testing.T) {
	const body = `[]`
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
	client.maxBody = int64(len(body))

	data, err := client.Get(context.Background(), "stores")

	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestStoreSourceFetchAllEnvelope(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"content":[{"id":"s-1","name":"Downtown","code":"DT","city":"Austin","status":"ACTIVE","updatedAt":"2024-03-10T09:00:00"}],"totalElements":1}`)
	})

	rows, err := NewStoreSource(client, fixedNow).FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s-1", rows[0].ID)
	assert.True(t, rows[0].IsActive)
	assert.Equal(t, "Active", rows[0].StatusLabel)
	assert.Equal(t, "3 hours ago", rows[0].LastUpdated)
}

func TestStoreSourceFetchAllBareArray(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":"Airport","isActive":false},{"id":2,"name":"Mall","isActive":true}]`)
	})

	rows, err := NewStoreSource(client, fixedNow).FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Inactive", rows[0].StatusLabel)
	assert.Equal(t, "Never", rows[0].LastUpdated)
	assert.Equal(t, "2", rows[1].ID)
}

func TestStoreSourceFetchAllMalformedIsEmpty(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	rows, err := NewStoreSource(client, fixedNow).FetchAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStoreSourceCreateOne(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Mall","code":"ML","city":"Austin","isActive":true,"status":"ACTIVE"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"srv-9","name":"Mall","code":"ML","city":"Austin","status":"ACTIVE","updatedAt":"2024-03-10T12:00:00"}`)
	})

	row, err := NewStoreSource(client, fixedNow).CreateOne(context.Background(), inventory.StoreInput{
		Name: " Mall ", Code: "ML", City: "Austin", IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-9", row.ID)
	assert.Equal(t, "Active", row.StatusLabel)
	assert.Equal(t, "now", row.LastUpdated)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message", http.StatusConflict, `{"message":"Store code already exists"}`, "Store code already exists"},
		{"nested error", http.StatusBadRequest, `{"error":{"message":"Invalid email"}}`, "Invalid email"},
		{"error string", http.StatusBadRequest, `{"error":"Bad Request"}`, "Bad Request"},
		{"errors list", http.StatusUnprocessableEntity, `{"errors":[{"message":"Name is required"}]}`, "Name is required"},
		{"detail", http.StatusForbidden, `{"detail":"Access denied"}`, "Access denied"},
		{"status text", http.StatusBadGateway, `<html>oops</html>`, "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := NewStoreSource(client, fixedNow).FetchAll(context.Background())

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, Message(err))
			assert.Equal(t, tt.want, usecase.UserMessage(&usecase.FetchError{Err: err}))
		})
	}
}

func TestTransportErrorUsesTransportText(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Get(context.Background(), "/stores")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Contains(t, Message(err), "connection refused")
}

func TestCancelledRequestUnwrapsContextError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/stores")

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMessageFallsBackToGeneric(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, genericMessage, Message(&Error{}))
}

func TestCatalogSources(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			_, _ = io.WriteString(w, `{"content":[{"id":"p1","sku":"TS-1","name":"Tee","unitPrice":20,"unitCost":8,"casePackSize":12,"supplierName":"Acme","stock":4,"status":"ACTIVE"}]}`)
		case "/api/purchase-orders":
			_, _ = io.WriteString(w, `[{"id":"o1","poNumber":"PO-1","itemCount":3,"supplierName":"Acme","storeName":"Downtown","totalAmount":99.5,"status":"SENT","priority":"HIGH","orderDate":"2024-03-01"}]`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	products, err := NewProductSource(client).FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []inventory.Product{{
		ID: "p1", SKU: "TS-1", Name: "Tee", SalePrice: 20, CostPrice: 8, PackSize: 12,
		Supplier: "Acme", Stock: 4, StockStatus: inventory.StockLow, Status: "ACTIVE",
	}}, products)

	orders, err := NewPurchaseOrderSource(client).FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []inventory.PurchaseOrder{{
		ID: "o1", PONumber: "PO-1", ItemCount: 3, Supplier: "Acme", Store: "Downtown",
		Amount: 99.5, Status: "SENT", Priority: "HIGH", OrderDate: "2024-03-01",
	}}, orders)

	_, err = NewProductSource(client).CreateOne(ctx, struct{}{})
	assert.ErrorIs(t, err, usecase.ErrCreateUnsupported)
	_, err = NewPurchaseOrderSource(client).CreateOne(ctx, struct{}{})
	assert.ErrorIs(t, err, usecase.ErrCreateUnsupported)
}
