// Package app wires settings, sources and controllers into a runnable
// console or command-line session.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/application/settings"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/infrastructure/api"
	"github.com/tesso57/shelfdesk/internal/infrastructure/logging"
	"github.com/tesso57/shelfdesk/internal/infrastructure/prefs"
	"github.com/tesso57/shelfdesk/internal/infrastructure/seed"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/update"
	"go.uber.org/zap"
)

// App holds one controller per list screen.
type App struct {
	Settings       settings.Settings
	Logger         *zap.Logger
	Products       *usecase.ListController[inventory.Product, struct{}]
	PurchaseOrders *usecase.ListController[inventory.PurchaseOrder, struct{}]
	Stores         *usecase.ListController[inventory.Store, inventory.StoreInput]
	Orders         *usecase.ListController[inventory.Order, struct{}]
	Dashboard      usecase.DashboardService

	prefs    *prefs.Manager
	closeLog func()
}

// Option customizes New.
type Option func(*options)

type options struct {
	logger *zap.Logger
	now    func() time.Time
}

// WithLogger replaces the file logger built from settings.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the clock used for relative timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds the sources each screen is configured to read from.
func New(cfg settings.Settings, opts ...Option) (*App, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Settings: cfg, closeLog: func() {}}
	if o.logger != nil {
		a.Logger = o.logger
	} else {
		logger, closeLog, err := logging.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		a.Logger, a.closeLog = logger, closeLog
	}

	var client *api.Client
	if cfg.UsesAPI() {
		client = api.NewClient(cfg.API.BaseURL,
			api.WithToken(cfg.API.Token),
			api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
			api.WithLogger(a.Logger.Named("api")),
		)
	}

	products, err := productSource(cfg.Sources.Products, client)
	if err != nil {
		return nil, fmt.Errorf("products source: %w", err)
	}
	purchaseOrders, err := purchaseOrderSource(cfg.Sources.PurchaseOrders, client)
	if err != nil {
		return nil, fmt.Errorf("purchase orders source: %w", err)
	}
	stores, err := storeSource(cfg.Sources.Stores, client, o.now)
	if err != nil {
		return nil, fmt.Errorf("stores source: %w", err)
	}
	orders, err := seed.OrderSource()
	if err != nil {
		return nil, fmt.Errorf("orders source: %w", err)
	}

	a.Products = usecase.NewListController(products, screens.ProductList(a.Logger.Named("products")))
	a.PurchaseOrders = usecase.NewListController(purchaseOrders, screens.PurchaseOrderList(a.Logger.Named("purchase-orders")))
	a.Stores = usecase.NewListController(stores, screens.StoreList(a.Logger.Named("stores")))
	a.Orders = usecase.NewListController(orders, screens.OrderList(a.Logger.Named("orders")))
	a.Dashboard = usecase.DashboardService{
		Products:       products,
		PurchaseOrders: purchaseOrders,
		Stores:         stores,
		Orders:         orders,
		Logger:         a.Logger.Named("dashboard"),
	}
	if cfg.PrefsFile != "" {
		a.prefs = prefs.NewManager(cfg.PrefsFile)
	}

	a.Logger.Info("app ready",
		zap.String("products", cfg.Sources.Products),
		zap.String("purchase_orders", cfg.Sources.PurchaseOrders),
		zap.String("stores", cfg.Sources.Stores),
	)
	return a, nil
}

func productSource(kind string, client *api.Client) (usecase.Source[inventory.Product, struct{}], error) {
	if kind == settings.SourceAPI {
		return api.NewProductSource(client), nil
	}
	return seed.ProductSource()
}

func purchaseOrderSource(kind string, client *api.Client) (usecase.Source[inventory.PurchaseOrder, struct{}], error) {
	if kind == settings.SourceAPI {
		return api.NewPurchaseOrderSource(client), nil
	}
	return seed.PurchaseOrderSource()
}

func storeSource(kind string, client *api.Client, now func() time.Time) (usecase.Source[inventory.Store, inventory.StoreInput], error) {
	if kind == settings.SourceAPI {
		return api.NewStoreSource(client, now), nil
	}
	return seed.StoreSource(now)
}

// Panes returns the console panes in navigation order.
func (a *App) Panes() []presenter.Pane {
	return []presenter.Pane{
		presenter.NewListPane(screens.Products, a.Products, screens.ProductActions),
		presenter.NewListPane(screens.PurchaseOrders, a.PurchaseOrders, screens.PurchaseOrderActions),
		presenter.NewListPane(screens.Stores, a.Stores, screens.StoreActions).
			WithForm(screens.StoreFormFields, screens.StoreInputFrom),
		presenter.NewListPane(screens.Orders, a.Orders, screens.OrderActions),
	}
}

// RunConsole runs the interactive console until the user quits or ctx ends.
func (a *App) RunConsole(ctx context.Context) error {
	deps := update.Deps{
		Ctx:       ctx,
		Dashboard: a.Dashboard,
		Logger:    a.Logger.Named("tui"),
	}
	if a.prefs != nil {
		deps.Prefs = prefsStore{a.prefs}
	}

	model := tui.NewModel(a.Settings, a.Panes(), deps)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Close releases the preference database and flushes the log.
func (a *App) Close() error {
	var err error
	if a.prefs != nil {
		err = a.prefs.Close()
	}
	a.closeLog()
	return err
}

// prefsStore adapts the SQLite manager to the console.
type prefsStore struct {
	m *prefs.Manager
}

func (s prefsStore) Load(screen string) (table.Sort, []string, error) {
	p, err := s.m.Load(screen)
	return p.Sort, p.Hidden, err
}

func (s prefsStore) Save(screen string, sort table.Sort, hidden []string) error {
	return s.m.Save(screen, prefs.TablePrefs{Sort: sort, Hidden: hidden})
}
