// Command shelfdesk is the retail inventory console.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/tesso57/shelfdesk/internal/app"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/infrastructure/config"
	"github.com/tesso57/shelfdesk/internal/presentation/report"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

var version = "dev"

type globals struct {
	ctx    context.Context
	config *config.Store
	out    io.Writer
}

type cli struct {
	Config string `help:"Config file path." type:"path" env:"SHELFDESK_CONFIG"`

	Console     consoleCmd     `cmd:"" default:"1" help:"Open the interactive console."`
	List        listCmd        `cmd:"" help:"Print one screen as a table."`
	CreateStore createStoreCmd `cmd:"" name:"create-store" help:"Create a store."`
	Source      sourceCmd      `cmd:"" help:"Switch a screen between the demo data and the backend."`
	Version     versionCmd     `cmd:"" help:"Print the version."`
}

type consoleCmd struct{}

func (consoleCmd) Run(g *globals) error {
	a, err := app.New(g.config.Settings)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return a.RunConsole(g.ctx)
}

type listCmd struct {
	Screen string            `arg:"" help:"Screen to print (${screens})."`
	Search string            `short:"s" help:"Only rows containing this text."`
	Filter map[string]string `short:"f" help:"Filter selection as key=value. Repeatable."`
	Sort   string            `help:"Column key to sort by."`
	Desc   bool              `help:"Sort descending."`
	Limit  int               `short:"n" help:"Print at most this many rows." default:"0"`
	Offset int               `help:"Skip this many rows." default:"0"`
}

func (c *listCmd) Run(g *globals) error {
	a, err := app.New(g.config.Settings)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	res, err := a.List(g.ctx, c.Screen, app.ListQuery{
		Search:  c.Search,
		Filters: c.Filter,
		Sort:    table.Sort{Key: c.Sort, Desc: c.Desc && c.Sort != ""},
		Offset:  c.Offset,
		Limit:   c.Limit,
	})
	if err != nil {
		return cliError(err)
	}
	if len(res.Rows) > 0 {
		fmt.Fprintln(g.out, report.Table(report.DefaultStyle, res.Headers, res.Rows, 0))
	}
	fmt.Fprintln(g.out, report.Summary(len(res.Rows), res.Visible, res.Total))
	return nil
}

type createStoreCmd struct {
	Name     string `arg:"" help:"Store name."`
	Code     string `arg:"" help:"Unique store code."`
	Manager  string `help:"Store manager."`
	Email    string `help:"Contact email."`
	Phone    string `help:"Contact phone."`
	Address  string `help:"Street address."`
	City     string `help:"City."`
	State    string `help:"State or province."`
	Zip      string `help:"Zip or postal code."`
	Country  string `help:"Country."`
	Timezone string `help:"IANA timezone, e.g. America/Chicago."`
	Inactive bool   `help:"Create the store as inactive."`
}

func (c *createStoreCmd) Run(g *globals) error {
	a, err := app.New(g.config.Settings)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	created, err := a.CreateStore(g.ctx, inventory.StoreInput{
		Name:     c.Name,
		Code:     c.Code,
		Manager:  c.Manager,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		State:    c.State,
		ZipCode:  c.Zip,
		Country:  c.Country,
		Timezone: c.Timezone,
		IsActive: !c.Inactive,
	})
	if err != nil {
		return cliError(err)
	}
	fmt.Fprintln(g.out, report.Details(report.DefaultStyle, []report.Field{
		{Label: "ID", Value: created.ID},
		{Label: "Name", Value: created.Name},
		{Label: "Code", Value: created.Code},
		{Label: "Status", Value: created.StatusLabel},
	}, 0))
	return nil
}

type sourceCmd struct {
	Screen string `arg:"" help:"products, purchase-orders or stores."`
	Kind   string `arg:"" enum:"mock,api" help:"mock or api."`
}

func (c *sourceCmd) Run(g *globals) error {
	id, err := app.ParseScreen(c.Screen)
	if err != nil {
		return err
	}
	if err := g.config.SetSource(string(id), c.Kind); err != nil {
		return err
	}
	fmt.Fprintf(g.out, "%s now reads from %s (%s)\n", id.Title(), c.Kind, g.config.Path())
	return nil
}

type versionCmd struct{}

func (versionCmd) Run(g *globals) error {
	fmt.Fprintln(g.out, "shelfdesk", version)
	return nil
}

// cliError reduces controller errors to the line a user should see.
func cliError(err error) error {
	msg := usecase.UserMessage(err)
	if msg == "" {
		return err
	}
	return errors.New(msg)
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("shelfdesk"),
		kong.Description("Browse and manage retail inventory."),
		kong.UsageOnError(),
		kong.Vars{"screens": strings.Join(screens.Names(screens.Lists), ", ")},
	)

	store, err := config.Load(c.Config)
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&globals{ctx: ctx, config: store, out: os.Stdout})
	stop()
	kctx.FatalIfErrorf(err)
}
