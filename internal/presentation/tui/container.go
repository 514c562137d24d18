// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tesso57/shelfdesk/internal/application/settings"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/report"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/shelfdesk/internal/presentation/tui/components/main"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/modal"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/statcard"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/metrics"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/textutil"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/update"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Width:   m.state.Width,
		Height:  m.state.Height,
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  update.FooterContent(m.state),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	width, height := update.SidebarSize(m.state)
	return sidebar.Props{
		View:   m.state.ScreenList.View(),
		Width:  width,
		Height: height,
		Title:  "Shelfdesk",
		Note:   sourceNote(m.settings),
		Accent: m.state.Theme.Accent,
		Muted:  m.state.Theme.Muted,
		Border: m.state.Theme.Border,
	}
}

// sourceNote tells whether the console shows demo data or a backend.
func sourceNote(cfg settings.Settings) string {
	if !cfg.UsesAPI() {
		return "demo data"
	}
	if u, err := url.Parse(cfg.API.BaseURL); err == nil && u.Host != "" {
		return "api " + u.Host
	}
	return "api"
}

func (m *Model) buildHeaderProps() header.Props {
	st := m.state
	width, _ := update.MainSize(st)
	props := header.Props{
		Visible: true,
		Title:   st.Screen.Title(),
		Accent:  st.Theme.Accent,
		Muted:   st.Theme.Muted,
		Danger:  st.Theme.Danger,
	}

	pane, ok := st.ActivePane()
	if !ok {
		if st.Dashboard != nil && st.DashboardErr != nil {
			props.Banner = textutil.Line("Refresh failed: "+usecase.UserMessage(st.DashboardErr)+" (showing previous data)", width)
		}
		return props
	}

	if pane.Mounted() && !pane.Loading() {
		visible, total := pane.Counts()
		props.Counts = report.Summary(visible, visible, total)
	}
	props.Search = textutil.Line(pane.SearchText(), width/2)
	for i, f := range pane.Filters() {
		props.Filters = append(props.Filters, header.Chip{
			Label:   f.Label,
			Value:   f.ValueLabel,
			Active:  f.Active,
			Focused: i == st.FilterFocus,
		})
	}
	if msg := pane.ErrMessage(); msg != "" && pane.DisplayState() != table.StateError {
		props.Banner = textutil.Line("Refresh failed: "+msg+" (showing previous data)", width)
	}
	return props
}

func (m *Model) buildMainProps() mainview.Props {
	st := m.state
	width, height := update.MainSize(st)

	var body, notice string
	if pane, ok := st.ActivePane(); ok {
		body, notice = buildListBody(st, pane)
	} else {
		body, notice = buildDashboardBody(st, width-metrics.MainLeftPadding)
	}
	if st.Session == state.SearchView {
		body = strings.TrimSuffix(st.Search.View()+"\n"+body, "\n")
	}

	return mainview.Props{
		Width:  width,
		Height: height,
		Body:   body,
		Notice: notice,
	}
}

// buildListBody returns the table, or a notice when there is none to show.
func buildListBody(st *state.ModelState, pane presenter.Pane) (body, notice string) {
	danger := lipgloss.NewStyle().Foreground(st.Theme.Danger)
	muted := lipgloss.NewStyle().Foreground(st.Theme.Muted)
	noun := strings.ToLower(pane.Title())

	switch pane.DisplayState() {
	case table.StateLoading:
		line := fmt.Sprintf("%s Loading %s...", st.Spinner.View(), noun)
		if len(st.Table.Rows()) > 0 {
			return line + "\n" + st.Table.View(), ""
		}
		return "", line
	case table.StateError:
		return "", danger.Render(fmt.Sprintf("Could not load %s: %s", noun, pane.ErrMessage())) +
			"\n\n" + muted.Render("Press r to retry.")
	case table.StateNoData:
		msg := fmt.Sprintf("No %s yet.", noun)
		if pane.CanCreate() {
			msg += " Press n to add one."
		}
		return "", muted.Render(msg)
	case table.StateNoMatch:
		return "", muted.Render("Nothing matches the current search or filters.") +
			"\n" + muted.Render("Press c to clear them.")
	default:
		return st.Table.View(), ""
	}
}

func buildDashboardBody(st *state.ModelState, width int) (body, notice string) {
	muted := lipgloss.NewStyle().Foreground(st.Theme.Muted)
	d := st.Dashboard
	switch {
	case d == nil && st.DashboardLoading:
		return "", fmt.Sprintf("%s Loading dashboard...", st.Spinner.View())
	case d == nil && st.DashboardErr != nil:
		return "", lipgloss.NewStyle().Foreground(st.Theme.Danger).
			Render("Could not load the dashboard: "+usecase.UserMessage(st.DashboardErr)) +
			"\n\n" + muted.Render("Press r to retry.")
	case d == nil:
		return "", ""
	}

	s := d.Stats
	cards := statcard.Render(statcard.Props{
		Cards: []statcard.Card{
			{Label: "Products", Value: humanize.Comma(int64(s.Products)), Note: fmt.Sprintf("%d low · %d out", s.LowStock, s.OutOfStock)},
			{Label: "Open purchase orders", Value: humanize.Comma(int64(s.OpenOrders)), Note: screens.Currency(s.OpenOrderValue)},
			{Label: "Stores", Value: humanize.Comma(int64(s.Stores)), Note: fmt.Sprintf("%d active", s.ActiveStores)},
			{Label: "Sales", Value: humanize.Comma(int64(s.Sales)), Note: screens.Currency(s.Revenue)},
		},
		Width:  width,
		Accent: st.Theme.Accent,
		Muted:  st.Theme.Muted,
		Border: st.Theme.Border,
	})

	parts := []string{cards}
	if st.DashboardLoading {
		parts = append(parts, fmt.Sprintf("%s Refreshing...", st.Spinner.View()))
	}
	if len(d.RecentOrders) > 0 {
		rows := make([][]string, len(d.RecentOrders))
		for i, o := range d.RecentOrders {
			rows[i] = []string{o.PONumber, o.Supplier, screens.Enum(o.Status), screens.Currency(o.Amount), screens.Date(o.OrderDate)}
		}
		parts = append(parts, muted.Render("Recent purchase orders"),
			report.Table(st.Theme.Report(), []string{"PO", "Supplier", "Status", "Amount", "Ordered"}, rows, width))
	}
	if len(d.RecentSales) > 0 {
		rows := make([][]string, len(d.RecentSales))
		for i, o := range d.RecentSales {
			rows[i] = []string{o.OrderNumber, o.Customer, screens.Enum(o.Status), screens.Currency(o.Total), screens.DateTime(o.PlacedAt)}
		}
		parts = append(parts, muted.Render("Recent sales"),
			report.Table(st.Theme.Report(), []string{"Order", "Customer", "Status", "Total", "Placed"}, rows, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...), ""
}

func (m *Model) buildModalProps() modal.Props {
	st := m.state
	base := modal.Props{
		Visible: true,
		Width:   st.Width,
		Height:  st.Height,
		Border:  st.Theme.Border,
		Accent:  st.Theme.Accent,
	}

	switch st.Session {
	case state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
		return base
	case state.ActionsView:
		base.Kind = modal.Actions
		base.Title = "Actions"
		base.Body = st.ActionList.View()
		return base
	case state.DetailView:
		base.Kind = modal.Details
		base.Title = "Details"
		base.Body = report.Details(st.Theme.Report(), st.Details, max(st.Width*2/3, metrics.ModalMinWidth))
		return base
	case state.CreateView:
		base.Kind = modal.Create
		base.Title = "New " + singular(st.Screen)
		base.Body = buildFormBody(st)
		return base
	}
	if st.Help.ShowAll {
		base.Kind = modal.Help
		base.Title = "Keys"
		base.Body = st.Help.View(&st.Keys)
		return base
	}
	return modal.Props{Visible: false}
}

func buildFormBody(st *state.ModelState) string {
	labelWidth := 0
	for _, f := range st.FormFields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label)+2)
	}
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(st.Theme.Muted)
	focused := label.Foreground(st.Theme.Accent)

	lines := make([]string, 0, len(st.Form)+2)
	for i, f := range st.FormFields {
		if i >= len(st.Form) {
			break
		}
		text := f.Label
		if f.Required {
			text += "*"
		}
		style := label
		if i == st.FormFocus {
			style = focused
		}
		lines = append(lines, style.Render(text)+st.Form[i].View())
	}
	switch {
	case st.FormErr != "":
		lines = append(lines, "", lipgloss.NewStyle().Foreground(st.Theme.Danger).Render(st.FormErr))
	case st.Submitting:
		lines = append(lines, "", st.Spinner.View()+" Saving...")
	}
	return strings.Join(lines, "\n")
}

func singular(id screens.ID) string {
	switch id {
	case screens.Stores:
		return "store"
	case screens.Products:
		return "product"
	case screens.PurchaseOrders:
		return "purchase order"
	case screens.Orders:
		return "order"
	default:
		return strings.ToLower(id.Title())
	}
}
