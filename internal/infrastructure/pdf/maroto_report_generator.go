// Package pdf renders the downloadable documents with Maroto v2.
//
// Income invoice (A4 portrait):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name        │  Income Report - {period}    │
//	│  Staff Name / Staff Username                                │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Date | Type | Description | Amount                  │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Total Daily Income / Total OTP Cash / GRAND TOTAL  │
//	└─────────────────────────────────────────────────────────────┘
//
// Ticket report (A4 landscape): one row per ticket, staff column only on
// admin-originated reports.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 150, Blue: 243}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 40, Green: 40, Blue: 40}
)

var amountPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implements reports.Generator using Maroto v2.
type MarotoReportGenerator struct {
	company  string // header branding, e.g. "AMIN TOUCH"
	currency string // amount label, e.g. "QR"
}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator(company, currency string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company, currency: currency}
}

// Invoice renders the income invoice for one staff member over a period.
// The totals footer comes straight from the summary fold, so the grand total
// may be negative.
func (g *MarotoReportGenerator) Invoice(user entity.User, entries []entity.CashFlowEntry, period string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Income Report - "+period, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.invoiceHeaderRow(user, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(invoiceTableHeaderRow(g.currency))
	for _, r := range invoiceDetailRows(entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRows(ledger.Summarize(entries))...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// TicketReport renders the landscape ticket table. includeStaff adds the
// staff column for admin-originated reports.
func (g *MarotoReportGenerator) TicketReport(tickets []entity.TicketEntry, title string, includeStaff bool, generatedOn time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(
		col.New(8).Add(
			text.New(g.company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorDark, Top: 9}),
		),
		col.New(4).Add(
			text.New("Report generated on: "+generatedOn.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(ticketTableHeaderRow(includeStaff))
	for _, r := range ticketDetailRows(tickets, includeStaff) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate ticket report: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Invoice sections ──────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) invoiceHeaderRow(user entity.User, period string) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Staff Name: "+user.Name, props.Text{Size: 9, Top: 10, Color: colorDark}),
			text.New("Staff Username: "+user.Username, props.Text{Size: 9, Top: 16, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("INCOME REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	)
}

func invoiceTableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Type", 2, align.Left),
		h("Description", 6, align.Left),
		h("Amount ("+currency+")", 2, align.Right),
	)
}

func invoiceDetailRows(entries []entity.CashFlowEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		description := e.Description
		if entity.IsPaymentType(e.Type) && e.Recipient != "" {
			description += " (To: " + e.Recipient + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(e.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(e.Type, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatAmount(e.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoReportGenerator) totalsRows(s ledger.Summary) []core.Row {
	value := func(d decimal.Decimal) string { return formatAmount(d) + " " + g.currency }

	return []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Total Daily Income:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(value(s.IncomeTotal), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1})),
		),
		row.New(6).Add(
			col.New(9).Add(text.New("Total OTP Cash:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(value(s.OTPTotal), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1})),
		),
		row.New(9).Add(
			col.New(9).Add(text.New("GRAND TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
			})),
			col.New(3).Add(text.New(value(s.GrandTotal()), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
			})),
		),
	}
}

// ── Ticket report sections ────────────────────────────────────────────────────

func ticketTableHeaderRow(includeStaff bool) core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	if includeStaff {
		return row.New(8).Add(
			h("Staff", 2), h("Issue Date", 1), h("Passenger", 2), h("PNR", 1),
			h("Route", 2), h("Airline", 1), h("Departure", 1), h("Arrival", 1), h("Issuer", 1),
		)
	}
	return row.New(8).Add(
		h("Issue Date", 1), h("Passenger", 2), h("PNR", 1), h("Route", 3),
		h("Airline", 2), h("Departure", 1), h("Arrival", 1), h("Issuer", 1),
	)
}

func ticketDetailRows(tickets []entity.TicketEntry, includeStaff bool) []core.Row {
	cell := func(v string, size int) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 7.5, Top: 1, Left: 1}))
	}
	result := make([]core.Row, 0, len(tickets))
	for _, t := range tickets {
		route := t.From + " -> " + t.To
		if includeStaff {
			result = append(result, row.New(7).Add(
				cell(t.UserName, 2), cell(t.IssueDate, 1), cell(t.PassengerName, 2), cell(t.PNR, 1),
				cell(route, 2), cell(t.FlightName, 1), cell(t.DepartureDate, 1), cell(t.ArrivalDate, 1), cell(t.FromIssuer, 1),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			cell(t.IssueDate, 1), cell(t.PassengerName, 2), cell(t.PNR, 1), cell(route, 3),
			cell(t.FlightName, 2), cell(t.DepartureDate, 1), cell(t.ArrivalDate, 1), cell(t.FromIssuer, 1),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount renders a decimal with two places and thousands separators.
// Ex: 25000 → "25,000.00"
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprintf("%.2f", f)
}
