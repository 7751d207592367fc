package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintouch/ledger-api/internal/application/analytics"
	"github.com/amintouch/ledger-api/internal/application/auth"
	"github.com/amintouch/ledger-api/internal/application/cashflow"
	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/application/reports"
	"github.com/amintouch/ledger-api/internal/application/ticketing"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/infrastructure/memory"
	"github.com/amintouch/ledger-api/internal/infrastructure/notify"
	infrapdf "github.com/amintouch/ledger-api/internal/infrastructure/pdf"
	apphttp "github.com/amintouch/ledger-api/internal/interfaces/http"
)

// newAPI wires the full application against in-memory storage, the way main
// does.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()

	users, err := memory.SeedUsers()
	require.NoError(t, err)
	userRepo := memory.NewUserRepository(users)
	entryRepo := memory.NewCashFlowRepository()
	ticketRepo := memory.NewTicketRepository()

	relay := notify.NewRelay(16)
	dispatcher := notify.NewDispatcher(relay, nil, "AL AMIN", "admin@example.com")

	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}
	gen := infrapdf.NewMarotoReportGenerator("AMIN TOUCH", "QR")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewUseCase(userRepo, jwtCfg),
		EntryUC:     cashflow.NewUseCase(entryRepo, userRepo, dispatcher),
		TicketUC:    ticketing.NewUseCase(ticketRepo, userRepo, dispatcher),
		DashboardUC: analytics.NewDashboardUseCase(entryRepo, userRepo),
		ReportUC:    reports.NewUseCase(entryRepo, ticketRepo, userRepo, gen),
		Relay:       relay,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func login(t *testing.T, app *fiber.App, username, password, role string) dto.LoginResponse {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password, Role: role})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out
}

func authedRequest(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newEntryPayload() dto.EntryRequest {
	var amount dto.EntryRequest
	_ = json.Unmarshal([]byte(`{"date":"2024-03-15","type":"Income Add","amount":150,"description":"Ticket sale"}`), &amount)
	return amount
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth flow
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_LoginRejectsBadCredentials(t *testing.T) {
	app := newAPI(t)

	body, _ := json.Marshal(dto.LoginRequest{Username: "admin9197", Password: "wrong", Role: entity.RoleAdmin})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_StaffDirectoryIsAdminOnly(t *testing.T) {
	app := newAPI(t)
	admin := login(t, app, "admin9197", "Admin9197", entity.RoleAdmin)
	staff := login(t, app, "mahir", "Mahir3", entity.RoleStaff)

	resp := authedRequest(t, app, http.MethodGet, "/api/staff", admin.Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 3)

	forbidden := authedRequest(t, app, http.MethodGet, "/api/staff", staff.Token, nil)
	defer forbidden.Body.Close()
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entries
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EntryLifecycle(t *testing.T) {
	app := newAPI(t)
	rony := login(t, app, "ronytalukder", "@jead2016R", entity.RoleStaff)
	mahir := login(t, app, "mahir", "Mahir3", entity.RoleStaff)
	admin := login(t, app, "admin9197", "Admin9197", entity.RoleAdmin)

	// Staff creates an entry.
	resp := authedRequest(t, app, http.MethodPost, "/api/entries", rony.Token, newEntryPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.EntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "RONY TALUKDER", created.UserName)

	// Admins cannot create entries.
	adminCreate := authedRequest(t, app, http.MethodPost, "/api/entries", admin.Token, newEntryPayload())
	assert.Equal(t, http.StatusForbidden, adminCreate.StatusCode)
	adminCreate.Body.Close()

	// Another staff member cannot delete it.
	otherDelete := authedRequest(t, app, http.MethodDelete, "/api/entries/"+created.ID, mahir.Token, nil)
	assert.Equal(t, http.StatusForbidden, otherDelete.StatusCode)
	otherDelete.Body.Close()

	// Admin listing sees it; a year filter can exclude it.
	list := authedRequest(t, app, http.MethodGet, "/api/entries?year=2024", admin.Token, nil)
	require.Equal(t, http.StatusOK, list.StatusCode)
	var page dto.EntryListResponse
	require.NoError(t, json.NewDecoder(list.Body).Decode(&page))
	list.Body.Close()
	require.Len(t, page.Entries, 1)

	empty := authedRequest(t, app, http.MethodGet, "/api/entries?year=2019", admin.Token, nil)
	var emptyPage dto.EntryListResponse
	require.NoError(t, json.NewDecoder(empty.Body).Decode(&emptyPage))
	empty.Body.Close()
	assert.Empty(t, emptyPage.Entries)

	// The owner deletes it.
	del := authedRequest(t, app, http.MethodDelete, "/api/entries/"+created.ID, rony.Token, nil)
	assert.Equal(t, http.StatusOK, del.StatusCode)
	del.Body.Close()
}

func TestRouter_EntriesRequireToken(t *testing.T) {
	app := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_DashboardSummaryAndChart(t *testing.T) {
	app := newAPI(t)
	rony := login(t, app, "ronytalukder", "@jead2016R", entity.RoleStaff)
	admin := login(t, app, "admin9197", "Admin9197", entity.RoleAdmin)

	resp := authedRequest(t, app, http.MethodPost, "/api/entries", rony.Token, newEntryPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	summary := authedRequest(t, app, http.MethodGet, "/api/dashboard/summary", admin.Token, nil)
	require.Equal(t, http.StatusOK, summary.StatusCode)
	var sum dto.SummaryResponse
	require.NoError(t, json.NewDecoder(summary.Body).Decode(&sum))
	summary.Body.Close()
	assert.Equal(t, "Overall Summary", sum.Title)
	assert.Equal(t, "150", sum.Summary.IncomeTotal.String())

	// Monthly chart for a specific year.
	chart := authedRequest(t, app, http.MethodGet, "/api/dashboard/chart?timeframe=monthly&year=2024", admin.Token, nil)
	require.Equal(t, http.StatusOK, chart.StatusCode)
	var series dto.ChartResponse
	require.NoError(t, json.NewDecoder(chart.Body).Decode(&series))
	chart.Body.Close()
	assert.Equal(t, "monthly", series.Timeframe)
	require.Len(t, series.Series.Labels, 12)
	assert.Equal(t, "150", series.Series.Income[2].String(), "March bucket")

	// Daily without a month degrades to monthly; monthly without a year
	// degrades to yearly.
	degraded := authedRequest(t, app, http.MethodGet, "/api/dashboard/chart?timeframe=daily", admin.Token, nil)
	require.Equal(t, http.StatusOK, degraded.StatusCode)
	var degradedSeries dto.ChartResponse
	require.NoError(t, json.NewDecoder(degraded.Body).Decode(&degradedSeries))
	degraded.Body.Close()
	assert.Equal(t, "yearly", degradedSeries.Timeframe)
	assert.Equal(t, []string{"2024"}, degradedSeries.Series.Labels)

	bad := authedRequest(t, app, http.MethodGet, "/api/dashboard/chart?timeframe=weekly", admin.Token, nil)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	bad.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_InvoiceDownload(t *testing.T) {
	app := newAPI(t)
	rony := login(t, app, "ronytalukder", "@jead2016R", entity.RoleStaff)

	resp := authedRequest(t, app, http.MethodPost, "/api/entries", rony.Token, newEntryPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Staff invoice themselves; staffId query is ignored for staff.
	dl := authedRequest(t, app, http.MethodGet, "/api/reports/invoice?year=2024&month=03", rony.Token, nil)
	require.Equal(t, http.StatusOK, dl.StatusCode)
	assert.Equal(t, "application/pdf", dl.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Invoice_RONY_TALUKDER_March_2024.pdf"`, dl.Header.Get("Content-Disposition"))
	dl.Body.Close()

	// A wildcard month is rejected.
	bad := authedRequest(t, app, http.MethodGet, "/api/reports/invoice?year=2024&month=all", rony.Token, nil)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	bad.Body.Close()
}

func TestRouter_TicketReportNotFoundWhenEmpty(t *testing.T) {
	app := newAPI(t)
	admin := login(t, app, "admin9197", "Admin9197", entity.RoleAdmin)

	resp := authedRequest(t, app, http.MethodGet, "/api/reports/tickets", admin.Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tickets
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_TicketCreateAndSearch(t *testing.T) {
	app := newAPI(t)
	rony := login(t, app, "ronytalukder", "@jead2016R", entity.RoleStaff)
	admin := login(t, app, "admin9197", "Admin9197", entity.RoleAdmin)

	payload := dto.TicketRequest{
		IssueDate: "2024-03-15", PassengerName: "John Doe", PNR: "ABC123",
		TripType: entity.TripOneWay, FlightName: "Qatar Airways",
		From: "DOH", To: "DAC",
		DepartureDate: "2024-04-01", ArrivalDate: "2024-04-02", FromIssuer: "Main Office",
	}
	resp := authedRequest(t, app, http.MethodPost, "/api/tickets", rony.Token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.TicketResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, entity.TicketPending, created.Status)
	assert.NotEmpty(t, created.ManageBookingURL)

	search := authedRequest(t, app, http.MethodGet, "/api/tickets?q=abc123", admin.Token, nil)
	require.Equal(t, http.StatusOK, search.StatusCode)
	var page dto.TicketListResponse
	require.NoError(t, json.NewDecoder(search.Body).Decode(&page))
	search.Body.Close()
	require.Len(t, page.Tickets, 1)
	assert.Equal(t, created.ID, page.Tickets[0].ID)

	miss := authedRequest(t, app, http.MethodGet, fmt.Sprintf("/api/tickets?status=%s", entity.TicketConfirmed), admin.Token, nil)
	var missPage dto.TicketListResponse
	require.NoError(t, json.NewDecoder(miss.Body).Decode(&missPage))
	miss.Body.Close()
	assert.Empty(t, missPage.Tickets)
}
