package dto

import (
	"github.com/amintouch/ledger-api/internal/domain/booking"
	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// TicketRequest body for creating or replacing a ticket entry. Status
// defaults to Pending when omitted.
type TicketRequest struct {
	IssueDate     string             `json:"issueDate"` // YYYY-MM-DD
	PassengerName string             `json:"passengerName"`
	PNR           string             `json:"pnr"`
	TripType      string             `json:"tripType"` // "1 Way" | "Return"
	Status        string             `json:"status,omitempty"`
	FlightName    string             `json:"flightName"`
	From          string             `json:"from"`
	To            string             `json:"to"`
	DepartureDate string             `json:"departureDate"`
	ArrivalDate   string             `json:"arrivalDate"`
	ReturnDate    string             `json:"returnDate,omitempty"`
	FromIssuer    string             `json:"fromIssuer"`
	BDNumber      string             `json:"bdNumber,omitempty"`
	QRNumber      string             `json:"qrNumber,omitempty"`
	TicketCopy    *entity.TicketCopy `json:"ticketCopy,omitempty"`
}

// TicketResponse is a stored ticket entry. ManageBookingURL points the PNR at
// the airline's manage-booking page.
type TicketResponse struct {
	ID               string             `json:"id"`
	UserID           string             `json:"userId"`
	UserName         string             `json:"userName"`
	IssueDate        string             `json:"issueDate"`
	PassengerName    string             `json:"passengerName"`
	PNR              string             `json:"pnr"`
	TripType         string             `json:"tripType"`
	Status           string             `json:"status"`
	FlightName       string             `json:"flightName"`
	From             string             `json:"from"`
	To               string             `json:"to"`
	DepartureDate    string             `json:"departureDate"`
	ArrivalDate      string             `json:"arrivalDate"`
	ReturnDate       string             `json:"returnDate,omitempty"`
	FromIssuer       string             `json:"fromIssuer"`
	BDNumber         string             `json:"bdNumber,omitempty"`
	QRNumber         string             `json:"qrNumber,omitempty"`
	TicketCopy       *entity.TicketCopy `json:"ticketCopy,omitempty"`
	ManageBookingURL string             `json:"manageBookingUrl"`
}

// TicketListResponse a page of tickets.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Page    PageResponse     `json:"page"`
}

// ToTicketResponse maps the entity and resolves the booking link.
func ToTicketResponse(t entity.TicketEntry) TicketResponse {
	return TicketResponse{
		ID:               t.ID,
		UserID:           t.UserID,
		UserName:         t.UserName,
		IssueDate:        t.IssueDate,
		PassengerName:    t.PassengerName,
		PNR:              t.PNR,
		TripType:         t.TripType,
		Status:           t.Status,
		FlightName:       t.FlightName,
		From:             t.From,
		To:               t.To,
		DepartureDate:    t.DepartureDate,
		ArrivalDate:      t.ArrivalDate,
		ReturnDate:       t.ReturnDate,
		FromIssuer:       t.FromIssuer,
		BDNumber:         t.BDNumber,
		QRNumber:         t.QRNumber,
		TicketCopy:       t.TicketCopy,
		ManageBookingURL: booking.ManageURL(t.FlightName),
	}
}
