// Package ticketing holds the use cases around travel-ticket sale records.
package ticketing

import (
	"github.com/google/uuid"

	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/ledger"
	"github.com/amintouch/ledger-api/internal/domain/repository"
)

// Notifier is the minimal contract toward the notification relay.
type Notifier interface {
	TicketAdded(entity.TicketEntry)
}

// UseCase ticket entry CRUD with ownership enforcement.
type UseCase struct {
	tickets  repository.TicketRepository
	users    repository.UserRepository
	notifier Notifier
}

// NewUseCase builds the use case. notifier may be nil.
func NewUseCase(tickets repository.TicketRepository, users repository.UserRepository, notifier Notifier) *UseCase {
	return &UseCase{tickets: tickets, users: users, notifier: notifier}
}

// Add validates and stores a new ticket owned by userID, then fires the
// new-entry notification. Status defaults to Pending.
func (uc *UseCase) Add(userID string, in dto.TicketRequest) (*dto.TicketResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	t := fromRequest(in)
	t.ID = uuid.New().String()
	t.UserID = user.ID
	t.UserName = user.Name
	if t.Status == "" {
		t.Status = entity.TicketPending
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := uc.tickets.Create(&t); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.TicketAdded(t)
	}

	out := dto.ToTicketResponse(t)
	return &out, nil
}

// Update replaces the ticket's mutable fields. Only the owning staff member
// may update.
func (uc *UseCase) Update(actorID, ticketID string, in dto.TicketRequest) (*dto.TicketResponse, error) {
	existing, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.UserID != actorID {
		return nil, domain.ErrForbidden
	}

	updated := fromRequest(in)
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.UserName = existing.UserName
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := uc.tickets.Update(&updated); err != nil {
		return nil, err
	}

	out := dto.ToTicketResponse(updated)
	return &out, nil
}

// Delete removes the ticket. Only the owning staff member may delete.
func (uc *UseCase) Delete(actorID, ticketID string) error {
	existing, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if existing.UserID != actorID {
		return domain.ErrForbidden
	}
	return uc.tickets.Delete(ticketID)
}

// ListByUser returns a page of the user's tickets, most recent issue date
// first.
func (uc *UseCase) ListByUser(userID string, page dto.PageRequest) (*dto.TicketListResponse, error) {
	tickets, err := uc.tickets.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toTicketList(tickets, page), nil
}

// ListAll returns a filtered page across all staff.
func (uc *UseCase) ListAll(f ledger.TicketFilter, page dto.PageRequest) (*dto.TicketListResponse, error) {
	tickets, err := uc.tickets.ListAll()
	if err != nil {
		return nil, err
	}
	return toTicketList(ledger.FilterTickets(tickets, f), page), nil
}

func fromRequest(in dto.TicketRequest) entity.TicketEntry {
	return entity.TicketEntry{
		IssueDate:     in.IssueDate,
		PassengerName: in.PassengerName,
		PNR:           in.PNR,
		TripType:      in.TripType,
		Status:        in.Status,
		FlightName:    in.FlightName,
		From:          in.From,
		To:            in.To,
		DepartureDate: in.DepartureDate,
		ArrivalDate:   in.ArrivalDate,
		ReturnDate:    in.ReturnDate,
		FromIssuer:    in.FromIssuer,
		BDNumber:      in.BDNumber,
		QRNumber:      in.QRNumber,
		TicketCopy:    in.TicketCopy,
	}
}

func toTicketList(tickets []entity.TicketEntry, page dto.PageRequest) *dto.TicketListResponse {
	page.DefaultPage()
	total := len(tickets)

	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	out := make([]dto.TicketResponse, 0, end-start)
	for _, t := range tickets[start:end] {
		out = append(out, dto.ToTicketResponse(t))
	}
	return &dto.TicketListResponse{
		Tickets: out,
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
}
