package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// TicketService coordinates ticket workflows. Authorization (admin gating)
// happens at the route layer; the service assumes it is called legitimately.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// TicketInput describes the mutable ticket fields shared by create and
// update. Owner and resolved flag are never settable through it.
type TicketInput struct {
	Title       string
	Description string
	Category    string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit creates a ticket owned by the caller with CreatedAt == UpdatedAt.
func (s *TicketService) Submit(ctx context.Context, userID string, input TicketInput) (*domain.Ticket, error) {
	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsResolved:  false,
		UserID:      userID,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketCreated, userID, events.TicketCreatedPayload{
		TicketID: ticket.ID,
		Title:    ticket.Title,
		Category: ticket.Category,
	})
	return ticket, nil
}

// ListAll returns every ticket with the owner email joined in.
func (s *TicketService) ListAll(ctx context.Context) ([]repository.TicketWithOwner, error) {
	tickets, err := s.tickets.ListWithOwner(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Update mutates title, description and category and refreshes UpdatedAt.
// CreatedAt, owner and resolved flag are left untouched.
func (s *TicketService) Update(ctx context.Context, actorID, id string, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, apperrors.MapError(err)
	}

	ticket.Title = input.Title
	ticket.Description = input.Description
	ticket.Category = input.Category
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketUpdated, actorID, events.TicketUpdatedPayload{
		TicketID: ticket.ID,
		Title:    ticket.Title,
	})
	return ticket, nil
}

// Delete removes a ticket.
func (s *TicketService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("ticket", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketDeleted, actorID, events.TicketDeletedPayload{TicketID: id})
	return nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
