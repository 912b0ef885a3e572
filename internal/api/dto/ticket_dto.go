package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/spec-kit/helpdesk/internal/repository"
)

// TicketRequest is the shared payload for ticket creation and update. Owner
// and resolved flag are not part of the wire shape.
type TicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r TicketRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
	)
}

// TicketSubmitResponse acknowledges creation with the generated id.
type TicketSubmitResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticketId"`
}

// TicketResponse is one row of the admin listing, owner email joined in.
type TicketResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsResolved  bool      `json:"isResolved"`
	UserEmail   string    `json:"userEmail"`
}

// NewTicketResponse maps a joined repository row to the wire shape.
func NewTicketResponse(row repository.TicketWithOwner) TicketResponse {
	return TicketResponse{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		IsResolved:  row.IsResolved,
		UserEmail:   row.OwnerEmail,
	}
}
