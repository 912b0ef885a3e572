package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func newTestTicketService() (*TicketService, *memTicketRepo, *memUserRepo) {
	users := newMemUserRepo()
	tickets := newMemTicketRepo(users)
	svc := NewTicketService(TicketDependencies{TicketRepo: tickets})
	return svc, tickets, users
}

func TestSubmit(t *testing.T) {
	svc, tickets, _ := newTestTicketService()

	ticket, err := svc.Submit(context.Background(), "owner-1", TicketInput{
		Title:       "Broken login",
		Description: "Cannot sign in since yesterday",
		Category:    "account",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "owner-1", ticket.UserID)
	assert.False(t, ticket.IsResolved)
	assert.True(t, ticket.CreatedAt.Equal(ticket.UpdatedAt), "CreatedAt must equal UpdatedAt at creation")

	stored, err := tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.Title, stored.Title)
}

func TestUpdate_RefreshesUpdatedAtOnly(t *testing.T) {
	svc, tickets, _ := newTestTicketService()

	created, err := svc.Submit(context.Background(), "owner-1", TicketInput{
		Title:       "Original title",
		Description: "Original description",
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := svc.Update(context.Background(), "admin-1", created.ID, TicketInput{
		Title:       "New title",
		Description: "New description",
		Category:    "billing",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "CreatedAt must not move")
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt), "UpdatedAt must move forward")

	stored, err := tickets.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", stored.UserID, "owner must not change on update")
	assert.False(t, stored.IsResolved, "resolved flag must not change on update")
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, _, _ := newTestTicketService()

	_, err := svc.Update(context.Background(), "admin-1", "missing-id", TicketInput{
		Title:       "x",
		Description: "y",
	})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestDelete(t *testing.T) {
	svc, _, _ := newTestTicketService()

	created, err := svc.Submit(context.Background(), "owner-1", TicketInput{
		Title:       "To be removed",
		Description: "desc",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "admin-1", created.ID))

	listed, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	for _, row := range listed {
		assert.NotEqual(t, created.ID, row.ID)
	}

	err = svc.Delete(context.Background(), "admin-1", created.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListAll_JoinsOwnerEmail(t *testing.T) {
	svc, _, users := newTestTicketService()

	owner := &domain.User{ID: "owner-1", Email: "owner@example.com"}
	require.NoError(t, users.Create(context.Background(), owner))

	_, err := svc.Submit(context.Background(), owner.ID, TicketInput{
		Title:       "Listed",
		Description: "desc",
	})
	require.NoError(t, err)

	listed, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "owner@example.com", listed[0].OwnerEmail)
}
