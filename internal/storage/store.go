// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/vasooly/vasooly/internal/models"
)

// ErrNotFound is returned (wrapped with the missing ID) when a bill or
// participant does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateBill persists a new bill together with its participants.
	// Empty bill and participant IDs are populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID, participants in split order.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills returns all bills, newest first.
	ListBills(ctx context.Context) ([]*models.Bill, error)

	// DeleteBill removes a bill and its participants.
	DeleteBill(ctx context.Context, billID string) error

	// SetParticipantPaid marks a participant's share as paid or unpaid and
	// returns the updated bill.
	SetParticipantPaid(ctx context.Context, billID, participantID string, paid bool) (*models.Bill, error)

	// Close releases any resources held by the store.
	Close() error
}
