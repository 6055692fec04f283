// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/vasooly/vasooly/internal/models"
	"github.com/vasooly/vasooly/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are a per-connection setting, so enable them in the DSN
	// for every connection in the pool.
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBill persists a new bill and its participants in one transaction.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	// Generate IDs if not set
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	if bill.Title == "" {
		bill.Title = generateTitle(bill.Names())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, title, total_paise, created_at) VALUES (?, ?, ?, ?)",
		bill.ID, bill.Title, bill.TotalPaise, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for i := range bill.Participants {
		p := &bill.Participants[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO participants (id, bill_id, position, name, phone, amount_paise, paid, paid_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, bill.ID, i, p.Name, p.Phone, p.AmountPaise, p.Paid, p.PaidAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBill retrieves a bill by ID, including its participants in split order.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	return getBill(ctx, s.db, billID)
}

func getBill(ctx context.Context, q querier, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := q.QueryRowContext(ctx,
		"SELECT id, title, total_paise, created_at FROM bills WHERE id = ?",
		billID,
	).Scan(&bill.ID, &bill.Title, &bill.TotalPaise, &bill.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	participants, err := loadParticipants(ctx, q, billID)
	if err != nil {
		return nil, err
	}
	bill.Participants = participants

	return bill, nil
}

// ListBills retrieves every bill, newest first.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, total_paise, created_at FROM bills ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		bill := &models.Bill{}
		if err := rows.Scan(&bill.ID, &bill.Title, &bill.TotalPaise, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	rows.Close()

	for _, bill := range bills {
		participants, err := loadParticipants(ctx, s.db, bill.ID)
		if err != nil {
			return nil, err
		}
		bill.Participants = participants
	}

	return bills, nil
}

// DeleteBill removes a bill and its participants.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE bill_id = ?", billID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func loadParticipants(ctx context.Context, q querier, billID string) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, name, phone, amount_paise, paid, paid_at
		 FROM participants WHERE bill_id = ? ORDER BY position`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.AmountPaise, &p.Paid, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// generateTitle creates an auto-generated title from participant names.
func generateTitle(names []string) string {
	if len(names) == 0 {
		return fmt.Sprintf("Bill - %s", time.Now().Format("Jan 2, 2006"))
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}
