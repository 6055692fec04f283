// Package api defines the wire messages and the Connect service glue for
// vasooly.v1.SplitService. Messages are plain structs encoded as JSON.
package api

// Participant is a person in a split request.
type Participant struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// Share is one participant's portion of a split.
type Share struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	AmountPaise     int64  `json:"amount_paise"`
	Formatted       string `json:"formatted"`
}

// CalculateSplitRequest asks for an equal split. Amount, a rupee string such
// as "123.45", takes precedence over TotalPaise when set.
type CalculateSplitRequest struct {
	TotalPaise   int64         `json:"total_paise"`
	Amount       string        `json:"amount,omitempty"`
	Participants []Participant `json:"participants"`
}

type CalculateSplitResponse struct {
	Splits           []Share `json:"splits"`
	TotalAmountPaise int64   `json:"total_amount_paise"`
	FormattedTotal   string  `json:"formatted_total"`
	IsExactlySplit   bool    `json:"is_exactly_split"`
	RemainderPaise   int64   `json:"remainder_paise"`
}

type ValidateSplitRequest struct {
	TotalPaise   int64         `json:"total_paise"`
	Amount       string        `json:"amount,omitempty"`
	Participants []Participant `json:"participants"`
}

// ValidateSplitResponse reports the first failing field, if any.
// Field is "amount" or "participants". Index is the offending participant,
// or -1.
type ValidateSplitResponse struct {
	Valid   bool   `json:"valid"`
	Field   string `json:"field,omitempty"`
	Index   int    `json:"index"`
	Message string `json:"message,omitempty"`
}

type CreateBillRequest struct {
	Title        string        `json:"title,omitempty" validate:"max=120"`
	TotalPaise   int64         `json:"total_paise"`
	Amount       string        `json:"amount,omitempty"`
	Participants []Participant `json:"participants" validate:"dive"`
}

type CreateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type GetBillRequest struct {
	BillID string `json:"bill_id"`
}

type GetBillResponse struct {
	Bill *Bill `json:"bill"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []*BillSummary `json:"bills"`
}

type MarkParticipantPaidRequest struct {
	BillID        string `json:"bill_id"`
	ParticipantID string `json:"participant_id"`
	Paid          bool   `json:"paid"`
}

type MarkParticipantPaidResponse struct {
	Bill *Bill `json:"bill"`
}

type DeleteBillRequest struct {
	BillID string `json:"bill_id"`
}

type DeleteBillResponse struct{}

// BillParticipant is a participant of a stored bill.
type BillParticipant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	AmountPaise int64  `json:"amount_paise"`
	Formatted   string `json:"formatted"`
	Paid        bool   `json:"paid"`
	PaidAt      int64  `json:"paid_at,omitempty"`
}

// Bill is the full view of a stored bill with its collection progress.
type Bill struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	TotalPaise     int64              `json:"total_paise"`
	FormattedTotal string             `json:"formatted_total"`
	Participants   []*BillParticipant `json:"participants"`
	IsExactlySplit bool               `json:"is_exactly_split"`
	RemainderPaise int64              `json:"remainder_paise"`
	CollectedPaise int64              `json:"collected_paise"`
	PendingPaise   int64              `json:"pending_paise"`
	Status         string             `json:"status"`
	CreatedAt      int64              `json:"created_at"`
}

// BillSummary is the list view of a bill.
type BillSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	TotalPaise       int64  `json:"total_paise"`
	FormattedTotal   string `json:"formatted_total"`
	ParticipantCount int32  `json:"participant_count"`
	PaidCount        int32  `json:"paid_count"`
	PendingPaise     int64  `json:"pending_paise"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
}
