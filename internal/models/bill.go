package models

// Bill represents an amount to be collected from its participants.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Title is the human-readable name for the bill.
	// Auto-generated from participant names when left empty.
	Title string

	// TotalPaise is the full bill amount in paise.
	TotalPaise int64

	// Participants are the people the bill is split between, in split order.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64
}

// Participant is one person who owes a share of a bill.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name. Names need not be unique within a bill.
	Name string

	// Phone is an optional E.164 number used to nudge the participant.
	Phone string

	// AmountPaise is this participant's share as computed at creation time.
	AmountPaise int64

	// Paid records whether the participant has settled their share.
	Paid bool

	// PaidAt is the Unix timestamp of the payment, or 0 while unpaid.
	PaidAt int64
}

// Names returns participant names in split order.
func (b *Bill) Names() []string {
	names := make([]string, len(b.Participants))
	for i, p := range b.Participants {
		names[i] = p.Name
	}
	return names
}

// Participant returns the participant with the given ID.
func (b *Bill) Participant(id string) (*Participant, bool) {
	for i := range b.Participants {
		if b.Participants[i].ID == id {
			return &b.Participants[i], true
		}
	}
	return nil, false
}
