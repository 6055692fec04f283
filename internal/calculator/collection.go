package calculator

// CollectionStatus summarizes how far a bill's collection has progressed.
type CollectionStatus string

const (
	StatusPending CollectionStatus = "pending"
	StatusPartial CollectionStatus = "partial"
	StatusSettled CollectionStatus = "settled"
)

// ShareStatus is one participant's share together with whether it was paid.
type ShareStatus struct {
	ParticipantID string
	AmountPaise   int64
	Paid          bool
}

// Collection is the aggregate paid/pending state of one bill.
type Collection struct {
	TotalPaise     int64
	CollectedPaise int64 // Sum of paid shares
	PendingPaise   int64 // Sum of unpaid shares
	PaidCount      int
	PendingCount   int
	Status         CollectionStatus
}

// SummarizeCollection aggregates paid and unpaid shares of a bill.
//
// Algorithm:
// - paid shares add to collected, unpaid shares add to pending
// - nobody paid: pending; everybody paid: settled; otherwise partial
//
// A bill without participants has nothing to collect and stays pending.
func SummarizeCollection(totalPaise int64, shares []ShareStatus) Collection {
	c := Collection{TotalPaise: totalPaise}

	for _, s := range shares {
		if s.Paid {
			c.CollectedPaise += s.AmountPaise
			c.PaidCount++
		} else {
			c.PendingPaise += s.AmountPaise
			c.PendingCount++
		}
	}

	switch {
	case len(shares) == 0 || c.PaidCount == 0:
		c.Status = StatusPending
	case c.PendingCount == 0:
		c.Status = StatusSettled
	default:
		c.Status = StatusPartial
	}

	return c
}
