package calculator

import "testing"

func TestSummarizeCollection(t *testing.T) {
	tests := []struct {
		name          string
		shares        []ShareStatus
		wantCollected int64
		wantPending   int64
		wantPaid      int
		wantStatus    CollectionStatus
	}{
		{
			name: "nobody paid",
			shares: []ShareStatus{
				{ParticipantID: "a", AmountPaise: 34},
				{ParticipantID: "b", AmountPaise: 33},
				{ParticipantID: "c", AmountPaise: 33},
			},
			wantCollected: 0,
			wantPending:   100,
			wantPaid:      0,
			wantStatus:    StatusPending,
		},
		{
			name: "one paid",
			shares: []ShareStatus{
				{ParticipantID: "a", AmountPaise: 34, Paid: true},
				{ParticipantID: "b", AmountPaise: 33},
				{ParticipantID: "c", AmountPaise: 33},
			},
			wantCollected: 34,
			wantPending:   66,
			wantPaid:      1,
			wantStatus:    StatusPartial,
		},
		{
			name: "everybody paid",
			shares: []ShareStatus{
				{ParticipantID: "a", AmountPaise: 50, Paid: true},
				{ParticipantID: "b", AmountPaise: 50, Paid: true},
			},
			wantCollected: 100,
			wantPending:   0,
			wantPaid:      2,
			wantStatus:    StatusSettled,
		},
		{
			name:       "no participants",
			shares:     nil,
			wantStatus: StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SummarizeCollection(100, tt.shares)
			if c.CollectedPaise != tt.wantCollected {
				t.Errorf("CollectedPaise = %d, want %d", c.CollectedPaise, tt.wantCollected)
			}
			if c.PendingPaise != tt.wantPending {
				t.Errorf("PendingPaise = %d, want %d", c.PendingPaise, tt.wantPending)
			}
			if c.PaidCount != tt.wantPaid {
				t.Errorf("PaidCount = %d, want %d", c.PaidCount, tt.wantPaid)
			}
			if c.PaidCount+c.PendingCount != len(tt.shares) {
				t.Errorf("counts %d+%d do not cover %d shares", c.PaidCount, c.PendingCount, len(tt.shares))
			}
			if c.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", c.Status, tt.wantStatus)
			}
			if c.TotalPaise != 100 {
				t.Errorf("TotalPaise = %d, want 100", c.TotalPaise)
			}
		})
	}
}
