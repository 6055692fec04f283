package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCount = errors.New("participant count must be at least 1")
	ErrInvalidTotal = errors.New("total amount cannot be negative")
)

// Participant identifies one person a bill is split between.
type Participant struct {
	ID   string
	Name string
}

// SplitResult is the raw output of the partitioner.
type SplitResult struct {
	// Shares has one entry per participant, in input order.
	Shares []int64

	TotalPaise int64

	// RemainderPaise is TotalPaise mod len(Shares). The first RemainderPaise
	// shares carry one extra paisa.
	RemainderPaise int64
}

// ParticipantShare is one participant's amount in a detailed split.
type ParticipantShare struct {
	ParticipantID   string
	ParticipantName string
	AmountPaise     int64
}

// DetailedSplit attaches participant identity to a SplitResult.
// This is the shape consumed by the service and storage layers.
type DetailedSplit struct {
	Splits           []ParticipantShare
	TotalAmountPaise int64
	IsExactlySplit   bool
	RemainderPaise   int64
}

// Partition divides totalPaise into count integer shares.
//
// Algorithm:
// - base = total / count, remainder = total mod count
// - every share starts at base
// - the first remainder shares get one extra paisa
//
// The remainder is always front-loaded, so the same inputs always put the
// extra paise on the same positions.
func Partition(totalPaise int64, count int) (SplitResult, error) {
	if count <= 0 {
		return SplitResult{}, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if totalPaise < 0 {
		return SplitResult{}, fmt.Errorf("%w: got %d", ErrInvalidTotal, totalPaise)
	}

	n := int64(count)
	base := totalPaise / n
	remainder := totalPaise % n

	shares := make([]int64, count)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}

	return SplitResult{
		Shares:         shares,
		TotalPaise:     totalPaise,
		RemainderPaise: remainder,
	}, nil
}

// SplitEqual returns count shares of totalPaise whose sum is exactly totalPaise.
// A single participant gets the whole total; a zero total yields zeros.
func SplitEqual(totalPaise int64, count int) ([]int64, error) {
	result, err := Partition(totalPaise, count)
	if err != nil {
		return nil, err
	}
	return result.Shares, nil
}

// CalculateDetailedSplit splits totalPaise equally and assigns share i to
// participants[i]. Order matters: the first participants receive the extra
// paise when the total does not divide evenly.
func CalculateDetailedSplit(totalPaise int64, participants []Participant) (*DetailedSplit, error) {
	result, err := Partition(totalPaise, len(participants))
	if err != nil {
		return nil, err
	}

	splits := make([]ParticipantShare, len(participants))
	for i, p := range participants {
		splits[i] = ParticipantShare{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			AmountPaise:     result.Shares[i],
		}
	}

	return &DetailedSplit{
		Splits:           splits,
		TotalAmountPaise: result.TotalPaise,
		IsExactlySplit:   result.RemainderPaise == 0,
		RemainderPaise:   result.RemainderPaise,
	}, nil
}
