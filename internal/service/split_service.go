package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vasooly/vasooly/internal/calculator"
	"github.com/vasooly/vasooly/internal/middleware"
	"github.com/vasooly/vasooly/internal/models"
	"github.com/vasooly/vasooly/internal/money"
	"github.com/vasooly/vasooly/internal/storage"
	"github.com/vasooly/vasooly/pkg/api"
)

// Ensure SplitService implements api.SplitServiceHandler
var _ api.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService
type SplitService struct {
	store    storage.Store
	validate *validator.Validate
	metrics  *middleware.Metrics
}

// NewSplitService creates a new SplitService with the given storage backend.
// metrics may be nil.
func NewSplitService(store storage.Store, metrics *middleware.Metrics) *SplitService {
	return &SplitService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  metrics,
	}
}

// resolveTotal picks the bill total from a rupee string when one is given,
// otherwise from the paise field.
func resolveTotal(totalPaise int64, amount string) (int64, error) {
	if strings.TrimSpace(amount) == "" {
		return totalPaise, nil
	}
	paise, err := money.ParseRupees(amount)
	if err != nil {
		return 0, &calculator.ValidationError{
			Field:   calculator.FieldAmount,
			Index:   -1,
			Message: fmt.Sprintf("amount %q is not a valid rupee amount", amount),
		}
	}
	return paise, nil
}

// checkParticipantIDs rejects a client-supplied participant ID that appears
// twice in one request. Empty IDs are assigned by the server.
func checkParticipantIDs(participants []api.Participant) error {
	seen := make(map[string]int, len(participants))
	for i, p := range participants {
		if p.ID == "" {
			continue
		}
		if first, ok := seen[p.ID]; ok {
			return &calculator.ValidationError{
				Field:   calculator.FieldParticipants,
				Index:   i,
				Message: fmt.Sprintf("participant %d id %q duplicates participant %d", i+1, p.ID, first+1),
			}
		}
		seen[p.ID] = i
	}
	return nil
}

func toCalcParticipants(participants []api.Participant) []calculator.Participant {
	out := make([]calculator.Participant, len(participants))
	for i, p := range participants {
		out[i] = calculator.Participant{ID: p.ID, Name: p.Name}
	}
	return out
}

// invalidArgument converts an input error into a Connect error. Validation
// errors carry their field in the api.ErrorFieldHeader metadata.
func invalidArgument(err error) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	if field, ok := calculator.FieldOf(err); ok {
		connectErr.Meta().Set(api.ErrorFieldHeader, string(field))
	}
	return connectErr
}

// storeError maps storage failures to Connect codes.
func storeError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// structError converts go-playground/validator failures on a request.
func structError(err error) *connect.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if strings.Contains(fe.Namespace(), ".Participants[") {
		field = string(calculator.FieldParticipants)
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument,
		fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag()))
	connectErr.Meta().Set(api.ErrorFieldHeader, field)
	return connectErr
}

func toShares(split *calculator.DetailedSplit) []api.Share {
	shares := make([]api.Share, len(split.Splits))
	for i, s := range split.Splits {
		shares[i] = api.Share{
			ParticipantID:   s.ParticipantID,
			ParticipantName: s.ParticipantName,
			AmountPaise:     s.AmountPaise,
			Formatted:       money.FormatPaise(s.AmountPaise),
		}
	}
	return shares
}

// toBillView builds the API view of a stored bill, including its collection
// progress.
func toBillView(bill *models.Bill) *api.Bill {
	view := &api.Bill{
		ID:             bill.ID,
		Title:          bill.Title,
		TotalPaise:     bill.TotalPaise,
		FormattedTotal: money.FormatPaise(bill.TotalPaise),
		Participants:   make([]*api.BillParticipant, len(bill.Participants)),
		IsExactlySplit: true,
		CreatedAt:      bill.CreatedAt,
	}

	if result, err := calculator.Partition(bill.TotalPaise, len(bill.Participants)); err == nil {
		view.IsExactlySplit = result.RemainderPaise == 0
		view.RemainderPaise = result.RemainderPaise
	}

	shares := make([]calculator.ShareStatus, len(bill.Participants))
	for i, p := range bill.Participants {
		view.Participants[i] = &api.BillParticipant{
			ID:          p.ID,
			Name:        p.Name,
			Phone:       p.Phone,
			AmountPaise: p.AmountPaise,
			Formatted:   money.FormatPaise(p.AmountPaise),
			Paid:        p.Paid,
			PaidAt:      p.PaidAt,
		}
		shares[i] = calculator.ShareStatus{ParticipantID: p.ID, AmountPaise: p.AmountPaise, Paid: p.Paid}
	}

	collection := calculator.SummarizeCollection(bill.TotalPaise, shares)
	view.CollectedPaise = collection.CollectedPaise
	view.PendingPaise = collection.PendingPaise
	view.Status = string(collection.Status)

	return view
}

func toBillSummary(bill *models.Bill) *api.BillSummary {
	view := toBillView(bill)
	var paid int32
	for _, p := range view.Participants {
		if p.Paid {
			paid++
		}
	}
	return &api.BillSummary{
		ID:               view.ID,
		Title:            view.Title,
		TotalPaise:       view.TotalPaise,
		FormattedTotal:   view.FormattedTotal,
		ParticipantCount: int32(len(view.Participants)),
		PaidCount:        paid,
		PendingPaise:     view.PendingPaise,
		Status:           view.Status,
		CreatedAt:        view.CreatedAt,
	}
}

// CalculateSplit computes an equal split without persisting anything.
// It applies only the partitioner's rules, so a single participant is allowed.
func (s *SplitService) CalculateSplit(ctx context.Context, req *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error) {
	total, err := resolveTotal(req.Msg.TotalPaise, req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	split, err := calculator.CalculateDetailedSplit(total, toCalcParticipants(req.Msg.Participants))
	if err != nil {
		slog.Error("CalculateSplit failed", "total_paise", total, "participants", len(req.Msg.Participants), "error", err)
		return nil, invalidArgument(err)
	}
	s.metrics.ObserveSplit(split.IsExactlySplit)

	slog.Debug("Split calculated",
		"total_paise", split.TotalAmountPaise,
		"participants", len(split.Splits),
		"remainder_paise", split.RemainderPaise,
	)

	return connect.NewResponse(&api.CalculateSplitResponse{
		Splits:           toShares(split),
		TotalAmountPaise: split.TotalAmountPaise,
		FormattedTotal:   money.FormatPaise(split.TotalAmountPaise),
		IsExactlySplit:   split.IsExactlySplit,
		RemainderPaise:   split.RemainderPaise,
	}), nil
}

// ValidateSplit runs the bill validation rules and reports the failing field
// in the response body instead of as an RPC error.
func (s *SplitService) ValidateSplit(ctx context.Context, req *connect.Request[api.ValidateSplitRequest]) (*connect.Response[api.ValidateSplitResponse], error) {
	total, err := resolveTotal(req.Msg.TotalPaise, req.Msg.Amount)
	if err == nil {
		err = calculator.ValidateSplitInputs(total, toCalcParticipants(req.Msg.Participants))
	}
	if err == nil {
		return connect.NewResponse(&api.ValidateSplitResponse{Valid: true, Index: -1}), nil
	}

	var verr *calculator.ValidationError
	if !errors.As(err, &verr) {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.ValidateSplitResponse{
		Field:   string(verr.Field),
		Index:   verr.Index,
		Message: verr.Message,
	}), nil
}

// CreateBill validates, splits and persists a new bill.
func (s *SplitService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	total, err := resolveTotal(req.Msg.TotalPaise, req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	participants := toCalcParticipants(req.Msg.Participants)
	if err := calculator.ValidateSplitInputs(total, participants); err != nil {
		return nil, invalidArgument(err)
	}
	if err := checkParticipantIDs(req.Msg.Participants); err != nil {
		return nil, invalidArgument(err)
	}
	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, structError(err)
	}

	for i := range participants {
		if participants[i].ID == "" {
			participants[i].ID = uuid.New().String()
		}
		participants[i].Name = strings.TrimSpace(participants[i].Name)
	}

	split, err := calculator.CalculateDetailedSplit(total, participants)
	if err != nil {
		slog.Error("CalculateSplit failed during CreateBill", "error", err)
		return nil, invalidArgument(err)
	}
	s.metrics.ObserveSplit(split.IsExactlySplit)

	bill := &models.Bill{
		Title:        strings.TrimSpace(req.Msg.Title),
		TotalPaise:   split.TotalAmountPaise,
		Participants: make([]models.Participant, len(split.Splits)),
	}
	for i, share := range split.Splits {
		bill.Participants[i] = models.Participant{
			ID:          share.ParticipantID,
			Name:        share.ParticipantName,
			Phone:       req.Msg.Participants[i].Phone,
			AmountPaise: share.AmountPaise,
		}
	}

	// Save to storage (generates ID, title and CreatedAt)
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, storeError(err)
	}
	slog.Info("Bill created", "bill_id", bill.ID, "total_paise", bill.TotalPaise, "participants", len(bill.Participants))

	return connect.NewResponse(&api.CreateBillResponse{Bill: toBillView(bill)}), nil
}

// GetBill retrieves a bill by ID from storage.
func (s *SplitService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	if req.Msg.BillID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id required"))
	}

	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.GetBillResponse{Bill: toBillView(bill)}), nil
}

// ListBills returns summaries of all bills, newest first.
func (s *SplitService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, storeError(err)
	}

	summaries := make([]*api.BillSummary, len(bills))
	for i, bill := range bills {
		summaries[i] = toBillSummary(bill)
	}

	return connect.NewResponse(&api.ListBillsResponse{Bills: summaries}), nil
}

// MarkParticipantPaid records or clears a participant's payment.
func (s *SplitService) MarkParticipantPaid(ctx context.Context, req *connect.Request[api.MarkParticipantPaidRequest]) (*connect.Response[api.MarkParticipantPaidResponse], error) {
	if req.Msg.BillID == "" || req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id and participant_id required"))
	}

	bill, err := s.store.SetParticipantPaid(ctx, req.Msg.BillID, req.Msg.ParticipantID, req.Msg.Paid)
	if err != nil {
		slog.Error("MarkParticipantPaid failed", "bill_id", req.Msg.BillID, "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storeError(err)
	}

	view := toBillView(bill)
	attrs := []any{
		"bill_id", bill.ID,
		"participant_id", req.Msg.ParticipantID,
		"paid", req.Msg.Paid,
		"status", view.Status,
	}
	if p, ok := bill.Participant(req.Msg.ParticipantID); ok {
		attrs = append(attrs, "amount_paise", p.AmountPaise)
	}
	slog.Info("Participant payment updated", attrs...)

	return connect.NewResponse(&api.MarkParticipantPaidResponse{Bill: view}), nil
}

// DeleteBill deletes a bill.
func (s *SplitService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	if req.Msg.BillID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id required"))
	}

	if err := s.store.DeleteBill(ctx, req.Msg.BillID); err != nil {
		slog.Error("DeleteBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.DeleteBillResponse{}), nil
}
