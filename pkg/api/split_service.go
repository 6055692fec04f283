package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// SplitServiceName is the fully-qualified name of the SplitService service.
const SplitServiceName = "vasooly.v1.SplitService"

// Procedure paths of SplitService RPCs.
const (
	SplitServiceCalculateSplitProcedure      = "/vasooly.v1.SplitService/CalculateSplit"
	SplitServiceValidateSplitProcedure       = "/vasooly.v1.SplitService/ValidateSplit"
	SplitServiceCreateBillProcedure          = "/vasooly.v1.SplitService/CreateBill"
	SplitServiceGetBillProcedure             = "/vasooly.v1.SplitService/GetBill"
	SplitServiceListBillsProcedure           = "/vasooly.v1.SplitService/ListBills"
	SplitServiceMarkParticipantPaidProcedure = "/vasooly.v1.SplitService/MarkParticipantPaid"
	SplitServiceDeleteBillProcedure          = "/vasooly.v1.SplitService/DeleteBill"
)

// ErrorFieldHeader carries the input field ("amount" or "participants") a
// validation error belongs to.
const ErrorFieldHeader = "Vasooly-Error-Field"

// SplitServiceHandler is implemented by the server side of SplitService.
type SplitServiceHandler interface {
	CalculateSplit(context.Context, *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error)
	ValidateSplit(context.Context, *connect.Request[ValidateSplitRequest]) (*connect.Response[ValidateSplitResponse], error)
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	MarkParticipantPaid(context.Context, *connect.Request[MarkParticipantPaidRequest]) (*connect.Response[MarkParticipantPaidResponse], error)
	DeleteBill(context.Context, *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount the handler on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	handlers := map[string]http.Handler{
		SplitServiceCalculateSplitProcedure:      connect.NewUnaryHandler(SplitServiceCalculateSplitProcedure, svc.CalculateSplit, opts...),
		SplitServiceValidateSplitProcedure:       connect.NewUnaryHandler(SplitServiceValidateSplitProcedure, svc.ValidateSplit, opts...),
		SplitServiceCreateBillProcedure:          connect.NewUnaryHandler(SplitServiceCreateBillProcedure, svc.CreateBill, opts...),
		SplitServiceGetBillProcedure:             connect.NewUnaryHandler(SplitServiceGetBillProcedure, svc.GetBill, opts...),
		SplitServiceListBillsProcedure:           connect.NewUnaryHandler(SplitServiceListBillsProcedure, svc.ListBills, opts...),
		SplitServiceMarkParticipantPaidProcedure: connect.NewUnaryHandler(SplitServiceMarkParticipantPaidProcedure, svc.MarkParticipantPaid, opts...),
		SplitServiceDeleteBillProcedure:          connect.NewUnaryHandler(SplitServiceDeleteBillProcedure, svc.DeleteBill, opts...),
	}

	prefix := "/" + SplitServiceName + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok && strings.HasPrefix(r.URL.Path, prefix) {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// SplitServiceClient is a client for SplitService.
type SplitServiceClient struct {
	calculateSplit      *connect.Client[CalculateSplitRequest, CalculateSplitResponse]
	validateSplit       *connect.Client[ValidateSplitRequest, ValidateSplitResponse]
	createBill          *connect.Client[CreateBillRequest, CreateBillResponse]
	getBill             *connect.Client[GetBillRequest, GetBillResponse]
	listBills           *connect.Client[ListBillsRequest, ListBillsResponse]
	markParticipantPaid *connect.Client[MarkParticipantPaidRequest, MarkParticipantPaidResponse]
	deleteBill          *connect.Client[DeleteBillRequest, DeleteBillResponse]
}

// NewSplitServiceClient constructs a client for the SplitService served at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &SplitServiceClient{
		calculateSplit:      connect.NewClient[CalculateSplitRequest, CalculateSplitResponse](httpClient, baseURL+SplitServiceCalculateSplitProcedure, opts...),
		validateSplit:       connect.NewClient[ValidateSplitRequest, ValidateSplitResponse](httpClient, baseURL+SplitServiceValidateSplitProcedure, opts...),
		createBill:          connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+SplitServiceCreateBillProcedure, opts...),
		getBill:             connect.NewClient[GetBillRequest, GetBillResponse](httpClient, baseURL+SplitServiceGetBillProcedure, opts...),
		listBills:           connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+SplitServiceListBillsProcedure, opts...),
		markParticipantPaid: connect.NewClient[MarkParticipantPaidRequest, MarkParticipantPaidResponse](httpClient, baseURL+SplitServiceMarkParticipantPaidProcedure, opts...),
		deleteBill:          connect.NewClient[DeleteBillRequest, DeleteBillResponse](httpClient, baseURL+SplitServiceDeleteBillProcedure, opts...),
	}
}

func (c *SplitServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ValidateSplit(ctx context.Context, req *connect.Request[ValidateSplitRequest]) (*connect.Response[ValidateSplitResponse], error) {
	return c.validateSplit.CallUnary(ctx, req)
}

func (c *SplitServiceClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *SplitServiceClient) MarkParticipantPaid(ctx context.Context, req *connect.Request[MarkParticipantPaidRequest]) (*connect.Response[MarkParticipantPaidResponse], error) {
	return c.markParticipantPaid.CallUnary(ctx, req)
}

func (c *SplitServiceClient) DeleteBill(ctx context.Context, req *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}
