// Package apiconnect wires the splitledger services to Connect: procedure
// names, handler constructors and typed clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService.
	LedgerServiceName = "splitledger.v1.LedgerService"

	LedgerServiceAddExpenseProcedure     = "/splitledger.v1.LedgerService/AddExpense"
	LedgerServiceListExpensesProcedure   = "/splitledger.v1.LedgerService/ListExpenses"
	LedgerServiceDeleteExpenseProcedure  = "/splitledger.v1.LedgerService/DeleteExpense"
	LedgerServiceImportExpensesProcedure = "/splitledger.v1.LedgerService/ImportExpenses"
	LedgerServiceGetSummaryProcedure     = "/splitledger.v1.LedgerService/GetSummary"
	LedgerServiceGetSettlementProcedure  = "/splitledger.v1.LedgerService/GetSettlement"
)

// LedgerServiceHandler is implemented by the server side of LedgerService.
type LedgerServiceHandler interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ImportExpenses(context.Context, *connect.Request[api.ImportExpensesRequest]) (*connect.Response[api.ImportExpensesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every LedgerService procedure.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceAddExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure,
		connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(LedgerServiceDeleteExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(LedgerServiceImportExpensesProcedure,
		connect.NewUnaryHandler(LedgerServiceImportExpensesProcedure, svc.ImportExpenses, opts...))
	mux.Handle(LedgerServiceGetSummaryProcedure,
		connect.NewUnaryHandler(LedgerServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(LedgerServiceGetSettlementProcedure,
		connect.NewUnaryHandler(LedgerServiceGetSettlementProcedure, svc.GetSettlement, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a client for LedgerService.
type LedgerServiceClient interface {
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ImportExpenses(context.Context, *connect.Request[api.ImportExpensesRequest]) (*connect.Response[api.ImportExpensesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewLedgerServiceClient returns a LedgerService client for the server at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	return &ledgerServiceClient{
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		importExpenses: connect.NewClient[api.ImportExpensesRequest, api.ImportExpensesResponse](
			httpClient, baseURL+LedgerServiceImportExpensesProcedure, opts...),
		getSummary: connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](
			httpClient, baseURL+LedgerServiceGetSummaryProcedure, opts...),
		getSettlement: connect.NewClient[api.GetSettlementRequest, api.GetSettlementResponse](
			httpClient, baseURL+LedgerServiceGetSettlementProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	addExpense     *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	listExpenses   *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	deleteExpense  *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	importExpenses *connect.Client[api.ImportExpensesRequest, api.ImportExpensesResponse]
	getSummary     *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
	getSettlement  *connect.Client[api.GetSettlementRequest, api.GetSettlementResponse]
}

func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ImportExpenses(ctx context.Context, req *connect.Request[api.ImportExpensesRequest]) (*connect.Response[api.ImportExpensesResponse], error) {
	return c.importExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}
