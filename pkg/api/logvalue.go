package api

import "log/slog"

// LogValue methods give the RPC logging interceptor a compact view of a
// message: counts and totals, never the full payload.

func (r GetSettlementRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("mode", r.Mode))
}

func (r ImportExpensesRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("expenses", len(r.Expenses)),
		slog.Bool("replace", r.Replace),
	)
}

func (r ListExpensesResponse) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("expenses", len(r.Expenses)),
		slog.Float64("total", r.Total),
	)
}

func (r ImportExpensesResponse) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("imported", r.Imported))
}

func (r GetSummaryResponse) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("participants", len(r.Summaries)),
		slog.Float64("total", r.Total),
	)
}

func (r GetSettlementResponse) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", r.Mode),
		slog.Int("transactions", len(r.Transactions)),
	)
}

func (r MembersResponse) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("members", len(r.Members)))
}
