package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}
	return string(body)
}

func TestObserveSettlement(t *testing.T) {
	m := New()
	m.ObserveSettlement("minimized", 3)
	m.ObserveSettlement("minimized", 1)
	m.ObserveSettlement("pairwise", 7)

	out := scrape(t, m)
	for _, want := range []string{
		`splitledger_settlement_transactions_count{mode="minimized"} 2`,
		`splitledger_settlement_transactions_sum{mode="minimized"} 4`,
		`splitledger_settlement_transactions_count{mode="pairwise"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveSettlement("minimized", 1) // must not panic
}

func TestHandler(t *testing.T) {
	m := New()
	m.RPCRequests.WithLabelValues("/splitledger.v1.LedgerService/GetSummary", "ok").Inc()

	out := scrape(t, m)
	if !strings.Contains(out, `splitledger_rpc_requests_total{code="ok",procedure="/splitledger.v1.LedgerService/GetSummary"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", out)
	}
	if !strings.Contains(out, "go_goroutines") {
		t.Error("metrics output missing Go runtime collector")
	}
}
