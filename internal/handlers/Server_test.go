package handlers

import (
	"TradingJournal/internal/repositories"
	"TradingJournal/internal/services/economics"
	"TradingJournal/internal/services/journal"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := journal.NewService(
		repositories.NewMemoryTradeRepository(),
		repositories.NewMemoryAccountRepository(),
		economics.NewCalculator(nil, nil),
		nil,
		zap.NewNop(),
		nil,
	)
	return NewServer(svc, zap.NewNop(), "*")
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.R.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func trade(symbol, direction, date string, entry, exit float64) map[string]any {
	return map[string]any{
		"symbol":      symbol,
		"direction":   direction,
		"entry_price": entry,
		"exit_price":  exit,
		"lot_size":    1,
		"trade_date":  date,
		"trade_time":  "10:00",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}
}

func TestTradeLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/trades", trade("EURUSD", "Buy", "2024-06-03", 1.1000, 1.1070))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[tradeResponse](t, w)
	if created.Profit != 700 || created.Pips != 70 || created.TradeDate != "2024-06-03" {
		t.Errorf("Unexpected trade %+v", created)
	}

	w = do(t, s, http.MethodGet, "/api/trades/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = do(t, s, http.MethodPut, "/api/trades/"+created.ID, trade("EURUSD", "Sell", "2024-06-03", 1.1000, 1.1070))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if updated := decode[tradeResponse](t, w); updated.Profit != -700 {
		t.Errorf("Expected -700 after update, got %v", updated.Profit)
	}

	w = do(t, s, http.MethodDelete, "/api/trades/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	w = do(t, s, http.MethodGet, "/api/trades/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCreateTradeValidation(t *testing.T) {
	s := newTestServer(t)

	bad := trade("EURUSD", "Buy", "2024-06-03", 1.1, 1.2)
	bad["lot_size"] = 0
	if w := do(t, s, http.MethodPost, "/api/trades", bad); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for zero lot, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/trades", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.R.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}

func TestListTradesNewestFirst(t *testing.T) {
	s := newTestServer(t)
	for _, date := range []string{"2024-06-01", "2024-06-02", "2024-06-03"} {
		do(t, s, http.MethodPost, "/api/trades", trade("EURUSD", "Buy", date, 1.1, 1.101))
	}

	w := do(t, s, http.MethodGet, "/api/trades?limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	got := decode[tradesResponse](t, w)
	if len(got.Rows) != 2 || got.Rows[0].TradeDate != "2024-06-03" {
		t.Errorf("Expected the two newest trades, got %+v", got.Rows)
	}

	if w := do(t, s, http.MethodGet, "/api/trades?from=June", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad date, got %d", w.Code)
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/api/trades", trade("EURUSD", "Buy", "2024-06-03", 1.1000, 1.1070))
	do(t, s, http.MethodPost, "/api/trades", trade("GBPUSD", "Buy", "2024-06-04", 1.2500, 1.2450))

	w := do(t, s, http.MethodGet, "/api/analytics/risk-metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	risk := decode[map[string]float64](t, w)
	if risk["largest_win"] != 700 || risk["largest_loss"] != 500 || risk["max_drawdown"] != 500 {
		t.Errorf("Unexpected risk metrics %v", risk)
	}

	w = do(t, s, http.MethodGet, "/api/analytics/equity-curve?symbol=eurusd", nil)
	curve := decode[[]map[string]any](t, w)
	if len(curve) != 1 || curve[0]["cumulative_equity"] != 700.0 {
		t.Errorf("Unexpected filtered curve %v", curve)
	}

	for _, path := range []string{"dashboard", "profit-by-symbol", "profit-by-day", "monthly"} {
		if w := do(t, s, http.MethodGet, "/api/analytics/"+path, nil); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestCalculatorEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/calculator/profit", map[string]any{
		"symbol": "EURUSD", "direction": "Buy", "entry_price": 1.1, "exit_price": 1.107, "lot_size": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if res := decode[economics.Result](t, w); res.Profit != 700 {
		t.Errorf("Expected 700, got %v", res.Profit)
	}

	w = do(t, s, http.MethodPost, "/api/calculator/position-size", map[string]any{
		"symbol": "EURUSD", "account_balance": 100000, "risk_percentage": 1, "entry_price": 1.0825, "stop_loss": 1.0800,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if size := decode[journal.PositionSize](t, w); size.LotSize != 4 {
		t.Errorf("Expected 4 lots, got %v", size.LotSize)
	}

	w = do(t, s, http.MethodPost, "/api/calculator/position-size", map[string]any{
		"symbol": "EURUSD", "account_balance": 100000, "risk_percentage": 1, "entry_price": 1.08, "stop_loss": 1.08,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for zero stop distance, got %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/instruments/usdjpy", nil)
	inst := decode[instrumentResponse](t, w)
	if !inst.Known || inst.PipDecimalPlace != 2 || !inst.USDIsBase {
		t.Errorf("Unexpected USDJPY info %+v", inst)
	}
	w = do(t, s, http.MethodGet, "/api/instruments/FOOBAR", nil)
	if inst := decode[instrumentResponse](t, w); inst.Known || inst.PipDecimalPlace != 4 {
		t.Errorf("Expected fallback for unknown symbol, got %+v", inst)
	}
}

func TestAccountEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/accounts", map[string]any{"name": "main", "currency": "USD", "balance": 10000})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	account := decode[accountResponse](t, w)

	body := trade("EURUSD", "Buy", "2024-06-03", 1.1000, 1.1070)
	body["account_id"] = account.ID
	do(t, s, http.MethodPost, "/api/trades", body)

	w = do(t, s, http.MethodGet, "/api/accounts", nil)
	rows := decode[[]accountResponse](t, w)
	if len(rows) != 1 || rows[0].Equity != 10700 {
		t.Errorf("Expected equity 10700, got %+v", rows)
	}

	w = do(t, s, http.MethodPut, "/api/accounts/1/balance", map[string]any{"balance": 20000})
	if got := decode[accountResponse](t, w); got.Balance != 20000 || got.Equity != 20700 {
		t.Errorf("Unexpected account after balance update %+v", got)
	}

	if w := do(t, s, http.MethodGet, "/api/accounts/7", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if w := do(t, s, http.MethodGet, "/api/accounts/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}
