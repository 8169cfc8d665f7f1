package exchange

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderRejectsNonPositiveQuantity(t *testing.T) {
	calls := 0

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		w.Write([]byte(`{}`))
	})

	_, err := client.NewOrder(OrderRequest{
		Symbol:   HNSBTC,
		Side:     Buy,
		Type:     Market,
		Quantity: decimal.Zero,
	})

	_, ok := err.(*ArgumentError)

	assert.True(t, ok, "expected an argument error, got %v", err)
	assert.Equal(t, 0, calls, "a locally-invalid order must never reach the wire")
}

func TestNewOrderBuildsDocumentedPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		raw, _ := ioutil.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Write([]byte(`{"orderId": 174}`))
	})

	resp, err := client.NewOrder(OrderRequest{
		Symbol:   HNSBTC,
		Side:     Buy,
		Type:     Limit,
		Quantity: decimal.RequireFromString("250"),
		Price:    decimal.RequireFromString("0.00009"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/order", gotPath)
	assert.Equal(t, "HNSBTC", gotBody["symbol"])
	assert.Equal(t, "BUY", gotBody["side"])
	assert.Equal(t, "LMT", gotBody["type"])
	assert.Equal(t, "250", gotBody["quantity"])
	assert.Equal(t, "0.00009", gotBody["price"])
	assert.Equal(t, float64(pinnedMillis), gotBody["timestamp"])
	assert.Equal(t, ApiResponse{"orderId": float64(174)}, resp)
}

func TestNewOrderOmitsPriceForMarketOrders(t *testing.T) {
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := ioutil.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Write([]byte(`{}`))
	})

	_, err := client.NewOrder(OrderRequest{
		Symbol:   HNSBTC,
		Side:     Sell,
		Type:     Market,
		Quantity: decimal.RequireFromString("500"),
	})

	assert.NoError(t, err)
	assert.NotContains(t, gotBody, "price")
}

func TestGetOrderEncodesQuery(t *testing.T) {
	var gotSymbol, gotOrderID, gotTimestamp string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSymbol = r.URL.Query().Get("symbol")
		gotOrderID = r.URL.Query().Get("orderId")
		gotTimestamp = r.URL.Query().Get("timestamp")

		w.Write([]byte(`{}`))
	})

	_, err := client.GetOrder(HNSBTC, 174)

	assert.NoError(t, err)
	assert.Equal(t, "HNSBTC", gotSymbol)
	assert.Equal(t, "174", gotOrderID)
	assert.Equal(t, "1555556529865", gotTimestamp)
}

func TestCancelOrderSendsDeleteWithPayload(t *testing.T) {
	var gotMethod string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method

		raw, _ := ioutil.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Write([]byte(`{}`))
	})

	_, err := client.CancelOrder(HNSBTC, 174)

	assert.NoError(t, err)
	assert.Equal(t, "DELETE", gotMethod)
	assert.Equal(t, "HNSBTC", gotBody["symbol"])
	assert.Equal(t, float64(174), gotBody["orderId"])
}

func TestCancelOrderRejectsNonPositiveID(t *testing.T) {
	calls := 0

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		w.Write([]byte(`{}`))
	})

	_, err := client.CancelOrder(HNSBTC, 0)

	_, ok := err.(*ArgumentError)

	assert.True(t, ok, "expected an argument error, got %v", err)
	assert.Equal(t, 0, calls)
}

func TestNewOrderSurfacesExchangeRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "insufficient funds"}`))
	})

	_, err := client.NewOrder(OrderRequest{
		Symbol:   HNSBTC,
		Side:     Buy,
		Type:     Market,
		Quantity: decimal.RequireFromString("1000000"),
	})

	apiErr, ok := err.(*APIError)

	assert.True(t, ok, "expected an API error, got %v", err)
	assert.Equal(t, "insufficient funds", apiErr.ErrorMessage())
}
