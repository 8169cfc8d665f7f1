package exchange

import (
	"strconv"

	"github.com/shopspring/decimal"
)

//
// OrderRequest describes an order to be placed on the exchange. Price is only consulted for
// limit orders and must be positive for them; market orders ignore it.
//
type OrderRequest struct {
	Symbol   Symbol
	Side     OrderSide
	Type     OrderType
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

//
// validate vets the order locally so that an order the exchange would reject outright never
// generates network traffic.
//
func (o OrderRequest) validate() error {
	if !o.Symbol.valid() {
		return &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if !o.Side.valid() {
		return &ArgumentError{argument: "side", reason: "must be Buy or Sell"}
	}

	if !o.Type.valid() {
		return &ArgumentError{argument: "type", reason: "must be Limit or Market"}
	}

	if o.Quantity.Sign() <= 0 {
		return &ArgumentError{argument: "quantity", reason: "must be positive"}
	}

	if o.Type == Limit && o.Price.Sign() <= 0 {
		return &ArgumentError{argument: "price", reason: "must be positive for limit orders"}
	}

	return nil
}

type orderPayload struct {
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price,omitempty"`
	Timestamp     int64  `json:"timestamp"`
	ReceiveWindow int64  `json:"receiveWindow,omitempty"`
}

type cancelOrderPayload struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	Timestamp     int64  `json:"timestamp"`
	ReceiveWindow int64  `json:"receiveWindow,omitempty"`
}

//
// NewOrder places a new order on the exchange and returns the exchange's acknowledgement, which
// includes the assigned order ID.
//
func (o *Client) NewOrder(order OrderRequest) (ApiResponse, error) {
	if err := order.validate(); err != nil {
		return nil, err
	}

	payload := &orderPayload{
		Symbol:        order.Symbol.String(),
		Side:          order.Side.String(),
		Type:          order.Type.String(),
		Quantity:      order.Quantity.String(),
		Timestamp:     o.timestamp(),
		ReceiveWindow: o.receiveWindow,
	}

	if order.Type == Limit {
		payload.Price = order.Price.String()
	}

	return o.request("POST", "/order", nil, payload)
}

//
// GetOrder checks the status of a previously-placed order.
//
func (o *Client) GetOrder(symbol Symbol, orderID int64) (ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if orderID <= 0 {
		return nil, &ArgumentError{argument: "orderId", reason: "must be positive"}
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())
	query.Set("orderId", strconv.FormatInt(orderID, 10))

	return o.request("GET", "/order", query, nil)
}

//
// CancelOrder cancels an open order by ID.
//
func (o *Client) CancelOrder(symbol Symbol, orderID int64) (ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if orderID <= 0 {
		return nil, &ArgumentError{argument: "orderId", reason: "must be positive"}
	}

	payload := &cancelOrderPayload{
		Symbol:        symbol.String(),
		OrderID:       orderID,
		Timestamp:     o.timestamp(),
		ReceiveWindow: o.receiveWindow,
	}

	return o.request("DELETE", "/order", nil, payload)
}

//
// GetOpenOrders fetches all currently-open orders for the provided symbol.
//
func (o *Client) GetOpenOrders(symbol Symbol) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())

	return o.requestList("GET", "/order/open", query, nil)
}

//
// GetAllOrders fetches all orders for the provided symbol – open, filled, and cancelled alike. A
// non-zero orderID fetches orders from that order onward.
//
func (o *Client) GetAllOrders(symbol Symbol, orderID int64) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())

	if orderID > 0 {
		query.Set("orderId", strconv.FormatInt(orderID, 10))
	}

	return o.requestList("GET", "/order/all", query, nil)
}
