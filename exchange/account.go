package exchange

import "strconv"

//
// GetAccountInfo fetches current account information, including the balances of every asset.
//
func (o *Client) GetAccountInfo() (ApiResponse, error) {
	return o.request("GET", "/account", o.authQuery(), nil)
}

//
// GetAccountLimits fetches the account's current deposit and withdrawal limits.
//
func (o *Client) GetAccountLimits() (ApiResponse, error) {
	return o.request("GET", "/account/limits", o.authQuery(), nil)
}

//
// GetAccountTrades fetches trades executed by this account for the provided symbol. A non-zero
// tradeID fetches trades from that trade onward.
//
func (o *Client) GetAccountTrades(symbol Symbol, tradeID int64) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())

	if tradeID > 0 {
		query.Set("tradeId", strconv.FormatInt(tradeID, 10))
	}

	return o.requestList("GET", "/trade/account", query, nil)
}

//
// GetOrderTrades fetches the trades that resulted from a specific order.
//
func (o *Client) GetOrderTrades(symbol Symbol, orderID int64) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if orderID <= 0 {
		return nil, &ArgumentError{argument: "orderId", reason: "must be positive"}
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())
	query.Set("orderId", strconv.FormatInt(orderID, 10))

	return o.requestList("GET", "/trade/order", query, nil)
}
