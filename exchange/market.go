package exchange

import (
	"net/url"
	"strconv"
)

const defaultListLimit = 100

//
// GetExchangeInfo fetches the current exchange trading rules and symbol information. It is also
// the cheapest way to test connectivity and credentials against the REST API.
//
func (o *Client) GetExchangeInfo() (ApiResponse, error) {
	return o.request("GET", "/info", nil, nil)
}

//
// GetDepth fetches the order book for the provided symbol. A non-positive limit falls back to the
// exchange's default page size.
//
func (o *Client) GetDepth(symbol Symbol, limit int) (ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	query := url.Values{}

	query.Set("symbol", symbol.String())
	query.Set("limit", strconv.Itoa(limit))

	return o.request("GET", "/depth", query, nil)
}

//
// GetTrades fetches older trades for the provided symbol. A non-zero tradeID fetches trades from
// that trade onward; a non-positive limit falls back to the exchange's default page size.
//
func (o *Client) GetTrades(symbol Symbol, tradeID int64, limit int) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	query := o.authQuery()

	query.Set("symbol", symbol.String())
	query.Set("limit", strconv.Itoa(limit))

	if tradeID > 0 {
		query.Set("tradeId", strconv.FormatInt(tradeID, 10))
	}

	return o.requestList("GET", "/trade", query, nil)
}

//
// GetKlines fetches kline (a.k.a. candlestick) records for the provided symbol and interval.
// Non-zero start and end timestamps (in milliseconds) bound the requested range; a non-positive
// limit falls back to the exchange's default page size.
//
func (o *Client) GetKlines(symbol Symbol, interval Interval, startTime int64, endTime int64, limit int) ([]ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	if !interval.valid() {
		return nil, &ArgumentError{argument: "interval", reason: "unrecognized kline interval"}
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	query := url.Values{}

	query.Set("symbol", symbol.String())
	query.Set("interval", interval.String())
	query.Set("limit", strconv.Itoa(limit))

	if startTime > 0 {
		query.Set("startTime", strconv.FormatInt(startTime, 10))
	}

	if endTime > 0 {
		query.Set("endTime", strconv.FormatInt(endTime, 10))
	}

	return o.requestList("GET", "/ticker/klines", query, nil)
}

//
// GetTickerDay fetches 24-hour rolling price-change statistics for the provided symbol.
//
func (o *Client) GetTickerDay(symbol Symbol) (ApiResponse, error) {
	return o.symbolTicker("/ticker/day", symbol)
}

//
// GetTickerPrice fetches the latest price for the provided symbol.
//
func (o *Client) GetTickerPrice(symbol Symbol) (ApiResponse, error) {
	return o.symbolTicker("/ticker/price", symbol)
}

//
// GetTickerBook fetches the best bid/ask price and quantity on the order book for the provided
// symbol.
//
func (o *Client) GetTickerBook(symbol Symbol) (ApiResponse, error) {
	return o.symbolTicker("/ticker/book", symbol)
}

//
// GetTickerSupply fetches the circulating supply for the provided asset.
//
func (o *Client) GetTickerSupply(asset Asset) (ApiResponse, error) {
	if !asset.valid() {
		return nil, &ArgumentError{argument: "asset", reason: "unrecognized asset"}
	}

	query := url.Values{}

	query.Set("asset", asset.String())

	return o.request("GET", "/ticker/supply", query, nil)
}

func (o *Client) symbolTicker(path string, symbol Symbol) (ApiResponse, error) {
	if !symbol.valid() {
		return nil, &ArgumentError{argument: "symbol", reason: "unrecognized trading pair"}
	}

	query := url.Values{}

	query.Set("symbol", symbol.String())

	return o.request("GET", path, query, nil)
}
