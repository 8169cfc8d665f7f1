package stream

import "github.com/namebasehq/exchange-go/exchange"

//
// Endpoint is an enum that represents the market-data feeds exposed over the exchange's
// websocket interface.
//
type Endpoint int

const (
	Trades Endpoint = iota
	Klines1m
	Klines5m
	Klines15m
	Klines1h
	Klines4h
	Klines12h
	Klines1d
	Klines1w
	Prices
	Depth
)

func (o Endpoint) Path() string {
	return [...]string{
		"/ws/v0/stream/trades",
		"/ws/v0/ticker/kline_1m",
		"/ws/v0/ticker/kline_5m",
		"/ws/v0/ticker/kline_15m",
		"/ws/v0/ticker/kline_1h",
		"/ws/v0/ticker/kline_4h",
		"/ws/v0/ticker/kline_12h",
		"/ws/v0/ticker/kline_1d",
		"/ws/v0/ticker/kline_1w",
		"/ws/v0/ticker/day",
		"/ws/v0/ticker/depth",
	}[o]
}

//
// Klines returns the kline feed endpoint for the provided candlestick interval. The kline
// endpoints are declared in the same order as the exchange.Interval values they stream.
//
func Klines(interval exchange.Interval) Endpoint {
	return Klines1m + Endpoint(interval)
}
