package stream

import (
	"testing"

	"github.com/namebasehq/exchange-go/exchange"
)

func TestEndpointPaths(t *testing.T) {
	if p := Trades.Path(); p != "/ws/v0/stream/trades" {
		t.Errorf("The trades endpoint did not render the documented path. (Rendered: %s)", p)
	}

	if p := Prices.Path(); p != "/ws/v0/ticker/day" {
		t.Errorf("The prices endpoint did not render the documented path. (Rendered: %s)", p)
	}

	if p := Depth.Path(); p != "/ws/v0/ticker/depth" {
		t.Errorf("The depth endpoint did not render the documented path. (Rendered: %s)", p)
	}
}

func TestKlinesEndpointsCoverEveryInterval(t *testing.T) {
	expected := map[exchange.Interval]string{
		exchange.OneMinute:     "/ws/v0/ticker/kline_1m",
		exchange.FiveMinute:    "/ws/v0/ticker/kline_5m",
		exchange.FifteenMinute: "/ws/v0/ticker/kline_15m",
		exchange.OneHour:       "/ws/v0/ticker/kline_1h",
		exchange.FourHour:      "/ws/v0/ticker/kline_4h",
		exchange.TwelveHour:    "/ws/v0/ticker/kline_12h",
		exchange.OneDay:        "/ws/v0/ticker/kline_1d",
		exchange.OneWeek:       "/ws/v0/ticker/kline_1w",
	}

	for interval, want := range expected {
		if p := Klines(interval).Path(); p != want {
			t.Errorf("A kline endpoint did not render as expected. (Rendered: %s, Expected: %s)", p, want)
		}
	}
}
