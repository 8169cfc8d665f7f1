package exchange

import "testing"

func TestSymbolStrings(t *testing.T) {
	if s := HNSBTC.String(); s != "HNSBTC" {
		t.Errorf("The HNSBTC symbol did not render as expected. (Rendered: %s)", s)
	}
}

func TestAssetStrings(t *testing.T) {
	if s := HNS.String(); s != "HNS" {
		t.Errorf("The HNS asset did not render as expected. (Rendered: %s)", s)
	}

	if s := BTC.String(); s != "BTC" {
		t.Errorf("The BTC asset did not render as expected. (Rendered: %s)", s)
	}
}

func TestOrderSideStrings(t *testing.T) {
	if s := Buy.String(); s != "BUY" {
		t.Errorf("The buy side did not render as expected. (Rendered: %s)", s)
	}

	if s := Sell.String(); s != "SELL" {
		t.Errorf("The sell side did not render as expected. (Rendered: %s)", s)
	}
}

func TestOrderTypeStrings(t *testing.T) {
	if s := Limit.String(); s != "LMT" {
		t.Errorf("The limit order type did not render with the exchange's abbreviation. (Rendered: %s)", s)
	}

	if s := Market.String(); s != "MKT" {
		t.Errorf("The market order type did not render with the exchange's abbreviation. (Rendered: %s)", s)
	}
}

func TestIntervalStrings(t *testing.T) {
	expected := map[Interval]string{
		OneMinute:     "1m",
		FiveMinute:    "5m",
		FifteenMinute: "15m",
		OneHour:       "1h",
		FourHour:      "4h",
		TwelveHour:    "12h",
		OneDay:        "1d",
		OneWeek:       "1w",
	}

	for interval, want := range expected {
		if s := interval.String(); s != want {
			t.Errorf("An interval did not render as expected. (Rendered: %s, Expected: %s)", s, want)
		}
	}
}
