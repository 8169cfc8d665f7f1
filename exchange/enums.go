package exchange

//
// Symbol is an enum that represents the trading pairs currently listed on the Namebase Exchange.
//
type Symbol int

const (
	HNSBTC Symbol = iota
)

func (o Symbol) String() string {
	return [...]string{"HNSBTC"}[o]
}

func (o Symbol) valid() bool {
	return o >= HNSBTC && o <= HNSBTC
}

//
// Asset is an enum that represents the individual assets that can be held, deposited, and
// withdrawn on the exchange.
//
type Asset int

const (
	HNS Asset = iota
	BTC
)

func (o Asset) String() string {
	return [...]string{"HNS", "BTC"}[o]
}

func (o Asset) valid() bool {
	return o >= HNS && o <= BTC
}

//
// OrderSide is an enum that represents which side of the book an order falls on.
//
type OrderSide int

const (
	Buy OrderSide = iota
	Sell
)

func (o OrderSide) String() string {
	return [...]string{"BUY", "SELL"}[o]
}

func (o OrderSide) valid() bool {
	return o >= Buy && o <= Sell
}

//
// OrderType is an enum that represents the order types the exchange supports. Note that the
// exchange abbreviates these on the wire ("LMT" and "MKT").
//
type OrderType int

const (
	Limit OrderType = iota
	Market
)

func (o OrderType) String() string {
	return [...]string{"LMT", "MKT"}[o]
}

func (o OrderType) valid() bool {
	return o >= Limit && o <= Market
}

//
// Interval is an enum that represents the kline/candlestick intervals that can be retrieved from
// the exchange's historical data endpoints.
//
type Interval int

const (
	OneMinute Interval = iota
	FiveMinute
	FifteenMinute
	OneHour
	FourHour
	TwelveHour
	OneDay
	OneWeek
)

func (o Interval) String() string {
	return [...]string{"1m", "5m", "15m", "1h", "4h", "12h", "1d", "1w"}[o]
}

func (o Interval) valid() bool {
	return o >= OneMinute && o <= OneWeek
}
