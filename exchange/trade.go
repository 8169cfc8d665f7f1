package exchange

import "github.com/shopspring/decimal"

//
// MarketBuy places a market buy order for the provided quantity of the symbol's base asset.
//
func (o *Client) MarketBuy(symbol Symbol, quantity decimal.Decimal) (ApiResponse, error) {
	return o.NewOrder(OrderRequest{
		Symbol:   symbol,
		Side:     Buy,
		Type:     Market,
		Quantity: quantity,
	})
}

//
// MarketSell places a market sell order for the provided quantity of the symbol's base asset.
//
func (o *Client) MarketSell(symbol Symbol, quantity decimal.Decimal) (ApiResponse, error) {
	return o.NewOrder(OrderRequest{
		Symbol:   symbol,
		Side:     Sell,
		Type:     Market,
		Quantity: quantity,
	})
}

//
// LimitBuy places a limit buy order for the provided quantity of the symbol's base asset at the
// provided price.
//
func (o *Client) LimitBuy(symbol Symbol, quantity decimal.Decimal, price decimal.Decimal) (ApiResponse, error) {
	return o.NewOrder(OrderRequest{
		Symbol:   symbol,
		Side:     Buy,
		Type:     Limit,
		Quantity: quantity,
		Price:    price,
	})
}

//
// LimitSell places a limit sell order for the provided quantity of the symbol's base asset at the
// provided price.
//
func (o *Client) LimitSell(symbol Symbol, quantity decimal.Decimal, price decimal.Decimal) (ApiResponse, error) {
	return o.NewOrder(OrderRequest{
		Symbol:   symbol,
		Side:     Sell,
		Type:     Limit,
		Quantity: quantity,
		Price:    price,
	})
}
