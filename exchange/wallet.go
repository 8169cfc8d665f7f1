package exchange

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

type depositAddressPayload struct {
	Asset         string `json:"asset"`
	Timestamp     int64  `json:"timestamp"`
	ReceiveWindow int64  `json:"receiveWindow,omitempty"`
}

// Amount goes on the wire as a bare JSON number – unlike order quantities, which the exchange
// expects as strings.
type withdrawPayload struct {
	Asset         string      `json:"asset"`
	Address       string      `json:"address"`
	Amount        json.Number `json:"amount"`
	Timestamp     int64       `json:"timestamp"`
	ReceiveWindow int64       `json:"receiveWindow,omitempty"`
}

//
// GenerateDepositAddress asks the exchange to generate a fresh deposit address for the provided
// asset.
//
func (o *Client) GenerateDepositAddress(asset Asset) (ApiResponse, error) {
	if !asset.valid() {
		return nil, &ArgumentError{argument: "asset", reason: "unrecognized asset"}
	}

	payload := &depositAddressPayload{
		Asset:         asset.String(),
		Timestamp:     o.timestamp(),
		ReceiveWindow: o.receiveWindow,
	}

	return o.request("POST", "/deposit/address", nil, payload)
}

//
// Withdraw submits a withdrawal of the provided amount of the asset to the provided on-chain
// address.
//
func (o *Client) Withdraw(asset Asset, address string, amount decimal.Decimal) (ApiResponse, error) {
	if !asset.valid() {
		return nil, &ArgumentError{argument: "asset", reason: "unrecognized asset"}
	}

	if address == "" {
		return nil, &ArgumentError{argument: "address", reason: "must not be empty"}
	}

	if amount.Sign() <= 0 {
		return nil, &ArgumentError{argument: "amount", reason: "must be positive"}
	}

	payload := &withdrawPayload{
		Asset:         asset.String(),
		Address:       address,
		Amount:        json.Number(amount.String()),
		Timestamp:     o.timestamp(),
		ReceiveWindow: o.receiveWindow,
	}

	return o.request("POST", "/withdraw", nil, payload)
}

//
// GetDepositHistory fetches the account's deposit history for the provided asset. Non-zero start
// and end timestamps (in milliseconds) bound the requested range.
//
func (o *Client) GetDepositHistory(asset Asset, startTime int64, endTime int64) ([]ApiResponse, error) {
	return o.transferHistory("/deposit/history", asset, startTime, endTime)
}

//
// GetWithdrawHistory fetches the account's withdrawal history for the provided asset. Non-zero
// start and end timestamps (in milliseconds) bound the requested range.
//
func (o *Client) GetWithdrawHistory(asset Asset, startTime int64, endTime int64) ([]ApiResponse, error) {
	return o.transferHistory("/withdraw/history", asset, startTime, endTime)
}

func (o *Client) transferHistory(path string, asset Asset, startTime int64, endTime int64) ([]ApiResponse, error) {
	if !asset.valid() {
		return nil, &ArgumentError{argument: "asset", reason: "unrecognized asset"}
	}

	query := o.authQuery()

	query.Set("asset", asset.String())

	if startTime > 0 {
		query.Set("startTime", strconv.FormatInt(startTime, 10))
	}

	if endTime > 0 {
		query.Set("endTime", strconv.FormatInt(endTime, 10))
	}

	return o.requestList("GET", path, query, nil)
}
