package stream

import (
	"encoding/json"
	"sync"

	ws "github.com/gorilla/websocket"
)

const (
	DefaultFeedURL = "wss://app.namebase.io:443"
)

//
// Subscription represents a live connection to one of the exchange's websocket market-data
// feeds. Messages are delivered on the channel returned by Messages until the connection drops
// or Close is called, at which point the channel is closed. There is deliberately no automatic
// reconnection – a caller that needs the feed back simply dials again.
//
type Subscription struct {
	conn   *ws.Conn
	ch     chan json.RawMessage
	chKill chan bool
	once   sync.Once
}

//
// Dial connects to the provided feed endpoint on the production websocket host.
//
func Dial(endpoint Endpoint) (*Subscription, error) {
	return DialURL(DefaultFeedURL, endpoint)
}

//
// DialURL connects to the provided feed endpoint on an arbitrary websocket host. This is
// primarily useful for pointing a subscription at a test double.
//
func DialURL(feedURL string, endpoint Endpoint) (*Subscription, error) {
	conn, _, err := ws.DefaultDialer.Dial(feedURL+endpoint.Path(), nil)
	if err != nil {
		return nil, err
	}

	o := &Subscription{
		conn:   conn,
		ch:     make(chan json.RawMessage),
		chKill: make(chan bool),
	}

	go o.pump()

	return o, nil
}

//
// Messages returns the channel on which raw feed messages are delivered. Each message is one
// JSON document exactly as the exchange sent it.
//
func (o *Subscription) Messages() <-chan json.RawMessage {
	return o.ch
}

//
// Close tears down the websocket connection. The message channel is closed once the reader
// goroutine observes the disconnect. Close is safe to call more than once.
//
func (o *Subscription) Close() error {
	var err error

	o.once.Do(func() {
		close(o.chKill)

		err = o.conn.Close()
	})

	return err
}

//
// pump reads messages off of the websocket connection and fans them out to the subscription's
// channel until the connection goes away.
//
func (o *Subscription) pump() {
	defer close(o.ch)

	for {
		_, msg, err := o.conn.ReadMessage()
		if err != nil {
			return
		}

		select {
		case o.ch <- json.RawMessage(msg):
		case <-o.chKill:
			return
		}
	}
}
