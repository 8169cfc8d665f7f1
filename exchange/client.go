package exchange

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultAPIRoot    = "https://www.namebase.io/api"
	DefaultAPIVersion = "/v0"

	defaultTimeout = 30 * time.Second
)

//
// ApiResponse is the generic decoded form of an exchange response – a mapping of the JSON fields
// the endpoint returned, passed through to the caller unmodified. Endpoints that return JSON
// arrays instead yield a slice of these.
//
type ApiResponse map[string]interface{}

//
// Client talks to the Namebase Exchange REST API. Every method performs exactly one blocking
// round trip and holds no state between calls, so a single client may be shared freely across
// goroutines. There is deliberately no retry, backoff, or rate-limit machinery – failures
// surface to the caller as-is.
//
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client

	// receiveWindow, when non-zero, is attached to every authenticated request as the number of
	// milliseconds the exchange should consider the request valid for.
	receiveWindow int64

	now func() time.Time
}

//
// NewClient instantiates a client against the production API using the provided key pair. The
// pair is validated immediately so that a misconfigured caller fails at construction rather than
// on its first request.
//
func NewClient(accessKey string, secretKey string) (*Client, error) {
	return NewClientWithURL(accessKey, secretKey, DefaultAPIRoot+DefaultAPIVersion)
}

//
// NewClientWithURL instantiates a client against an arbitrary API base URL. This is primarily
// useful for pointing the client at a test double.
//
func NewClientWithURL(accessKey string, secretKey string, baseURL string) (*Client, error) {
	creds := Credentials{
		AccessKey: accessKey,
		SecretKey: secretKey,
	}

	if err := creds.validate(); err != nil {
		return nil, err
	}

	return &Client{
		creds:   creds,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		now: time.Now,
	}, nil
}

//
// SetReceiveWindow configures the validity window (in milliseconds) attached to every subsequent
// authenticated request. A zero value omits the parameter and lets the exchange apply its
// default.
//
func (o *Client) SetReceiveWindow(milliseconds int64) {
	o.receiveWindow = milliseconds
}

//
// timestamp returns the current time in the millisecond representation the exchange expects on
// authenticated requests.
//
func (o *Client) timestamp() int64 {
	return o.now().UnixNano() / 1000000
}

//
// request makes the specified request against the API and decodes the response into the generic
// mapping form. It is used by every endpoint whose documented response is a JSON object.
//
func (o *Client) request(method string, path string, query url.Values, body interface{}) (ApiResponse, error) {
	respBody, err := o.do(method, path, query, body)
	if err != nil {
		return nil, err
	}

	if len(respBody) == 0 {
		return ApiResponse{}, nil
	}

	var fields ApiResponse

	if err := json.Unmarshal(respBody, &fields); err != nil {
		return nil, &DecodeError{cause: err}
	}

	return fields, nil
}

//
// requestList behaves like request, but for endpoints whose documented response is a JSON array
// of objects (trade listings, order listings, klines).
//
func (o *Client) requestList(method string, path string, query url.Values, body interface{}) ([]ApiResponse, error) {
	respBody, err := o.do(method, path, query, body)
	if err != nil {
		return nil, err
	}

	if len(respBody) == 0 {
		return []ApiResponse{}, nil
	}

	var items []ApiResponse

	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, &DecodeError{cause: err}
	}

	return items, nil
}

//
// do performs the actual round trip: it assembles the request with the authentication and
// content-negotiation headers the exchange requires, sends it, and returns the raw response body
// once the response has been vetted for HTTP- and API-level errors.
//
func (o *Client) do(method string, path string, query url.Values, body interface{}) ([]byte, error) {
	//
	// Serialize the body payload (if there is one).
	//
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(payload)
	}

	//
	// Assemble the request itself.
	//
	req, err := http.NewRequest(method, o.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Authorization", "Basic "+o.creds.BasicToken())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	//
	// Make the request. Transport-level failures (connection refused, timeout, etc.) are
	// returned to the caller untouched.
	//
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	//
	// On failure statuses, check the response for an API error. The exchange reports failures as
	// a well-formed JSON payload, so that form is preferred over a bare status-code error
	// whenever it is present. Successful responses are never probed – some of them legitimately
	// carry a "message" field (e.g. withdrawals acknowledge with {"message": "success", ...}).
	//
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr *APIError

		_ = json.Unmarshal(respBody, &apiErr)

		if apiErr.populated() {
			return nil, apiErr
		}

		return nil, NewHTTPError(resp.StatusCode)
	}

	return respBody, nil
}

//
// authQuery assembles the query parameters shared by every authenticated GET/DELETE endpoint.
//
func (o *Client) authQuery() url.Values {
	query := url.Values{}

	query.Set("timestamp", strconv.FormatInt(o.timestamp(), 10))

	if o.receiveWindow > 0 {
		query.Set("receiveWindow", strconv.FormatInt(o.receiveWindow, 10))
	}

	return query
}
