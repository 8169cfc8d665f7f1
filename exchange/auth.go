package exchange

import "encoding/base64"

//
// Credentials holds an API key pair issued by the exchange. The pair is provided once at client
// construction time, is never persisted by this library, and only ever leaves the process as an
// input to the Authorization header.
//
type Credentials struct {
	AccessKey string
	SecretKey string
}

//
// BasicToken computes the HTTP Basic authentication token for the key pair, exactly as the
// exchange recomputes it server-side. This is a pure function – identical inputs always yield an
// identical token.
//
func (o Credentials) BasicToken() string {
	return base64.StdEncoding.EncodeToString([]byte(o.AccessKey + ":" + o.SecretKey))
}

//
// validate ensures that both halves of the key pair are actually present.
//
func (o Credentials) validate() error {
	if o.AccessKey == "" {
		return &CredentialsError{reason: "access key must not be empty"}
	}

	if o.SecretKey == "" {
		return &CredentialsError{reason: "secret key must not be empty"}
	}

	return nil
}
