package exchange

//
// Namebase doubles as a Handshake registrar, so the same authenticated API also manages DNS
// records for domains held by the account. Both endpoints respond with a list containing the
// blockchain name-state alongside the record set.
//

type dnsPayload struct {
	Records []ApiResponse `json:"records"`
}

//
// GetDNSSettings fetches the DNS records currently configured for the provided domain.
//
func (o *Client) GetDNSSettings(domain string) ([]ApiResponse, error) {
	if domain == "" {
		return nil, &ArgumentError{argument: "domain", reason: "must not be empty"}
	}

	return o.requestList("GET", "/dns/domains/"+domain, nil, nil)
}

//
// UpdateDNSSettings replaces the DNS records for the provided domain with the provided record
// set. Each record is passed through to the exchange as-is.
//
func (o *Client) UpdateDNSSettings(domain string, records []ApiResponse) ([]ApiResponse, error) {
	if domain == "" {
		return nil, &ArgumentError{argument: "domain", reason: "must not be empty"}
	}

	payload := &dnsPayload{
		Records: records,
	}

	return o.requestList("PUT", "/dns/domains/"+domain, nil, payload)
}
