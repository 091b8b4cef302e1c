package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultClientTimeout = 10 * time.Second

// Client calls a SOAP 1.1 endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient returns a client for the endpoint at url. A nil httpClient gets a
// client with a 10s timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	return &Client{url: url, httpClient: httpClient}
}

// URL returns the endpoint address.
func (c *Client) URL() string {
	return c.url
}

// Call sends req and decodes the response payload into resp. A fault from the
// server is returned as *Fault.
func (c *Client) Call(ctx context.Context, req, resp interface{}) error {
	var body bytes.Buffer
	if err := writeEnvelope(&body, req); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", ContentType)
	httpReq.Header.Set("SOAPAction", `""`)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post %s: %w", c.url, err)
	}
	defer res.Body.Close()

	dec, start, err := readPayload(io.LimitReader(res.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response (HTTP %d): %w", res.StatusCode, err)
	}

	if start.Name == faultName {
		var f Fault
		if err := dec.DecodeElement(&f, &start); err != nil {
			return fmt.Errorf("decode fault: %w", err)
		}
		return &f
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status %d", res.StatusCode)
	}

	if err := dec.DecodeElement(resp, &start); err != nil {
		return fmt.Errorf("decode %s: %w", start.Name.Local, err)
	}
	return nil
}
