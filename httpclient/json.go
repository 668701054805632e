package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetJSON issues a GET request and decodes the JSON response into out.
// Non-2xx responses are returned as a *StatusError. A nil out discards
// the body after the status check.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	h := http.Header{}
	h.Set("Accept", "application/json")

	resp, err := c.Do(ctx, http.MethodGet, path, h, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// PostJSON encodes in as the JSON request body, issues a POST request,
// and decodes the JSON response into out. Non-2xx responses are
// returned as a *StatusError. A nil in sends an empty body; a nil out
// discards the response body after the status check.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: encode request body: %w", err)
		}
		body = data
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")

	resp, err := c.Do(ctx, http.MethodPost, path, h, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

func decodeJSON(resp *Response, out any) error {
	if !resp.Success() {
		return newStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("httpclient: decode response body: %w", err)
	}
	return nil
}
