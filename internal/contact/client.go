// Package contact implements the support form: field validation, the JSON
// POST to the form endpoint and the status shown next to the submit button.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrIncomplete       = errors.New("contact: all fields are required")
	ErrSubmissionFailed = errors.New("contact: submission failed")
)

// Payload is the JSON body posted to the endpoint.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (p Payload) Normalize() Payload {
	return Payload{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.TrimSpace(p.Email),
		Message: strings.TrimSpace(p.Message),
	}
}

func (p Payload) Validate() error {
	if p.Name == "" || p.Email == "" || p.Message == "" {
		return ErrIncomplete
	}
	return nil
}

type reply struct {
	OK bool `json:"ok"`
}

// Client posts payloads to a form endpoint that answers with {"ok": bool}.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{Endpoint: endpoint, HTTP: http.DefaultClient}
}

// Submit sends p and succeeds only on a 2xx answer whose body carries
// ok=true. A body that is not valid JSON counts as ok=false.
func (c *Client) Submit(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", c.Endpoint, err)
	}
	defer res.Body.Close()

	var r reply
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&r); err != nil {
		r.OK = false
	}
	if res.StatusCode < 200 || res.StatusCode > 299 || !r.OK {
		return fmt.Errorf("%w: status %d", ErrSubmissionFailed, res.StatusCode)
	}
	return nil
}
