// Package adminclient is a small HTTP client for the admin API list
// endpoints, shaped so its fetchers plug straight into filterform
// controllers.
package adminclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client calls the admin API with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// UserRow mirrors one row of the user listing payload.
type UserRow struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	TelContact  string  `json:"tel_contact"`
	Role        int     `json:"role"`
	IsClient    bool    `json:"is_client"`
	PartnerID   string  `json:"partner_id"`
	PartnerDesc *string `json:"partner_desc"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

// Ticket mirrors one row of the ticket listing payload.
type Ticket struct {
	ID         string `json:"id"`
	ExternalID int    `json:"external_id"`
	Title      string `json:"title"`
	StatusID   string `json:"status_id"`
	PriorityID string `json:"priority_id"`
	PartnerID  string `json:"partner_id"`
	CreatedBy  string `json:"created_by"`
	IsClosed   bool   `json:"is_closed"`
	CreatedAt  string `json:"created_at"`
}

// ListUsers fetches /v1/users with the given filters.
func (c *Client) ListUsers(ctx context.Context, filters url.Values) ([]UserRow, error) {
	var rows []UserRow
	if err := c.getJSON(ctx, "/v1/users", filters, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTickets fetches /v1/tickets with the given filters.
func (c *Client) ListTickets(ctx context.Context, filters url.Values) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.getJSON(ctx, "/v1/tickets", filters, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: unexpected status %d: %s", path, resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
