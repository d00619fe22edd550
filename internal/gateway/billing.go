package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const billingResource = "billings"

// Billings groups the billing operations of a Client.
type Billings struct {
	c *Client
}

// Billings returns the billing API.
func (c *Client) Billings() Billings { return Billings{c: c} }

// List fetches every billing record visible to the caller.
func (b Billings) List(ctx context.Context, token string) ([]Billing, error) {
	return fetchList[Billing](ctx, b.c, token, "/api/Billing", billingResource, "list")
}

// Get fetches one billing record.
func (b Billings) Get(ctx context.Context, token string, id int) (Billing, error) {
	return fetchOne[Billing](ctx, b.c, token, fmt.Sprintf("/api/Billing/%d", id), billingResource, "get")
}

// Create files a billing record against an appointment (admin only).
func (b Billings) Create(ctx context.Context, token string, bill Billing) error {
	_, err := b.c.do(ctx, token, http.MethodPost, "/api/Billing", bill, billingResource, "create")
	return err
}

// Update rewrites a billing record.
func (b Billings) Update(ctx context.Context, token string, id int, bill Billing) error {
	_, err := b.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/Billing/%d", id), bill, billingResource, "update")
	return err
}

// Delete removes a billing record.
func (b Billings) Delete(ctx context.Context, token string, id int) error {
	_, err := b.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Billing/%d", id), nil, billingResource, "delete")
	return err
}

// ByDateRange fetches billing records between two dates (inclusive).
func (b Billings) ByDateRange(ctx context.Context, token string, from, to time.Time) ([]Billing, error) {
	q := url.Values{}
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	return fetchList[Billing](ctx, b.c, token, "/api/Billing/date-range?"+q.Encode(), billingResource, "by_date_range")
}
