package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

// Request kinds used as metric labels.
const (
	kindFetch   = "fetch"
	kindInvoice = "invoice"
	kindCall    = "call"
)

// Fetch GETs rawURL and decodes the tagged LNURL reply.
func (c *Client) Fetch(ctx context.Context, rawURL string) (domain.Response, error) {
	body, err := c.get(ctx, kindFetch, rawURL)
	if err != nil {
		return domain.Response{}, err
	}
	return lnurl.DecodeResponse(body)
}

// FetchInvoice GETs a pay callback and returns its invoice reply.
func (c *Client) FetchInvoice(ctx context.Context, rawURL string) (domain.InvoiceResponse, error) {
	body, err := c.get(ctx, kindInvoice, rawURL)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	var out struct {
		domain.InvoiceResponse
		domain.StatusResponse
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.InvoiceResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if out.Failed() {
		return domain.InvoiceResponse{}, &domain.ServiceError{Reason: out.Reason}
	}
	if out.PR == "" {
		return domain.InvoiceResponse{}, fmt.Errorf("%w: reply has no pr", domain.ErrInvalidResponse)
	}
	return out.InvoiceResponse, nil
}

// Call GETs a callback that answers with {"status": ...}.
func (c *Client) Call(ctx context.Context, rawURL string) (domain.StatusResponse, error) {
	body, err := c.get(ctx, kindCall, rawURL)
	if err != nil {
		return domain.StatusResponse{}, err
	}
	var out domain.StatusResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.StatusResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if !out.OK() && !out.Failed() {
		return domain.StatusResponse{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidResponse, out.Status)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, kind, rawURL string) (body []byte, err error) {
	start := time.Now()
	host := hostOf(rawURL)
	status := 0
	defer func() {
		d := time.Since(start)
		outcome := "ok"
		if err != nil {
			outcome = "error"
			c.log.Warn("lnurl request failed",
				"kind", kind, "host", host, "status", status, "error", err, "duration_ms", d.Milliseconds())
		} else {
			c.log.Debug("lnurl request",
				"kind", kind, "host", host, "status", status, "duration_ms", d.Milliseconds())
		}
		c.metrics.observe(kind, outcome, d)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrRequestFailed, err)
	}
	if resp.StatusCode/100 != 2 {
		// Some services answer errors with a JSON status and a 4xx code.
		var st domain.StatusResponse
		if json.Unmarshal(body, &st) == nil && st.Failed() {
			return nil, fmt.Errorf("%w: %w", domain.ErrRequestFailed, &domain.ServiceError{Reason: st.Reason})
		}
		return nil, fmt.Errorf("%w: get %s: %s", domain.ErrRequestFailed, host, resp.Status)
	}
	return body, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
