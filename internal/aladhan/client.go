// Package aladhan is a thin client for the api.aladhan.com prayer-times
// service. Every call is a single attempt; retries and fallbacks belong to
// the schedule resolver.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// CalendarQuery holds the calculation parameters shared by the monthly
// calendar endpoints.
type CalendarQuery struct {
	Year         int
	Month        int
	Method       int
	School       int
	MidnightMode int
	Shafaq       string
}

// Client communicates with the Aladhan API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point the client at an httptest
	// server.
	BaseURL string
}

// NewClient creates a client with a 10 second request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

// MonthlyByCity fetches a month's calendar for a city/country pair.
func (c *Client) MonthlyByCity(ctx context.Context, q CalendarQuery, city, country string) (*CalendarResponse, error) {
	params := c.calendarParams(q)
	params.Set("city", city)
	params.Set("country", country)
	return c.calendar(ctx, "/calendarByCity", params)
}

// MonthlyByAddress fetches a month's calendar for a free-form address.
func (c *Client) MonthlyByAddress(ctx context.Context, q CalendarQuery, address string) (*CalendarResponse, error) {
	params := c.calendarParams(q)
	params.Set("address", address)
	return c.calendar(ctx, "/calendarByAddress", params)
}

// HijriDate converts a Gregorian date to its Hijri equivalent.
func (c *Client) HijriDate(ctx context.Context, date time.Time) (*GToHResponse, error) {
	params := url.Values{}
	params.Set("date", date.Format("02-01-2006"))

	var out GToHResponse
	if err := c.get(ctx, "/gToH", params, &out); err != nil {
		return nil, err
	}
	if out.Code != http.StatusOK {
		return nil, fmt.Errorf("gToH returned code %d (%s)", out.Code, out.Status)
	}
	return &out, nil
}

func (c *Client) calendarParams(q CalendarQuery) url.Values {
	params := url.Values{}
	params.Set("year", strconv.Itoa(q.Year))
	params.Set("month", strconv.Itoa(q.Month))
	params.Set("method", strconv.Itoa(q.Method))
	params.Set("school", strconv.Itoa(q.School))
	params.Set("midnightMode", strconv.Itoa(q.MidnightMode))
	params.Set("shafaq", q.Shafaq)
	return params
}

func (c *Client) calendar(ctx context.Context, endpoint string, params url.Values) (*CalendarResponse, error) {
	var out CalendarResponse
	if err := c.get(ctx, endpoint, params, &out); err != nil {
		return nil, err
	}
	if out.Code != http.StatusOK {
		return nil, fmt.Errorf("calendar returned code %d (%s)", out.Code, out.Status)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("calendar returned no days")
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("aladhan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("aladhan returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode aladhan response: %w", err)
	}
	return nil
}
