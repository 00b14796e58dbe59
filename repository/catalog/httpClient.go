package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookloans/model"
	"bookloans/util/httpx"
)

type httpRepo struct {
	baseURL string
	client  *http.Client
}

func NewHTTP(baseURL string) Repo {
	return &httpRepo{baseURL: strings.TrimRight(baseURL, "/"), client: httpx.Client()}
}

func (r *httpRepo) ListBooks(ctx context.Context, token string, page, limit int) (*BooksPage, error) {
	var out BooksPage
	q := url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}}
	if err := r.do(ctx, token, http.MethodGet, "/books?"+q.Encode(), nil, &out, "Failed to fetch books"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) MyCheckouts(ctx context.Context, token string, page, limit int) (*CheckoutsPage, error) {
	var out CheckoutsPage
	q := url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}}
	if err := r.do(ctx, token, http.MethodGet, "/books/my-checkouts?"+q.Encode(), nil, &out, "Failed to fetch your checkouts"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Notifications(ctx context.Context, token string) (*model.NotificationSummary, error) {
	var out model.NotificationSummary
	if err := r.do(ctx, token, http.MethodGet, "/books/my-checkouts/notifications", nil, &out, "Failed to fetch notifications"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Checkin(ctx context.Context, token, bookID string) (*CheckinResult, error) {
	var out CheckinResult
	path := "/books/" + url.PathEscape(bookID) + "/checkin"
	if err := r.do(ctx, token, http.MethodPost, path, nil, &out, "Failed to check in book"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) ExtendCheckout(ctx context.Context, token, bookID string, extendDays int) (*ExtendResult, error) {
	var out ExtendResult
	path := fmt.Sprintf("/books/%s/extend-checkout?extend_days=%d", url.PathEscape(bookID), extendDays)
	if err := r.do(ctx, token, http.MethodPost, path, nil, &out, "Failed to extend checkout"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Checkout(ctx context.Context, token, bookID string, checkoutDays int) (*CheckoutResult, error) {
	var out CheckoutResult
	path := "/books/" + url.PathEscape(bookID) + "/checkout"
	body := map[string]any{"checkout_days": checkoutDays}
	if err := r.do(ctx, token, http.MethodPost, path, body, &out, "Failed to checkout book"); err != nil {
		return nil, err
	}
	return &out, nil
}

// do issues one authorized call and decodes the success shape into out.
// Non-2xx answers become a RemoteError carrying the body's detail field when
// present, else fallback.
func (r *httpRepo) do(ctx context.Context, token, method, path string, body any, out any, fallback string) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return &RemoteError{Status: 0, Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteError{Status: resp.StatusCode, Message: detailOr(resp, fallback)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func detailOr(resp *http.Response, fallback string) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return fallback
}
