package docstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"bookloans/model"
	"bookloans/repository/catalog"
	"bookloans/util/httpx"
)

type httpRepo struct {
	baseURL string
	client  *http.Client
}

func NewHTTP(baseURL string) Repo {
	return &httpRepo{baseURL: strings.TrimRight(baseURL, "/"), client: httpx.Client()}
}

func (r *httpRepo) List(ctx context.Context, token string) ([]model.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/documents", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &catalog.RemoteError{Status: 0, Message: "Failed to fetch documents"}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &catalog.RemoteError{Status: resp.StatusCode, Message: "Failed to fetch documents"}
	}

	var out struct {
		Documents []model.Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (r *httpRepo) Delete(ctx context.Context, token, docID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.baseURL+"/documents/"+url.PathEscape(docID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return &catalog.RemoteError{Status: 0, Message: "Failed to delete document"}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &catalog.RemoteError{Status: resp.StatusCode, Message: "Failed to delete document"}
	}
	return nil
}
