package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMyCheckouts(t *testing.T) {
	due := time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/books/my-checkouts", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"books": []map[string]any{
				{"id": "l1", "title": "T", "author": "A", "due_date": due.Format(time.RFC3339)},
			},
			"total": 7,
		})
	}))
	defer srv.Close()

	out, err := NewHTTP(srv.URL).MyCheckouts(context.Background(), "tok", 2, 10)
	require.NoError(t, err)
	require.Equal(t, 7, out.Total)
	require.Len(t, out.Books, 1)
	require.Equal(t, "l1", out.Books[0].ID)
	require.NotNil(t, out.Books[0].DueDate)
	require.True(t, due.Equal(*out.Books[0].DueDate))
}

func TestCheckin_DetailFieldBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books/l1/checkin", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Book is not checked out by you"})
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL).Checkin(context.Background(), "tok", "l1")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, http.StatusConflict, re.Status)
	require.Equal(t, "Book is not checked out by you", re.Message)
}

func TestCheckin_MissingDetailFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL).Checkin(context.Background(), "tok", "l1")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "Failed to check in book", re.Message)
}

func TestExtendCheckout_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books/l1/extend-checkout", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("extend_days"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Checkout extended by 7 days"})
	}))
	defer srv.Close()

	out, err := NewHTTP(srv.URL).ExtendCheckout(context.Background(), "tok", "l1", 7)
	require.NoError(t, err)
	require.Equal(t, "Checkout extended by 7 days", out.Message)
}

func TestCheckout_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books/b1/checkout", r.URL.Path)
		var body struct {
			CheckoutDays int `json:"checkout_days"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, 14, body.CheckoutDays)
		json.NewEncoder(w).Encode(map[string]string{"book_title": "Dune"})
	}))
	defer srv.Close()

	out, err := NewHTTP(srv.URL).Checkout(context.Background(), "tok", "b1", 14)
	require.NoError(t, err)
	require.Equal(t, "Dune", out.BookTitle)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewHTTP(srv.URL).Notifications(context.Background(), "tok")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	require.Zero(t, re.Status)
	require.Equal(t, "Failed to fetch notifications", re.Message)
}
