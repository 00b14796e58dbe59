package catalog

import (
	"context"
	"fmt"

	"bookloans/model"
)

// CheckoutsPage is the raw list-my-loans response.
type CheckoutsPage struct {
	Books []model.Loan `json:"books"`
	Total int          `json:"total"`
}

type CheckinResult struct {
	WasOverdue  bool `json:"was_overdue"`
	DaysOverdue int  `json:"days_overdue"`
}

type ExtendResult struct {
	Message string `json:"message"`
}

type CheckoutResult struct {
	BookTitle string `json:"book_title"`
}

type BooksPage struct {
	Books []model.Book `json:"books"`
	Total int          `json:"total"`
}

type Repo interface {
	ListBooks(ctx context.Context, token string, page, limit int) (*BooksPage, error)
	MyCheckouts(ctx context.Context, token string, page, limit int) (*CheckoutsPage, error)
	Notifications(ctx context.Context, token string) (*model.NotificationSummary, error)
	Checkin(ctx context.Context, token, bookID string) (*CheckinResult, error)
	ExtendCheckout(ctx context.Context, token, bookID string, extendDays int) (*ExtendResult, error)
	Checkout(ctx context.Context, token, bookID string, checkoutDays int) (*CheckoutResult, error)
}

// RemoteError is any non-2xx answer from the catalog API. Status 0 means the
// request never got an HTTP response (transport failure); both collapse into
// one user-facing message upstream.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("catalog: %s (status %d)", e.Message, e.Status)
}
