// model/loan.go
package model

import "time"

// Loan is a checkout record as returned by the catalog API. DueDate and
// CheckedOutAt are set iff the book is currently checked out by the
// requesting user; a nil DueDate must never reach the classifier.
type Loan struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

// ClassifiedLoan carries the due-date annotations computed per render pass.
// The derived fields are never persisted or sent upstream.
type ClassifiedLoan struct {
	Loan
	IsOverdue    bool `json:"is_overdue"`
	DaysOverdue  int  `json:"days_overdue"`
	DaysUntilDue int  `json:"days_until_due"`
	DueSoon      bool `json:"due_soon"`
}
