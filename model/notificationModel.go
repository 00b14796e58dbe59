// model/notification.go
package model

import "time"

type OverdueBook struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
}

type DueSoonBook struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	DueDate      time.Time `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
}

// NotificationSummary is rebuilt wholesale on every poll; consumers never see
// a partially updated value.
type NotificationSummary struct {
	TotalCheckouts   int           `json:"total_checkouts"`
	OverdueCount     int           `json:"overdue_count"`
	DueSoonCount     int           `json:"due_soon_count"`
	OverdueBooks     []OverdueBook `json:"overdue_books"`
	DueSoonBooks     []DueSoonBook `json:"due_soon_books"`
	HasNotifications bool          `json:"has_notifications"`
}
