// model/book.go
package model

type BookStatus string

const (
	StatusAvailable   BookStatus = "available"
	StatusCheckedOut  BookStatus = "checked_out"
	StatusReserved    BookStatus = "reserved"
	StatusMaintenance BookStatus = "maintenance"
)

var statusLabels = map[BookStatus]string{
	StatusAvailable:   "Available",
	StatusCheckedOut:  "Checked Out",
	StatusReserved:    "Reserved",
	StatusMaintenance: "Under Maintenance",
}

var statusBadges = map[BookStatus]string{
	StatusAvailable:   "success",
	StatusCheckedOut:  "warning",
	StatusReserved:    "info",
	StatusMaintenance: "secondary",
}

func (s BookStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display text for a status. Unknown statuses fall back to
// the raw value so a new catalog status never renders as an empty badge.
func (s BookStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s BookStatus) Badge() string {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return "secondary"
}

type Book struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Status          BookStatus `json:"status"`
	AvailableCopies int        `json:"available_copies"`
}
