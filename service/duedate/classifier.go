package duedate

import (
	"errors"
	"math"
	"time"
)

// DueSoonDays is the presentation threshold: not overdue and due within this
// many days.
const DueSoonDays = 3

// ErrNoDueDate is returned when a loan without a due date reaches Classify.
// A nil due date means "not checked out"; callers filter those out first.
var ErrNoDueDate = errors.New("duedate: loan has no due date")

type Classification struct {
	IsOverdue    bool
	DaysOverdue  int
	DaysUntilDue int
}

// Classify computes overdue state and day deltas from the exact time-of-day
// difference, not midnight-normalized calendar days: a book due later the
// same day classifies as "due in 0 days". now is injected so the result is
// deterministic.
func Classify(dueDate *time.Time, now time.Time) (Classification, error) {
	if dueDate == nil {
		return Classification{}, ErrNoDueDate
	}
	deltaDays := int(math.Ceil(dueDate.Sub(now).Hours() / 24))
	if now.After(*dueDate) {
		if deltaDays < 0 {
			deltaDays = -deltaDays
		}
		return Classification{IsOverdue: true, DaysOverdue: deltaDays}, nil
	}
	return Classification{DaysUntilDue: deltaDays}, nil
}

// DueSoon reports whether a classification crosses the badge threshold.
func DueSoon(c Classification) bool {
	return !c.IsOverdue && c.DaysUntilDue <= DueSoonDays
}
