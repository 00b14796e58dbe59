package duedate

import (
	"testing"
	"time"
)

var now = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func classify(t *testing.T, due time.Time) Classification {
	t.Helper()
	c, err := Classify(&due, now)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	return c
}

func TestClassify_NilDueDate(t *testing.T) {
	if _, err := Classify(nil, now); err != ErrNoDueDate {
		t.Fatalf("got %v; want ErrNoDueDate", err)
	}
}

func TestClassify_TwoDaysOverdue(t *testing.T) {
	c := classify(t, now.Add(-48*time.Hour))
	if !c.IsOverdue || c.DaysOverdue != 2 || c.DaysUntilDue != 0 {
		t.Fatalf("got %+v; want overdue 2 days", c)
	}
}

func TestClassify_DueInTwoDays(t *testing.T) {
	c := classify(t, now.Add(48*time.Hour))
	if c.IsOverdue || c.DaysUntilDue != 2 || c.DaysOverdue != 0 {
		t.Fatalf("got %+v; want due in 2 days", c)
	}
	if !DueSoon(c) {
		t.Fatal("2 days out should be due-soon")
	}
}

// Exact time-of-day difference, not midnight-normalized: due later the same
// day is "due in 0 days", not overdue.
func TestClassify_SameDayLater(t *testing.T) {
	c := classify(t, now.Add(4*time.Hour))
	if c.IsOverdue || c.DaysUntilDue != 1 {
		t.Fatalf("got %+v; want due in 1 day (partial day rounds up)", c)
	}
	c = classify(t, now)
	if c.IsOverdue || c.DaysUntilDue != 0 {
		t.Fatalf("got %+v; want due in 0 days at the exact instant", c)
	}
}

func TestClassify_FractionalOverdue(t *testing.T) {
	// 36h late: delta = ceil(-1.5) = -1, reported as 1 day overdue
	c := classify(t, now.Add(-36*time.Hour))
	if !c.IsOverdue || c.DaysOverdue != 1 || c.DaysUntilDue != 0 {
		t.Fatalf("got %+v; want 1 day overdue", c)
	}
}

func TestClassify_OverdueMatchesComparison(t *testing.T) {
	deltas := []time.Duration{
		-30 * 24 * time.Hour, -25 * time.Hour, -time.Minute,
		0, time.Second, 71 * time.Hour, 30 * 24 * time.Hour,
	}
	for _, d := range deltas {
		due := now.Add(d)
		c := classify(t, due)
		if c.IsOverdue != now.After(due) {
			t.Fatalf("delta %v: IsOverdue=%v, now.After(due)=%v", d, c.IsOverdue, now.After(due))
		}
		if c.IsOverdue && c.DaysUntilDue != 0 {
			t.Fatalf("delta %v: overdue branch must zero DaysUntilDue", d)
		}
		if !c.IsOverdue && c.DaysOverdue != 0 {
			t.Fatalf("delta %v: non-overdue branch must zero DaysOverdue", d)
		}
	}
}

func TestDueSoon_Threshold(t *testing.T) {
	if !DueSoon(classify(t, now.Add(71*time.Hour))) {
		t.Fatal("3 days out should be due-soon")
	}
	if DueSoon(classify(t, now.Add(96*time.Hour))) {
		t.Fatal("4 days out should not be due-soon")
	}
	if DueSoon(classify(t, now.Add(-time.Hour))) {
		t.Fatal("overdue is never due-soon")
	}
}
