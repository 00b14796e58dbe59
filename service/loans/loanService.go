package loans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bookloans/model"
	"bookloans/repository/catalog"
	"bookloans/service/duedate"
	"bookloans/service/session"
)

// errors used by controllers

type ErrCode string

const (
	ErrUnauthenticated ErrCode = "UNAUTHENTICATED"
	ErrInFlight        ErrCode = "IN_FLIGHT"
	ErrRemote          ErrCode = "REMOTE"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code; remote failures report ErrRemote.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	var re *catalog.RemoteError
	if errors.As(err, &re) {
		return ErrRemote
	}
	return ""
}

// dto

type LoanPage struct {
	Items      []model.ClassifiedLoan `json:"items"`
	TotalCount int                    `json:"total_count"`
}

type CheckinResult struct {
	WasOverdue  bool `json:"was_overdue"`
	DaysOverdue int  `json:"days_overdue"`
}

type RenewResult struct {
	Message string `json:"message"`
}

type CheckoutResult struct {
	BookTitle string `json:"book_title"`
}

const (
	DefaultExtendDays   = 7
	DefaultCheckoutDays = 14

	// noticeTTL is how long a success message stays up before auto-clearing.
	// Errors are never auto-cleared; they persist until the next attempt.
	noticeTTL = 4 * time.Second
)

type Service interface {
	// FetchMyLoans lists the caller's checkouts, classifying every item
	// against one shared now so a page is internally consistent.
	FetchMyLoans(ctx context.Context, page, limit int) (*LoanPage, error)

	// Checkin returns a book, then re-fetches the loan list.
	Checkin(ctx context.Context, loanID string) (*CheckinResult, error)

	// Renew extends a checkout by extendDays (DefaultExtendDays if <= 0).
	Renew(ctx context.Context, loanID string, extendDays int) (*RenewResult, error)

	// Checkout borrows a book for checkoutDays (DefaultCheckoutDays if <= 0).
	Checkout(ctx context.Context, bookID string, checkoutDays int) (*CheckoutResult, error)

	// BrowseBooks lists the catalog for the browse view checkout starts from.
	BrowseBooks(ctx context.Context, page, limit int) (*catalog.BooksPage, error)

	// Loans returns the last fetched page, for consumers that render the
	// list without re-fetching.
	Loans() *LoanPage

	// InFlight reports whether loanID has a pending checkin or renewal,
	// so the UI can disable its buttons.
	InFlight(loanID string) bool

	// Feedback returns the transient notice and the current error string.
	Feedback() (notice, errMsg string)

	// ClearError drops the current error string.
	ClearError()
}

// ----- Service implementation -----

type service struct {
	session session.Provider
	catalog catalog.Repo
	log     *slog.Logger
	now     func() time.Time

	mu             sync.Mutex
	checkinPending map[string]struct{}
	renewPending   map[string]struct{}
	page           *LoanPage
	lastPage       int
	lastLimit      int
	errMsg         string
	notice         string
	noticeGen      int
}

func New(sp session.Provider, c catalog.Repo, log *slog.Logger) Service {
	return &service{
		session:        sp,
		catalog:        c,
		log:            log,
		now:            time.Now,
		checkinPending: map[string]struct{}{},
		renewPending:   map[string]struct{}{},
		lastPage:       1,
		lastLimit:      20,
	}
}

func (s *service) FetchMyLoans(ctx context.Context, page, limit int) (*LoanPage, error) {
	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, s.fail(makeErr(ErrUnauthenticated, "Please log in to view your checkouts"))
	}

	raw, err := s.catalog.MyCheckouts(ctx, tok.Bearer, page, limit)
	if err != nil {
		return nil, s.fail(err)
	}

	// one snapshot for the whole batch
	now := s.now()
	items := make([]model.ClassifiedLoan, 0, len(raw.Books))
	for _, loan := range raw.Books {
		if loan.DueDate == nil {
			s.log.Warn("checkout without due date skipped", "id", loan.ID)
			continue
		}
		c, err := duedate.Classify(loan.DueDate, now)
		if err != nil {
			return nil, s.fail(err)
		}
		items = append(items, model.ClassifiedLoan{
			Loan:         loan,
			IsOverdue:    c.IsOverdue,
			DaysOverdue:  c.DaysOverdue,
			DaysUntilDue: c.DaysUntilDue,
			DueSoon:      duedate.DueSoon(c),
		})
	}

	result := &LoanPage{Items: items, TotalCount: raw.Total}
	s.mu.Lock()
	s.page = result
	s.lastPage, s.lastLimit = page, limit
	s.errMsg = ""
	s.mu.Unlock()
	return result, nil
}

func (s *service) Checkin(ctx context.Context, loanID string) (*CheckinResult, error) {
	if !s.acquire(s.checkinPending, loanID) {
		return nil, makeErr(ErrInFlight, "Checkin already in progress for this book")
	}
	defer s.release(s.checkinPending, loanID)

	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, s.fail(makeErr(ErrUnauthenticated, "Please log in to check in books"))
	}

	res, err := s.catalog.Checkin(ctx, tok.Bearer, loanID)
	if err != nil {
		// loan list left untouched; no refresh on failure
		return nil, s.fail(err)
	}

	if res.WasOverdue {
		s.setNotice(fmt.Sprintf("Book returned. It was %d days overdue.", res.DaysOverdue))
	} else {
		s.setNotice("Book returned on time.")
	}
	s.refresh(ctx)
	return &CheckinResult{WasOverdue: res.WasOverdue, DaysOverdue: res.DaysOverdue}, nil
}

func (s *service) Renew(ctx context.Context, loanID string, extendDays int) (*RenewResult, error) {
	if extendDays <= 0 {
		extendDays = DefaultExtendDays
	}
	if !s.acquire(s.renewPending, loanID) {
		return nil, makeErr(ErrInFlight, "Renewal already in progress for this book")
	}
	defer s.release(s.renewPending, loanID)

	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, s.fail(makeErr(ErrUnauthenticated, "Please log in to renew books"))
	}

	res, err := s.catalog.ExtendCheckout(ctx, tok.Bearer, loanID, extendDays)
	if err != nil {
		return nil, s.fail(err)
	}

	s.setNotice(res.Message)
	s.refresh(ctx)
	return &RenewResult{Message: res.Message}, nil
}

func (s *service) Checkout(ctx context.Context, bookID string, checkoutDays int) (*CheckoutResult, error) {
	if checkoutDays <= 0 {
		checkoutDays = DefaultCheckoutDays
	}

	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, s.fail(makeErr(ErrUnauthenticated, "Please log in to checkout books"))
	}

	res, err := s.catalog.Checkout(ctx, tok.Bearer, bookID, checkoutDays)
	if err != nil {
		return nil, s.fail(err)
	}

	s.setNotice(fmt.Sprintf("Checked out %q.", res.BookTitle))
	s.refresh(ctx)
	return &CheckoutResult{BookTitle: res.BookTitle}, nil
}

func (s *service) BrowseBooks(ctx context.Context, page, limit int) (*catalog.BooksPage, error) {
	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, s.fail(makeErr(ErrUnauthenticated, "Please log in to browse the catalog"))
	}
	out, err := s.catalog.ListBooks(ctx, tok.Bearer, page, limit)
	if err != nil {
		return nil, s.fail(err)
	}
	return out, nil
}

func (s *service) Loans() *LoanPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *service) Feedback() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice, s.errMsg
}

func (s *service) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// InFlight reports whether loanID has a pending checkin or renewal. The two
// sets are deliberately independent: the UI never offers both at once, and
// the controller does not cross-guard them.
func (s *service) InFlight(loanID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a := s.checkinPending[loanID]
	_, b := s.renewPending[loanID]
	return a || b
}

// refresh re-fetches the current page after a successful mutation. The server
// owns derived fields, so a full re-fetch beats patching the list locally.
func (s *service) refresh(ctx context.Context) {
	s.mu.Lock()
	page, limit := s.lastPage, s.lastLimit
	s.mu.Unlock()
	if _, err := s.FetchMyLoans(ctx, page, limit); err != nil {
		s.log.Error("loan list refresh", "err", err)
	}
}

func (s *service) acquire(pending map[string]struct{}, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := pending[id]; busy {
		return false
	}
	pending[id] = struct{}{}
	return true
}

func (s *service) release(pending map[string]struct{}, id string) {
	s.mu.Lock()
	delete(pending, id)
	s.mu.Unlock()
}

// fail records err as the single current error string, replacing any prior
// one, and passes it through.
func (s *service) fail(err error) error {
	s.mu.Lock()
	s.errMsg = err.Error()
	var re *catalog.RemoteError
	if errors.As(err, &re) {
		s.errMsg = re.Message
	}
	s.mu.Unlock()
	return err
}

func (s *service) setNotice(msg string) {
	s.mu.Lock()
	s.notice = msg
	s.errMsg = ""
	s.noticeGen++
	gen := s.noticeGen
	s.mu.Unlock()

	time.AfterFunc(noticeTTL, func() {
		s.mu.Lock()
		if s.noticeGen == gen {
			s.notice = ""
		}
		s.mu.Unlock()
	})
}
