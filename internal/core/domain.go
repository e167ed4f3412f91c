package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// DateLayout is the canonical day-precision date format used everywhere a
// date crosses a boundary (storage, CLI flags, report labels).
const DateLayout = "2006-01-02"

type (
	// Kind distinguishes money coming in from money going out.
	Kind string

	// Date is a calendar date at day precision, always UTC.
	Date struct {
		time.Time
	}

	// Category groups transactions. Limit.Cents == 0 means no budget is
	// tracked for the category.
	Category struct {
		Name  string
		Kind  Kind
		Limit Money
	}

	// Transaction is a single recorded income or expense. Transactions are
	// immutable once stored: corrections are appended as new entries so the
	// full history survives.
	Transaction struct {
		ID          int64
		Date        Date
		Amount      Money
		Category    string
		Kind        Kind
		Description string
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidKind      = errors.New("invalid kind")
	ErrEmptyCategory    = errors.New("empty category name")
	ErrNegativeLimit    = errors.New("budget limit cannot be negative")
	ErrDescriptionLimit = errors.New("description too long (max 200 characters)")
)

// UnknownCategoryError reports a reference to a category that does not exist.
// Aggregation raises it instead of silently dropping the transaction, which
// would corrupt the totals.
type UnknownCategoryError struct {
	TransactionID int64
	Category      string
}

func (e *UnknownCategoryError) Error() string {
	if e.TransactionID != 0 {
		return fmt.Sprintf("transaction %d references unknown category %q", e.TransactionID, e.Category)
	}
	return fmt.Sprintf("unknown category %q", e.Category)
}

// InvalidAmountError reports a stored transaction whose amount is not a
// positive number of cents. The write path rejects these, so seeing one means
// the data is corrupt; it is flagged rather than summed.
type InvalidAmountError struct {
	TransactionID int64
	Cents         int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("transaction %d has non-positive amount (%d cents)", e.TransactionID, e.Cents)
}

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in the canonical YYYY-MM-DD layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (c Category) HasBudget() bool {
	return c.Limit.Cents > 0
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategory
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	if c.Limit.Cents < 0 {
		return ErrNegativeLimit
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if len(t.Description) > 200 {
		return ErrDescriptionLimit
	}
	return nil
}
