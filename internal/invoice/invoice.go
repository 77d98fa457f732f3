package invoice

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no invoice exists for the requested ID.
var ErrNotFound = errors.New("invoice: not found")

// Invoice is the read model for one invoice document. The backing
// store is an external document database; this package only reads.
type Invoice struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	Client    string     `json:"client"`
	Status    string     `json:"status"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency"`
	Items     []LineItem `json:"items,omitempty"`
}

// LineItem is one billed line on an invoice, stored as a separate
// document related to its invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Repository reads invoices from the document database.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id string) (*Invoice, error)
}

// NormalizeID strips dashes so page IDs match the 32-char hex form the
// web routes use.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
