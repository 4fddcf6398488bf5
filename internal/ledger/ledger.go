// Package ledger owns customer billing records. Balance and payment status are
// derived values: they are recomputed from advance/total on every write and
// never accepted from callers or trusted from storage.
package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the derived payment state of a record.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

// Record is a customer billing entry. Studio through Location are free-text
// attributes; ShootDate is whatever string the studio wrote on the sheet.
type Record struct {
	ID        uuid.UUID
	Studio    string
	Person    string
	Phone     string
	ShootDate string
	Camera    string
	Location  string
	Advance   decimal.Decimal
	Total     decimal.Decimal
	Balance   decimal.Decimal
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveFinancials computes the balance and status for the given amounts.
// Invoked at every create/update boundary; a stale record is never trusted for
// these two fields.
func DeriveFinancials(advance, total decimal.Decimal) (decimal.Decimal, Status) {
	balance := total.Sub(advance)

	if advance.GreaterThanOrEqual(total) {
		return balance, StatusPaid
	}

	return balance, StatusPending
}

// CoerceAmount converts arbitrary caller input into a decimal amount. Numbers
// (json.Number from a UseNumber decoder, or float64) and numeric strings are
// parsed; everything else, including malformed strings, coerces to zero.
func CoerceAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(n)
	case int64:
		return decimal.NewFromInt(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return d
		}
	case decimal.Decimal:
		return n
	}

	return decimal.Zero
}
