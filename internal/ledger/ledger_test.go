package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/studiodesk/studiodesk/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveFinancials(t *testing.T) {
	tests := []struct {
		name        string
		advance     string
		total       string
		wantBalance string
		wantStatus  ledger.Status
	}{
		{"PartialAdvance", "3000", "10000", "7000", ledger.StatusPending},
		{"FullyPaid", "10000", "10000", "0", ledger.StatusPaid},
		{"Overpaid", "12000", "10000", "-2000", ledger.StatusPaid},
		{"NothingPaid", "0", "5000", "5000", ledger.StatusPending},
		{"ZeroZero", "0", "0", "0", ledger.StatusPaid},
		{"DecimalAmounts", "99.50", "200.25", "100.75", ledger.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, status := ledger.DeriveFinancials(dec(tt.advance), dec(tt.total))

			assert.True(t, balance.Equal(dec(tt.wantBalance)), "balance = %s", balance)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"JSONNumber", json.Number("3000"), "3000"},
		{"JSONNumberDecimal", json.Number("99.50"), "99.5"},
		{"NumericString", "1500", "1500"},
		{"PaddedString", "  250.75 ", "250.75"},
		{"Float", float64(42.5), "42.5"},
		{"Int", 7, "7"},
		{"MalformedString", "abc", "0"},
		{"EmptyString", "", "0"},
		{"Nil", nil, "0"},
		{"Bool", true, "0"},
		{"Map", map[string]any{"x": 1}, "0"},
		{"NegativePassesThrough", json.Number("-50"), "-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.CoerceAmount(tt.input)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
