package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shiprecon/internal/domain"
)

// dateLayouts are tried in order by parseDate. The first three cover the
// formats the upload templates document; the rest cover what spreadsheets
// commonly emit.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02 15:04:05",
}

// parseDate parses a date permissively. Empty or unparseable input yields
// nil rather than an error: a shipment without a usable delivered date is
// stored with a null date.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}

// parseAmount parses a money field strictly. Non-numeric input is rejected
// with a ValidationError naming the row and column rather than silently
// coerced to zero, which would corrupt derived net amounts.
func parseAmount(value, column string, row int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &domain.ValidationError{
			Row:     row,
			Column:  column,
			Message: "value is not a valid number",
		}
	}
	return d, nil
}
