// Package format renders summary numbers and rows for display and export.
//
// Numbers follow the configured locale. The default, Indonesian, uses ","
// as decimal separator and "." for thousands: 1234.5 km is "1.234,50" and
// Rp 1234567 is "1.234.567".
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLocale = "id"

type Formatter struct {
	p *message.Printer
}

func New(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// NewFromLocale builds a Formatter from a BCP 47 tag such as "id" or "en-US".
// An empty locale selects DefaultLocale.
func NewFromLocale(locale string) (*Formatter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("new formatter: parse locale %q: %w", locale, err)
	}
	return New(tag), nil
}

// Decimal formats with two fractional digits and locale grouping.
func (f *Formatter) Decimal(v float64) string {
	return f.p.Sprintf("%.2f", clean(v))
}

// Distance is the kilometre figure of a summary row.
func (f *Formatter) Distance(v float64) string {
	return f.Decimal(v)
}

// Amounts at or beyond this magnitude do not fit an int64 exactly.
const maxExactInt = 1 << 62

// Currency formats a cost as a whole amount with thousands grouping.
func (f *Formatter) Currency(v float64) string {
	r := math.RoundToEven(clean(v))
	if math.Abs(r) >= maxExactInt {
		return f.p.Sprintf("%.0f", r)
	}
	return f.p.Sprintf("%d", int64(r))
}

// JoinCustomers renders customer ids as "3, 5, 3", or "-" when there are none.
func JoinCustomers(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// NaN and infinities render as zero.
func clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
