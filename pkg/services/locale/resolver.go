package locale

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
)

// Resolver turns a message identifier into display text, falling back to a
// caller-chosen string when the table has no entry. Lookups never fail.
type Resolver interface {
	Resolve(key, fallback string) string
}

// Table is a locale-bound string table with number and currency rendering.
type Table struct {
	entries map[string]string
	symbols map[string]string
	printer *message.Printer
}

// NewTable binds a string table to a language. Entries and symbols may be
// nil.
func NewTable(tag language.Tag, entries, symbols map[string]string) *Table {
	return &Table{
		entries: entries,
		symbols: symbols,
		printer: message.NewPrinter(tag),
	}
}

func (t *Table) Resolve(key, fallback string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return fallback
}

// FormatNumber renders a magnitude with locale grouping. A decimals value
// fixes the number of fraction digits shown (never below zero); exact or
// unspecified decimals render the magnitude as-is.
func (t *Table) FormatNumber(v float64, d domain.Decimals) string {
	if n, ok := d.Value(); ok {
		scale := n
		if scale < 0 {
			scale = 0
		}
		return t.printer.Sprintf("%v", number.Decimal(v, number.Scale(scale)))
	}
	return t.printer.Sprintf("%v", number.Decimal(v))
}

// CurrencySymbol returns the display symbol for an ISO-4217 code, falling
// back to the code itself for unknown or symbol-less currencies.
func (t *Table) CurrencySymbol(code string) string {
	if _, err := currency.ParseISO(code); err != nil {
		return code
	}
	if sym, ok := t.symbols[code]; ok {
		return sym
	}
	return code
}
