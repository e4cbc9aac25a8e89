package domain

import "strconv"

type decimalsKind int

const (
	decimalsExact decimalsKind = iota
	decimalsUnspecified
	decimalsValue
)

// Decimals is the three-state precision indicator of a numeric fact: absent
// on the wire means the value is exact, an explicit null means the precision
// was not specified, otherwise it is a signed rounding exponent.
type Decimals struct {
	kind  decimalsKind
	value int
}

func ExactDecimals() Decimals       { return Decimals{kind: decimalsExact} }
func UnspecifiedDecimals() Decimals { return Decimals{kind: decimalsUnspecified} }
func DecimalsOf(n int) Decimals     { return Decimals{kind: decimalsValue, value: n} }

func (d Decimals) IsExact() bool       { return d.kind == decimalsExact }
func (d Decimals) IsUnspecified() bool { return d.kind == decimalsUnspecified }

// Value returns the rounding exponent and whether one is present.
func (d Decimals) Value() (int, bool) {
	return d.value, d.kind == decimalsValue
}

func (d Decimals) String() string {
	switch d.kind {
	case decimalsExact:
		return "exact"
	case decimalsUnspecified:
		return "unspecified"
	default:
		return strconv.Itoa(d.value)
	}
}
