package domain

// Unit is a resolved unit descriptor. Simple units carry only a numerator
// measure; ratio units (e.g. USD per share) also carry a denominator.
type Unit struct {
	Numerator   QName
	Denominator *QName
}

// IsMonetary reports whether the unit is a plain ISO-4217 currency measure.
func (u Unit) IsMonetary() bool {
	return u.Denominator == nil && u.Numerator.Namespace == ISO4217Namespace
}

// CurrencyCode is the ISO-4217 code of a monetary unit, empty otherwise.
func (u Unit) CurrencyCode() string {
	if !u.IsMonetary() {
		return ""
	}
	return u.Numerator.LocalName
}

func (u Unit) String() string {
	if u.Denominator != nil {
		return u.Numerator.String() + "/" + u.Denominator.String()
	}
	return u.Numerator.String()
}
