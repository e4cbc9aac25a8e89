package locale

import "golang.org/x/text/language"

// Message identifiers used by the fact layer.
const (
	KeyNotApplicable    = "common.notApplicable"
	KeyAccuracyInfinite = "common.accuracyInfinite"
	KeyUnspecified      = "common.unspecified"
	KeyInvalidValue     = "common.invalidValue"
	KeyNilValue         = "common.nilValue"
	KeyNoName           = "common.noName"

	KeyAccuracyPrefix = "currencies:accuracy"
	KeyCentsPrefix    = "currencies:cents"
)

var enEntries = map[string]string{
	KeyNotApplicable:    "n/a",
	KeyAccuracyInfinite: "Infinite",
	KeyUnspecified:      "Unspecified",
	KeyInvalidValue:     "Invalid value",
	KeyNilValue:         "nil",
	KeyNoName:           "no name",

	KeyAccuracyPrefix + "-9": "billions",
	KeyAccuracyPrefix + "-6": "millions",
	KeyAccuracyPrefix + "-3": "thousands",
	KeyAccuracyPrefix + "-2": "hundreds",
	KeyAccuracyPrefix + "-1": "tens",
	KeyAccuracyPrefix + "0":  "ones",
	KeyAccuracyPrefix + "1":  "tenths",
	KeyAccuracyPrefix + "2":  "hundredths",
	KeyAccuracyPrefix + "3":  "thousandths",
	KeyAccuracyPrefix + "4":  "ten thousandths",

	KeyCentsPrefix + "USD": "cents",
	KeyCentsPrefix + "EUR": "cents",
	KeyCentsPrefix + "CAD": "cents",
	KeyCentsPrefix + "AUD": "cents",
	KeyCentsPrefix + "GBP": "pence",
	KeyCentsPrefix + "CHF": "centimes",
	KeyCentsPrefix + "SEK": "öre",
}

var enSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
}

// Default is the English table the viewer ships with.
func Default() *Table {
	return NewTable(language.English, enEntries, enSymbols)
}
