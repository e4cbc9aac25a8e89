package store

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
)

// ErrInvalidIXValue is the error tag a fact record carries when the source
// document held a value the extractor could not interpret.
const ErrInvalidIXValue = "INVALID_IX_VALUE"

// FactRecord is one raw fact as stored in the report's fact table. The
// value field is three-state: absent, explicit nil, or a string.
type FactRecord struct {
	Aspects   map[string]string
	Value     *string
	Nil       bool
	Err       string
	Decimals  domain.Decimals
	Footnotes []string
}

type factRecordWire struct {
	Aspects   map[string]string `json:"a"`
	Value     json.RawMessage   `json:"v"`
	Decimals  json.RawMessage   `json:"d"`
	Err       string            `json:"err"`
	Footnotes []string          `json:"fn"`
}

// UnmarshalJSON keeps the wire's three-way distinctions: a missing value is
// not the same as an explicit null, and missing decimals (exact) are not the
// same as null decimals (unspecified).
func (f *FactRecord) UnmarshalJSON(data []byte) error {
	var wire factRecordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := FactRecord{
		Aspects:   wire.Aspects,
		Err:       wire.Err,
		Footnotes: wire.Footnotes,
	}
	if out.Aspects == nil {
		out.Aspects = map[string]string{}
	}

	switch {
	case wire.Value == nil:
		// absent
	case string(wire.Value) == "null":
		out.Nil = true
	default:
		var s string
		if err := json.Unmarshal(wire.Value, &s); err != nil {
			// Numeric literals are carried through as their source text.
			var n json.Number
			if err := json.Unmarshal(wire.Value, &n); err != nil {
				return fmt.Errorf("fact value: want string, number or null, got %s", wire.Value)
			}
			s = n.String()
		}
		out.Value = &s
	}

	switch {
	case wire.Decimals == nil:
		out.Decimals = domain.ExactDecimals()
	case string(wire.Decimals) == "null":
		out.Decimals = domain.UnspecifiedDecimals()
	default:
		var n int
		if err := json.Unmarshal(wire.Decimals, &n); err != nil {
			return fmt.Errorf("fact decimals: want integer or null, got %s", wire.Decimals)
		}
		out.Decimals = domain.DecimalsOf(n)
	}

	*f = out
	return nil
}
