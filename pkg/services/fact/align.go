package fact

import "github.com/de-tools/fact-atlas/pkg/models/domain"

// Aligned decides whether two facts report the same underlying fact up to
// the covered aspects.
//
// The aspect maps must hold exactly the same number of entries; facts with
// extra or missing dimensional qualifiers never align, and the count check
// guards against keys on of that iteration over f would miss. Then, for each
// key on f: a covered wildcard accepts any value without consulting of; a
// covered set or scalar constrains f's raw value alone; an uncovered key
// must match of's raw value exactly, a missing key on of being an ordinary
// non-match. Raw values are compared throughout — two encodings of an equal
// domain value do not align.
func Aligned(f, of *Fact, cov domain.Coverage) bool {
	fa, oa := f.rec.Aspects, of.rec.Aspects
	if len(fa) != len(oa) {
		return false
	}
	for key, raw := range fa {
		if constraint, covered := cov[key]; covered {
			if !constraint.Admits(raw) {
				return false
			}
			continue
		}
		other, ok := oa[key]
		if !ok || other != raw {
			return false
		}
	}
	return true
}
