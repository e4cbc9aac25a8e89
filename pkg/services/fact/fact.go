package fact

import (
	"sort"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"

	"github.com/de-tools/fact-atlas/pkg/services/locale"
)

// Item is anything a footnote reference can resolve to: another fact or a
// plain footnote item.
type Item interface {
	ID() string
}

// RoleEdges is one extended link role's edge list for a concept.
type RoleEdges struct {
	Role  string
	Edges []store.Edge
}

// Report is the read-only handle a fact resolves against. Facts never own
// the report; they hold it only for lookup calls.
type Report interface {
	// QName resolves a raw prefixed name against the report's prefix table.
	QName(raw string) domain.QName
	// Concept returns the concept record for a prefixed name.
	Concept(name string) (store.ConceptRecord, bool)
	// LabelOrName returns the concept's label in the given role, falling
	// back to the prefixed name itself.
	LabelOrName(name, role string) string
	// ParentRelationships returns, per extended link role in stable order,
	// the arcrole edges pointing at the concept.
	ParentRelationships(name, arcrole string) []RoleEdges
	// ChildRelationships returns, per extended link role in stable order,
	// the arcrole edges leaving the concept.
	ChildRelationships(name, arcrole string) []RoleEdges
	// PresentationNode returns the presentation flags recorded for a fact.
	PresentationNode(id string) (store.PresentationNode, bool)
	// ItemByID resolves a footnote reference.
	ItemByID(id string) (Item, bool)
	// AlignedFacts returns all other facts aligned with f under a coverage.
	AlignedFacts(f *Fact, cov domain.Coverage) []*Fact
	// Duplicates applies the report's default coverage policy.
	Duplicates(f *Fact) []*Fact
}

// Strings is the locale collaborator used for display rendering.
type Strings interface {
	locale.Resolver
	FormatNumber(v float64, d domain.Decimals) string
	CurrencySymbol(code string) string
}

// Fact is a view over one record of the report's immutable fact table. It is
// never mutated after construction except for the append-only linked-fact
// list.
type Fact struct {
	id      string
	rec     store.FactRecord
	report  Report
	strings Strings
	linked  []*Fact
}

func New(rep Report, strings Strings, id string, rec store.FactRecord) *Fact {
	return &Fact{id: id, rec: rec, report: rep, strings: strings}
}

func (f *Fact) ID() string { return f.id }

// Value is the raw disclosed value. Empty for nil and absent values; IsNil
// tells the two apart.
func (f *Fact) Value() string {
	if f.rec.Value == nil {
		return ""
	}
	return *f.rec.Value
}

// IsNil reports whether the value is an explicit nil, as opposed to an empty
// string or a missing value.
func (f *Fact) IsNil() bool { return f.rec.Nil }

// IsInvalidIXValue reports whether the source document held a value the
// extractor could not interpret.
func (f *Fact) IsInvalidIXValue() bool { return f.rec.Err == store.ErrInvalidIXValue }

// IsNumeric reports whether the fact carries a unit aspect. Non-numeric
// facts never do.
func (f *Fact) IsNumeric() bool {
	_, ok := f.rec.Aspects[domain.AspectUnit]
	return ok
}

// Unit resolves the unit aspect, when present and non-empty.
func (f *Fact) Unit() (domain.Unit, bool) {
	raw, ok := f.rec.Aspects[domain.AspectUnit]
	if !ok || raw == "" {
		return domain.Unit{}, false
	}
	return parseUnit(f.report, raw), true
}

// IsMonetary reports whether the fact is numeric with a plain ISO-4217
// currency unit.
func (f *Fact) IsMonetary() bool {
	u, ok := f.Unit()
	return ok && u.IsMonetary()
}

// ConceptName is the raw prefixed concept name.
func (f *Fact) ConceptName() string { return f.rec.Aspects[domain.AspectConcept] }

// Concept is the resolved concept qname.
func (f *Fact) Concept() domain.QName { return f.report.QName(f.ConceptName()) }

// Period resolves the period aspect, when present and well-formed.
func (f *Fact) Period() (domain.Period, bool) {
	raw, ok := f.rec.Aspects[domain.AspectPeriod]
	if !ok {
		return domain.Period{}, false
	}
	p, err := domain.ParsePeriod(raw)
	if err != nil {
		return domain.Period{}, false
	}
	return p, true
}

func (f *Fact) Decimals() domain.Decimals { return f.rec.Decimals }

// Dimensions is the subset of the aspect map addressing taxonomy-defined
// dimensions.
func (f *Fact) Dimensions() map[string]string {
	dims := map[string]string{}
	for k, v := range f.rec.Aspects {
		if domain.IsDimensionKey(k) {
			dims[k] = v
		}
	}
	return dims
}

// Aspect returns the resolved aspect for a key, when present.
func (f *Fact) Aspect(key string) (Aspect, bool) {
	raw, ok := f.rec.Aspects[key]
	if !ok {
		return Aspect{}, false
	}
	return Aspect{fact: f, key: key, raw: raw}, true
}

// Aspects enumerates the fact's resolved aspects: reserved keys first in a
// fixed order, then dimensions sorted by key.
func (f *Fact) Aspects() []Aspect {
	keys := make([]string, 0, len(f.rec.Aspects))
	for _, k := range []string{
		domain.AspectConcept, domain.AspectPeriod, domain.AspectUnit,
		domain.AspectEntity, domain.AspectLanguage,
	} {
		if _, ok := f.rec.Aspects[k]; ok {
			keys = append(keys, k)
		}
	}
	var dims []string
	for k := range f.rec.Aspects {
		if domain.IsDimensionKey(k) {
			dims = append(dims, k)
		}
	}
	sort.Strings(dims)
	keys = append(keys, dims...)

	aspects := make([]Aspect, 0, len(keys))
	for _, k := range keys {
		aspects = append(aspects, Aspect{fact: f, key: k, raw: f.rec.Aspects[k]})
	}
	return aspects
}

// IsAligned reports whether the other fact reports the same underlying fact
// up to the covered aspects. See Aligned.
func (f *Fact) IsAligned(of *Fact, cov domain.Coverage) bool {
	return Aligned(f, of, cov)
}

// EquivalentDuration reports whether both facts' periods denote the same
// elapsed span. False when either period is missing or malformed.
func (f *Fact) EquivalentDuration(of *Fact) bool {
	p, ok := f.Period()
	if !ok {
		return false
	}
	op, ok := of.Period()
	if !ok {
		return false
	}
	return p.EquivalentDuration(op)
}

// Duplicates returns the facts aligned with this one under the report's
// default coverage policy.
func (f *Fact) Duplicates() []*Fact { return f.report.Duplicates(f) }

// WiderConcepts returns the union of wider concepts across every extended
// link role defining a wider-narrower arc for this fact's concept, in role
// order, without deduplication.
func (f *Fact) WiderConcepts() []string {
	var out []string
	for _, role := range f.report.ParentRelationships(f.ConceptName(), domain.WiderNarrowerArcrole) {
		for _, e := range role.Edges {
			out = append(out, e.Src)
		}
	}
	return out
}

// NarrowerConcepts is the counterpart of WiderConcepts for narrower targets.
func (f *Fact) NarrowerConcepts() []string {
	var out []string
	for _, role := range f.report.ChildRelationships(f.ConceptName(), domain.WiderNarrowerArcrole) {
		for _, e := range role.Edges {
			out = append(out, e.Target)
		}
	}
	return out
}

// Footnotes resolves the fact's footnote references in stored order,
// skipping ids the report cannot resolve.
func (f *Fact) Footnotes() []Item {
	var items []Item
	for _, id := range f.rec.Footnotes {
		if item, ok := f.report.ItemByID(id); ok {
			items = append(items, item)
		}
	}
	return items
}

// AddLinkedFact records an inbound relationship source. Append-only, never
// deduplicated. Not safe for concurrent writers.
func (f *Fact) AddLinkedFact(src *Fact) {
	f.linked = append(f.linked, src)
}

// LinkedFacts returns the recorded inbound sources in arrival order.
func (f *Fact) LinkedFacts() []*Fact { return f.linked }

func (f *Fact) presentation() store.PresentationNode {
	node, _ := f.report.PresentationNode(f.id)
	return node
}

// IsHidden reports whether the fact is absent from the rendered body.
func (f *Fact) IsHidden() bool { return f.presentation().Hidden }

// IsHTMLHidden reports whether the fact's markup is display-hidden.
func (f *Fact) IsHTMLHidden() bool { return f.presentation().HTMLHidden }

// IsEscaped reports whether the fact's markup was HTML-escaped at source.
func (f *Fact) IsEscaped() bool { return f.presentation().Escaped }

// InFootnote reports whether the fact is part of a footnote link.
func (f *Fact) InFootnote() bool { return f.presentation().Footnote }

// IsEnumeration reports whether the concept is an enumeration type.
func (f *Fact) IsEnumeration() bool {
	c, ok := f.report.Concept(f.ConceptName())
	return ok && c.Enumeration
}

// IsTextBlock reports whether the concept is a text-block type.
func (f *Fact) IsTextBlock() bool {
	c, ok := f.report.Concept(f.ConceptName())
	return ok && c.TextBlock
}

func parseUnit(rep Report, raw string) domain.Unit {
	num, denom, ok := cutUnit(raw)
	u := domain.Unit{Numerator: rep.QName(num)}
	if ok {
		d := rep.QName(denom)
		u.Denominator = &d
	}
	return u
}

func cutUnit(raw string) (num, denom string, ok bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '/' {
			return raw[:i], raw[i+1:], true
		}
	}
	return raw, "", false
}
