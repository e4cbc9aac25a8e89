package report

import (
	"sort"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"

	"github.com/de-tools/fact-atlas/pkg/services/fact"
	"github.com/de-tools/fact-atlas/pkg/services/locale"
)

// Report is the read-only handle over one loaded disclosure document. All
// lookups are pure; the fact table and its indexes are built once in New and
// never mutated afterwards.
type Report struct {
	id         string
	data       store.ReportData
	strings    fact.Strings
	defaultCov domain.Coverage

	facts     map[string]*fact.Fact
	order     []string
	byConcept map[string][]string
	relRoles  map[string][]string
}

var _ fact.Report = (*Report)(nil)

type Options struct {
	// ID is the report instance id assigned by the loader.
	ID string
	// Strings defaults to the English table.
	Strings fact.Strings
	// DuplicateCoverage is the default coverage policy applied by
	// Duplicates. Empty coverage means exact duplicates only.
	DuplicateCoverage domain.Coverage
}

func New(data store.ReportData, opts Options) *Report {
	if opts.Strings == nil {
		opts.Strings = locale.Default()
	}
	r := &Report{
		id:         opts.ID,
		data:       data,
		strings:    opts.Strings,
		defaultCov: opts.DuplicateCoverage,
		facts:      make(map[string]*fact.Fact, len(data.Facts)),
		byConcept:  map[string][]string{},
		relRoles:   map[string][]string{},
	}

	for id := range data.Facts {
		r.order = append(r.order, id)
	}
	sort.Strings(r.order)

	for _, id := range r.order {
		rec := data.Facts[id]
		f := fact.New(r, opts.Strings, id, rec)
		r.facts[id] = f
		concept := rec.Aspects[domain.AspectConcept]
		r.byConcept[concept] = append(r.byConcept[concept], id)
	}

	for arcrole, roles := range data.Rels {
		for role := range roles {
			r.relRoles[arcrole] = append(r.relRoles[arcrole], role)
		}
		sort.Strings(r.relRoles[arcrole])
	}

	// Wire inbound footnote links. Single writer: the report is not shared
	// until New returns.
	for _, id := range r.order {
		src := r.facts[id]
		for _, fnID := range data.Facts[id].Footnotes {
			if target, ok := r.facts[fnID]; ok {
				target.AddLinkedFact(src)
			}
		}
	}

	return r
}

// ID is the loader-assigned instance id.
func (r *Report) ID() string { return r.id }

// Fact returns the cached fact view for an id.
func (r *Report) Fact(id string) (*fact.Fact, bool) {
	f, ok := r.facts[id]
	return f, ok
}

// Facts returns every fact in id order.
func (r *Report) Facts() []*fact.Fact {
	out := make([]*fact.Fact, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.facts[id])
	}
	return out
}

// QName resolves a raw prefixed name against the prefix table. Unknown
// prefixes resolve with an empty namespace.
func (r *Report) QName(raw string) domain.QName {
	prefix, local := domain.SplitQName(raw)
	return domain.QName{
		Prefix:    prefix,
		Namespace: r.data.Prefixes[prefix],
		LocalName: local,
	}
}

func (r *Report) Concept(name string) (store.ConceptRecord, bool) {
	c, ok := r.data.Concepts[name]
	return c, ok
}

// Label returns the concept's label for a role, preferring English when the
// role carries several languages.
func (r *Report) Label(name, role string) (string, bool) {
	c, ok := r.data.Concepts[name]
	if !ok {
		return "", false
	}
	langs, ok := c.Labels[role]
	if !ok || len(langs) == 0 {
		return "", false
	}
	if text, ok := langs["en"]; ok {
		return text, true
	}
	keys := make([]string, 0, len(langs))
	for lang := range langs {
		keys = append(keys, lang)
	}
	sort.Strings(keys)
	return langs[keys[0]], true
}

// LabelOrName falls back to the prefixed name when no label resolves.
func (r *Report) LabelOrName(name, role string) string {
	if text, ok := r.Label(name, role); ok {
		return text
	}
	return name
}

// ParentRelationships returns, per extended link role in sorted order, the
// arcrole edges whose target is the concept.
func (r *Report) ParentRelationships(name, arcrole string) []fact.RoleEdges {
	return r.roleEdges(arcrole, func(e store.Edge) bool { return e.Target == name })
}

// ChildRelationships returns, per extended link role in sorted order, the
// arcrole edges whose source is the concept.
func (r *Report) ChildRelationships(name, arcrole string) []fact.RoleEdges {
	return r.roleEdges(arcrole, func(e store.Edge) bool { return e.Src == name })
}

func (r *Report) roleEdges(arcrole string, match func(store.Edge) bool) []fact.RoleEdges {
	var out []fact.RoleEdges
	for _, role := range r.relRoles[arcrole] {
		var edges []store.Edge
		for _, e := range r.data.Rels[arcrole][role] {
			if match(e) {
				edges = append(edges, e)
			}
		}
		if len(edges) > 0 {
			out = append(out, fact.RoleEdges{Role: role, Edges: edges})
		}
	}
	return out
}

func (r *Report) PresentationNode(id string) (store.PresentationNode, bool) {
	node, ok := r.data.IXNodes[id]
	return node, ok
}

// ItemByID resolves a footnote reference to a fact or a footnote item.
func (r *Report) ItemByID(id string) (fact.Item, bool) {
	if f, ok := r.facts[id]; ok {
		return f, true
	}
	if fn, ok := r.data.FootnoteItems[id]; ok {
		return Footnote{id: id, text: fn.Text}, true
	}
	return nil, false
}

// AlignedFacts returns all other facts aligned with f under the coverage.
// When the concept aspect is uncovered only facts sharing f's raw concept
// can align, so the scan is limited to that bucket.
func (r *Report) AlignedFacts(f *fact.Fact, cov domain.Coverage) []*fact.Fact {
	candidates := r.order
	if _, covered := cov[domain.AspectConcept]; !covered {
		candidates = r.byConcept[f.ConceptName()]
	}
	var aligned []*fact.Fact
	for _, id := range candidates {
		if id == f.ID() {
			continue
		}
		other := r.facts[id]
		if f.IsAligned(other, cov) {
			aligned = append(aligned, other)
		}
	}
	return aligned
}

// Duplicates applies the report's default coverage policy.
func (r *Report) Duplicates(f *fact.Fact) []*fact.Fact {
	return r.AlignedFacts(f, r.defaultCov)
}

// Footnote is a footnote item that is not itself a fact.
type Footnote struct {
	id   string
	text string
}

func (fn Footnote) ID() string   { return fn.id }
func (fn Footnote) Text() string { return fn.text }
