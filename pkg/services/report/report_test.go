package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"
)

func strptr(s string) *string { return &s }

func fixture() store.ReportData {
	rec := func(concept, period, unit string) store.FactRecord {
		return store.FactRecord{
			Aspects: map[string]string{"c": concept, "p": period, "u": unit},
			Value:   strptr("100"),
		}
	}
	return store.ReportData{
		Prefixes: map[string]string{
			"iso4217": domain.ISO4217Namespace,
			"us-gaap": "http://fasb.org/us-gaap/2020",
		},
		Concepts: map[string]store.ConceptRecord{
			"us-gaap:Revenue": {
				Labels: map[string]map[string]string{
					"std": {"en": "Revenue", "de": "Umsatz"},
					"doc": {"de": "Umsatzerlöse des Geschäftsjahres"},
				},
			},
		},
		Facts: map[string]store.FactRecord{
			"a": rec("us-gaap:Revenue", "2020-01-01/2021-01-01", "iso4217:USD"),
			"b": rec("us-gaap:Revenue", "2020-01-01/2021-01-01", "iso4217:USD"),
			"c": rec("us-gaap:Assets", "2020-12-31", "iso4217:USD"),
		},
	}
}

func TestQName(t *testing.T) {
	r := New(fixture(), Options{ID: "rep-1"})

	assert.Equal(t, "rep-1", r.ID())

	qn := r.QName("iso4217:USD")
	assert.Equal(t, domain.ISO4217Namespace, qn.Namespace)
	assert.Equal(t, "USD", qn.LocalName)
	assert.Equal(t, "iso4217:USD", qn.String())

	// Unknown prefixes resolve with an empty namespace rather than failing.
	qn = r.QName("mystery:Thing")
	assert.Equal(t, "", qn.Namespace)
	assert.Equal(t, "Thing", qn.LocalName)
}

func TestLabels(t *testing.T) {
	r := New(fixture(), Options{})

	label, ok := r.Label("us-gaap:Revenue", "std")
	require.True(t, ok)
	assert.Equal(t, "Revenue", label)

	// No English text in the role: first language by sort order.
	label, ok = r.Label("us-gaap:Revenue", "doc")
	require.True(t, ok)
	assert.Equal(t, "Umsatzerlöse des Geschäftsjahres", label)

	_, ok = r.Label("us-gaap:Revenue", "terse")
	assert.False(t, ok)

	assert.Equal(t, "us-gaap:Assets", r.LabelOrName("us-gaap:Assets", "std"))
}

func TestFactsOrdered(t *testing.T) {
	r := New(fixture(), Options{})

	facts := r.Facts()
	require.Len(t, facts, 3)
	assert.Equal(t, "a", facts[0].ID())
	assert.Equal(t, "b", facts[1].ID())
	assert.Equal(t, "c", facts[2].ID())

	_, ok := r.Fact("nope")
	assert.False(t, ok)
}

func TestAlignedFactsScansAllWhenConceptCovered(t *testing.T) {
	r := New(fixture(), Options{})
	f, ok := r.Fact("a")
	require.True(t, ok)

	// Concept uncovered: only the Revenue bucket is scanned.
	aligned := r.AlignedFacts(f, domain.Coverage{})
	require.Len(t, aligned, 1)
	assert.Equal(t, "b", aligned[0].ID())

	// Covering concept and period widens the scan to the whole table.
	aligned = r.AlignedFacts(f, domain.Coverage{
		"c": domain.Wildcard(),
		"p": domain.Wildcard(),
	})
	require.Len(t, aligned, 2)
	assert.Equal(t, "b", aligned[0].ID())
	assert.Equal(t, "c", aligned[1].ID())
}

func TestItemByID(t *testing.T) {
	data := fixture()
	data.FootnoteItems = map[string]store.FootnoteRecord{
		"fn1": {Text: "Restated"},
	}
	r := New(data, Options{})

	item, ok := r.ItemByID("a")
	require.True(t, ok)
	assert.Equal(t, "a", item.ID())

	item, ok = r.ItemByID("fn1")
	require.True(t, ok)
	fn, isFootnote := item.(Footnote)
	require.True(t, isFootnote)
	assert.Equal(t, "Restated", fn.Text())

	_, ok = r.ItemByID("ghost")
	assert.False(t, ok)
}
