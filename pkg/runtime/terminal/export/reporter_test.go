package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"
	reportsvc "github.com/de-tools/fact-atlas/pkg/services/report"
)

func strptr(s string) *string { return &s }

func fixtureReport() *reportsvc.Report {
	return reportsvc.New(store.ReportData{
		Prefixes: map[string]string{
			"iso4217": domain.ISO4217Namespace,
			"us-gaap": "http://fasb.org/us-gaap/2020",
		},
		Concepts: map[string]store.ConceptRecord{
			"us-gaap:Revenue": {
				Labels: map[string]map[string]string{"std": {"en": "Revenue"}},
			},
		},
		Facts: map[string]store.FactRecord{
			"f1": {
				Aspects: map[string]string{
					"c": "us-gaap:Revenue",
					"p": "2020-01-01/2021-01-01",
					"u": "iso4217:USD",
				},
				Value:    strptr("1000000"),
				Decimals: domain.DecimalsOf(-3),
			},
		},
	}, reportsvc.Options{})
}

func TestHandleFacts(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.HandleFacts(fixtureReport().Facts()))

	out := buf.String()
	assert.Contains(t, out, "f1")
	assert.Contains(t, out, "us-gaap:Revenue")
	assert.Contains(t, out, "$ 1,000,000")
}

func TestHandleDetail(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	rep := fixtureReport()
	f, ok := rep.Fact("f1")
	require.True(t, ok)
	require.NoError(t, reporter.HandleDetail(f))

	out := buf.String()
	assert.Contains(t, out, "Fact f1")
	assert.Contains(t, out, "Accuracy: -3 (thousands)")
	assert.Contains(t, out, "Concept: Revenue")
}
