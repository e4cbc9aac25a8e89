package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fact-atlas/pkg/models/api"
	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"
	"github.com/de-tools/fact-atlas/pkg/services/fact"
	reportsvc "github.com/de-tools/fact-atlas/pkg/services/report"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Facts() []*fact.Fact {
	args := m.Called()
	return args.Get(0).([]*fact.Fact)
}

func (m *mockService) Fact(id string) (*fact.Fact, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, false
	}
	return args.Get(0).(*fact.Fact), args.Bool(1)
}

func (m *mockService) AlignedFacts(f *fact.Fact, cov domain.Coverage) []*fact.Fact {
	args := m.Called(f, cov)
	return args.Get(0).([]*fact.Fact)
}

func (m *mockService) Duplicates(f *fact.Fact) []*fact.Fact {
	args := m.Called(f)
	return args.Get(0).([]*fact.Fact)
}

func strptr(s string) *string { return &s }

func fixtureReport() *reportsvc.Report {
	rec := func(unit string) store.FactRecord {
		return store.FactRecord{
			Aspects: map[string]string{
				"c": "us-gaap:Revenue",
				"p": "2020-01-01/2021-01-01",
				"u": unit,
			},
			Value:    strptr("1000000"),
			Decimals: domain.DecimalsOf(-3),
		}
	}
	return reportsvc.New(store.ReportData{
		Prefixes: map[string]string{
			"iso4217": domain.ISO4217Namespace,
			"us-gaap": "http://fasb.org/us-gaap/2020",
		},
		Concepts: map[string]store.ConceptRecord{
			"us-gaap:Revenue": {
				Labels: map[string]map[string]string{
					"std": {"en": "Revenue"},
				},
			},
		},
		Facts: map[string]store.FactRecord{
			"f1": rec("iso4217:USD"),
			"f2": rec("iso4217:EUR"),
		},
	}, reportsvc.Options{})
}

func setupRouter(svc Service) *chi.Mux {
	h := NewHandler(svc)
	router := chi.NewRouter()
	router.Get("/facts", h.ListFacts)
	router.Get("/facts/{id}", h.GetFact)
	router.Get("/facts/{id}/duplicates", h.GetDuplicates)
	router.Post("/facts/{id}/alignment", h.PostAlignment)
	return router
}

func TestListFacts(t *testing.T) {
	rep := fixtureReport()
	svc := &mockService{}
	svc.On("Facts").Return(rep.Facts())

	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []api.FactSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "f1", got[0].ID)
	assert.Equal(t, "us-gaap:Revenue", got[0].Concept)
	assert.Equal(t, "$ 1,000,000", got[0].Value)
	svc.AssertExpectations(t)
}

func TestGetFact(t *testing.T) {
	rep := fixtureReport()
	f1, _ := rep.Fact("f1")
	svc := &mockService{}
	svc.On("Fact", "f1").Return(f1, true)
	svc.On("Fact", "missing").Return(nil, false)

	router := setupRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facts/f1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var got api.FactDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Revenue", got.ConceptLabel)
	assert.Equal(t, "-3 (thousands)", got.Accuracy)
	assert.True(t, got.Monetary)
	require.Len(t, got.Aspects, 3)
	assert.Equal(t, "c", got.Aspects[0].Key)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDuplicates(t *testing.T) {
	rep := fixtureReport()
	f1, _ := rep.Fact("f1")
	f2, _ := rep.Fact("f2")
	svc := &mockService{}
	svc.On("Fact", "f1").Return(f1, true)
	svc.On("Duplicates", f1).Return([]*fact.Fact{f2})

	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facts/f1/duplicates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got api.AlignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"f2"}, got.FactIDs)
}

func TestPostAlignment(t *testing.T) {
	rep := fixtureReport()
	f1, _ := rep.Fact("f1")
	f2, _ := rep.Fact("f2")
	svc := &mockService{}
	svc.On("Fact", "f1").Return(f1, true)
	svc.On("AlignedFacts", f1, mock.MatchedBy(func(cov domain.Coverage) bool {
		c, ok := cov["u"]
		return ok && c.IsWildcard()
	})).Return([]*fact.Fact{f2})

	router := setupRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/facts/f1/alignment", strings.NewReader(`{"u": null}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	var got api.AlignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"f2"}, got.FactIDs)

	// Malformed coverage is a client error, not a server failure.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/facts/f1/alignment", strings.NewReader(`{"u": 42}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
