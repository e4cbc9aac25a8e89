package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fact-atlas/pkg/models/api"
	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"
	reportsvc "github.com/de-tools/fact-atlas/pkg/services/report"
)

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
				Labels: map[string]map[string]string{"std": {"en": "Revenue"}},
			},
		},
		Facts: map[string]store.FactRecord{
			"f1": rec("iso4217:USD"),
			"f2": rec("iso4217:EUR"),
		},
	}, reportsvc.Options{})
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.Nop()

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Report: fixtureReport(),
			Logger: logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	t.Run("ListFacts", func(t *testing.T) {
		got := getJSON[[]api.FactSummary](t, testServer.URL+"/api/v1/facts")
		require.Len(t, got, 2)
		assert.Equal(t, "f1", got[0].ID)
		assert.Equal(t, "$ 1,000,000", got[0].Value)
	})

	t.Run("GetFact", func(t *testing.T) {
		got := getJSON[api.FactDetail](t, testServer.URL+"/api/v1/facts/f1")
		assert.Equal(t, "Revenue", got.ConceptLabel)
		assert.True(t, got.Monetary)
	})

	t.Run("GetFact_NotFound", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/facts/ghost")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("GetDuplicates", func(t *testing.T) {
		got := getJSON[api.AlignmentResponse](t, testServer.URL+"/api/v1/facts/f1/duplicates")
		assert.Empty(t, got.FactIDs)
	})
}

func getJSON[T any](t *testing.T, url string) T {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err, "Failed to send request")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Status code mismatch")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var response T
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}
