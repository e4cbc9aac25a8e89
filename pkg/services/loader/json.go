package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/models/store"
	"github.com/de-tools/fact-atlas/pkg/services/report"
)

// JSONFactory builds the loader for the viewer's JSON data files.
func JSONFactory(opts Options) (Loader, error) {
	cov := domain.Coverage{}
	for _, key := range opts.DuplicateAspects {
		cov[key] = domain.Wildcard()
	}
	return &jsonLoader{duplicateCov: cov}, nil
}

type jsonLoader struct {
	duplicateCov domain.Coverage
}

func (l *jsonLoader) Load(path string) (*report.Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var data store.ReportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse report file %s: %w", path, err)
	}

	return report.New(data, report.Options{
		ID:                uuid.NewString(),
		DuplicateCoverage: l.duplicateCov,
	}), nil
}
