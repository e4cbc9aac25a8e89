package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/services/fact"
)

type TableConfig struct {
	IDWidth      int
	ConceptWidth int
	PeriodWidth  int
	ValueWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:      16,
		ConceptWidth: 40,
		PeriodWidth:  24,
		ValueWidth:   30,
	}
}

// Reporter renders facts as text tables on the terminal.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type factRow struct {
	ID      string
	Concept string
	Period  string
	Value   string
}

func (c *Reporter) rows(facts []*fact.Fact) []factRow {
	rows := make([]factRow, 0, len(facts))
	for _, f := range facts {
		row := factRow{
			ID:      f.ID(),
			Concept: f.ConceptName(),
			Value:   f.ReadableValue(),
		}
		if p, ok := f.Aspect(domain.AspectPeriod); ok {
			row.Period = p.ValueLabel()
		}
		rows = append(rows, row)
	}
	return rows
}

// HandleFacts prints one table row per fact.
func (c *Reporter) HandleFacts(facts []*fact.Fact) error {
	funcMap := template.FuncMap{
		"formatRow": func(id, concept, period, value string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.IDWidth, id,
				c.config.ConceptWidth, concept,
				c.config.PeriodWidth, period,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.IDWidth+2),
				strings.Repeat("-", c.config.ConceptWidth+2),
				strings.Repeat("-", c.config.PeriodWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `{{separator}}
{{formatRow "ID" "Concept" "Period" "Value"}}
{{separator}}
{{range .}}{{formatRow .ID .Concept .Period .Value}}
{{end}}{{separator}}
`
	t, err := template.New("facts").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, c.rows(facts))
}

// HandleDetail prints the inspector view of a single fact.
func (c *Reporter) HandleDetail(f *fact.Fact) error {
	tmpl := `
Fact {{.ID}}

Value:    {{.Value}}
Accuracy: {{.Accuracy}}

Aspects:
{{range .Aspects}}  {{.Name}}: {{.Label}}
{{end}}{{if .Wider}}
Wider concepts:
{{range .Wider}}  {{.}}
{{end}}{{end}}{{if .Narrower}}
Narrower concepts:
{{range .Narrower}}  {{.}}
{{end}}{{end}}`

	type aspectView struct {
		Name  string
		Label string
	}
	view := struct {
		ID       string
		Value    string
		Accuracy string
		Aspects  []aspectView
		Wider    []string
		Narrower []string
	}{
		ID:       f.ID(),
		Value:    f.ReadableValue(),
		Accuracy: f.ReadableAccuracy(),
		Wider:    f.WiderConcepts(),
		Narrower: f.NarrowerConcepts(),
	}
	for _, a := range f.Aspects() {
		view.Aspects = append(view.Aspects, aspectView{Name: a.Name(), Label: a.ValueLabel()})
	}

	t, err := template.New("fact").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
