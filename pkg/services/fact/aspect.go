package fact

import "github.com/de-tools/fact-atlas/pkg/models/domain"

// Aspect is one resolved qualifier of a fact. Resolution is pure given the
// report's concept, unit and namespace tables.
type Aspect struct {
	fact *Fact
	key  string
	raw  string
}

func (a Aspect) Key() string { return a.key }

// RawValue is the undecoded value as stored on the fact.
func (a Aspect) RawValue() string { return a.raw }

// IsDimension reports whether the aspect is a taxonomy-defined dimension.
func (a Aspect) IsDimension() bool { return domain.IsDimensionKey(a.key) }

// Name is the display name of the aspect itself. Dimensions are named by
// their dimension concept's label.
func (a Aspect) Name() string {
	switch a.key {
	case domain.AspectConcept:
		return "Concept"
	case domain.AspectPeriod:
		return "Period"
	case domain.AspectUnit:
		return "Unit"
	case domain.AspectEntity:
		return "Entity"
	case domain.AspectLanguage:
		return "Language"
	default:
		return a.fact.report.LabelOrName(a.key, domain.LabelRoleStandard)
	}
}

// Value resolves the raw value into its domain value: a concept qname, a
// period, a unit, or a member qname for dimensions. Entity and language
// aspects resolve to their raw string.
func (a Aspect) Value() any {
	switch a.key {
	case domain.AspectConcept:
		return a.fact.report.QName(a.raw)
	case domain.AspectPeriod:
		p, err := domain.ParsePeriod(a.raw)
		if err != nil {
			return a.raw
		}
		return p
	case domain.AspectUnit:
		return parseUnit(a.fact.report, a.raw)
	default:
		if a.IsDimension() {
			return a.fact.report.QName(a.raw)
		}
		return a.raw
	}
}

// ValueLabel renders the resolved value for display: concept and dimension
// members by their standard label, periods and units by their string forms.
func (a Aspect) ValueLabel() string {
	switch v := a.Value().(type) {
	case domain.QName:
		return a.fact.report.LabelOrName(a.raw, domain.LabelRoleStandard)
	case domain.Period:
		return v.String()
	case domain.Unit:
		return v.String()
	default:
		return a.raw
	}
}
