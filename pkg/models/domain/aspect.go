package domain

import "strings"

// Reserved aspect keys. Every other key on a fact's aspect map is a
// namespace-qualified dimension.
const (
	AspectConcept  = "c"
	AspectPeriod   = "p"
	AspectUnit     = "u"
	AspectEntity   = "e"
	AspectLanguage = "l"
)

// Arc roles understood by the concept relationship lookup.
const (
	WiderNarrowerArcrole = "w-n"
)

// Label roles.
const (
	LabelRoleStandard = "std"
	LabelRoleDoc      = "doc"
)

// IsDimensionKey reports whether an aspect key addresses a taxonomy-defined
// dimension rather than one of the reserved aspects.
func IsDimensionKey(key string) bool {
	return strings.Contains(key, ":")
}
