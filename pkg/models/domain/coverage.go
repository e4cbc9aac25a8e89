package domain

import (
	"encoding/json"
	"fmt"
)

type constraintKind int

const (
	constraintWildcard constraintKind = iota
	constraintEquals
	constraintOneOf
)

// Constraint is one entry of a coverage specification: a wildcard accepting
// any value, an exact-match scalar, or a set-membership list. Resolved once
// per coverage entry so the comparison loop never inspects wire types.
type Constraint struct {
	kind   constraintKind
	values []string
}

func Wildcard() Constraint          { return Constraint{kind: constraintWildcard} }
func Equals(v string) Constraint    { return Constraint{kind: constraintEquals, values: []string{v}} }
func OneOf(vs ...string) Constraint { return Constraint{kind: constraintOneOf, values: vs} }

func (c Constraint) IsWildcard() bool { return c.kind == constraintWildcard }

// Admits reports whether a raw aspect value satisfies the constraint.
// Wildcards admit everything.
func (c Constraint) Admits(raw string) bool {
	switch c.kind {
	case constraintWildcard:
		return true
	case constraintEquals:
		return c.values[0] == raw
	default:
		for _, v := range c.values {
			if v == raw {
				return true
			}
		}
		return false
	}
}

// Coverage maps aspect keys to the constraint the caller places on them.
// Keys absent from the coverage must match raw-for-raw between two facts.
type Coverage map[string]Constraint

// UnmarshalJSON decodes the wire form of a coverage specification, where
// each entry is null (wildcard), a string (exact match) or an array of
// strings (set membership).
func (c *Coverage) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := make(Coverage, len(wire))
	for key, raw := range wire {
		constraint, err := parseConstraint(raw)
		if err != nil {
			return fmt.Errorf("coverage entry %q: %w", key, err)
		}
		out[key] = constraint
	}
	*c = out
	return nil
}

func parseConstraint(raw json.RawMessage) (Constraint, error) {
	if string(raw) == "null" {
		return Wildcard(), nil
	}
	var scalar string
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return Equals(scalar), nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return OneOf(list...), nil
	}
	return Constraint{}, fmt.Errorf("want null, string or string array, got %s", raw)
}
