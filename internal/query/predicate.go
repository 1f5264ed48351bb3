// Package query describes which records match a read without committing to a
// storage engine. Repositories translate a Predicate into their own query
// language; Match evaluates one directly against an in-memory record.
package query

import (
	"fmt"
	"strings"
)

// Predicate is a node of a filter tree. The set of node types is closed.
type Predicate interface {
	isPredicate()
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when at least one child matches. An empty Or matches nothing.
type Or []Predicate

// Eq matches when Field equals Value.
type Eq struct {
	Field string
	Value any
}

// Gte matches when Field is a non-null string ordered at or after Value.
type Gte struct {
	Field string
	Value string
}

// Lte matches when Field is a non-null string ordered at or before Value.
type Lte struct {
	Field string
	Value string
}

// IsNull matches when Field holds no value.
type IsNull struct {
	Field string
}

// Contains is a case-insensitive substring match on Field.
type Contains struct {
	Field string
	Value string
}

func (And) isPredicate()      {}
func (Or) isPredicate()       {}
func (Eq) isPredicate()       {}
func (Gte) isPredicate()      {}
func (Lte) isPredicate()      {}
func (IsNull) isPredicate()   {}
func (Contains) isPredicate() {}

// Where returns p with conds added under a top-level And. p itself is never
// modified, so the result is safe to build concurrently from a shared p.
func Where(p Predicate, conds ...Predicate) Predicate {
	var base And
	switch v := p.(type) {
	case nil:
	case And:
		base = v
	default:
		base = And{v}
	}

	out := make(And, 0, len(base)+len(conds))
	out = append(out, base...)
	return append(out, conds...)
}

// Pinned reports the value of an equality constraint on field that applies
// to every match of p, i.e. one found at the top level or inside a top-level
// And.
func Pinned(p Predicate, field string) (any, bool) {
	switch v := p.(type) {
	case Eq:
		if v.Field == field {
			return v.Value, true
		}
	case And:
		for _, child := range v {
			if value, ok := Pinned(child, field); ok {
				return value, true
			}
		}
	}
	return nil, false
}

// Describe renders p in a compact, stable form for logs.
func Describe(p Predicate) string {
	switch v := p.(type) {
	case nil:
		return "true"
	case And:
		return describeGroup("and", v)
	case Or:
		return describeGroup("or", v)
	case Eq:
		return fmt.Sprintf("%s = %v", v.Field, v.Value)
	case Gte:
		return fmt.Sprintf("%s >= %q", v.Field, v.Value)
	case Lte:
		return fmt.Sprintf("%s <= %q", v.Field, v.Value)
	case IsNull:
		return v.Field + " is null"
	case Contains:
		return fmt.Sprintf("%s ~* %q", v.Field, v.Value)
	default:
		return fmt.Sprintf("%T", p)
	}
}

func describeGroup(op string, children []Predicate) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = Describe(child)
	}
	return op + "(" + strings.Join(parts, ", ") + ")"
}
