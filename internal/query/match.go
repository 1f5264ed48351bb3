package query

import "strings"

// Record exposes field values to Match. A nil return means the field is null.
type Record interface {
	FieldValue(field string) any
}

// Match evaluates p against r with the same semantics the repositories give
// the tree: comparisons against a null field never match.
func Match(p Predicate, r Record) bool {
	switch v := p.(type) {
	case nil:
		return true
	case And:
		for _, child := range v {
			if !Match(child, r) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range v {
			if Match(child, r) {
				return true
			}
		}
		return false
	case Eq:
		return r.FieldValue(v.Field) == v.Value
	case Gte:
		s, ok := r.FieldValue(v.Field).(string)
		return ok && s >= v.Value
	case Lte:
		s, ok := r.FieldValue(v.Field).(string)
		return ok && s <= v.Value
	case IsNull:
		return r.FieldValue(v.Field) == nil
	case Contains:
		s, ok := r.FieldValue(v.Field).(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(v.Value))
	}
	return false
}
