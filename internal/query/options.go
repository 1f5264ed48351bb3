package query

import "strings"

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// FindOptions shapes a read. A zero Limit means no limit.
type FindOptions struct {
	Sort   *Sort
	Offset int
	Limit  int
}

// ParseSort reads a "field|direction" value. The direction is descending only
// when it is exactly "desc". A blank value or field yields ok == false.
func ParseSort(raw string) (Sort, bool) {
	if strings.TrimSpace(raw) == "" {
		return Sort{}, false
	}

	field, direction, _ := strings.Cut(raw, "|")
	if field == "" {
		return Sort{}, false
	}

	return Sort{Field: field, Desc: direction == "desc"}, true
}
