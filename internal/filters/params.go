// Package filters turns request parameters into task and user predicates and
// holds the advanced-filter selections a session remembers between requests.
package filters

import (
	"net/url"
	"strings"
)

// Request parameter names.
const (
	ParamQuery          = "q"
	ParamSort           = "sort"
	ParamPage           = "page"
	ParamLimit          = "limit"
	ParamDateFrom       = "dateFrom"
	ParamDateTo         = "dateTo"
	ParamDone           = "done"
	ParamTodo           = "todo"
	ParamAdvancedOpen   = "advancedFiltersOpen"
	ParamEnableDateFrom = "enable_dateFrom"
	ParamEnableDateTo   = "enable_dateTo"
)

// FlagOn is the value a checked checkbox submits.
const FlagOn = "on"

// Params is the flat set of optional filter inputs. Every field may be empty.
type Params struct {
	Q        string
	DateFrom string
	DateTo   string
	Done     string
	Todo     string
	Sort     string
	Page     string
	Limit    string
}

func ParamsFromValues(v url.Values) Params {
	return Params{
		Q:        v.Get(ParamQuery),
		DateFrom: v.Get(ParamDateFrom),
		DateTo:   v.Get(ParamDateTo),
		Done:     v.Get(ParamDone),
		Todo:     v.Get(ParamTodo),
		Sort:     v.Get(ParamSort),
		Page:     v.Get(ParamPage),
		Limit:    v.Get(ParamLimit),
	}
}

// StatusConflict reports that both status flags are set. The predicate then
// keeps only done tasks; callers should surface the conflict instead of
// relying on that precedence.
func (p Params) StatusConflict() bool {
	return p.Done == FlagOn && p.Todo == FlagOn
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
