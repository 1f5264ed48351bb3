package filters

import "net/url"

// State is the last advanced-filter submission of a session. Nullable
// fields mirror checkboxes that were not submitted.
type State struct {
	AdvancedFiltersOpen bool    `json:"advancedFiltersOpen"`
	Q                   string  `json:"q"`
	Sort                string  `json:"sort"`
	DateFrom            string  `json:"dateFrom"`
	DateTo              string  `json:"dateTo"`
	EnableDateFrom      *string `json:"enable_dateFrom"`
	EnableDateTo        *string `json:"enable_dateTo"`
	Done                *string `json:"done"`
	Todo                *string `json:"todo"`
}

func DefaultState() State {
	return State{}
}

// StateFromValues keeps the whitelisted fields of a submission and nothing
// else.
func StateFromValues(v url.Values) State {
	return State{
		AdvancedFiltersOpen: v.Get(ParamAdvancedOpen) == "true",
		Q:                   v.Get(ParamQuery),
		Sort:                v.Get(ParamSort),
		DateFrom:            v.Get(ParamDateFrom),
		DateTo:              v.Get(ParamDateTo),
		EnableDateFrom:      optional(v.Get(ParamEnableDateFrom)),
		EnableDateTo:        optional(v.Get(ParamEnableDateTo)),
		Done:                optional(v.Get(ParamDone)),
		Todo:                optional(v.Get(ParamTodo)),
	}
}

// IsSubmission reports whether v comes from the advanced-filter form, which
// always sends ParamAdvancedOpen. Pagination and sort links do not.
func IsSubmission(v url.Values) bool {
	return v.Has(ParamAdvancedOpen)
}

// Values renders the non-empty fields of s as request parameters.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.AdvancedFiltersOpen {
		v.Set(ParamAdvancedOpen, "true")
	}
	setIf(v, ParamQuery, s.Q)
	setIf(v, ParamSort, s.Sort)
	setIf(v, ParamDateFrom, s.DateFrom)
	setIf(v, ParamDateTo, s.DateTo)
	setPtr(v, ParamEnableDateFrom, s.EnableDateFrom)
	setPtr(v, ParamEnableDateTo, s.EnableDateTo)
	setPtr(v, ParamDone, s.Done)
	setPtr(v, ParamTodo, s.Todo)
	return v
}

// Merge overlays the request on the remembered state. Keys present in the
// request win, whatever their value.
func Merge(s State, request url.Values) url.Values {
	merged := s.Values()
	for key, values := range request {
		merged[key] = append([]string(nil), values...)
	}
	return merged
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setPtr(v url.Values, key string, value *string) {
	if value != nil {
		v.Set(key, *value)
	}
}
