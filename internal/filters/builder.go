package filters

import (
	"errors"
	"strings"

	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/query"
)

var ErrOwnerRequired = errors.New("owner id is required to filter tasks")

// BuildTaskPredicate scopes a task query to ownerID and narrows it by the
// non-blank fields of p. Values are used as given: dates compare as strings.
//
// The result is always an And whose first child is the owner constraint, so
// every other condition, including the dateTo disjunction, sits beside it and
// can never widen the owner scope.
func BuildTaskPredicate(p Params, ownerID string) (query.Predicate, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrOwnerRequired
	}

	where := query.And{
		query.Eq{Field: model.TaskFieldOwner, Value: ownerID},
	}

	if !blank(p.Q) {
		where = append(where, query.Contains{Field: model.TaskFieldName, Value: p.Q})
	}

	if !blank(p.DateFrom) {
		where = append(where, query.Gte{Field: model.TaskFieldDateFrom, Value: p.DateFrom})
	}

	if !blank(p.DateTo) {
		// Open-ended tasks count when they started on or before the bound.
		where = append(where, query.Or{
			query.Lte{Field: model.TaskFieldDateTo, Value: p.DateTo},
			query.And{
				query.IsNull{Field: model.TaskFieldDateTo},
				query.Lte{Field: model.TaskFieldDateFrom, Value: p.DateTo},
			},
		})
	}

	switch {
	case p.Done == FlagOn:
		where = append(where, query.Eq{Field: model.TaskFieldIsDone, Value: true})
	case p.Todo == FlagOn:
		where = append(where, query.Eq{Field: model.TaskFieldIsDone, Value: false})
	}

	return where, nil
}

// BuildUserPredicate narrows the user listing by a name search.
func BuildUserPredicate(p Params) query.Predicate {
	where := query.And{}
	if !blank(p.Q) {
		where = append(where, query.Contains{Field: model.UserFieldName, Value: p.Q})
	}
	return where
}
