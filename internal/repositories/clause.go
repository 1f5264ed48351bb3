package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-tracker.com/task-tracker/internal/query"
)

// columns maps predicate field names onto table columns.
type columns map[string]string

func (c columns) column(field string) (clause.Column, error) {
	name, ok := c[field]
	if !ok {
		return clause.Column{}, fmt.Errorf("unknown filter field %q", field)
	}
	return clause.Column{Name: name}, nil
}

// expression translates p into a gorm clause. A nil result means no
// condition.
func (c columns) expression(p query.Predicate) (clause.Expression, error) {
	switch v := p.(type) {
	case nil:
		return nil, nil
	case query.And:
		return c.group(v, false)
	case query.Or:
		return c.group(v, true)
	case query.Eq:
		col, err := c.column(v.Field)
		if err != nil {
			return nil, err
		}
		if v.Value == nil {
			return nullCheck(col), nil
		}
		return clause.Eq{Column: col, Value: v.Value}, nil
	case query.Gte:
		col, err := c.column(v.Field)
		if err != nil {
			return nil, err
		}
		return clause.Gte{Column: col, Value: v.Value}, nil
	case query.Lte:
		col, err := c.column(v.Field)
		if err != nil {
			return nil, err
		}
		return clause.Lte{Column: col, Value: v.Value}, nil
	case query.IsNull:
		col, err := c.column(v.Field)
		if err != nil {
			return nil, err
		}
		return nullCheck(col), nil
	case query.Contains:
		col, err := c.column(v.Field)
		if err != nil {
			return nil, err
		}
		// unicode_lower is registered by config.OpenDatabase.
		return clause.Expr{
			SQL:  `unicode_lower(?) LIKE ? ESCAPE '\'`,
			Vars: []any{col, "%" + escapeLike(strings.ToLower(v.Value)) + "%"},
		}, nil
	}
	return nil, fmt.Errorf("unsupported predicate %T", p)
}

func (c columns) group(children []query.Predicate, or bool) (clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(children))
	for _, child := range children {
		expr, err := c.expression(child)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}

	switch {
	case len(exprs) == 0 && or:
		return clause.Expr{SQL: "1 = 0"}, nil
	case len(exprs) == 0:
		return nil, nil
	case len(exprs) == 1:
		// gorm joins a single-element OrConditions to its siblings with OR.
		return exprs[0], nil
	case or:
		return clause.OrConditions{Exprs: exprs}, nil
	default:
		return clause.AndConditions{Exprs: exprs}, nil
	}
}

// apply narrows db by p and shapes it with opts. Sort fields outside the
// column map are ignored.
func (c columns) apply(db *gorm.DB, p query.Predicate, opts query.FindOptions) (*gorm.DB, error) {
	db, err := c.where(db, p)
	if err != nil {
		return nil, err
	}

	if opts.Sort != nil {
		if col, err := c.column(opts.Sort.Field); err == nil {
			db = db.Order(clause.OrderByColumn{Column: col, Desc: opts.Sort.Desc})
		}
	}

	if opts.Limit > 0 {
		db = db.Offset(opts.Offset).Limit(opts.Limit)
	}

	return db, nil
}

func (c columns) where(db *gorm.DB, p query.Predicate) (*gorm.DB, error) {
	expr, err := c.expression(p)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return db, nil
	}
	return db.Where(expr), nil
}

func nullCheck(col clause.Column) clause.Expression {
	return clause.Expr{SQL: "? IS NULL", Vars: []any{col}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
