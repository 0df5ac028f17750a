package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

var columns = map[domain.Field]string{
	domain.FieldQuoteID:     "q.id",
	domain.FieldSubmittedBy: "q.submitted_by_id",
	domain.FieldQuoteDate:   "q.quote_date",
	domain.FieldCreatedYear: "EXTRACT(YEAR FROM q.created_at AT TIME ZONE 'UTC')",
}

// toSqlizer translates a predicate tree into a squirrel condition over the
// quotes table aliased q. A nil or empty And yields nil: no WHERE clause.
func toSqlizer(p domain.Predicate) (sq.Sqlizer, error) {
	switch p := p.(type) {
	case nil:
		return nil, nil //nolint:nilnil // no condition
	case domain.And:
		parts, err := children(p)
		if err != nil || len(parts) == 0 {
			return nil, err
		}

		return sq.And(parts), nil
	case domain.Or:
		parts, err := children(p)
		if err != nil {
			return nil, err
		}

		return sq.Or(parts), nil
	case domain.Cmp:
		col, err := column(p.Field)
		if err != nil {
			return nil, err
		}

		switch p.Op {
		case domain.OpEq:
			return sq.Eq{col: p.Value}, nil
		case domain.OpGte:
			return sq.GtOrEq{col: p.Value}, nil
		case domain.OpLte:
			return sq.LtOrEq{col: p.Value}, nil
		default:
			return nil, fmt.Errorf("unsupported operator %q", p.Op)
		}
	case domain.IsNull:
		col, err := column(p.Field)
		if err != nil {
			return nil, err
		}

		return sq.Eq{col: nil}, nil
	case domain.NotNull:
		col, err := column(p.Field)
		if err != nil {
			return nil, err
		}

		return sq.NotEq{col: nil}, nil
	case domain.In:
		col, err := column(p.Field)
		if err != nil {
			return nil, err
		}

		return sq.Eq{col: p.Values}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

func children[P ~[]domain.Predicate](ps P) ([]sq.Sqlizer, error) {
	parts := make([]sq.Sqlizer, 0, len(ps))

	for _, child := range ps {
		s, err := toSqlizer(child)
		if err != nil {
			return nil, err
		}

		if s != nil {
			parts = append(parts, s)
		}
	}

	return parts, nil
}

func column(f domain.Field) (string, error) {
	col, ok := columns[f]
	if !ok {
		return "", fmt.Errorf("unsupported field %q", f)
	}

	return col, nil
}
