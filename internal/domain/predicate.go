package domain

import (
	"cmp"
	"time"
)

// Field names a filterable quote attribute.
type Field string

const (
	FieldQuoteID     Field = "id"
	FieldSubmittedBy Field = "submitted_by_id"
	FieldQuoteDate   Field = "quote_date"
	FieldCreatedYear Field = "created_year"
)

// Op is a comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Predicate is a node of a composable filter expression over quotes. Stores
// either translate it into their own query language or evaluate it directly
// with Match.
type Predicate interface {
	// Match evaluates the predicate against an in-memory quote.
	Match(q *Quote) bool

	predicate()
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when any child matches. An empty Or matches nothing.
type Or []Predicate

// Cmp compares a field with a constant.
type Cmp struct {
	Field Field
	Op    Op
	Value any
}

// IsNull matches quotes where the field has no value.
type IsNull struct {
	Field Field
}

// NotNull matches quotes where the field has a value.
type NotNull struct {
	Field Field
}

// In matches quotes whose field equals one of Values.
type In struct {
	Field  Field
	Values []any
}

func (And) predicate()     {}
func (Or) predicate()      {}
func (Cmp) predicate()     {}
func (IsNull) predicate()  {}
func (NotNull) predicate() {}
func (In) predicate()      {}

// Match implements Predicate.
func (p And) Match(q *Quote) bool {
	for _, c := range p {
		if !c.Match(q) {
			return false
		}
	}

	return true
}

// Match implements Predicate.
func (p Or) Match(q *Quote) bool {
	for _, c := range p {
		if c.Match(q) {
			return true
		}
	}

	return false
}

// Match implements Predicate.
func (p Cmp) Match(q *Quote) bool {
	v, ok := fieldValue(q, p.Field)
	if !ok {
		return false
	}

	c, ok := compare(v, p.Value)
	if !ok {
		return false
	}

	switch p.Op {
	case OpEq:
		return c == 0
	case OpGte:
		return c >= 0
	case OpLte:
		return c <= 0
	default:
		return false
	}
}

// Match implements Predicate.
func (p IsNull) Match(q *Quote) bool {
	_, ok := fieldValue(q, p.Field)
	return !ok
}

// Match implements Predicate.
func (p NotNull) Match(q *Quote) bool {
	_, ok := fieldValue(q, p.Field)
	return ok
}

// Match implements Predicate.
func (p In) Match(q *Quote) bool {
	v, ok := fieldValue(q, p.Field)
	if !ok {
		return false
	}

	for _, want := range p.Values {
		if c, ok := compare(v, want); ok && c == 0 {
			return true
		}
	}

	return false
}

// MatchAll reports whether q satisfies p; a nil predicate matches everything.
func MatchAll(p Predicate, q *Quote) bool {
	if p == nil {
		return true
	}

	return p.Match(q)
}

// fieldValue reads a field from q. The bool is false for NULL values.
func fieldValue(q *Quote, f Field) (any, bool) {
	switch f {
	case FieldQuoteID:
		return q.ID, true
	case FieldSubmittedBy:
		return q.SubmittedByID, true
	case FieldQuoteDate:
		if q.QuoteDate == nil {
			return nil, false
		}

		return *q.QuoteDate, true
	case FieldCreatedYear:
		return int64(q.CreatedAt.UTC().Year()), true
	default:
		return nil, false
	}
}

// compare orders two values of the same kind. Integer constants of any width
// compare against int64 fields.
func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case int64:
		bv, ok := toInt64(b)
		if !ok {
			return 0, false
		}

		return cmp.Compare(av, bv), true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}

		return cmp.Compare(av, bv), true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}

		return av.Compare(bv), true
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}
