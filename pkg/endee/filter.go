package endee

import (
	"errors"
	"fmt"
)

// Filter is an ordered list of filter clauses. The engine applies clauses
// in the order given, so position carries meaning and is preserved on the
// wire.
type Filter []FilterClause

// FilterClause maps a field name to an operator map, e.g.
// {"category": {"$eq": "tech"}}. The shape is engine-defined and the client
// forwards it untouched; the constructors below cover the documented
// operators.
type FilterClause map[string]interface{}

// Clause builds a single-field clause with an arbitrary operator. It is the
// escape hatch for operators this package has no constructor for.
func Clause(field, operator string, value interface{}) FilterClause {
	return FilterClause{field: map[string]interface{}{operator: value}}
}

// Eq matches entries whose field equals value.
func Eq(field string, value interface{}) FilterClause {
	return Clause(field, OpEq, value)
}

// Ne matches entries whose field does not equal value.
func Ne(field string, value interface{}) FilterClause {
	return Clause(field, OpNe, value)
}

// Gt matches entries whose field is greater than value.
func Gt(field string, value interface{}) FilterClause {
	return Clause(field, OpGt, value)
}

// Gte matches entries whose field is greater than or equal to value.
func Gte(field string, value interface{}) FilterClause {
	return Clause(field, OpGte, value)
}

// Lt matches entries whose field is less than value.
func Lt(field string, value interface{}) FilterClause {
	return Clause(field, OpLt, value)
}

// Lte matches entries whose field is less than or equal to value.
func Lte(field string, value interface{}) FilterClause {
	return Clause(field, OpLte, value)
}

// In matches entries whose field equals any of the given values.
func In(field string, values ...interface{}) FilterClause {
	return Clause(field, OpIn, values)
}

// Range matches entries whose field lies in [lo, hi].
func Range(field string, lo, hi interface{}) FilterClause {
	return Clause(field, OpRange, []interface{}{lo, hi})
}

// validate checks the clause shape: at least one field, each mapping to a
// non-empty operator map.
func (c FilterClause) validate() error {
	if len(c) == 0 {
		return errors.New("clause is empty")
	}
	for field, ops := range c {
		opMap, ok := ops.(map[string]interface{})
		if !ok {
			return fmt.Errorf("field %q must map to an operator map", field)
		}
		if len(opMap) == 0 {
			return fmt.Errorf("field %q has no operator", field)
		}
	}
	return nil
}
