package querybuilder

// Condition is one predicate of a WHERE clause. Predicates are joined with AND.
type Condition interface {
	appendTo(s *statement)
}

type conditionFunc func(s *statement)

func (f conditionFunc) appendTo(s *statement) { f(s) }

// Eq binds value as a positional argument.
func Eq(column string, value any) Condition {
	return conditionFunc(func(s *statement) {
		s.write(column, " = ", s.bind(value))
	})
}

// In renders an always-false predicate when values is empty.
func In(column string, values []any) Condition {
	return conditionFunc(func(s *statement) {
		if len(values) == 0 {
			s.write("1=0")
			return
		}
		s.write(column, " IN (")
		for i, v := range values {
			if i > 0 {
				s.write(", ")
			}
			s.write(s.bind(v))
		}
		s.write(")")
	})
}

// Expr is raw SQL whose ? marks are bound to args in order.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(s *statement) {
		s.bindExpr(expr, args)
	})
}

// EqLiteral inlines value as a quoted string for poolers that cannot carry
// prepared statement arguments.
func EqLiteral(column, value string) Condition {
	return conditionFunc(func(s *statement) {
		s.write(column, " = ", quoteLiteral(value))
	})
}
