package querybuilder

import (
	"strconv"
	"strings"
)

// statement accumulates SQL text and its positional ($n) arguments.
type statement struct {
	sql  strings.Builder
	args []any
}

func (s *statement) write(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

// bind records v and returns its placeholder.
func (s *statement) bind(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

// bindExpr replaces each ? in expr with the next bound value. Surplus ? marks
// are left untouched.
func (s *statement) bindExpr(expr string, values []any) {
	if len(values) == 0 {
		s.sql.WriteString(expr)
		return
	}
	for len(expr) > 0 {
		i := strings.IndexByte(expr, '?')
		if i < 0 || len(values) == 0 {
			s.sql.WriteString(expr)
			return
		}
		s.sql.WriteString(expr[:i])
		s.sql.WriteString(s.bind(values[0]))
		values = values[1:]
		expr = expr[i+1:]
	}
}

func (s *statement) build() (string, []any, error) {
	return s.sql.String(), s.args, nil
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
