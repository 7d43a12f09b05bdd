package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// column is one exported struct field carrying a db tag.
type column struct {
	name  string
	index int
}

var columnCache sync.Map // reflect.Type -> []column

// Columns lists the db-tagged columns of a row model in field order.
func Columns(model any) ([]string, error) {
	_, cols, err := modelColumns(model)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names, nil
}

// MustColumns is Columns for package-level column lists built from static models.
func MustColumns(model any) []string {
	names, err := Columns(model)
	if err != nil {
		panic(fmt.Sprintf("querybuilder: %v", err))
	}
	return names
}

// InsertModel builds an INSERT for every db-tagged field of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	value, cols, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, len(cols))
	vals := make([]any, len(cols))
	for i, c := range cols {
		names[i] = c.name
		vals[i] = value.Field(c.index).Interface()
	}
	return InsertInto(table).
		Columns(names...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func modelColumns(model any) (reflect.Value, []column, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	if cached, ok := columnCache.Load(typ); ok {
		return value, cached.([]column), nil
	}

	cols := make([]column, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, column{name: name, index: i})
	}
	if len(cols) == 0 {
		return reflect.Value{}, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}

	columnCache.Store(typ, cols)
	return value, cols, nil
}
