package sqlite

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
)

// scanRows decodes every row into a value of type T.
//
// Struct targets map columns to exported fields by `db` tag, falling back to
// a case-insensitive field-name match; a column with no matching field is a
// decode error. Fields tagged `db:"-"` are skipped. Non-struct targets
// (primitives, sql.Scanner implementations such as uuid.UUID) require
// exactly one column.
func scanRows[T any](rows *sql.Rows) ([]T, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, wrapErr("scan", KindExecution, err)
	}

	var out []T
	for rows.Next() {
		var v T
		targets, err := scanTargets(&v, cols)
		if err != nil {
			return nil, wrapErr("scan", KindDecode, err)
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, wrapErr("scan", KindDecode, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("scan", KindExecution, err)
	}
	return out, nil
}

var scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

// scanTargets resolves one scan destination per column into dest, which must
// be a pointer to the row value.
func scanTargets(dest any, cols []string) ([]any, error) {
	rv := reflect.ValueOf(dest).Elem()

	if reflect.PointerTo(rv.Type()).Implements(scannerType) || rv.Kind() != reflect.Struct {
		if len(cols) != 1 {
			return nil, fmt.Errorf("scan into %s requires 1 column, got %d", rv.Type(), len(cols))
		}
		return []any{rv.Addr().Interface()}, nil
	}

	fields := fieldIndex(rv.Type())
	targets := make([]any, len(cols))
	for i, col := range cols {
		idx, ok := fields[strings.ToLower(col)]
		if !ok {
			return nil, fmt.Errorf("no field on %s for column %q", rv.Type(), col)
		}
		targets[i] = rv.Field(idx).Addr().Interface()
	}
	return targets, nil
}

// fieldIndex maps lowercased column names to struct field indices.
func fieldIndex(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.ToLower(f.Name)
		if tag, ok := f.Tag.Lookup("db"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = strings.ToLower(tag)
			}
		}
		fields[name] = i
	}
	return fields
}
