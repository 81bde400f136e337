package export

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"tenantconsole/internal/model"
)

// SQLDump renders rows as a CREATE TABLE IF NOT EXISTS statement followed by
// one INSERT per row. Column types are inferred from the first row. An empty
// row set yields an empty dump.
func SQLDump(table string, rows []model.Row) string {
	if len(rows) == 0 {
		return ""
	}

	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	ident := pgx.Identifier{table}.Sanitize()
	quoted := make([]string, len(cols))
	defs := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
		defs[i] = "    " + quoted[i] + " " + sqlType(rows[0][c])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n%s\n);\n\n", ident, strings.Join(defs, ",\n"))

	colList := strings.Join(quoted, ", ")
	values := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			values[i] = sqlLiteral(row[c])
		}
		fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (%s);\n", ident, colList, strings.Join(values, ", "))
	}
	return b.String()
}

func sqlType(v any) string {
	switch x := v.(type) {
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return "integer"
		}
		return "numeric"
	case float32:
		return floatType(float64(x))
	case float64:
		return floatType(x)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case bool:
		return "boolean"
	case time.Time:
		return "timestamp"
	case string:
		if _, err := time.Parse(time.RFC3339Nano, x); err == nil {
			return "timestamp"
		}
		return "text"
	case nil:
		return "text"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return "jsonb"
	}
	return "text"
}

func floatType(f float64) string {
	if f == math.Trunc(f) {
		return "integer"
	}
	return "numeric"
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func sqlLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quoteString(x)
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	case time.Time:
		return quoteString(x.Format(time.RFC3339Nano))
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return quoteString(fmt.Sprint(v))
	}
	return quoteString(string(b))
}
