// Package export renders table rows as downloadable artifacts: Excel
// workbooks, SQL dumps, CSV files and zip archives of backup folders.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tenantconsole/internal/model"
)

// Supported export formats.
const (
	FormatXLSX = "xlsx"
	FormatSQL  = "sql"
	FormatCSV  = "csv"
)

// Content types per format.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeSQL  = "application/sql"
	ContentTypeCSV  = "text/csv"
	ContentTypeZip  = "application/zip"
)

// File is a named artifact.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ErrUnknownFormat is returned by Render for formats other than xlsx, sql and csv.
var ErrUnknownFormat = errors.New("unknown export format")

// Render produces the artifact for table in the given format.
func Render(format, table string, rows []model.Row) (File, error) {
	switch format {
	case FormatXLSX:
		data, err := Excel(rows)
		if err != nil {
			return File{}, err
		}
		return File{Name: table + ".xlsx", ContentType: ContentTypeXLSX, Data: data}, nil
	case FormatSQL:
		return File{Name: table + ".sql", ContentType: ContentTypeSQL, Data: []byte(SQLDump(table, rows))}, nil
	case FormatCSV:
		data, err := CSV(rows)
		if err != nil {
			return File{}, err
		}
		return File{Name: table + ".csv", ContentType: ContentTypeCSV, Data: data}, nil
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// TableArtifacts returns the Excel workbook and SQL dump written for one
// table of a local backup.
func TableArtifacts(table string, rows []model.Row) ([]File, error) {
	xlsx, err := Render(FormatXLSX, table, rows)
	if err != nil {
		return nil, fmt.Errorf("excel %s: %w", table, err)
	}
	sql, _ := Render(FormatSQL, table, rows)
	return []File{xlsx, sql}, nil
}

// FolderName names the local backup folder of a table, e.g.
// members_backup_2024-05-01T10-20-30-123Z.
func FolderName(table string, t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return table + "_backup_" + ts
}

// headers returns the union of row keys in lexical order.
func headers(rows []model.Row) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// cellText renders a value for text formats. Objects and arrays become JSON.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case map[string]any, []any, model.Row:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
