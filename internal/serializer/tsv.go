package serializer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"football-client/internal/domain"
)

// TSVSerializer writes one header row and one delimited row per record.
// Without configured columns, columns are the sorted top-level JSON keys of the records.
type TSVSerializer[T any] struct {
	path      string
	columns   []Column[T]
	delimiter rune
}

// NewTSV constructs a delimited serializer for <dataDir>/<entity>.tsv.
func NewTSV[T any](dataDir, entity string, opts Options[T]) *TSVSerializer[T] {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = defaultDelimiter
	}
	return &TSVSerializer[T]{
		path:      entityPath(dataDir, entity, FormatTSV),
		columns:   opts.Columns,
		delimiter: delimiter,
	}
}

func (s *TSVSerializer[T]) Format() Format { return FormatTSV }

func (s *TSVSerializer[T]) Path() string { return s.path }

// Headers returns the configured column labels (nil when columns are derived per write).
func (s *TSVSerializer[T]) Headers() []string {
	if len(s.columns) == 0 {
		return nil
	}
	headers := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		headers = append(headers, col.Header)
	}
	return headers
}

func (s *TSVSerializer[T]) Write(c domain.Collection[T]) error {
	var (
		headers []string
		rows    [][]string
		err     error
	)
	if len(s.columns) > 0 {
		headers, rows = s.Headers(), s.configuredRows(c.Response)
	} else {
		headers, rows, err = derivedRows(c.Response)
		if err != nil {
			return fmt.Errorf("encode %s: %w", s.path, err)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = s.delimiter
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := writeFile(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// ReadRows parses the file back into header-keyed rows. A missing or blank file yields no rows.
func (s *TSVSerializer[T]) ReadRows() ([]Row, error) {
	data, err := readIfExists(s.path)
	if err != nil || data == nil {
		return nil, err
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = s.delimiter
	records, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: s.path, Format: FormatTSV, Err: err}
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *TSVSerializer[T]) configuredRows(items []T) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(s.columns))
		for _, col := range s.columns {
			row = append(row, col.Value(item))
		}
		rows = append(rows, row)
	}
	return rows
}

func derivedRows[T any](items []T) ([]string, [][]string, error) {
	objects := make([]map[string]any, 0, len(items))
	keys := make(map[string]struct{})
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, nil, err
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, nil, err
		}
		for k := range obj {
			keys[k] = struct{}{}
		}
		objects = append(objects, obj)
	}

	headers := make([]string, 0, len(keys))
	for k := range keys {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := make([]string, 0, len(headers))
		for _, h := range headers {
			row = append(row, cellValue(obj[h]))
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func cellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
}
