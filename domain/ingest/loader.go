package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PennChopMicrobiomeProgram/marc-db/utils"
)

/*
Table is a parsed tabular batch. Columns are canonical (normalized on load);
rows map canonical column name to the trimmed cell value, with the empty string
meaning absent.
*/
type Table struct {
	Columns []string
	Rows    []Row
}

type Row map[string]string

func (r Row) get(column string) string {
	return r[column]
}

/*
LoadTable reads a tab-separated batch from path and normalizes its headers.
*/
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open batch file %#v fail", path)
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read batch file %#v fail", path)
	}
	return table, nil
}

/*
ReadTable parses tab-separated content. Short rows are padded with empty cells;
ragged files from spreadsheet exports are common.
*/
func ReadTable(reader io.Reader) (*Table, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = '\t'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, utils.WrapError(err, "parse tsv fail")
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	columns := canonicalColumns(records[0])
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

func (t *Table) hasColumn(name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

/*
requireColumns checks that every required canonical column is present before
any row is read, and names all missing columns in one SchemaError.
*/
func requireColumns(table *Table, kind Kind, required []string) error {
	missing := make([]string, 0)
	for _, column := range required {
		if !table.hasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Kind: kind, Missing: missing}
	}
	return nil
}

//////////////////////////////// field coercion ////////////////////////////////////

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"1/2/2006",
	"1/2/06",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// parseDate is deliberately lenient: an unparseable date is unknown, not an
// ingest failure.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func parseIntPtr(value string) *int64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// QC tools sometimes emit integer metrics in float notation.
		if asFloat, ferr := strconv.ParseFloat(value, 64); ferr == nil {
			rounded := int64(asFloat)
			return &rounded
		}
		return nil
	}
	return &parsed
}

func parseFloatPtr(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseUintPtr(value string) *uint {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil
	}
	ret := uint(parsed)
	return &ret
}
