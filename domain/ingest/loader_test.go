package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTableNormalizesHeaders(t *testing.T) {
	content := "SampleID\tSubject ID\tSample Species\tBox-Name_Position\n" +
		"s1\t7\tE. coli\tbox1\n"

	table, err := ReadTable(strings.NewReader(content))
	require.Nil(t, err)

	assert.Equal(t, []string{colSampleID, colSubjectID, colSuspectedOrganism, colBoxName}, table.Columns)
	require.Equal(t, 1, len(table.Rows))
	assert.Equal(t, "s1", table.Rows[0].get(colSampleID))
	assert.Equal(t, "E. coli", table.Rows[0].get(colSuspectedOrganism))
	assert.Equal(t, "box1", table.Rows[0].get(colBoxName))
}

func TestReadTablePadsShortRows(t *testing.T) {
	content := "sample_id\ttube_barcode\tbox_name\n" +
		"s1\t123\n" +
		" s2 \t 124 \tbox1\n"

	table, err := ReadTable(strings.NewReader(content))
	require.Nil(t, err)
	require.Equal(t, 2, len(table.Rows))

	assert.Equal(t, "", table.Rows[0].get(colBoxName))
	// Cell values come back trimmed.
	assert.Equal(t, "s2", table.Rows[1].get(colSampleID))
	assert.Equal(t, "124", table.Rows[1].get(colTubeBarcode))
}

func TestReadTableEmpty(t *testing.T) {
	table, err := ReadTable(strings.NewReader(""))
	require.Nil(t, err)
	assert.Zero(t, len(table.Columns))
	assert.Zero(t, len(table.Rows))
}

func TestRequireColumnsNamesAllMissing(t *testing.T) {
	table := &Table{Columns: []string{colSampleID}}

	err := requireColumns(table, KindIsolates, []string{colSampleID, colSubjectID, colSpecimenID})
	require.NotNil(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, KindIsolates, schemaErr.Kind)
	assert.Equal(t, []string{colSubjectID, colSpecimenID}, schemaErr.Missing)
}

func TestCanonicalColumn(t *testing.T) {
	assert.Equal(t, colSampleID, canonicalColumn("SampleID"))
	assert.Equal(t, colSampleID, canonicalColumn(" sample "))
	assert.Equal(t, colReceivedDate, canonicalColumn("Received by MARC"))
	assert.Equal(t, colClassification, canonicalColumn("Taxonomic_Classification"))
	// Unknown headers pass through trimmed.
	assert.Equal(t, "mystery_metric", canonicalColumn(" mystery_metric "))
}

func TestParseDate(t *testing.T) {
	parsed := parseDate("2021-01-02")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), *parsed)

	parsed = parseDate("1/2/2021")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), *parsed)

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
}

func TestParseIntPtrFloatNotation(t *testing.T) {
	parsed := parseIntPtr("5200000.0")
	require.NotNil(t, parsed)
	assert.Equal(t, int64(5200000), *parsed)

	assert.Nil(t, parseIntPtr(""))
	assert.Nil(t, parseIntPtr("n/a"))
}
