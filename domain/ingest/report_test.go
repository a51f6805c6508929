package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummaryEmpty(t *testing.T) {
	runID := uuid.New()
	summary := FormatSummary(runID, nil)
	assert.Contains(t, summary, runID.String())
	assert.Contains(t, summary, "nothing to ingest")
}

func TestFormatSummaryDeterministic(t *testing.T) {
	runID := uuid.New()
	reports := []*EntityReport{
		{
			Kind:       KindIsolates,
			Added:      2,
			Extra:      map[string]int{"aliquots": 6},
			Duplicates: []string{"dup b", "dup a", "dup a"},
		},
		{
			Kind:    KindAssemblies,
			Added:   1,
			Orphans: []string{"no isolate for sample s9"},
		},
	}

	summary := FormatSummary(runID, reports)
	assert.Contains(t, summary, "isolates: 2 added, 6 aliquots, 2 duplicates")
	// Descriptions come out deduplicated and sorted.
	assert.Contains(t, summary, "duplicates: dup a, dup b")
	assert.Contains(t, summary, "assemblies: 1 added, 1 orphans")
	assert.Contains(t, summary, "orphans: no isolate for sample s9")

	assert.Equal(t, summary, FormatSummary(runID, reports))
}

func TestFormatLargeList(t *testing.T) {
	items := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, fmt.Sprintf("item%02d", i))
	}

	short := formatLargeList(items[:3], listDisplayLimit)
	assert.Equal(t, "item00, item01, item02", short)

	long := formatLargeList(items, listDisplayLimit)
	assert.True(t, strings.HasSuffix(long, ", and 2 more..."), long)
	assert.NotContains(t, long, "item10")
}
