package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
)

func TestCollapseIsolates(t *testing.T) {
	records := []marcdb.Isolate{
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1, SuspectedOrganism: "E. coli"},
		{SampleID: "s2", SubjectID: 2, SpecimenID: 1, SuspectedOrganism: "unknown"},
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1, SuspectedOrganism: "E. coli"},
	}

	collapsed, err := collapseIsolates(records)
	require.Nil(t, err)
	require.Equal(t, 2, len(collapsed))
	// First-seen order survives the collapse.
	assert.Equal(t, "s1", collapsed[0].SampleID)
	assert.Equal(t, "s2", collapsed[1].SampleID)
}

func TestCollapseIsolatesConflict(t *testing.T) {
	records := []marcdb.Isolate{
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1, SuspectedOrganism: "E. coli"},
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1, SuspectedOrganism: "K. pneumonia"},
	}

	_, err := collapseIsolates(records)
	require.NotNil(t, err)

	var consistencyErr *ConsistencyError
	require.ErrorAs(t, err, &consistencyErr)
	assert.Equal(t, "s1", consistencyErr.SampleID)
	assert.Equal(t, colSuspectedOrganism, consistencyErr.Field)
}

func TestCollapseIsolatesAbsentDates(t *testing.T) {
	received := date(2021, 1, 1)
	records := []marcdb.Isolate{
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1, ReceivedDate: received},
		{SampleID: "s1", SubjectID: 1, SpecimenID: 1},
	}

	_, err := collapseIsolates(records)
	var consistencyErr *ConsistencyError
	require.ErrorAs(t, err, &consistencyErr)
	assert.Equal(t, colReceivedDate, consistencyErr.Field)

	// Absent compares equal to absent.
	records[0].ReceivedDate = nil
	collapsed, err := collapseIsolates(records)
	require.Nil(t, err)
	assert.Equal(t, 1, len(collapsed))
}

func TestAssemblyIndexResolve(t *testing.T) {
	index := newAssemblyIndex()
	index.add(assemblyRef{id: 1, sampleID: "s1", runNumber: "1"})
	index.add(assemblyRef{id: 2, sampleID: "s2", runNumber: "1"})
	index.add(assemblyRef{id: 3, sampleID: "s2", runNumber: "2"})
	index.add(assemblyRef{id: 4, sampleID: "s3", runNumber: ""})
	index.add(assemblyRef{id: 5, sampleID: "s3", runNumber: ""})

	explicit := uint(3)

	// An explicit assembly id outranks everything else.
	ref, outcome := index.resolve(&explicit, "s1", "1")
	assert.Equal(t, matchUnique, outcome)
	assert.Equal(t, uint(3), ref.id)

	missing := uint(99)
	_, outcome = index.resolve(&missing, "s1", "1")
	assert.Equal(t, matchNone, outcome)

	// A sample with one assembly resolves without a run number.
	ref, outcome = index.resolve(nil, "s1", "")
	assert.Equal(t, matchUnique, outcome)
	assert.Equal(t, uint(1), ref.id)

	// Several assemblies need the run number as a tie-break.
	_, outcome = index.resolve(nil, "s2", "")
	assert.Equal(t, matchAmbiguous, outcome)

	ref, outcome = index.resolve(nil, "s2", "2")
	assert.Equal(t, matchUnique, outcome)
	assert.Equal(t, uint(3), ref.id)

	_, outcome = index.resolve(nil, "s2", "7")
	assert.Equal(t, matchNone, outcome)

	// A tie-break that still matches several stays ambiguous.
	_, outcome = index.resolve(nil, "s3", "")
	assert.Equal(t, matchAmbiguous, outcome)

	_, outcome = index.resolve(nil, "nope", "")
	assert.Equal(t, matchNone, outcome)
}

func TestAssemblyIndexAddDedups(t *testing.T) {
	index := newAssemblyIndex()
	index.add(assemblyRef{id: 1, sampleID: "s1", runNumber: "1"})
	index.add(assemblyRef{id: 1, sampleID: "s1", runNumber: "1"})

	assert.Equal(t, 1, len(index.byID))
	assert.Equal(t, 1, len(index.bySample["s1"]))
}

func TestReconcile(t *testing.T) {
	type record struct {
		key   string
		value int
	}

	known := map[string]record{
		"a": {key: "a", value: 1},
	}
	batch := []record{
		{key: "a", value: 1}, // identical to the stored row
		{key: "a", value: 2}, // conflicts with the stored row
		{key: "b", value: 3}, // new
		{key: "b", value: 3}, // identical to an earlier batch row
	}

	res := reconcile(known, batch,
		func(r record) string { return r.key },
		func(a, b record) bool { return a.value == b.value },
	)

	assert.Equal(t, []record{{key: "b", value: 3}}, res.toInsert)
	assert.Equal(t, 2, len(res.duplicates))
	assert.Equal(t, []record{{key: "a", value: 2}}, res.conflicts)
}

func TestReconcileNilEqual(t *testing.T) {
	known := map[string]int{}
	batch := []int{1, 2, 2}

	res := reconcile(known, batch,
		func(r int) string {
			if r == 1 {
				return "one"
			}
			return "two"
		},
		nil,
	)

	assert.Equal(t, []int{1, 2}, res.toInsert)
	// With nil equality, any key repeat is an identical duplicate.
	assert.Equal(t, []int{2}, res.duplicates)
	assert.Zero(t, len(res.conflicts))
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
