package ingest

import (
	"time"

	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
)

//////////////////////////////// isolate self-consistency ////////////////////////////////////

/*
collapseIsolates groups isolate rows by sample id and collapses each group to
one representative record. Rows sharing a sample id must agree on every
non-key field (absent equals absent); a disagreement is fatal. Returns the
representatives in first-seen order.
*/
func collapseIsolates(records []marcdb.Isolate) ([]marcdb.Isolate, error) {
	seen := make(map[string]marcdb.Isolate, len(records))
	order := make([]string, 0, len(records))

	for _, record := range records {
		prior, ok := seen[record.SampleID]
		if !ok {
			seen[record.SampleID] = record
			order = append(order, record.SampleID)
			continue
		}
		if field, equal := isolateDiff(prior, record); !equal {
			return nil, &ConsistencyError{SampleID: record.SampleID, Field: field}
		}
	}

	ret := make([]marcdb.Isolate, 0, len(order))
	for _, sampleID := range order {
		ret = append(ret, seen[sampleID])
	}
	return ret, nil
}

// isolateDiff compares the non-key fields of two isolate records and names the
// first field that differs.
func isolateDiff(a, b marcdb.Isolate) (string, bool) {
	switch {
	case a.SubjectID != b.SubjectID:
		return colSubjectID, false
	case a.SpecimenID != b.SpecimenID:
		return colSpecimenID, false
	case a.SuspectedOrganism != b.SuspectedOrganism:
		return colSuspectedOrganism, false
	case a.SpecialCollection != b.SpecialCollection:
		return colSpecialCollection, false
	case !datesEqual(a.ReceivedDate, b.ReceivedDate):
		return colReceivedDate, false
	case !datesEqual(a.CryobankingDate, b.CryobankingDate):
		return colCryobankingDate, false
	}
	return "", true
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

//////////////////////////////// assembly candidate resolution ////////////////////////////////////

type matchOutcome int

const (
	matchNone matchOutcome = iota
	matchUnique
	matchAmbiguous
)

// assemblyRef is one resolvable assembly, either already committed in the
// store or staged earlier in this ingestion.
type assemblyRef struct {
	id        uint
	sampleID  string
	runNumber string
}

type assemblyIndex struct {
	byID     map[uint]assemblyRef
	bySample map[string][]assemblyRef
}

func newAssemblyIndex() *assemblyIndex {
	return &assemblyIndex{
		byID:     make(map[uint]assemblyRef),
		bySample: make(map[string][]assemblyRef),
	}
}

func (ix *assemblyIndex) ids() []uint {
	ret := make([]uint, 0, len(ix.byID))
	for id := range ix.byID {
		ret = append(ret, id)
	}
	return ret
}

func (ix *assemblyIndex) add(ref assemblyRef) {
	if _, ok := ix.byID[ref.id]; ok {
		return
	}
	ix.byID[ref.id] = ref
	ix.bySample[ref.sampleID] = append(ix.bySample[ref.sampleID], ref)
}

/*
resolve finds the assembly a dependent row belongs to, ranking candidates:

 1. an explicit assembly id, when the row carries one;
 2. a unique match on sample id;
 3. among several assemblies of the sample, a unique match on run number.

Anything still ambiguous, or matching nothing, is an orphan; a dependent row
is never silently attached to an arbitrary assembly.
*/
func (ix *assemblyIndex) resolve(explicitID *uint, sampleID, runNumber string) (assemblyRef, matchOutcome) {
	if explicitID != nil {
		ref, ok := ix.byID[*explicitID]
		if !ok {
			return assemblyRef{}, matchNone
		}
		return ref, matchUnique
	}

	candidates := ix.bySample[sampleID]
	if len(candidates) == 0 {
		return assemblyRef{}, matchNone
	}
	if len(candidates) == 1 {
		return candidates[0], matchUnique
	}

	if runNumber == "" {
		return assemblyRef{}, matchAmbiguous
	}

	narrowed := make([]assemblyRef, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.runNumber == runNumber {
			narrowed = append(narrowed, candidate)
		}
	}
	switch len(narrowed) {
	case 0:
		return assemblyRef{}, matchNone
	case 1:
		return narrowed[0], matchUnique
	default:
		return assemblyRef{}, matchAmbiguous
	}
}
