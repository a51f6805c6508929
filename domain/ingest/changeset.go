package ingest

type Kind string

const (
	KindIsolates             Kind = "isolates"
	KindAssemblies           Kind = "assemblies"
	KindAssemblyQC           Kind = "assembly qc"
	KindTaxonomicAssignments Kind = "taxonomic assignments"
	KindContaminants         Kind = "contaminants"
	KindAntimicrobials       Kind = "antimicrobials"
)

// reportOrder fixes the rendering order of the per-entity reports; it matches
// the staging order (parents before dependents).
var reportOrder = []Kind{
	KindIsolates,
	KindAssemblies,
	KindAssemblyQC,
	KindTaxonomicAssignments,
	KindContaminants,
	KindAntimicrobials,
}

/*
EntityReport is the per-entity-type outcome of an ingestion: how many rows were
accepted into the change-set, derived counts (for example aliquots inserted
alongside isolates), and human-readable descriptions of the rows that were
skipped as duplicates or excluded as orphans.
*/
type EntityReport struct {
	Kind       Kind
	Added      int
	Extra      map[string]int
	Duplicates []string
	Orphans    []string
}

func (r *EntityReport) addExtra(name string, count int) {
	if r.Extra == nil {
		r.Extra = make(map[string]int)
	}
	r.Extra[name] += count
}

func (r *EntityReport) addDuplicate(desc string) {
	r.Duplicates = append(r.Duplicates, desc)
}

func (r *EntityReport) addOrphan(desc string) {
	r.Orphans = append(r.Orphans, desc)
}

/*
changeSet accumulates the per-entity reports while the stages run. Staged rows
live in the open transaction, never in committed state, until the coordinator
commits.
*/
type changeSet struct {
	reports map[Kind]*EntityReport
}

func newChangeSet() *changeSet {
	return &changeSet{reports: make(map[Kind]*EntityReport)}
}

func (cs *changeSet) report(kind Kind) *EntityReport {
	report, ok := cs.reports[kind]
	if !ok {
		report = &EntityReport{Kind: kind}
		cs.reports[kind] = report
	}
	return report
}

// ordered returns the reports of the entity types that were actually staged,
// in staging order.
func (cs *changeSet) ordered() []*EntityReport {
	ret := make([]*EntityReport, 0, len(cs.reports))
	for _, kind := range reportOrder {
		if report, ok := cs.reports[kind]; ok {
			ret = append(ret, report)
		}
	}
	return ret
}
