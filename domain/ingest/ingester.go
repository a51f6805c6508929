package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
	"github.com/PennChopMicrobiomeProgram/marc-db/utils"
)

/*
ingester runs one ingestion inside a transaction. The stage methods run in
parent-before-dependent order: dependents resolve against assembly ids that
only exist once the assembly stage has flushed its inserts.
*/
type ingester struct {
	// input
	opts    *Options
	logger  *logrus.Logger
	preview io.Writer

	// state
	tx              *gorm.DB
	cs              *changeSet
	index           *assemblyIndex
	isolates        map[string]marcdb.Isolate // sample id -> known isolate (store or staged)
	storeAssemblies map[uint]*marcdb.Assembly

	// output
	result *Result
}

func (b *ingester) run(tx *gorm.DB) error {
	b.tx = tx

	if err := b.stageIsolates(); err != nil {
		return err
	}
	if err := b.loadStoreAssemblies(); err != nil {
		return err
	}
	if err := b.stageAssemblies(); err != nil {
		return err
	}
	if err := b.stageAssemblyQC(); err != nil {
		return err
	}
	if err := b.stageTaxonomicAssignments(); err != nil {
		return err
	}
	if err := b.stageContaminants(); err != nil {
		return err
	}
	if err := b.stageAntimicrobials(); err != nil {
		return err
	}

	b.result.Reports = b.cs.ordered()

	// The summary always precedes the commit decision.
	summary := FormatSummary(b.result.RunID, b.result.Reports)
	if _, err := io.WriteString(b.preview, summary); err != nil {
		return utils.WrapError(err, "write change-set preview fail")
	}

	if b.opts.Yes {
		return nil
	}
	if b.opts.Confirm == nil || !b.opts.Confirm(confirmPrompt) {
		return errCancelled
	}
	return nil
}

// createRows stages records in the open transaction. The INSERT executes
// immediately, so constraint violations surface here, before confirmation.
func (b *ingester) createRows(value interface{}) error {
	if err := b.tx.Create(value).Error; err != nil {
		return &IntegrityViolation{Err: err}
	}
	return nil
}

//////////////////////////////// isolates and aliquots ////////////////////////////////////

var isolateRequiredColumns = []string{
	colSampleID, colSubjectID, colSpecimenID,
	colSuspectedOrganism, colSpecialCollection,
	colReceivedDate, colCryobankingDate,
	colTubeBarcode, colBoxName,
}

func (b *ingester) stageIsolates() error {
	table := b.opts.Isolates
	if table == nil {
		return nil
	}
	if err := requireColumns(table, KindIsolates, isolateRequiredColumns); err != nil {
		return err
	}

	records := make([]marcdb.Isolate, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, rowToIsolate(row))
	}

	collapsed, err := collapseIsolates(records)
	if err != nil {
		return err
	}

	if err := b.loadStoreIsolates(sampleIDsOf(collapsed)); err != nil {
		return err
	}

	// A committed isolate must agree with a re-submitted row the same way two
	// rows of one batch must agree with each other; identical re-submission is
	// the common case and is skipped without a report entry.
	report := b.cs.report(KindIsolates)
	toInsert := make([]marcdb.Isolate, 0, len(collapsed))
	for _, record := range collapsed {
		prior, known := b.isolates[record.SampleID]
		if !known {
			b.isolates[record.SampleID] = record
			toInsert = append(toInsert, record)
			continue
		}
		if field, equal := isolateDiff(prior, record); !equal {
			return &ConsistencyError{SampleID: record.SampleID, Field: field}
		}
		b.logger.Debugf("isolate %s already recorded, skipping", record.SampleID)
	}

	if len(toInsert) > 0 {
		if err := b.createRows(&toInsert); err != nil {
			return err
		}
	}
	report.Added = len(toInsert)

	return b.stageAliquots(table, report)
}

type aliquotKey struct {
	isolateID   string
	tubeBarcode string
	boxName     string
}

func aliquotKeyOf(record marcdb.Aliquot) aliquotKey {
	return aliquotKey{
		isolateID:   record.IsolateID,
		tubeBarcode: record.TubeBarcode,
		boxName:     record.BoxName,
	}
}

// stageAliquots inserts one aliquot per input row. Aliquots are not collapsed
// by the isolate consistency logic; only an exact repeat of the
// (isolate, tube, box) triple is skipped.
func (b *ingester) stageAliquots(table *Table, report *EntityReport) error {
	records := make([]marcdb.Aliquot, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, marcdb.Aliquot{
			IsolateID:   row.get(colSampleID),
			TubeBarcode: row.get(colTubeBarcode),
			BoxName:     row.get(colBoxName),
		})
	}

	known, err := b.loadStoreAliquots(sampleIDsOf(nil, records...))
	if err != nil {
		return err
	}

	res := reconcile(known, records, aliquotKeyOf, nil)
	if len(res.duplicates) > 0 {
		b.logger.Debugf("skipping %d duplicate aliquot(s)", len(res.duplicates))
	}
	if len(res.toInsert) > 0 {
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	report.addExtra("aliquots", len(res.toInsert))
	return nil
}

func rowToIsolate(row Row) marcdb.Isolate {
	organism := row.get(colSuspectedOrganism)
	if organism == "" {
		// Matches the column default, so a blank re-submission compares equal
		// to the stored row.
		organism = "unknown"
	}
	return marcdb.Isolate{
		SampleID:          row.get(colSampleID),
		SubjectID:         parseInt(row.get(colSubjectID)),
		SpecimenID:        parseInt(row.get(colSpecimenID)),
		SuspectedOrganism: organism,
		SpecialCollection: row.get(colSpecialCollection),
		ReceivedDate:      parseDate(row.get(colReceivedDate)),
		CryobankingDate:   parseDate(row.get(colCryobankingDate)),
	}
}

//////////////////////////////// assemblies ////////////////////////////////////

type assemblyKey struct {
	isolateID string
	runNumber string
}

func (b *ingester) stageAssemblies() error {
	table := b.opts.Assemblies
	if table == nil {
		return nil
	}
	if err := requireColumns(table, KindAssemblies, []string{colSampleID}); err != nil {
		return err
	}
	report := b.cs.report(KindAssemblies)

	// Parents may be committed isolates this batch never mentions.
	if err := b.loadStoreIsolates(tableSampleIDs(table)); err != nil {
		return err
	}

	candidates := make([]*marcdb.Assembly, 0, len(table.Rows))
	for _, row := range table.Rows {
		record := b.rowToAssembly(row)
		if _, known := b.isolates[record.IsolateID]; !known {
			report.addOrphan(fmt.Sprintf("no isolate for sample %s", record.IsolateID))
			continue
		}
		candidates = append(candidates, record)
	}

	known := make(map[assemblyKey]*marcdb.Assembly, len(b.index.byID))
	for _, ref := range b.index.byID {
		if stored, ok := b.storeAssemblies[ref.id]; ok {
			known[assemblyKey{isolateID: ref.sampleID, runNumber: ref.runNumber}] = stored
		}
	}

	res := reconcile(known, candidates,
		func(r *marcdb.Assembly) assemblyKey {
			return assemblyKey{isolateID: r.IsolateID, runNumber: r.RunNumber}
		},
		assembliesEqual,
	)
	for _, dup := range res.duplicates {
		report.addDuplicate(fmt.Sprintf("assembly for sample %s (run %s) already recorded", dup.IsolateID, orDefault(dup.RunNumber, "-")))
	}
	for _, conflict := range res.conflicts {
		report.addDuplicate(fmt.Sprintf("conflicting assembly for sample %s (run %s), existing data kept", conflict.IsolateID, orDefault(conflict.RunNumber, "-")))
	}

	if len(res.toInsert) > 0 {
		// Create assigns the generated ids; dependents resolve against them
		// from here on.
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	for _, record := range res.toInsert {
		b.index.add(assemblyRef{id: record.ID, sampleID: record.IsolateID, runNumber: record.RunNumber})
	}
	report.Added = len(res.toInsert)
	return nil
}

func (b *ingester) rowToAssembly(row Row) *marcdb.Assembly {
	return &marcdb.Assembly{
		IsolateID:           row.get(colSampleID),
		MetagenomicSampleID: row.get(colMetagenomicSampleID),
		MetagenomicRunID:    row.get(colMetagenomicRunID),
		NanoporePath:        row.get(colNanoporePath),
		RunNumber:           orDefault(row.get(colRunNumber), b.opts.RunNumber),
		SunbeamVersion:      orDefault(row.get(colSunbeamVersion), b.opts.SunbeamVersion),
		SbxSgaVersion:       orDefault(row.get(colSbxSgaVersion), b.opts.SbxSgaVersion),
		SunbeamOutputPath:   orDefault(row.get(colSunbeamOutputPath), b.opts.OutputPath),
		NcbiID:              row.get(colNcbiID),
	}
}

func assembliesEqual(a, b *marcdb.Assembly) bool {
	return a.MetagenomicSampleID == b.MetagenomicSampleID &&
		a.MetagenomicRunID == b.MetagenomicRunID &&
		a.NanoporePath == b.NanoporePath &&
		a.SunbeamVersion == b.SunbeamVersion &&
		a.SbxSgaVersion == b.SbxSgaVersion &&
		a.SunbeamOutputPath == b.SunbeamOutputPath &&
		a.NcbiID == b.NcbiID
}

//////////////////////////////// dependent records ////////////////////////////////////

// requireDependentColumns accepts a batch that can name its assembly either
// explicitly or via sample id.
func requireDependentColumns(table *Table, kind Kind) error {
	if table.hasColumn(colAssemblyID) || table.hasColumn(colSampleID) {
		return nil
	}
	return &SchemaError{Kind: kind, Missing: []string{colSampleID}}
}

// resolveDependentRow maps a row onto a staged or committed assembly;
// a non-unique outcome files the row under orphans.
func (b *ingester) resolveDependentRow(row Row, kind Kind, report *EntityReport) (assemblyRef, bool) {
	ref, outcome := b.index.resolve(parseUintPtr(row.get(colAssemblyID)), row.get(colSampleID), row.get(colRunNumber))
	switch outcome {
	case matchUnique:
		return ref, true
	case matchAmbiguous:
		report.addOrphan(fmt.Sprintf("unmatched assembly for %s (%s: ambiguous)", kind, describeRowRef(row)))
	default:
		report.addOrphan(fmt.Sprintf("unmatched assembly for %s (%s)", kind, describeRowRef(row)))
	}
	return assemblyRef{}, false
}

func describeRowRef(row Row) string {
	if sampleID := row.get(colSampleID); sampleID != "" {
		return "sample " + sampleID
	}
	if assemblyID := row.get(colAssemblyID); assemblyID != "" {
		return "assembly id " + assemblyID
	}
	return "no sample id"
}

func (b *ingester) stageAssemblyQC() error {
	table := b.opts.AssemblyQCs
	if table == nil {
		return nil
	}
	if err := requireDependentColumns(table, KindAssemblyQC); err != nil {
		return err
	}
	report := b.cs.report(KindAssemblyQC)

	records := make([]marcdb.AssemblyQC, 0, len(table.Rows))
	for _, row := range table.Rows {
		ref, ok := b.resolveDependentRow(row, KindAssemblyQC, report)
		if !ok {
			continue
		}
		records = append(records, rowToAssemblyQC(row, ref.id))
	}

	known, err := loadKnownByKey[marcdb.AssemblyQC](b.tx, b.index.ids(),
		func(r marcdb.AssemblyQC) uint { return r.AssemblyID })
	if err != nil {
		return err
	}

	// One QC row per assembly: any pre-existing row is a duplicate no matter
	// what values it carries, so equality is not consulted.
	res := reconcile(known, records, func(r marcdb.AssemblyQC) uint { return r.AssemblyID }, nil)
	for _, dup := range res.duplicates {
		report.addDuplicate(fmt.Sprintf("qc already recorded for assembly %d", dup.AssemblyID))
	}
	if len(res.toInsert) > 0 {
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	report.Added = len(res.toInsert)
	return nil
}

func rowToAssemblyQC(row Row, assemblyID uint) marcdb.AssemblyQC {
	return marcdb.AssemblyQC{
		AssemblyID:        assemblyID,
		ContigCount:       parseIntPtr(row.get(colContigCount)),
		GenomeSize:        parseIntPtr(row.get(colGenomeSize)),
		N50:               parseIntPtr(row.get(colN50)),
		GcContent:         parseFloatPtr(row.get(colGcContent)),
		Cds:               parseIntPtr(row.get(colCds)),
		Completeness:      parseFloatPtr(row.get(colCompleteness)),
		Contamination:     parseFloatPtr(row.get(colContamination)),
		MinContigCoverage: parseFloatPtr(row.get(colMinContigCoverage)),
		AvgContigCoverage: parseFloatPtr(row.get(colAvgContigCoverage)),
		MaxContigCoverage: parseFloatPtr(row.get(colMaxContigCoverage)),
	}
}

type taxonomicKey struct {
	assemblyID     uint
	tool           string
	classification string
}

func (b *ingester) stageTaxonomicAssignments() error {
	table := b.opts.TaxonomicAssignments
	if table == nil {
		return nil
	}
	if err := requireDependentColumns(table, KindTaxonomicAssignments); err != nil {
		return err
	}
	report := b.cs.report(KindTaxonomicAssignments)

	records := make([]marcdb.TaxonomicAssignment, 0, len(table.Rows))
	for _, row := range table.Rows {
		ref, ok := b.resolveDependentRow(row, KindTaxonomicAssignments, report)
		if !ok {
			continue
		}
		records = append(records, marcdb.TaxonomicAssignment{
			AssemblyID:          ref.id,
			Tool:                row.get(colTool),
			Classification:      row.get(colClassification),
			Abundance:           parseFloatPtr(row.get(colAbundance)),
			MashContamination:   parseFloatPtr(row.get(colMashContamination)),
			MashContaminatedSpp: parseFloatPtr(row.get(colMashContaminatedSpp)),
			St:                  row.get(colSt),
			StSchema:            row.get(colStSchema),
			AlleleAssignment:    row.get(colAlleleAssignment),
		})
	}

	known, err := loadKnownByKey[marcdb.TaxonomicAssignment](b.tx, b.index.ids(), taxonomicKeyOf)
	if err != nil {
		return err
	}

	res := reconcile(known, records, taxonomicKeyOf, taxonomicEqual)
	for _, dup := range res.duplicates {
		report.addDuplicate(fmt.Sprintf("taxonomic assignment %s/%s already recorded for assembly %d", dup.Tool, dup.Classification, dup.AssemblyID))
	}
	for _, conflict := range res.conflicts {
		report.addDuplicate(fmt.Sprintf("conflicting taxonomic assignment %s/%s for assembly %d, existing data kept", conflict.Tool, conflict.Classification, conflict.AssemblyID))
	}
	if len(res.toInsert) > 0 {
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	report.Added = len(res.toInsert)
	return nil
}

func taxonomicKeyOf(r marcdb.TaxonomicAssignment) taxonomicKey {
	return taxonomicKey{assemblyID: r.AssemblyID, tool: r.Tool, classification: r.Classification}
}

func taxonomicEqual(a, b marcdb.TaxonomicAssignment) bool {
	return floatsEqual(a.Abundance, b.Abundance) &&
		floatsEqual(a.MashContamination, b.MashContamination) &&
		floatsEqual(a.MashContaminatedSpp, b.MashContaminatedSpp) &&
		a.St == b.St &&
		a.StSchema == b.StSchema &&
		a.AlleleAssignment == b.AlleleAssignment
}

type contaminantKey struct {
	assemblyID  uint
	tool        string
	contaminant string
	proportion  string
}

func (b *ingester) stageContaminants() error {
	table := b.opts.Contaminants
	if table == nil {
		return nil
	}
	if err := requireDependentColumns(table, KindContaminants); err != nil {
		return err
	}
	report := b.cs.report(KindContaminants)

	records := make([]marcdb.Contaminant, 0, len(table.Rows))
	for _, row := range table.Rows {
		ref, ok := b.resolveDependentRow(row, KindContaminants, report)
		if !ok {
			continue
		}
		records = append(records, marcdb.Contaminant{
			AssemblyID:  ref.id,
			Tool:        row.get(colTool),
			Contaminant: row.get(colContaminant),
			Proportion:  parseFloatPtr(row.get(colProportion)),
		})
	}

	known, err := loadKnownByKey[marcdb.Contaminant](b.tx, b.index.ids(), contaminantKeyOf)
	if err != nil {
		return err
	}

	// Every field is part of the duplicate key, so a key repeat is always an
	// identical duplicate.
	res := reconcile(known, records, contaminantKeyOf, nil)
	for _, dup := range res.duplicates {
		report.addDuplicate(fmt.Sprintf("contaminant %s (%s) already recorded for assembly %d", dup.Contaminant, dup.Tool, dup.AssemblyID))
	}
	if len(res.toInsert) > 0 {
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	report.Added = len(res.toInsert)
	return nil
}

func contaminantKeyOf(r marcdb.Contaminant) contaminantKey {
	return contaminantKey{
		assemblyID:  r.AssemblyID,
		tool:        r.Tool,
		contaminant: r.Contaminant,
		proportion:  floatKey(r.Proportion),
	}
}

type antimicrobialKey struct {
	assemblyID        uint
	contigID          string
	geneSymbol        string
	geneName          string
	accession         string
	elementType       string
	resistanceProduct string
}

func (b *ingester) stageAntimicrobials() error {
	table := b.opts.Antimicrobials
	if table == nil {
		return nil
	}
	if err := requireDependentColumns(table, KindAntimicrobials); err != nil {
		return err
	}
	report := b.cs.report(KindAntimicrobials)

	records := make([]marcdb.Antimicrobial, 0, len(table.Rows))
	for _, row := range table.Rows {
		ref, ok := b.resolveDependentRow(row, KindAntimicrobials, report)
		if !ok {
			continue
		}
		record := marcdb.Antimicrobial{
			AssemblyID:        ref.id,
			ContigID:          row.get(colContigID),
			GeneSymbol:        row.get(colGeneSymbol),
			GeneName:          row.get(colGeneName),
			Accession:         row.get(colAccession),
			ElementType:       row.get(colElementType),
			ResistanceProduct: row.get(colResistanceProduct),
		}
		if record.GeneSymbol == "" && record.GeneName == "" && record.Accession == "" &&
			record.ElementType == "" && record.ResistanceProduct == "" {
			// AMR tools emit placeholder rows for clean assemblies.
			report.addExtra("empty rows dropped", 1)
			continue
		}
		records = append(records, record)
	}

	known, err := loadKnownByKey[marcdb.Antimicrobial](b.tx, b.index.ids(), antimicrobialKeyOf)
	if err != nil {
		return err
	}

	res := reconcile(known, records, antimicrobialKeyOf, nil)
	for _, dup := range res.duplicates {
		report.addDuplicate(fmt.Sprintf("amr gene %s (%s) already recorded for assembly %d", orDefault(dup.GeneSymbol, dup.GeneName), dup.Accession, dup.AssemblyID))
	}
	if len(res.toInsert) > 0 {
		if err := b.createRows(&res.toInsert); err != nil {
			return err
		}
	}
	report.Added = len(res.toInsert)
	return nil
}

func antimicrobialKeyOf(r marcdb.Antimicrobial) antimicrobialKey {
	return antimicrobialKey{
		assemblyID:        r.AssemblyID,
		contigID:          r.ContigID,
		geneSymbol:        r.GeneSymbol,
		geneName:          r.GeneName,
		accession:         r.Accession,
		elementType:       r.ElementType,
		resistanceProduct: r.ResistanceProduct,
	}
}

//////////////////////////////// store lookups ////////////////////////////////////

// loadStoreIsolates merges committed isolates for the given sample ids into
// the known-isolate map.
func (b *ingester) loadStoreIsolates(sampleIDs []string) error {
	if len(sampleIDs) == 0 {
		return nil
	}
	var existing []marcdb.Isolate
	if err := b.tx.Where("sample_id IN ?", sampleIDs).Find(&existing).Error; err != nil {
		return utils.WrapError(err, "select existing isolates fail")
	}
	for _, isolate := range existing {
		if _, ok := b.isolates[isolate.SampleID]; !ok {
			b.isolates[isolate.SampleID] = isolate
		}
	}
	return nil
}

func (b *ingester) loadStoreAliquots(sampleIDs []string) (map[aliquotKey]marcdb.Aliquot, error) {
	known := make(map[aliquotKey]marcdb.Aliquot)
	if len(sampleIDs) == 0 {
		return known, nil
	}
	var existing []marcdb.Aliquot
	if err := b.tx.Where("isolate_id IN ?", sampleIDs).Find(&existing).Error; err != nil {
		return nil, utils.WrapError(err, "select existing aliquots fail")
	}
	for _, aliquot := range existing {
		known[aliquotKeyOf(aliquot)] = aliquot
	}
	return known, nil
}

// loadStoreAssemblies indexes every committed assembly any batch of this run
// refers to, by sample id or by explicit assembly id, so dedup and dependent
// resolution see store state.
func (b *ingester) loadStoreAssemblies() error {
	sampleIDs := referencedSampleIDs(b.opts)
	assemblyIDs := referencedAssemblyIDs(b.opts)
	if len(sampleIDs) == 0 && len(assemblyIDs) == 0 {
		return nil
	}

	query := b.tx
	switch {
	case len(sampleIDs) > 0 && len(assemblyIDs) > 0:
		query = query.Where("isolate_id IN ? OR id IN ?", sampleIDs, assemblyIDs)
	case len(sampleIDs) > 0:
		query = query.Where("isolate_id IN ?", sampleIDs)
	default:
		query = query.Where("id IN ?", assemblyIDs)
	}

	var existing []*marcdb.Assembly
	if err := query.Find(&existing).Error; err != nil {
		return utils.WrapError(err, "select existing assemblies fail")
	}
	for _, assembly := range existing {
		b.index.add(assemblyRef{id: assembly.ID, sampleID: assembly.IsolateID, runNumber: assembly.RunNumber})
		b.storeAssemblies[assembly.ID] = assembly
	}
	return nil
}

// loadKnownByKey fetches the committed dependent rows for the assemblies this
// run can resolve against, keyed by their natural duplicate key.
func loadKnownByKey[R any, K comparable](tx *gorm.DB, assemblyIDs []uint, key func(R) K) (map[K]R, error) {
	known := make(map[K]R)
	if len(assemblyIDs) == 0 {
		return known, nil
	}
	var existing []R
	if err := tx.Where("assembly_id IN ?", assemblyIDs).Find(&existing).Error; err != nil {
		return nil, utils.WrapError(err, "select existing dependent records fail")
	}
	for _, record := range existing {
		known[key(record)] = record
	}
	return known, nil
}

//////////////////////////////// small helpers ////////////////////////////////////

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func floatKey(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'g', -1, 64)
}

func floatsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sampleIDsOf(isolates []marcdb.Isolate, aliquots ...marcdb.Aliquot) []string {
	seen := make(map[string]struct{})
	ret := make([]string, 0)
	for _, isolate := range isolates {
		if _, ok := seen[isolate.SampleID]; !ok {
			seen[isolate.SampleID] = struct{}{}
			ret = append(ret, isolate.SampleID)
		}
	}
	for _, aliquot := range aliquots {
		if _, ok := seen[aliquot.IsolateID]; !ok {
			seen[aliquot.IsolateID] = struct{}{}
			ret = append(ret, aliquot.IsolateID)
		}
	}
	return ret
}

func tableSampleIDs(table *Table) []string {
	if table == nil || !table.hasColumn(colSampleID) {
		return nil
	}
	seen := make(map[string]struct{}, len(table.Rows))
	ret := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		sampleID := row.get(colSampleID)
		if sampleID == "" {
			continue
		}
		if _, ok := seen[sampleID]; !ok {
			seen[sampleID] = struct{}{}
			ret = append(ret, sampleID)
		}
	}
	return ret
}

func referencedAssemblyIDs(opts *Options) []uint {
	seen := make(map[uint]struct{})
	ret := make([]uint, 0)
	for _, table := range []*Table{opts.AssemblyQCs, opts.TaxonomicAssignments, opts.Contaminants, opts.Antimicrobials} {
		if table == nil || !table.hasColumn(colAssemblyID) {
			continue
		}
		for _, row := range table.Rows {
			id := parseUintPtr(row.get(colAssemblyID))
			if id == nil {
				continue
			}
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				ret = append(ret, *id)
			}
		}
	}
	return ret
}

func referencedSampleIDs(opts *Options) []string {
	seen := make(map[string]struct{})
	ret := make([]string, 0)
	for _, table := range []*Table{opts.Assemblies, opts.AssemblyQCs, opts.TaxonomicAssignments, opts.Contaminants, opts.Antimicrobials} {
		for _, sampleID := range tableSampleIDs(table) {
			if _, ok := seen[sampleID]; !ok {
				seen[sampleID] = struct{}{}
				ret = append(ret, sampleID)
			}
		}
	}
	return ret
}
