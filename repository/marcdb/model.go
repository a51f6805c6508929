package marcdb

import (
	"time"
)

//////////////////////////////// specimen records ////////////////////////////////////

/*
Isolate is one uniquely identified biological specimen.

	SampleID natural key assigned by the wet lab; every downstream record hangs off it;
	SubjectID, SpecimenID identify the study subject and the specimen collected from them;
	SuspectedOrganism what the lab believed the organism to be at receipt;
	SpecialCollection tag for non-routine collections;
	ReceivedDate, CryobankingDate nullable, upstream sheets often leave them blank;
*/
type Isolate struct {
	SampleID          string `gorm:"primaryKey;type:varchar(64)"`
	SubjectID         int    `gorm:"not null"`
	SpecimenID        int    `gorm:"not null"`
	SuspectedOrganism string `gorm:"type:varchar(128);default:unknown"`
	SpecialCollection string `gorm:"type:varchar(64)"`
	ReceivedDate      *time.Time
	CryobankingDate   *time.Time

	Aliquots   []Aliquot  `gorm:"foreignKey:IsolateID;references:SampleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Assemblies []Assembly `gorm:"foreignKey:IsolateID;references:SampleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

/*
Aliquot is a physical tube of an isolate.

The (IsolateID, TubeBarcode, BoxName) triple is the physical identity of a tube;
the unique index backs the ingest-time dedup rule.
*/
type Aliquot struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	IsolateID   string `gorm:"type:varchar(64);not null;index:idx_aliquots_identity,unique"`
	TubeBarcode string `gorm:"type:varchar(64);index:idx_aliquots_identity,unique"`
	BoxName     string `gorm:"type:varchar(64);index:idx_aliquots_identity,unique"`
}

//////////////////////////////// assembly records ////////////////////////////////////

/*
Assembly is one genomic assembly run produced for an isolate.

	RunNumber distinguishes repeat assemblies of the same isolate, natural identity
	is (IsolateID, RunNumber);
	MetagenomicSampleID, MetagenomicRunID tie the run back to the sequencing batch;
	SunbeamVersion, SbxSgaVersion pipeline and tool versions used for the run;
	NanoporePath, SunbeamOutputPath sequencer input and pipeline output locations;
*/
type Assembly struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement"`
	IsolateID           string `gorm:"type:varchar(64);not null;index:idx_assemblies_isolate"`
	MetagenomicSampleID string `gorm:"type:varchar(64)"`
	MetagenomicRunID    string `gorm:"type:varchar(64)"`
	NanoporePath        string `gorm:"type:varchar(256)"`
	RunNumber           string `gorm:"type:varchar(32)"`
	SunbeamVersion      string `gorm:"type:varchar(32)"`
	SbxSgaVersion       string `gorm:"type:varchar(32)"`
	SunbeamOutputPath   string `gorm:"type:varchar(256)"`
	NcbiID              string `gorm:"type:varchar(64)"`

	QC                   *AssemblyQC           `gorm:"foreignKey:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TaxonomicAssignments []TaxonomicAssignment `gorm:"foreignKey:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Contaminants         []Contaminant         `gorm:"foreignKey:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Antimicrobials       []Antimicrobial       `gorm:"foreignKey:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

/*
AssemblyQC holds assembly-level quality metrics, exactly one row per assembly;
AssemblyID doubles as the primary key. Metrics are pointers because upstream QC
files routinely leave columns blank.
*/
type AssemblyQC struct {
	AssemblyID        uint `gorm:"primaryKey"`
	ContigCount       *int64
	GenomeSize        *int64
	N50               *int64
	GcContent         *float64
	Cds               *int64
	Completeness      *float64
	Contamination     *float64
	MinContigCoverage *float64
	AvgContigCoverage *float64
	MaxContigCoverage *float64
}

/*
TaxonomicAssignment is one taxonomic call for an assembly. Multiple tools may
each file a call for the same assembly; repeats of the same
(AssemblyID, Tool, Classification) tuple are duplicates.

	Abundance fraction of reads supporting the call;
	MashContamination, MashContaminatedSpp mash screen contamination estimates;
	St, StSchema, AlleleAssignment sequence-typing fields;
*/
type TaxonomicAssignment struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement"`
	AssemblyID          uint   `gorm:"not null;index:idx_taxonomic_assembly"`
	Tool                string `gorm:"type:varchar(64)"`
	Classification      string `gorm:"type:varchar(128)"`
	Abundance           *float64
	MashContamination   *float64
	MashContaminatedSpp *float64
	St                  string `gorm:"type:varchar(32)"`
	StSchema            string `gorm:"type:varchar(64)"`
	AlleleAssignment    string `gorm:"type:varchar(128)"`
}

/*
Contaminant is one contamination call reported by a screening tool.
*/
type Contaminant struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	AssemblyID  uint   `gorm:"not null;index:idx_contaminants_assembly"`
	Tool        string `gorm:"type:varchar(64)"`
	Contaminant string `gorm:"type:varchar(128)"`
	Proportion  *float64
}

/*
Antimicrobial is one antimicrobial-resistance gene call on an assembly contig.
*/
type Antimicrobial struct {
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	AssemblyID        uint   `gorm:"not null;index:idx_antimicrobials_assembly"`
	ContigID          string `gorm:"type:varchar(128)"`
	GeneSymbol        string `gorm:"type:varchar(64)"`
	GeneName          string `gorm:"type:varchar(128)"`
	Accession         string `gorm:"type:varchar(64)"`
	ElementType       string `gorm:"type:varchar(64)"`
	ResistanceProduct string `gorm:"type:varchar(128)"`
}
