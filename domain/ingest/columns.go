package ingest

import "strings"

// Canonical column names. Upstream tools disagree on headers; everything
// downstream of the normalizer speaks only these.
const (
	colSampleID          = "sample_id"
	colSubjectID         = "subject_id"
	colSpecimenID        = "specimen_id"
	colSuspectedOrganism = "suspected_organism"
	colSpecialCollection = "special_collection"
	colReceivedDate      = "received_date"
	colCryobankingDate   = "cryobanking_date"
	colTubeBarcode       = "tube_barcode"
	colBoxName           = "box_name"

	colAssemblyID          = "assembly_id"
	colMetagenomicSampleID = "metagenomic_sample_id"
	colMetagenomicRunID    = "metagenomic_run_id"
	colNanoporePath        = "nanopore_path"
	colRunNumber           = "run_number"
	colSunbeamVersion      = "sunbeam_version"
	colSbxSgaVersion       = "sbx_sga_version"
	colSunbeamOutputPath   = "sunbeam_output_path"
	colNcbiID              = "ncbi_id"

	colContigCount       = "contig_count"
	colGenomeSize        = "genome_size"
	colN50               = "n50"
	colGcContent         = "gc_content"
	colCds               = "cds"
	colCompleteness      = "completeness"
	colContamination     = "contamination"
	colMinContigCoverage = "min_contig_coverage"
	colAvgContigCoverage = "avg_contig_coverage"
	colMaxContigCoverage = "max_contig_coverage"

	colTool                = "tool"
	colClassification      = "classification"
	colAbundance           = "abundance"
	colMashContamination   = "mash_contamination"
	colMashContaminatedSpp = "mash_contaminated_spp"
	colSt                  = "st"
	colStSchema            = "st_schema"
	colAlleleAssignment    = "allele_assignment"

	colContaminant = "contaminant"
	colProportion  = "proportion"

	colContigID          = "contig_id"
	colGeneSymbol        = "gene_symbol"
	colGeneName          = "gene_name"
	colAccession         = "accession"
	colElementType       = "element_type"
	colResistanceProduct = "resistance_product"
)

// columnAliases maps lowercased source headers to canonical names. Each alias
// maps to exactly one canonical name; headers not listed here pass through
// unchanged (missing required columns are caught by the loader, not here).
var columnAliases = map[string]string{
	"sampleid":                 colSampleID,
	"sample":                   colSampleID,
	"subject id":               colSubjectID,
	"specimen id":              colSpecimenID,
	"sample species":           colSuspectedOrganism,
	"species":                  colSuspectedOrganism,
	"received by marc":         colReceivedDate,
	"cryobanking":              colCryobankingDate,
	"tube barcode":             colTubeBarcode,
	"box-name_position":        colBoxName,
	"box name":                 colBoxName,
	"run number":               colRunNumber,
	"assemblyid":               colAssemblyID,
	"taxonomic_classification": colClassification,
}

/*
canonicalColumn maps one source header onto its canonical field name. The
mapping is pure and order-independent: headers are trimmed, alias lookup is
case-insensitive, and unknown headers come back trimmed but otherwise unchanged.
*/
func canonicalColumn(header string) string {
	trimmed := strings.TrimSpace(header)
	if canonical, ok := columnAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

func canonicalColumns(headers []string) []string {
	ret := make([]string, len(headers))
	for i, header := range headers {
		ret[i] = canonicalColumn(header)
	}
	return ret
}
