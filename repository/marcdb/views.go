package marcdb

import (
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/utils"
)

// Read-only lookup accessors. Ingest never goes through these; they back the
// lookup API and ad-hoc inspection.

func GetIsolates(db *gorm.DB, sampleID string, limit int) ([]Isolate, error) {
	query := db.Model(&Isolate{}).Order("sample_id")
	if sampleID != "" {
		query = query.Where("sample_id = ?", sampleID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var isolates []Isolate
	if err := query.Find(&isolates).Error; err != nil {
		return nil, utils.WrapError(err, "select isolates fail")
	}
	return isolates, nil
}

func GetAliquots(db *gorm.DB, isolateID string, limit int) ([]Aliquot, error) {
	query := db.Model(&Aliquot{}).Order("id")
	if isolateID != "" {
		query = query.Where("isolate_id = ?", isolateID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var aliquots []Aliquot
	if err := query.Find(&aliquots).Error; err != nil {
		return nil, utils.WrapError(err, "select aliquots fail")
	}
	return aliquots, nil
}

func GetAssemblies(db *gorm.DB, isolateID string, limit int) ([]Assembly, error) {
	query := db.Model(&Assembly{}).Order("id")
	if isolateID != "" {
		query = query.Where("isolate_id = ?", isolateID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var assemblies []Assembly
	if err := query.Find(&assemblies).Error; err != nil {
		return nil, utils.WrapError(err, "select assemblies fail")
	}
	return assemblies, nil
}
