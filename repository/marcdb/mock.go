package marcdb

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/utils"
)

var ErrDatabaseNotEmpty = errors.New("database is not empty, mock data can only be added to an empty database")

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func mockIsolates() []Isolate {
	return []Isolate{
		{
			SampleID:          "sample1",
			SubjectID:         1,
			SpecimenID:        1,
			SuspectedOrganism: "K. pneumonia",
			SpecialCollection: "none",
			ReceivedDate:      date(2021, 1, 1),
			CryobankingDate:   date(2021, 1, 2),
		},
		{SampleID: "sample2", SubjectID: 1, SpecimenID: 2},
		{
			SampleID:          "sample3",
			SubjectID:         2,
			SpecimenID:        1,
			SuspectedOrganism: "E. coli",
			SpecialCollection: "none",
			ReceivedDate:      date(2021, 1, 3),
			CryobankingDate:   date(2021, 1, 4),
		},
	}
}

func mockAliquots() []Aliquot {
	return []Aliquot{
		{IsolateID: "sample1", TubeBarcode: "123", BoxName: "box1"},
		{IsolateID: "sample1", TubeBarcode: "124", BoxName: "box1"},
		{IsolateID: "sample2", TubeBarcode: "125", BoxName: "box1"},
		{IsolateID: "sample2", TubeBarcode: "126", BoxName: "box1"},
		{IsolateID: "sample3", TubeBarcode: "127", BoxName: "box1"},
		{IsolateID: "sample3", TubeBarcode: "128", BoxName: "box1"},
		{IsolateID: "sample3", TubeBarcode: "129", BoxName: "box1"},
		{IsolateID: "sample3", TubeBarcode: "130", BoxName: "box1"},
	}
}

/*
FillMockDB seeds demo isolates and aliquots. It refuses to touch a database
that already holds isolates.
*/
func FillMockDB(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Isolate{}).Count(&count).Error; err != nil {
		return utils.WrapError(err, "count isolates fail")
	}
	if count != 0 {
		return ErrDatabaseNotEmpty
	}

	return db.Transaction(func(tx *gorm.DB) error {
		isolates := mockIsolates()
		if err := tx.Create(&isolates).Error; err != nil {
			return utils.WrapError(err, "insert mock isolates fail")
		}

		aliquots := mockAliquots()
		if err := tx.Create(&aliquots).Error; err != nil {
			return utils.WrapError(err, "insert mock aliquots fail")
		}

		return nil
	})
}
