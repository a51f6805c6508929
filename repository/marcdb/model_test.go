package marcdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigration(t *testing.T) {
	cfg := GenerateTestConfig()
	cfg.CheckMigration = true
	_, err := CreateDatabase(cfg)
	assert.Nil(t, err)
}

// testDatabase gives each test its own sqlite file, so connection pooling
// cannot hand two connections two different in-memory databases.
func testDatabase(t *testing.T) *gorm.DB {
	cfg := GenerateTestConfig()
	cfg.DatabaseURL = "sqlite://" + filepath.Join(t.TempDir(), "marc.db")
	database, err := CreateDatabase(cfg)
	require.Nil(t, err)
	return database
}

func TestFillMockDB(t *testing.T) {
	database := testDatabase(t)

	err := FillMockDB(database)
	require.Nil(t, err)

	var isolateCount int64
	require.Nil(t, database.Model(&Isolate{}).Count(&isolateCount).Error)
	assert.Equal(t, int64(3), isolateCount)

	var aliquotCount int64
	require.Nil(t, database.Model(&Aliquot{}).Count(&aliquotCount).Error)
	assert.Equal(t, int64(8), aliquotCount)

	// The organism column default fills in for the sparse mock isolate.
	var sample2 Isolate
	require.Nil(t, database.Take(&sample2, "sample_id = ?", "sample2").Error)
	assert.Equal(t, "unknown", sample2.SuspectedOrganism)

	err = FillMockDB(database)
	assert.ErrorIs(t, err, ErrDatabaseNotEmpty)
}

func TestViews(t *testing.T) {
	database := testDatabase(t)
	require.Nil(t, FillMockDB(database))

	isolates, err := GetIsolates(database, "", 0)
	require.Nil(t, err)
	assert.Equal(t, 3, len(isolates))
	assert.Equal(t, "sample1", isolates[0].SampleID)

	isolates, err = GetIsolates(database, "sample3", 0)
	require.Nil(t, err)
	require.Equal(t, 1, len(isolates))
	assert.Equal(t, "E. coli", isolates[0].SuspectedOrganism)

	aliquots, err := GetAliquots(database, "sample3", 0)
	require.Nil(t, err)
	assert.Equal(t, 4, len(aliquots))

	aliquots, err = GetAliquots(database, "sample3", 2)
	require.Nil(t, err)
	assert.Equal(t, 2, len(aliquots))

	assemblies, err := GetAssemblies(database, "", 0)
	require.Nil(t, err)
	assert.Zero(t, len(assemblies))

	assembly := Assembly{IsolateID: "sample1", RunNumber: "42"}
	require.Nil(t, database.Create(&assembly).Error)

	assemblies, err = GetAssemblies(database, "sample1", 0)
	require.Nil(t, err)
	require.Equal(t, 1, len(assemblies))
	assert.Equal(t, "42", assemblies[0].RunNumber)

	assemblies, err = GetAssemblies(database, "sample2", 0)
	require.Nil(t, err)
	assert.Zero(t, len(assemblies))
}

func TestAliquotIdentityIndex(t *testing.T) {
	database := testDatabase(t)
	require.Nil(t, FillMockDB(database))

	dup := Aliquot{IsolateID: "sample1", TubeBarcode: "123", BoxName: "box1"}
	err := database.Create(&dup).Error
	assert.NotNil(t, err)
}
