// Package dbtest provides a migrated in-memory database for tests.
package dbtest

import (
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"starwars-api/db"
	"starwars-api/model"
	"testing"
	"time"
)

// New returns a fresh, migrated SQLite database with foreign keys enforced.
// The pool is pinned to one connection because every connection to
// ":memory:" is a separate database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), false)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// Reference holds the rows created by SeedReference.
type Reference struct {
	Character model.Character
	Planet    model.Planet
	Vehicle   model.Vehicle
}

// SeedReference inserts one character, one planet and one vehicle.
func SeedReference(t testing.TB, gdb *gorm.DB) Reference {
	t.Helper()

	male := model.GenderMale
	height := 172
	terrain := "desert"
	speed := 650
	ref := Reference{
		Character: model.Character{
			Name:      "Luke",
			Surname:   "Skywalker",
			Gender:    &male,
			BirthDate: datatypes.Date(time.Date(1977, 5, 25, 0, 0, 0, 0, time.UTC)),
			Height:    &height,
		},
		Planet:  model.Planet{Name: "Tatooine", Terrain: &terrain},
		Vehicle: model.Vehicle{Name: "X-34 landspeeder", Speed: &speed},
	}
	require.NoError(t, gdb.Create(&ref.Character).Error)
	require.NoError(t, gdb.Create(&ref.Planet).Error)
	require.NoError(t, gdb.Create(&ref.Vehicle).Error)
	return ref
}
