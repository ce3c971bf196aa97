package store

import (
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

const selectPlanetsSQL = `SELECT id, name, climate, population, orbital_period, rotation_period, diameter FROM planets`

func TestPlanetRepository_Create(t *testing.T) {
	insertSQL := regexp.QuoteMeta(`INSERT INTO planets (name,climate,population,orbital_period,rotation_period,diameter) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`)
	planet := models.Planet{Name: "Tatooine", Climate: "arid", Population: 200000, OrbitalPeriod: 304, RotationPeriod: 23, Diameter: 10465}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs("Tatooine", "arid", int64(200000), int64(304), int64(23), int64(10465)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		created, err := repo.Create(testContext(), planet)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs("Tatooine", "arid", int64(200000), int64(304), int64(23), int64(10465)).
			WillReturnError(newPgUniqueViolation(t))

		_, err := repo.Create(testContext(), planet)
		require.ErrorIs(t, err, ErrAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanetRepository_FindByName(t *testing.T) {
	findSQL := regexp.QuoteMeta(selectPlanetsSQL + ` WHERE name = $1 LIMIT 1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(findSQL).
			WithArgs("Hoth").
			WillReturnRows(sqlmock.NewRows(planetColumns).
				AddRow(int64(2), "Hoth", "frozen", int64(0), int64(549), int64(23), int64(7200)))

		planet, err := repo.FindByName(testContext(), "Hoth")
		require.NoError(t, err)
		assert.Equal(t, int64(2), planet.ID)
		assert.Equal(t, "frozen", planet.Climate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(findSQL).
			WithArgs("Alderaan").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByName(testContext(), "Alderaan")
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanetRepository_Update(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE planets SET name = $1, climate = $2, population = $3 WHERE id = $4`)
	update := models.UpdatePlanetRequest{Name: "Tatooine", Climate: "arid", Population: 250000}

	t.Run("row updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(updateSQL).
			WithArgs("Tatooine", "arid", int64(250000), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Update(testContext(), 1, update)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reports zero", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(updateSQL).
			WithArgs("Tatooine", "arid", int64(250000), int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Update(testContext(), 404, update)
		require.NoError(t, err)
		assert.Zero(t, affected)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanetRepository_DeleteByName(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM planets WHERE name = $1`)

	db, mock := newTestDB(t)
	repo := NewPlanetRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(deleteSQL).
		WithArgs("Tatooine").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteByName(testContext(), "Tatooine")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}
