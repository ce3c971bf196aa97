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

const selectStarshipsSQL = `SELECT id, name, manufacturer, crew, passengers, consumables, cost_in_credits FROM starships`

func TestStarshipRepository_Create(t *testing.T) {
	insertSQL := regexp.QuoteMeta(`INSERT INTO starships (name,manufacturer,crew,passengers,consumables,cost_in_credits) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`)
	starship := models.Starship{Name: "X-Wing", Manufacturer: "Incom", Crew: 1, Passengers: 0, Consumables: "1 week", CostInCredits: 149999}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewStarshipRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs("X-Wing", "Incom", int64(1), int64(0), "1 week", int64(149999)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		created, err := repo.Create(testContext(), starship)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewStarshipRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs("X-Wing", "Incom", int64(1), int64(0), "1 week", int64(149999)).
			WillReturnError(newPgUniqueViolation(t))

		_, err := repo.Create(testContext(), starship)
		require.ErrorIs(t, err, ErrAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStarshipRepository_FindByName(t *testing.T) {
	findSQL := regexp.QuoteMeta(selectStarshipsSQL + ` WHERE name = $1 LIMIT 1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewStarshipRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(findSQL).
			WithArgs("X-Wing").
			WillReturnRows(sqlmock.NewRows(starshipColumns).
				AddRow(int64(3), "X-Wing", "Incom", int64(1), int64(0), "1 week", int64(149999)))

		found, err := repo.FindByName(testContext(), "X-Wing")
		require.NoError(t, err)
		assert.Equal(t, "Incom", found.Manufacturer)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewStarshipRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(findSQL).
			WithArgs("Death Star").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByName(testContext(), "Death Star")
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStarshipRepository_List(t *testing.T) {
	listSQL := regexp.QuoteMeta(selectStarshipsSQL + ` ORDER BY id`)

	db, mock := newTestDB(t)
	repo := NewStarshipRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(listSQL).
		WillReturnRows(sqlmock.NewRows(starshipColumns).
			AddRow(int64(1), "X-Wing", "Incom", int64(1), int64(0), "1 week", int64(149999)).
			AddRow(int64(2), "Millennium Falcon", "Corellian Engineering", int64(4), int64(6), "2 months", int64(100000)))

	starships, err := repo.List(testContext())
	require.NoError(t, err)
	require.Len(t, starships, 2)
	assert.Equal(t, "Millennium Falcon", starships[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
