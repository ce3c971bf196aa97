package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// planetRepository is the SQL-backed implementation of [PlanetRepository].
type planetRepository struct {
	db     *DB
	logger *logger.Logger
}

var planetColumns = []string{"id", "name", "climate", "population", "orbital_period", "rotation_period", "diameter"}

// NewPlanetRepository constructs a [PlanetRepository] backed by the provided
// database connection and logger.
func NewPlanetRepository(db *DB, logger *logger.Logger) PlanetRepository {
	logger.Debug().Msg("creating planet repository")
	return &planetRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new planet and returns it with the store-assigned ID.
// A duplicate name surfaces as [ErrAlreadyExists].
func (r *planetRepository) Create(ctx context.Context, planet models.Planet) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(planet.TableName()).
		Columns("name", "climate", "population", "orbital_period", "rotation_period", "diameter").
		Values(planet.Name, planet.Climate, planet.Population, planet.OrbitalPeriod, planet.RotationPeriod, planet.Diameter).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Planet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&planet.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Planet{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "*planetRepository.Create").Str("name", planet.Name).Msg("error creating planet")
		return models.Planet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return planet, nil
}

// FindByID retrieves one planet by primary key.
func (r *planetRepository) FindByID(ctx context.Context, id int64) (models.Planet, error) {
	return r.findOne(ctx, "id", id)
}

// FindByName retrieves one planet by its natural key.
func (r *planetRepository) FindByName(ctx context.Context, name string) (models.Planet, error) {
	return r.findOne(ctx, "name", name)
}

func (r *planetRepository) findOne(ctx context.Context, column string, value any) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(planetColumns...).
		From(models.Planet{}.TableName()).
		Where(map[string]any{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Planet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var planet models.Planet
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&planet.ID, &planet.Name, &planet.Climate, &planet.Population,
		&planet.OrbitalPeriod, &planet.RotationPeriod, &planet.Diameter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Planet{}, ErrNotFound
		}
		log.Err(err).Str("func", "*planetRepository.findOne").Str("column", column).Msg("error scanning planet row")
		return models.Planet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return planet, nil
}

// List returns every stored planet.
func (r *planetRepository) List(ctx context.Context) ([]models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(planetColumns...).
		From(models.Planet{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.List").Msg("error listing planets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	planets := make([]models.Planet, 0)
	for rows.Next() {
		var planet models.Planet
		err = rows.Scan(&planet.ID, &planet.Name, &planet.Climate, &planet.Population,
			&planet.OrbitalPeriod, &planet.RotationPeriod, &planet.Diameter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		planets = append(planets, planet)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return planets, nil
}

// Update overwrites the mutable columns (name, climate, population) of the
// planet with the given id and returns the number of affected rows. The
// remaining columns are immutable post-creation.
func (r *planetRepository) Update(ctx context.Context, id int64, update models.UpdatePlanetRequest) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Planet{}.TableName()).
		Set("name", update.Name).
		Set("climate", update.Climate).
		Set("population", update.Population).
		Where(map[string]any{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.Update").Int64("id", id).Msg("error updating planet")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// DeleteByName removes all planets matching the given name and returns the
// number of deleted rows.
func (r *planetRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Planet{}.TableName()).
		Where(map[string]any{"name": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.DeleteByName").Str("name", name).Msg("error deleting planet")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
