package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// starshipRepository is the SQL-backed implementation of
// [StarshipRepository].
type starshipRepository struct {
	db     *DB
	logger *logger.Logger
}

var starshipColumns = []string{"id", "name", "manufacturer", "crew", "passengers", "consumables", "cost_in_credits"}

// NewStarshipRepository constructs a [StarshipRepository] backed by the
// provided database connection and logger.
func NewStarshipRepository(db *DB, logger *logger.Logger) StarshipRepository {
	logger.Debug().Msg("creating starship repository")
	return &starshipRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new starship and returns it with the store-assigned ID.
// A duplicate name surfaces as [ErrAlreadyExists].
func (r *starshipRepository) Create(ctx context.Context, starship models.Starship) (models.Starship, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(starship.TableName()).
		Columns("name", "manufacturer", "crew", "passengers", "consumables", "cost_in_credits").
		Values(starship.Name, starship.Manufacturer, starship.Crew, starship.Passengers,
			starship.Consumables, starship.CostInCredits).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Starship{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&starship.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Starship{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "*starshipRepository.Create").Str("name", starship.Name).Msg("error creating starship")
		return models.Starship{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return starship, nil
}

// FindByID retrieves one starship by primary key.
func (r *starshipRepository) FindByID(ctx context.Context, id int64) (models.Starship, error) {
	return r.findOne(ctx, "id", id)
}

// FindByName retrieves one starship by the stored name column. The create
// path matches the payload's "model" value against this column.
func (r *starshipRepository) FindByName(ctx context.Context, name string) (models.Starship, error) {
	return r.findOne(ctx, "name", name)
}

func (r *starshipRepository) findOne(ctx context.Context, column string, value any) (models.Starship, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(starshipColumns...).
		From(models.Starship{}.TableName()).
		Where(map[string]any{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Starship{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var starship models.Starship
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&starship.ID, &starship.Name, &starship.Manufacturer, &starship.Crew,
		&starship.Passengers, &starship.Consumables, &starship.CostInCredits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Starship{}, ErrNotFound
		}
		log.Err(err).Str("func", "*starshipRepository.findOne").Str("column", column).Msg("error scanning starship row")
		return models.Starship{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return starship, nil
}

// List returns every stored starship.
func (r *starshipRepository) List(ctx context.Context) ([]models.Starship, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(starshipColumns...).
		From(models.Starship{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*starshipRepository.List").Msg("error listing starships")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	starships := make([]models.Starship, 0)
	for rows.Next() {
		var starship models.Starship
		err = rows.Scan(&starship.ID, &starship.Name, &starship.Manufacturer, &starship.Crew,
			&starship.Passengers, &starship.Consumables, &starship.CostInCredits)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		starships = append(starships, starship)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return starships, nil
}
