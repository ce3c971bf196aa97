package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// favoriteRepository is the SQL-backed implementation of
// [FavoriteRepository].
type favoriteRepository struct {
	db     *DB
	logger *logger.Logger
}

var favoriteColumns = []string{"id", "user_id", "planets_id", "characters_id", "starships_id"}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new favorite link. The target kind selects which of the
// three foreign-key columns receives the target ID; the other two stay NULL.
// A duplicate (user, target) pair surfaces as [ErrAlreadyExists].
func (r *favoriteRepository) Create(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	targetColumn, err := favorite.Target.Kind.Column()
	if err != nil {
		return models.Favorite{}, err
	}

	query, args, err := r.db.builder.
		Insert(favorite.TableName()).
		Columns("user_id", targetColumn).
		Values(favorite.UserID, favorite.Target.ID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&favorite.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Favorite{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "*favoriteRepository.Create").
			Int64("user_id", favorite.UserID).Str("target_column", targetColumn).
			Msg("error creating favorite")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return favorite, nil
}

// FindByID retrieves one favorite by primary key.
func (r *favoriteRepository) FindByID(ctx context.Context, id int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		Where(map[string]any{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	favorite, err := r.scanOne(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, ErrNotFound
		}
		log.Err(err).Str("func", "*favoriteRepository.FindByID").Int64("id", id).Msg("error scanning favorite row")
		return models.Favorite{}, err
	}

	return favorite, nil
}

// FindByUserAndTarget retrieves the favorite linking the given user to the
// given catalog item, if any.
func (r *favoriteRepository) FindByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	targetColumn, err := target.Kind.Column()
	if err != nil {
		return models.Favorite{}, err
	}

	query, args, err := r.db.builder.
		Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		Where(map[string]any{"user_id": userID, targetColumn: target.ID}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	favorite, err := r.scanOne(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, ErrNotFound
		}
		log.Err(err).Str("func", "*favoriteRepository.FindByUserAndTarget").
			Int64("user_id", userID).Str("target_column", targetColumn).
			Msg("error scanning favorite row")
		return models.Favorite{}, err
	}

	return favorite, nil
}

// ListByUser returns every favorite belonging to the given user.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		Where(map[string]any{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListByUser").Int64("user_id", userID).Msg("error listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		favorite, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// DeleteByID removes one favorite by primary key and reports the number of
// rows deleted.
func (r *favoriteRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Favorite{}.TableName()).
		Where(map[string]any{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteByID").Int64("id", id).Msg("error deleting favorite")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// DeleteByUserAndTarget removes the favorite linking the given user to the
// given catalog item and reports the number of rows deleted.
func (r *favoriteRepository) DeleteByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (int64, error) {
	log := logger.FromContext(ctx)

	targetColumn, err := target.Kind.Column()
	if err != nil {
		return 0, err
	}

	query, args, err := r.db.builder.
		Delete(models.Favorite{}.TableName()).
		Where(map[string]any{"user_id": userID, targetColumn: target.ID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteByUserAndTarget").
			Int64("user_id", userID).Str("target_column", targetColumn).
			Msg("error deleting favorite")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *favoriteRepository) scanOne(row rowScanner) (models.Favorite, error) {
	var (
		favorite     models.Favorite
		planetsID    sql.NullInt64
		charactersID sql.NullInt64
		starshipsID  sql.NullInt64
	)

	err := row.Scan(&favorite.ID, &favorite.UserID, &planetsID, &charactersID, &starshipsID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, err
		}
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	target, err := models.TargetFromColumns(
		nullableInt64(planetsID),
		nullableInt64(charactersID),
		nullableInt64(starshipsID),
	)
	if err != nil {
		return models.Favorite{}, err
	}
	favorite.Target = target

	return favorite, nil
}

func nullableInt64(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	return &value.Int64
}
