package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// characterRepository is the SQL-backed implementation of
// [CharacterRepository]. Characters are create-and-read only.
type characterRepository struct {
	db     *DB
	logger *logger.Logger
}

var characterColumns = []string{"id", "name", "height", "mass", "hair_color", "eye_color", "gender", "birth_year"}

// NewCharacterRepository constructs a [CharacterRepository] backed by the
// provided database connection and logger.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	logger.Debug().Msg("creating character repository")
	return &characterRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new character and returns it with the store-assigned ID.
// A duplicate name surfaces as [ErrAlreadyExists].
func (r *characterRepository) Create(ctx context.Context, character models.Character) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(character.TableName()).
		Columns("name", "height", "mass", "hair_color", "eye_color", "gender", "birth_year").
		Values(character.Name, character.Height, character.Mass, character.HairColor,
			character.EyeColor, character.Gender, character.BirthYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&character.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Character{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "*characterRepository.Create").Str("name", character.Name).Msg("error creating character")
		return models.Character{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return character, nil
}

// FindByID retrieves one character by primary key.
func (r *characterRepository) FindByID(ctx context.Context, id int64) (models.Character, error) {
	return r.findOne(ctx, "id", id)
}

// FindByName retrieves one character by its natural key.
func (r *characterRepository) FindByName(ctx context.Context, name string) (models.Character, error) {
	return r.findOne(ctx, "name", name)
}

func (r *characterRepository) findOne(ctx context.Context, column string, value any) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(characterColumns...).
		From(models.Character{}.TableName()).
		Where(map[string]any{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var character models.Character
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&character.ID, &character.Name, &character.Height, &character.Mass,
		&character.HairColor, &character.EyeColor, &character.Gender, &character.BirthYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Character{}, ErrNotFound
		}
		log.Err(err).Str("func", "*characterRepository.findOne").Str("column", column).Msg("error scanning character row")
		return models.Character{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return character, nil
}

// List returns every stored character.
func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(characterColumns...).
		From(models.Character{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.List").Msg("error listing characters")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	characters := make([]models.Character, 0)
	for rows.Next() {
		var character models.Character
		err = rows.Scan(&character.ID, &character.Name, &character.Height, &character.Mass,
			&character.HairColor, &character.EyeColor, &character.Gender, &character.BirthYear)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		characters = append(characters, character)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return characters, nil
}
