package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// favoriteService is the concrete implementation of FavoriteService. It
// resolves owning users and favorite targets before touching the favorites
// table, preserving the legacy lookup order and its error conflations.
type favoriteService struct {
	users      store.UserRepository
	planets    store.PlanetRepository
	characters store.CharacterRepository
	starships  store.StarshipRepository
	favorites  store.FavoriteRepository

	logger *logger.Logger
}

// NewFavoriteService constructs a FavoriteService over the user, catalog and
// favorite repositories.
func NewFavoriteService(
	users store.UserRepository,
	planets store.PlanetRepository,
	characters store.CharacterRepository,
	starships store.StarshipRepository,
	favorites store.FavoriteRepository,
	logger *logger.Logger,
) FavoriteService {
	return &favoriteService{
		users:      users,
		planets:    planets,
		characters: characters,
		starships:  starships,
		favorites:  favorites,
		logger:     logger,
	}
}

// ListForUser returns every favorite of the user the given identity resolves
// to. Returns ErrUserNotFound when the email maps to no stored user; an
// empty favorites list is not an error here, the transport layer owns the
// empty-set-is-404 policy.
func (f *favoriteService) ListForUser(ctx context.Context, email string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	user, err := f.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	return f.favorites.ListByUser(ctx, user.ID)
}

// Add marks the target as a favorite of the user the identity resolves to
// and returns the serialized target record.
//
// The lookup order is fixed: user first, then target, then the duplicate
// pre-check. Returns:
//   - ErrUserNotFound when the email maps to no user.
//   - ErrTargetNotFound when the catalog item is absent.
//   - ErrAlreadyFavorite when the pair already exists, including the case
//     where a concurrent Add wins the insert race.
func (f *favoriteService) Add(ctx context.Context, email string, target models.FavoriteTarget) (models.CatalogRecord, error) {
	log := logger.FromContext(ctx)

	user, err := f.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	record, err := f.findTarget(ctx, target)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTargetNotFound
		}
		log.Err(err).Str("kind", string(target.Kind)).Int64("target_id", target.ID).Msg("favorite target lookup failed")
		return nil, fmt.Errorf("favorite target lookup failed: %w", err)
	}

	_, err = f.favorites.FindByUserAndTarget(ctx, user.ID, target)
	if err == nil {
		return nil, ErrAlreadyFavorite
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Int64("user_id", user.ID).Msg("favorite lookup failed")
		return nil, fmt.Errorf("favorite lookup failed: %w", err)
	}

	_, err = f.favorites.Create(ctx, models.Favorite{UserID: user.ID, Target: target})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyFavorite
		}
		log.Err(err).Int64("user_id", user.ID).Msg("favorite creation ended with error")
		return nil, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return record, nil
}

// RemoveByTarget deletes the favorite linking the given user id to the given
// target. The caller supplies the user id directly; no identity check is
// performed, which reproduces the legacy public delete routes.
//
// A missing user, a missing target, or a missing favorite row all collapse
// into ErrNothingToDelete, matching the single response those routes give.
func (f *favoriteService) RemoveByTarget(ctx context.Context, userID int64, target models.FavoriteTarget) error {
	log := logger.FromContext(ctx)

	if _, err := f.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNothingToDelete
		}
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if _, err := f.findTarget(ctx, target); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNothingToDelete
		}
		log.Err(err).Str("kind", string(target.Kind)).Int64("target_id", target.ID).Msg("favorite target lookup failed")
		return fmt.Errorf("favorite target lookup failed: %w", err)
	}

	affected, err := f.favorites.DeleteByUserAndTarget(ctx, userID, target)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("favorite deletion ended with error")
		return fmt.Errorf("favorite deletion ended with error: %w", err)
	}
	if affected == 0 {
		return ErrNothingToDelete
	}

	return nil
}

// RemoveByID deletes one favorite by its own id, restricted to favorites
// owned by the user the identity resolves to.
//
// Returns:
//   - ErrUserNotFound when the email maps to no user.
//   - ErrFavoriteNotFound when no favorite has the given id.
//   - ErrNothingToDelete when the favorite exists but belongs to another
//     user; a caller can never delete a foreign favorite.
func (f *favoriteService) RemoveByID(ctx context.Context, email string, favoriteID int64) error {
	log := logger.FromContext(ctx)

	user, err := f.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	favorite, err := f.favorites.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		log.Err(err).Int64("favorite_id", favoriteID).Msg("favorite lookup failed")
		return fmt.Errorf("favorite lookup failed: %w", err)
	}

	if favorite.UserID != user.ID {
		log.Warn().Int64("favorite_id", favoriteID).Int64("owner_id", favorite.UserID).
			Int64("caller_id", user.ID).Msg("attempt to delete a foreign favorite")
		return ErrNothingToDelete
	}

	affected, err := f.favorites.DeleteByID(ctx, favoriteID)
	if err != nil {
		log.Err(err).Int64("favorite_id", favoriteID).Msg("favorite deletion ended with error")
		return fmt.Errorf("favorite deletion ended with error: %w", err)
	}
	if affected == 0 {
		return ErrNothingToDelete
	}

	return nil
}

// findTarget resolves the catalog record a target points at through the
// repository matching its kind.
func (f *favoriteService) findTarget(ctx context.Context, target models.FavoriteTarget) (models.CatalogRecord, error) {
	switch target.Kind {
	case models.TargetPlanet:
		planet, err := f.planets.FindByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return planet, nil
	case models.TargetCharacter:
		character, err := f.characters.FindByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return character, nil
	case models.TargetStarship:
		starship, err := f.starships.FindByID(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return starship, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTargetKind, string(target.Kind))
	}
}
