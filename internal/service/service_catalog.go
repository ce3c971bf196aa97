package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// catalogService is the concrete implementation of CatalogService. Every
// create follows the same pattern: look the record up by its entry point's
// natural key, report [store.ErrAlreadyExists] on a hit, insert otherwise.
// The unique indexes behind the repositories catch the concurrent-duplicate
// race the pre-check alone cannot close.
type catalogService struct {
	users      store.UserRepository
	planets    store.PlanetRepository
	characters store.CharacterRepository
	starships  store.StarshipRepository

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService over the catalog
// repositories.
func NewCatalogService(
	users store.UserRepository,
	planets store.PlanetRepository,
	characters store.CharacterRepository,
	starships store.StarshipRepository,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		users:      users,
		planets:    planets,
		characters: characters,
		starships:  starships,
		logger:     logger,
	}
}

func (c *catalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.users.List(ctx)
}

func (c *catalogService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return c.users.FindByID(ctx, id)
}

// CreateUser adds a user through the generic catalog path, where the
// uniqueness key is first_name. The signup path keys on email instead; the
// two entry points deliberately keep their separate keys.
func (c *catalogService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := c.users.FindByFirstName(ctx, user.FirstName)
	if err == nil {
		return models.User{}, store.ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Str("first_name", user.FirstName).Msg("user search by first name failed")
		return models.User{}, fmt.Errorf("user search by first name failed: %w", err)
	}

	created, err := c.users.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("first_name", user.FirstName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser reports ErrUserNotFound unconditionally. The legacy lookup is
// keyed on a display name users never had, so no stored row can ever match;
// the always-not-found response is the contract, and no store call is made.
func (c *catalogService) UpdateUser(ctx context.Context, update models.UpdateUserRequest) error {
	log := logger.FromContext(ctx)
	log.Debug().Str("name", update.Name).Msg("user update requested for a name-keyed lookup that cannot match")
	return ErrUserNotFound
}

func (c *catalogService) DeleteUserByName(ctx context.Context, name string) (int64, error) {
	return c.users.DeleteByFirstName(ctx, name)
}

func (c *catalogService) DeleteAllUsers(ctx context.Context) (int64, error) {
	return c.users.DeleteAll(ctx)
}

func (c *catalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return c.planets.List(ctx)
}

func (c *catalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return c.planets.FindByID(ctx, id)
}

func (c *catalogService) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	log := logger.FromContext(ctx)

	_, err := c.planets.FindByName(ctx, planet.Name)
	if err == nil {
		return models.Planet{}, store.ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Str("name", planet.Name).Msg("planet search by name failed")
		return models.Planet{}, fmt.Errorf("planet search by name failed: %w", err)
	}

	created, err := c.planets.Create(ctx, planet)
	if err != nil {
		log.Err(err).Str("name", planet.Name).Msg("planet creation ended with error")
		return models.Planet{}, fmt.Errorf("planet creation ended with error: %w", err)
	}

	return created, nil
}

// UpdatePlanet overwrites name, climate and population of the planet with the
// given id. Returns [store.ErrNotFound] when no planet has that id.
func (c *catalogService) UpdatePlanet(ctx context.Context, id int64, update models.UpdatePlanetRequest) error {
	log := logger.FromContext(ctx)

	affected, err := c.planets.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("planet update ended with error")
		return fmt.Errorf("planet update ended with error: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (c *catalogService) DeletePlanetByName(ctx context.Context, name string) (int64, error) {
	return c.planets.DeleteByName(ctx, name)
}

func (c *catalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return c.characters.List(ctx)
}

func (c *catalogService) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	return c.characters.FindByID(ctx, id)
}

func (c *catalogService) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	log := logger.FromContext(ctx)

	_, err := c.characters.FindByName(ctx, character.Name)
	if err == nil {
		return models.Character{}, store.ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Str("name", character.Name).Msg("character search by name failed")
		return models.Character{}, fmt.Errorf("character search by name failed: %w", err)
	}

	created, err := c.characters.Create(ctx, character)
	if err != nil {
		log.Err(err).Str("name", character.Name).Msg("character creation ended with error")
		return models.Character{}, fmt.Errorf("character creation ended with error: %w", err)
	}

	return created, nil
}

func (c *catalogService) ListStarships(ctx context.Context) ([]models.Starship, error) {
	return c.starships.List(ctx)
}

func (c *catalogService) GetStarship(ctx context.Context, id int64) (models.Starship, error) {
	return c.starships.FindByID(ctx, id)
}

// CreateStarship adds a starship from the legacy payload, which carries the
// ship's designation under "model". The value is matched against and stored
// in the name column; "model" is a wire alias, not a separate attribute.
func (c *catalogService) CreateStarship(ctx context.Context, request models.CreateStarshipRequest) (models.Starship, error) {
	log := logger.FromContext(ctx)

	_, err := c.starships.FindByName(ctx, request.Model)
	if err == nil {
		return models.Starship{}, store.ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Str("model", request.Model).Msg("starship search by model failed")
		return models.Starship{}, fmt.Errorf("starship search by model failed: %w", err)
	}

	created, err := c.starships.Create(ctx, models.Starship{
		Name:          request.Model,
		Manufacturer:  request.Manufacturer,
		Crew:          request.Crew,
		Passengers:    request.Passengers,
		Consumables:   request.Consumables,
		CostInCredits: request.CostInCredits,
	})
	if err != nil {
		log.Err(err).Str("model", request.Model).Msg("starship creation ended with error")
		return models.Starship{}, fmt.Errorf("starship creation ended with error: %w", err)
	}

	return created, nil
}
